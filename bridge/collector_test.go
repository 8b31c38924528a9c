package bridge

import (
	"strings"
	"testing"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/prometheus"
)

func testRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()

	c := reg.MustNewCounter("requests_total", "Total requests.", "method")
	require.NoError(t, c.Add(3, "GET"))
	require.NoError(t, c.Inc("POST"))

	g := reg.MustNewGauge("queue_depth", "Jobs waiting.")
	require.NoError(t, g.Set(70))

	h := reg.MustNewHistogram("response_seconds", "Response latency.", []string{"handler"}, 1, 5)
	require.NoError(t, h.Observe(0.5, "index"))
	require.NoError(t, h.Observe(3, "index"))
	require.NoError(t, h.Observe(10, "index"))

	return reg
}

func TestCollectorCounter(t *testing.T) {
	col := NewCollector(testRegistry(t))

	expected := `
# HELP requests_total Total requests.
# TYPE requests_total counter
requests_total{method="GET"} 3
requests_total{method="POST"} 1
`
	require.NoError(t, testutil.CollectAndCompare(col, strings.NewReader(expected), "requests_total"))
}

func TestCollectorGauge(t *testing.T) {
	col := NewCollector(testRegistry(t))

	expected := `
# HELP queue_depth Jobs waiting.
# TYPE queue_depth gauge
queue_depth 70
`
	require.NoError(t, testutil.CollectAndCompare(col, strings.NewReader(expected), "queue_depth"))
}

func TestCollectorHistogram(t *testing.T) {
	col := NewCollector(testRegistry(t))

	expected := `
# HELP response_seconds Response latency.
# TYPE response_seconds histogram
response_seconds_bucket{handler="index",le="1"} 1
response_seconds_bucket{handler="index",le="5"} 2
response_seconds_bucket{handler="index",le="+Inf"} 3
response_seconds_sum{handler="index"} 13.5
response_seconds_count{handler="index"} 3
`
	require.NoError(t, testutil.CollectAndCompare(col, strings.NewReader(expected), "response_seconds"))
}

func TestCollectorSampleCount(t *testing.T) {
	col := NewCollector(testRegistry(t))

	// counter 两条序列 + gauge 一条 + histogram 一条
	assert.Equal(t, 4, testutil.CollectAndCount(col))
}

func TestCollectorTracksLiveRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := reg.MustNewCounter("events_total", "", "kind")
	col := NewCollector(reg)

	assert.Equal(t, 0, testutil.CollectAndCount(col))

	require.NoError(t, c.Inc("create"))
	assert.Equal(t, 1, testutil.CollectAndCount(col))

	require.NoError(t, c.Inc("delete"))
	assert.Equal(t, 2, testutil.CollectAndCount(col))
}

func TestCollectorInvalidNameReportsError(t *testing.T) {
	reg := prometheus.NewRegistry()
	// 本库只要求名字非空,这里塞进非法 UTF-8 字节,
	// 任何命名校验方案下转换都会失败,要走 Gather 的错误通道而不是 panic
	c := reg.MustNewCounter("bad\xffname", "")
	require.NoError(t, c.Inc())

	promReg := promclient.NewRegistry()
	require.NoError(t, promReg.Register(NewCollector(reg)))

	_, err := promReg.Gather()
	require.Error(t, err)
}
