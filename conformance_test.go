package prometheus_test

import (
	"math"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/prometheus"
)

// 用官方文本解析器回读 Collect 的输出,验证产出的确是合法的 0.0.4 格式,
// 而不是只和手写的期望串相等。
func TestCollectParsesWithReferenceParser(t *testing.T) {
	r := prometheus.NewRegistry()

	c := r.MustNewCounter("requests_total", "Total requests.", "method", "code")
	require.NoError(t, c.Inc("GET", "200"))
	require.NoError(t, c.Inc("GET", "200"))
	require.NoError(t, c.Add(5, "POST", "201"))

	g := r.MustNewGauge("queue_depth", "Jobs waiting.")
	require.NoError(t, g.Set(70))

	h := r.MustNewHistogram("response_seconds", "Response latency.", []string{"handler"}, 1, 5)
	require.NoError(t, h.Observe(0.5, "index"))
	require.NoError(t, h.Observe(3, "index"))
	require.NoError(t, h.Observe(10, "index"))

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(strings.NewReader(r.Collect()))
	require.NoError(t, err)
	require.Len(t, families, 3)

	reqs := families["requests_total"]
	require.NotNil(t, reqs)
	assert.Equal(t, dto.MetricType_COUNTER, reqs.GetType())
	assert.Equal(t, "Total requests.", reqs.GetHelp())
	require.Len(t, reqs.GetMetric(), 2)
	assert.Equal(t, float64(2), reqs.GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, float64(5), reqs.GetMetric()[1].GetCounter().GetValue())

	labels := map[string]string{}
	for _, lp := range reqs.GetMetric()[0].GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	assert.Equal(t, map[string]string{"method": "GET", "code": "200"}, labels)

	depth := families["queue_depth"]
	require.NotNil(t, depth)
	assert.Equal(t, dto.MetricType_GAUGE, depth.GetType())
	assert.Equal(t, float64(70), depth.GetMetric()[0].GetGauge().GetValue())

	resp := families["response_seconds"]
	require.NotNil(t, resp)
	assert.Equal(t, dto.MetricType_HISTOGRAM, resp.GetType())
	require.Len(t, resp.GetMetric(), 1)
	hist := resp.GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(3), hist.GetSampleCount())
	assert.Equal(t, 13.5, hist.GetSampleSum())

	require.Len(t, hist.GetBucket(), 3)
	assert.Equal(t, float64(1), hist.GetBucket()[0].GetUpperBound())
	assert.Equal(t, uint64(1), hist.GetBucket()[0].GetCumulativeCount())
	assert.Equal(t, float64(5), hist.GetBucket()[1].GetUpperBound())
	assert.Equal(t, uint64(2), hist.GetBucket()[1].GetCumulativeCount())
	assert.True(t, math.IsInf(hist.GetBucket()[2].GetUpperBound(), +1))
	assert.Equal(t, uint64(3), hist.GetBucket()[2].GetCumulativeCount())
}

// 标签值里的引号、反斜杠和换行经转义后必须能被解析器原样还原。
func TestEscapedLabelValuesRoundTrip(t *testing.T) {
	r := prometheus.NewRegistry()
	c := r.MustNewCounter("paths_total", "", "path")
	raw := "a\"b\\c\nd"
	require.NoError(t, c.Inc(raw))

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(strings.NewReader(r.Collect()))
	require.NoError(t, err)

	m := families["paths_total"].GetMetric()
	require.Len(t, m, 1)
	require.Len(t, m[0].GetLabel(), 1)
	assert.Equal(t, raw, m[0].GetLabel()[0].GetValue())
}

// 头部行(含 TYPE 无 HELP 的形态)混在正常指标当中也要能通过官方解析器;
// 解析器会丢弃零样本的 family,这里只要求整份文档合法。
func TestHeaderOnlyOutputParses(t *testing.T) {
	r := prometheus.NewRegistry()
	r.MustNewCounter("unused_total", "", "method")
	r.MustNewGauge("bare_gauge", "With help.")
	g := r.MustNewGauge("used_gauge", "")
	require.NoError(t, g.Set(1))

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(strings.NewReader(r.Collect()))
	require.NoError(t, err)

	require.Len(t, families, 1)
	assert.Equal(t, float64(1), families["used_gauge"].GetMetric()[0].GetGauge().GetValue())
}
