package prometheus

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectCounterText(t *testing.T) {
	r := NewRegistry()
	c := r.MustNewCounter("requests_total", "Total requests.", "method")

	require.NoError(t, c.Inc("GET"))
	require.NoError(t, c.Inc("GET"))
	require.NoError(t, c.Inc("GET"))
	require.NoError(t, c.Inc("POST"))

	want := `# HELP requests_total Total requests.
# TYPE requests_total counter
requests_total{method="GET"} 3
requests_total{method="POST"} 1
`
	assert.Equal(t, want, r.Collect())
}

func TestCollectHistogramText(t *testing.T) {
	r := NewRegistry()
	h := r.MustNewHistogram("response_seconds", "Response latency.", nil, 1, 5)

	require.NoError(t, h.Observe(0.5))
	require.NoError(t, h.Observe(3))
	require.NoError(t, h.Observe(10))

	want := `# HELP response_seconds Response latency.
# TYPE response_seconds histogram
response_seconds_bucket{le="1"} 1
response_seconds_bucket{le="5"} 2
response_seconds_bucket{le="+Inf"} 3
response_seconds_sum 13.5
response_seconds_count 3
`
	assert.Equal(t, want, r.Collect())
}

func TestCollectGaugeText(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("queue_depth", "Jobs waiting.")

	require.NoError(t, g.Set(100))
	require.NoError(t, g.Sub(30))

	want := `# HELP queue_depth Jobs waiting.
# TYPE queue_depth gauge
queue_depth 70
`
	assert.Equal(t, want, r.Collect())
}

func TestCollectLabeledHistogramText(t *testing.T) {
	r := NewRegistry()
	h := r.MustNewHistogram("latency_seconds", "", []string{"method"}, 0.1)

	require.NoError(t, h.Observe(0.05, "GET"))

	// le 追加在已有标签之后
	want := `# TYPE latency_seconds histogram
latency_seconds_bucket{method="GET",le="0.1"} 1
latency_seconds_bucket{method="GET",le="+Inf"} 1
latency_seconds_sum{method="GET"} 0.05
latency_seconds_count{method="GET"} 1
`
	assert.Equal(t, want, r.Collect())
}

func TestCollectEmptyRegistry(t *testing.T) {
	assert.Empty(t, NewRegistry().Collect())
}

func TestCollectMetricWithoutSeries(t *testing.T) {
	r := NewRegistry()
	r.MustNewCounter("unused_total", "Never incremented.", "method")

	// 没打过点的指标只有头部行
	want := `# HELP unused_total Never incremented.
# TYPE unused_total counter
`
	assert.Equal(t, want, r.Collect())
}

func TestCollectOmitsEmptyHelp(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("bare_gauge", "")
	require.NoError(t, g.Set(1))

	want := `# TYPE bare_gauge gauge
bare_gauge 1
`
	assert.Equal(t, want, r.Collect())
}

func TestCollectEscaping(t *testing.T) {
	r := NewRegistry()
	c := r.MustNewCounter("weird_total", "Help with \\ and\nnewline.", "path")
	require.NoError(t, c.Inc("a\"b\\c\nd"))

	out := r.Collect()
	assert.Contains(t, out, `# HELP weird_total Help with \\ and\nnewline.`)
	assert.Contains(t, out, `weird_total{path="a\"b\\c\nd"} 1`)
	// 换行全部被转义,输出行数固定
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 3)
}

func TestCollectRegistrationAndSeriesOrderStable(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("z_gauge", "")
	c := r.MustNewCounter("a_counter", "", "k")

	require.NoError(t, g.Set(1))
	require.NoError(t, c.Inc("second"))
	require.NoError(t, c.Inc("first")) // 名字无关,顺序只看首次打点

	first := r.Collect()
	assert.Equal(t, first, r.Collect())

	zIdx := strings.Index(first, "z_gauge")
	aIdx := strings.Index(first, "a_counter")
	assert.Less(t, zIdx, aIdx)

	secondIdx := strings.Index(first, `k="second"`)
	firstIdx := strings.Index(first, `k="first"`)
	assert.Less(t, secondIdx, firstIdx)

	// 新序列追加在已有序列之后
	require.NoError(t, c.Inc("third"))
	out := r.Collect()
	assert.Less(t, strings.Index(out, `k="first"`), strings.Index(out, `k="third"`))
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{42, "42"},
		{-7, "-7"},
		{0.5, "0.5"},
		{13.5, "13.5"},
		{0.123456789, "0.123456789"},
		{1e10, "1e+10"},
		{math.NaN(), "NaN"},
		{math.Inf(+1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatValue(tc.in), "formatValue(%v)", tc.in)
	}
}

func TestRenderLabelPairs(t *testing.T) {
	assert.Equal(t, "", renderLabelPairs(nil, nil))
	assert.Equal(t, `a="1"`, renderLabelPairs([]string{"a"}, []string{"1"}))
	assert.Equal(t, `a="1",b="2"`, renderLabelPairs([]string{"a", "b"}, []string{"1", "2"}))
	// 不转义时这两组值都会渲染成 a="1",b="2",b="3",转义让键保持单射
	assert.NotEqual(t,
		renderLabelPairs([]string{"a", "b"}, []string{`1",b="2`, "3"}),
		renderLabelPairs([]string{"a", "b"}, []string{"1", `2",b="3`}))
}
