package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 包级函数共享 DefaultRegistry,指标名带前缀避免与其它用例冲突。
func TestDefaultRegistryForwarders(t *testing.T) {
	c := MustNewCounter("global_requests_total", "", "method")
	require.NoError(t, c.Inc("GET"))

	g, err := NewGauge("global_queue_depth", "")
	require.NoError(t, err)
	require.NoError(t, g.Set(7))

	h, err := NewHistogram("global_latency_seconds", "", nil, 1)
	require.NoError(t, err)
	require.NoError(t, h.Observe(0.5))

	out := Collect()
	assert.Contains(t, out, `global_requests_total{method="GET"} 1`)
	assert.Contains(t, out, "global_queue_depth 7")
	assert.Contains(t, out, `global_latency_seconds_bucket{le="1"} 1`)

	var names []string
	for _, ms := range Snapshot() {
		names = append(names, ms.Name)
	}
	assert.Contains(t, names, "global_requests_total")

	_, err = NewCounter("global_requests_total", "")
	require.ErrorIs(t, err, ErrDuplicateMetric)
	assert.Panics(t, func() { MustNewGauge("global_queue_depth", "") })
	assert.Panics(t, func() { MustNewHistogram("global_latency_seconds", "", nil) })

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, Collect(), string(body))
}
