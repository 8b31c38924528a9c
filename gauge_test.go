package prometheus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaugeSetAndSub(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("queue_depth", "Jobs waiting in the queue.")

	require.NoError(t, g.Set(100))
	require.NoError(t, g.Sub(30))

	assert.Equal(t, float64(70), r.Snapshot()[0].Series[0].Value)
}

func TestGaugeIncDecAdd(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("active_sessions", "")

	require.NoError(t, g.Inc())
	require.NoError(t, g.Inc())
	require.NoError(t, g.Dec())
	require.NoError(t, g.Add(4.5))

	assert.Equal(t, 5.5, r.Snapshot()[0].Series[0].Value)
}

func TestGaugeAddStartsFromZero(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("temperature_celsius", "", "sensor")

	// 未 Set 过的序列从 0 起算,负值合法
	require.NoError(t, g.Add(-12.5, "outdoor"))

	assert.Equal(t, -12.5, r.Snapshot()[0].Series[0].Value)
}

func TestGaugeLabeledSeriesIndependent(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("connections", "", "protocol")

	require.NoError(t, g.Set(100, "http"))
	require.NoError(t, g.Set(50, "websocket"))
	require.NoError(t, g.Inc("http"))

	series := r.Snapshot()[0].Series
	require.Len(t, series, 2)
	assert.Equal(t, float64(101), series[0].Value)
	assert.Equal(t, float64(50), series[1].Value)
}

func TestGaugeLabelCountMismatch(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("connections", "", "protocol")

	require.ErrorIs(t, g.Set(1, "http", "extra"), ErrLabelCountMismatch)
	require.ErrorIs(t, g.Dec(), ErrLabelCountMismatch)
	assert.Empty(t, r.Snapshot()[0].Series)
}

func TestGaugeAccessors(t *testing.T) {
	r := NewRegistry()
	g := r.MustNewGauge("queue_depth", "Jobs waiting.", "queue")

	assert.Equal(t, "queue_depth", g.Name())
	assert.Equal(t, "Jobs waiting.", g.Help())
	assert.Equal(t, TypeGauge, g.Type())
}
