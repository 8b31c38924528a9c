package prometheus

// Gauge 可增可减的瞬时值。
type Gauge struct {
	m *metric
}

// Name 返回指标名。
func (g *Gauge) Name() string { return g.m.name }

// Help 返回帮助文本。
func (g *Gauge) Help() string { return g.m.help }

// Type 返回指标类型。
func (g *Gauge) Type() MetricType { return TypeGauge }

// Set 将标签值对应的序列设为 v,序列不存在时创建。
func (g *Gauge) Set(v float64, labelValues ...string) error {
	return g.m.update(labelValues, func(s *series) {
		s.value = v
	})
}

// Inc 加一。
func (g *Gauge) Inc(labelValues ...string) error {
	return g.Add(1, labelValues...)
}

// Dec 减一。
func (g *Gauge) Dec(labelValues ...string) error {
	return g.Add(-1, labelValues...)
}

// Add 增加 v,新序列从 0 起算。
func (g *Gauge) Add(v float64, labelValues ...string) error {
	return g.m.update(labelValues, func(s *series) {
		s.value += v
	})
}

// Sub 减少 v。
func (g *Gauge) Sub(v float64, labelValues ...string) error {
	return g.Add(-v, labelValues...)
}
