package prometheus

import "fmt"

// Counter 单调递增的计数器,只能增加或保持不变。
type Counter struct {
	m *metric
}

// Name 返回指标名。
func (c *Counter) Name() string { return c.m.name }

// Help 返回帮助文本。
func (c *Counter) Help() string { return c.m.help }

// Type 返回指标类型。
func (c *Counter) Type() MetricType { return TypeCounter }

// Inc 将标签值对应的序列加一,序列不存在时创建。
func (c *Counter) Inc(labelValues ...string) error {
	return c.Add(1, labelValues...)
}

// Add 将标签值对应的序列增加 v。v 为负时返回 ErrNegativeCounterValue,
// v 为零同样会创建序列,可用来提前让序列以 0 出现在导出结果里。
func (c *Counter) Add(v float64, labelValues ...string) error {
	if v < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeCounterValue, c.m.name)
	}
	return c.m.update(labelValues, func(s *series) {
		s.value += v
	})
}
