package prometheus

import "net/http"

// DefaultRegistry 包级函数操作的默认注册表。
// 需要隔离(尤其在测试里)时应自建 Registry。
var DefaultRegistry = NewRegistry()

// NewCounter 在 DefaultRegistry 上注册 counter。
func NewCounter(name, help string, labelNames ...string) (*Counter, error) {
	return DefaultRegistry.NewCounter(name, help, labelNames...)
}

// MustNewCounter 同 NewCounter,失败时 panic。
func MustNewCounter(name, help string, labelNames ...string) *Counter {
	return DefaultRegistry.MustNewCounter(name, help, labelNames...)
}

// NewGauge 在 DefaultRegistry 上注册 gauge。
func NewGauge(name, help string, labelNames ...string) (*Gauge, error) {
	return DefaultRegistry.NewGauge(name, help, labelNames...)
}

// MustNewGauge 同 NewGauge,失败时 panic。
func MustNewGauge(name, help string, labelNames ...string) *Gauge {
	return DefaultRegistry.MustNewGauge(name, help, labelNames...)
}

// NewHistogram 在 DefaultRegistry 上注册直方图。
func NewHistogram(name, help string, labelNames []string, buckets ...float64) (*Histogram, error) {
	return DefaultRegistry.NewHistogram(name, help, labelNames, buckets...)
}

// MustNewHistogram 同 NewHistogram,失败时 panic。
func MustNewHistogram(name, help string, labelNames []string, buckets ...float64) *Histogram {
	return DefaultRegistry.MustNewHistogram(name, help, labelNames, buckets...)
}

// Snapshot 采集 DefaultRegistry 的只读视图。
func Snapshot() []MetricSnapshot {
	return DefaultRegistry.Snapshot()
}

// Collect 导出 DefaultRegistry 的文本格式。
func Collect() string {
	return DefaultRegistry.Collect()
}

// Handler 返回 DefaultRegistry 的 /metrics 处理器。
func Handler() http.Handler {
	return DefaultRegistry.Handler()
}
