package prometheus

import (
	"fmt"
	"sync"
)

// Registry 指标注册表。指标名在表内唯一,Snapshot 与 Collect 按注册顺序输出,
// 同一注册表可被多个 goroutine 并发注册、打点与采集。
type Registry struct {
	mu      sync.RWMutex
	names   map[string]struct{}
	metrics []*metric
}

// NewRegistry 创建空注册表。
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// NewCounter 注册一个 counter。名称或标签名非法、名称重复时返回错误,
// 失败不会改变注册表状态。
func (r *Registry) NewCounter(name, help string, labelNames ...string) (*Counter, error) {
	m, err := newMetric(name, help, TypeCounter, labelNames)
	if err != nil {
		return nil, err
	}
	if err := r.register(m); err != nil {
		return nil, err
	}
	return &Counter{m: m}, nil
}

// MustNewCounter 同 NewCounter,失败时 panic,适合程序启动阶段的固定指标。
func (r *Registry) MustNewCounter(name, help string, labelNames ...string) *Counter {
	c, err := r.NewCounter(name, help, labelNames...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewGauge 注册一个 gauge。
func (r *Registry) NewGauge(name, help string, labelNames ...string) (*Gauge, error) {
	m, err := newMetric(name, help, TypeGauge, labelNames)
	if err != nil {
		return nil, err
	}
	if err := r.register(m); err != nil {
		return nil, err
	}
	return &Gauge{m: m}, nil
}

// MustNewGauge 同 NewGauge,失败时 panic。
func (r *Registry) MustNewGauge(name, help string, labelNames ...string) *Gauge {
	g, err := r.NewGauge(name, help, labelNames...)
	if err != nil {
		panic(err)
	}
	return g
}

// NewHistogram 注册一个直方图。buckets 为空时使用 DefBuckets,
// 末位自动补齐 +Inf;边界必须严格递增。
func (r *Registry) NewHistogram(name, help string, labelNames []string, buckets ...float64) (*Histogram, error) {
	m, err := newMetric(name, help, TypeHistogram, labelNames)
	if err != nil {
		return nil, err
	}
	m.buckets, err = normalizeBuckets(buckets)
	if err != nil {
		return nil, err
	}
	if err := r.register(m); err != nil {
		return nil, err
	}
	return &Histogram{m: m}, nil
}

// MustNewHistogram 同 NewHistogram,失败时 panic。
func (r *Registry) MustNewHistogram(name, help string, labelNames []string, buckets ...float64) *Histogram {
	h, err := r.NewHistogram(name, help, labelNames, buckets...)
	if err != nil {
		panic(err)
	}
	return h
}

// register 查重并按注册顺序入表。
func (r *Registry) register(m *metric) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.names[m.name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMetric, m.name)
	}
	r.names[m.name] = struct{}{}
	r.metrics = append(r.metrics, m)
	return nil
}

// Snapshot 返回全部指标的深拷贝视图,顺序为注册顺序。
// 每个指标各自在读锁内完成拷贝,采集期间不会阻塞其它指标的打点。
func (r *Registry) Snapshot() []MetricSnapshot {
	r.mu.RLock()
	metrics := make([]*metric, len(r.metrics))
	copy(metrics, r.metrics)
	r.mu.RUnlock()

	out := make([]MetricSnapshot, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, m.snapshot())
	}
	return out
}
