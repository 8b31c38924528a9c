package prometheus

import (
	"fmt"
	"math"
)

// DefBuckets 未显式指定分桶时使用的默认边界,面向秒级耗时场景,
// 不含 +Inf,注册时自动补齐。
var DefBuckets = []float64{
	.005, .01, .025, .05, .075, .1, .25, .5, .75, 1, 2.5, 5, 7.5, 10,
}

// Histogram 观测值分布的直方图。每条序列维护一组累计分桶计数:
// 一次观测会递增所有上界不小于观测值的桶,观测总数即 +Inf 桶的计数。
type Histogram struct {
	m *metric
}

// Name 返回指标名。
func (h *Histogram) Name() string { return h.m.name }

// Help 返回帮助文本。
func (h *Histogram) Help() string { return h.m.help }

// Type 返回指标类型。
func (h *Histogram) Type() MetricType { return TypeHistogram }

// Observe 记录一次观测。分桶递增与求和在同一临界区内完成,
// 采集方看到的每条序列都对应完整的观测次数。
func (h *Histogram) Observe(v float64, labelValues ...string) error {
	return h.m.update(labelValues, func(s *series) {
		for i, bound := range h.m.buckets {
			if v <= bound {
				s.bucketCounts[i]++
			}
		}
		s.sum += v
	})
}

// normalizeBuckets 校验分桶边界并补齐 +Inf。
// 为空时使用 DefBuckets;边界必须严格递增且不含 NaN。
func normalizeBuckets(buckets []float64) ([]float64, error) {
	if len(buckets) == 0 {
		buckets = DefBuckets
	}
	out := make([]float64, 0, len(buckets)+1)
	for i, b := range buckets {
		if math.IsNaN(b) {
			return nil, fmt.Errorf("%w: NaN bound at index %d", ErrInvalidBuckets, i)
		}
		if i > 0 && b <= out[i-1] {
			return nil, fmt.Errorf("%w: bounds must be strictly ascending, got %v after %v",
				ErrInvalidBuckets, b, out[i-1])
		}
		out = append(out, b)
	}
	if !math.IsInf(out[len(out)-1], +1) {
		out = append(out, math.Inf(+1))
	}
	return out, nil
}

// LinearBuckets 生成 count 个等距边界,首个为 start,步长 width。
// 返回值不含 +Inf。count 小于 1 时 panic。
func LinearBuckets(start, width float64, count int) []float64 {
	if count < 1 {
		panic("LinearBuckets needs a positive count")
	}
	buckets := make([]float64, count)
	for i := range buckets {
		buckets[i] = start
		start += width
	}
	return buckets
}

// ExponentialBuckets 生成 count 个等比边界,首个为 start,公比 factor。
// 返回值不含 +Inf。参数非法时 panic。
func ExponentialBuckets(start, factor float64, count int) []float64 {
	if count < 1 {
		panic("ExponentialBuckets needs a positive count")
	}
	if start <= 0 {
		panic("ExponentialBuckets needs a positive start value")
	}
	if factor <= 1 {
		panic("ExponentialBuckets needs a factor greater than 1")
	}
	buckets := make([]float64, count)
	for i := range buckets {
		buckets[i] = start
		start *= factor
	}
	return buckets
}
