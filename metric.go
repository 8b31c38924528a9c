package prometheus

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// MetricType 指标类型,取值与文本格式 # TYPE 行一致。
type MetricType string

const (
	TypeCounter   MetricType = "counter"
	TypeGauge     MetricType = "gauge"
	TypeHistogram MetricType = "histogram"
)

// MetricSnapshot 单个指标在某一时刻的完整只读视图,深拷贝自内部状态,
// 调用方可任意持有或修改而不影响注册表。
type MetricSnapshot struct {
	Name       string
	Help       string
	Type       MetricType
	LabelNames []string
	// Buckets 直方图分桶上界,升序,末位恒为 +Inf;其它类型为 nil
	Buckets []float64
	// Series 按首次打点顺序排列
	Series []SeriesSnapshot
}

// SeriesSnapshot 单条时间序列的只读视图。
type SeriesSnapshot struct {
	// LabelValues 与 MetricSnapshot.LabelNames 一一对应
	LabelValues []string
	// LabelText 渲染好的标签片段,如 `method="GET",code="200"`;无标签时为空串
	LabelText string
	// Value counter/gauge 的当前值
	Value float64
	// BucketCounts 直方图累计分桶计数,与 Buckets 对齐
	BucketCounts []uint64
	// Sum 直方图观测值之和
	Sum float64
	// Count 直方图观测总次数,等于 +Inf 桶的计数
	Count uint64
}

// series 一条时间序列的内部状态,由所属 metric 的锁保护。
// 渲染好的标签文本同时充当 series 表的键与导出时的标签片段,
// 标签值经转义后拼接,不同的标签值组合不会碰撞。
type series struct {
	labelValues []string
	labelText   string

	value        float64
	bucketCounts []uint64
	sum          float64
}

// metric 三种指标类型共享的内核:不可变的描述信息加上一张按需增长的序列表。
type metric struct {
	name       string
	help       string
	mtype      MetricType
	labelNames []string
	buckets    []float64

	mu     sync.RWMutex
	series map[string]*series
	order  []*series
}

// newMetric 构造指标内核并校验名称与标签名。分桶校验由直方图单独完成。
func newMetric(name, help string, mtype MetricType, labelNames []string) (*metric, error) {
	if name == "" {
		return nil, ErrEmptyMetricName
	}
	seen := make(map[string]struct{}, len(labelNames))
	for _, ln := range labelNames {
		if !validLabelName(ln) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLabelName, ln)
		}
		if mtype == TypeHistogram && ln == "le" {
			return nil, fmt.Errorf("%w: %q is reserved for histogram buckets", ErrInvalidLabelName, ln)
		}
		if _, dup := seen[ln]; dup {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidLabelName, ln)
		}
		seen[ln] = struct{}{}
	}
	return &metric{
		name:       name,
		help:       help,
		mtype:      mtype,
		labelNames: slices.Clone(labelNames),
		series:     make(map[string]*series),
	}, nil
}

// validLabelName 标签名需匹配 [a-zA-Z_][a-zA-Z0-9_]*。
func validLabelName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			continue
		}
		if i > 0 && '0' <= r && r <= '9' {
			continue
		}
		return false
	}
	return true
}

// update 定位(或创建)标签值对应的序列并在写锁内应用 apply。
// 查找、创建与修改处于同一个临界区,采集方不可能观察到只完成一半的打点。
func (m *metric) update(labelValues []string, apply func(*series)) error {
	if len(labelValues) != len(m.labelNames) {
		return fmt.Errorf("%w: %s expects %d label values, got %d",
			ErrLabelCountMismatch, m.name, len(m.labelNames), len(labelValues))
	}
	key := renderLabelPairs(m.labelNames, labelValues)

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.series[key]
	if !ok {
		s = &series{
			labelValues: slices.Clone(labelValues),
			labelText:   key,
		}
		if m.mtype == TypeHistogram {
			s.bucketCounts = make([]uint64, len(m.buckets))
		}
		m.series[key] = s
		m.order = append(m.order, s)
	}
	apply(s)
	return nil
}

// snapshot 在读锁内深拷贝全部序列,序列顺序为首次打点顺序。
func (m *metric) snapshot() MetricSnapshot {
	ms := MetricSnapshot{
		Name:       m.name,
		Help:       m.help,
		Type:       m.mtype,
		LabelNames: slices.Clone(m.labelNames),
		Buckets:    slices.Clone(m.buckets),
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	ms.Series = make([]SeriesSnapshot, 0, len(m.order))
	for _, s := range m.order {
		ss := SeriesSnapshot{
			LabelValues: slices.Clone(s.labelValues),
			LabelText:   s.labelText,
		}
		if m.mtype == TypeHistogram {
			ss.BucketCounts = slices.Clone(s.bucketCounts)
			ss.Sum = s.sum
			ss.Count = s.bucketCounts[len(s.bucketCounts)-1]
		} else {
			ss.Value = s.value
		}
		ms.Series = append(ms.Series, ss)
	}
	return ms
}

// renderLabelPairs 把标签名值对渲染成 `k1="v1",k2="v2"` 形式,值按文本格式转义。
func renderLabelPairs(names, values []string) string {
	if len(names) == 0 {
		return ""
	}
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(n)
		b.WriteString(`="`)
		b.WriteString(escapeLabelValue(values[i]))
		b.WriteByte('"')
	}
	return b.String()
}
