// Package bridge 把本库的 Registry 暴露成 client_golang 的 Collector,
// 让已经通过 promhttp 抓取的服务无需改动抓取管线就能挂载本库的指标。
package bridge

import (
	"math"

	promclient "github.com/prometheus/client_golang/prometheus"

	"github.com/tarantool/prometheus"
)

// Collector 在每次抓取时对 Registry 做快照,再转换成常量指标发出。
// 没打过点的指标不会出现在输出里,client_golang 不渲染零样本的 family。
type Collector struct {
	reg *prometheus.Registry
}

// NewCollector 包装一个 Registry。返回值注册进任意 prometheus.Registerer 即可使用。
func NewCollector(reg *prometheus.Registry) *Collector {
	return &Collector{reg: reg}
}

// Describe 不发送任何描述符,collector 以 unchecked 方式注册,
// 指标集合允许随运行期打点而变化。
func (c *Collector) Describe(chan<- *promclient.Desc) {}

// Collect 转换快照。单个序列转换失败(例如指标名不符合 client_golang 的
// 命名规则)时发出 invalid metric,由采集端上报错误,不会中断整次抓取。
func (c *Collector) Collect(ch chan<- promclient.Metric) {
	for _, ms := range c.reg.Snapshot() {
		desc := promclient.NewDesc(ms.Name, ms.Help, ms.LabelNames, nil)
		for _, s := range ms.Series {
			m, err := convertSeries(desc, &ms, &s)
			if err != nil {
				ch <- promclient.NewInvalidMetric(desc, err)
				continue
			}
			ch <- m
		}
	}
}

// convertSeries 按指标类型生成对应的常量指标。
func convertSeries(desc *promclient.Desc, ms *prometheus.MetricSnapshot, s *prometheus.SeriesSnapshot) (promclient.Metric, error) {
	switch ms.Type {
	case prometheus.TypeCounter:
		return promclient.NewConstMetric(desc, promclient.CounterValue, s.Value, s.LabelValues...)
	case prometheus.TypeGauge:
		return promclient.NewConstMetric(desc, promclient.GaugeValue, s.Value, s.LabelValues...)
	default:
		// +Inf 桶不进映射,client_golang 由 count 推导
		buckets := make(map[float64]uint64, len(ms.Buckets)-1)
		for i, bound := range ms.Buckets {
			if math.IsInf(bound, +1) {
				continue
			}
			buckets[bound] = s.BucketCounts[i]
		}
		return promclient.NewConstHistogram(desc, s.Count, s.Sum, buckets, s.LabelValues...)
	}
}
