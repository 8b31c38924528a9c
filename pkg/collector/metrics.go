package collector

import (
	"github.com/tarantool/prometheus"
)

// AgentMetrics 采集框架自身的运行指标
type AgentMetrics struct {
	CollectErrors   *prometheus.Counter   // 按采集器统计的采集失败次数
	CollectDuration *prometheus.Histogram // 按采集器统计的采集耗时
}

// CPUMetrics CPU采集器指标
type CPUMetrics struct {
	UsageRatio *prometheus.Gauge // CPU使用率(0-1),按核标签
	Load1      *prometheus.Gauge // 1分钟负载
	Load5      *prometheus.Gauge // 5分钟负载
	Load15     *prometheus.Gauge // 15分钟负载
}

// MemMetrics 内存采集器指标
type MemMetrics struct {
	TotalBytes     *prometheus.Gauge
	AvailableBytes *prometheus.Gauge
	UsedBytes      *prometheus.Gauge
	UsedRatio      *prometheus.Gauge
}

// DiskMetrics 磁盘采集器指标,按设备和挂载点标签
type DiskMetrics struct {
	TotalBytes *prometheus.Gauge
	UsedBytes  *prometheus.Gauge
	FreeBytes  *prometheus.Gauge
	UsedRatio  *prometheus.Gauge
}

// NetMetrics 网络采集器指标,按接口标签累计
type NetMetrics struct {
	TransmitBytes  *prometheus.Counter
	ReceiveBytes   *prometheus.Counter
	TransmitErrors *prometheus.Counter
	ReceiveErrors  *prometheus.Counter
}

// Metrics 系统采集器的全部指标句柄,统一注册在同一个注册表上
type Metrics struct {
	Agent AgentMetrics
	CPU   CPUMetrics
	Mem   MemMetrics
	Disk  DiskMetrics
	Net   NetMetrics
}

// NewMetrics 在指定注册表上创建采集器指标,名称冲突会panic
func NewMetrics(reg *prometheus.Registry) *Metrics {
	return &Metrics{
		Agent: AgentMetrics{
			CollectErrors: reg.MustNewCounter("agent_collect_errors_total",
				"Total collection errors per collector", "collector"),
			CollectDuration: reg.MustNewHistogram("agent_collect_duration_seconds",
				"Collection duration per collector", []string{"collector"},
				prometheus.ExponentialBuckets(0.001, 2, 12)...),
		},
		CPU: CPUMetrics{
			UsageRatio: reg.MustNewGauge("cpu_usage_ratio", "CPU usage ratio per core", "core"),
			Load1:      reg.MustNewGauge("cpu_load1", "1 minute load average"),
			Load5:      reg.MustNewGauge("cpu_load5", "5 minute load average"),
			Load15:     reg.MustNewGauge("cpu_load15", "15 minute load average"),
		},
		Mem: MemMetrics{
			TotalBytes:     reg.MustNewGauge("memory_total_bytes", "Total physical memory in bytes"),
			AvailableBytes: reg.MustNewGauge("memory_available_bytes", "Available memory in bytes"),
			UsedBytes:      reg.MustNewGauge("memory_used_bytes", "Used memory in bytes"),
			UsedRatio:      reg.MustNewGauge("memory_used_ratio", "Used memory ratio (0-1)"),
		},
		Disk: DiskMetrics{
			TotalBytes: reg.MustNewGauge("disk_total_bytes", "Total disk space in bytes", "device", "mountpoint"),
			UsedBytes:  reg.MustNewGauge("disk_used_bytes", "Used disk space in bytes", "device", "mountpoint"),
			FreeBytes:  reg.MustNewGauge("disk_free_bytes", "Free disk space in bytes", "device", "mountpoint"),
			UsedRatio:  reg.MustNewGauge("disk_used_ratio", "Used disk space ratio (0-1)", "device", "mountpoint"),
		},
		Net: NetMetrics{
			TransmitBytes:  reg.MustNewCounter("network_transmit_bytes_total", "Total bytes transmitted per interface", "interface"),
			ReceiveBytes:   reg.MustNewCounter("network_receive_bytes_total", "Total bytes received per interface", "interface"),
			TransmitErrors: reg.MustNewCounter("network_transmit_errors_total", "Total transmit errors per interface", "interface"),
			ReceiveErrors:  reg.MustNewCounter("network_receive_errors_total", "Total receive errors per interface", "interface"),
		},
	}
}
