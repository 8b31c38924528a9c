package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"

	"github.com/tarantool/prometheus/pkg/config"
	"github.com/tarantool/prometheus/pkg/logger"
)

// DiskCollector 磁盘采集器,按挂载点过滤
type DiskCollector struct {
	name    string
	ignore  map[string]struct{}
	metrics *Metrics
}

// NewDiskCollector 创建磁盘采集器
func NewDiskCollector(cfg config.DiskCollectorConfig, m *Metrics) *DiskCollector {
	ignore := make(map[string]struct{}, len(cfg.IgnoreMountpoints))
	for _, mp := range cfg.IgnoreMountpoints {
		ignore[mp] = struct{}{}
	}
	return &DiskCollector{
		name:    "disk-collector",
		ignore:  ignore,
		metrics: m,
	}
}

// Name 返回采集器名称
func (c *DiskCollector) Name() string { return c.name }

// Init 预检查分区列表可读
func (c *DiskCollector) Init() error {
	if _, err := disk.Partitions(false); err != nil {
		logger.Error("failed to list disk partitions", zap.Error(err))
		return err
	}
	return nil
}

// Collect 执行指标采集
func (c *DiskCollector) Collect(ctx context.Context) error {
	start := time.Now()
	defer func() {
		_ = c.metrics.Agent.CollectDuration.Observe(time.Since(start).Seconds(), c.name)
	}()

	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		_ = c.metrics.Agent.CollectErrors.Inc(c.name)
		return fmt.Errorf("list disk partitions failed: %w", err)
	}

	for _, p := range parts {
		if _, skip := c.ignore[p.Mountpoint]; skip {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			// 单个挂载点失败不中断整体采集
			logger.Warn("get disk usage failed",
				zap.String("mountpoint", p.Mountpoint), zap.Error(err))
			_ = c.metrics.Agent.CollectErrors.Inc(c.name)
			continue
		}
		if usage.Total == 0 {
			continue // 伪文件系统挂载点
		}

		_ = c.metrics.Disk.TotalBytes.Set(float64(usage.Total), p.Device, p.Mountpoint)
		_ = c.metrics.Disk.UsedBytes.Set(float64(usage.Used), p.Device, p.Mountpoint)
		_ = c.metrics.Disk.FreeBytes.Set(float64(usage.Free), p.Device, p.Mountpoint)
		_ = c.metrics.Disk.UsedRatio.Set(usage.UsedPercent/100, p.Device, p.Mountpoint)
	}

	logger.Debug("collected disk metrics", zap.Int("partitions", len(parts)))
	return nil
}

// Close 无持有资源
func (c *DiskCollector) Close() error { return nil }
