package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/tarantool/prometheus/pkg/logger"
)

// MemCollector 内存采集器
type MemCollector struct {
	name    string
	metrics *Metrics
}

// NewMemCollector 创建内存采集器
func NewMemCollector(m *Metrics) *MemCollector {
	return &MemCollector{
		name:    "mem-collector",
		metrics: m,
	}
}

// Name 返回采集器名称
func (c *MemCollector) Name() string { return c.name }

// Init 预检查内存信息可读
func (c *MemCollector) Init() error {
	if _, err := mem.VirtualMemory(); err != nil {
		logger.Error("failed to get virtual memory", zap.Error(err))
		return err
	}
	return nil
}

// Collect 执行指标采集
func (c *MemCollector) Collect(ctx context.Context) error {
	start := time.Now()
	defer func() {
		_ = c.metrics.Agent.CollectDuration.Observe(time.Since(start).Seconds(), c.name)
	}()

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		_ = c.metrics.Agent.CollectErrors.Inc(c.name)
		return fmt.Errorf("get virtual memory failed: %w", err)
	}

	_ = c.metrics.Mem.TotalBytes.Set(float64(vm.Total))
	_ = c.metrics.Mem.AvailableBytes.Set(float64(vm.Available))
	_ = c.metrics.Mem.UsedBytes.Set(float64(vm.Used))
	_ = c.metrics.Mem.UsedRatio.Set(vm.UsedPercent / 100)

	logger.Debug("collected memory metrics",
		zap.Uint64("total", vm.Total),
		zap.Uint64("used", vm.Used),
		zap.Float64("used_percent", vm.UsedPercent))
	return nil
}

// Close 无持有资源
func (c *MemCollector) Close() error { return nil }
