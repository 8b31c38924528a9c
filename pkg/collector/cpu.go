package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	cload "github.com/shirou/gopsutil/v3/load"
	"go.uber.org/zap"

	"github.com/tarantool/prometheus/pkg/config"
	"github.com/tarantool/prometheus/pkg/logger"
)

// CPUCollector CPU采集器(实现Collector接口)
type CPUCollector struct {
	name    string
	perCore bool
	metrics *Metrics
}

// NewCPUCollector 创建CPU采集器
func NewCPUCollector(cfg config.CPUCollectorConfig, m *Metrics) *CPUCollector {
	return &CPUCollector{
		name:    "cpu-collector",
		perCore: cfg.PerCore,
		metrics: m,
	}
}

// Name 返回采集器名称
func (c *CPUCollector) Name() string { return c.name }

// Init 预检查CPU可用性
func (c *CPUCollector) Init() error {
	if _, err := cpu.Counts(false); err != nil {
		logger.Error("failed to get CPU counts", zap.Error(err))
		return err
	}
	return nil
}

// Collect 执行指标采集
func (c *CPUCollector) Collect(ctx context.Context) error {
	start := time.Now()
	defer func() {
		_ = c.metrics.Agent.CollectDuration.Observe(time.Since(start).Seconds(), c.name)
	}()

	logger.Debug("collect CPU info", zap.String("name", c.name))

	// 1. 采集CPU使用率 整体/每核
	usageList, err := cpu.PercentWithContext(ctx, 0, c.perCore)
	if err != nil {
		_ = c.metrics.Agent.CollectErrors.Inc(c.name)
		return fmt.Errorf("get cpu usage failed: %w", err)
	}

	// 2. 更新使用率指标
	if c.perCore {
		for i, usage := range usageList {
			_ = c.metrics.CPU.UsageRatio.Set(usage/100, fmt.Sprintf("cpu%d", i))
		}
	} else if len(usageList) > 0 {
		_ = c.metrics.CPU.UsageRatio.Set(usageList[0]/100, "total")
	}

	// 3. 采集CPU负载(部分平台不支持,失败仅告警)
	avg, err := cload.AvgWithContext(ctx)
	if err != nil {
		logger.Warn("failed to get CPU load", zap.Error(err))
		_ = c.metrics.Agent.CollectErrors.Inc(c.name)
		return nil
	}
	_ = c.metrics.CPU.Load1.Set(avg.Load1)
	_ = c.metrics.CPU.Load5.Set(avg.Load5)
	_ = c.metrics.CPU.Load15.Set(avg.Load15)

	logger.Debug("collected CPU metrics",
		zap.Float64("load1", avg.Load1),
		zap.Float64("load5", avg.Load5),
		zap.Float64("load15", avg.Load15))
	return nil
}

// Close 无持有资源
func (c *CPUCollector) Close() error { return nil }
