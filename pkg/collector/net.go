package collector

import (
	"context"
	"fmt"
	"time"

	gnet "github.com/shirou/gopsutil/v3/net"
	"go.uber.org/zap"

	"github.com/tarantool/prometheus"
	"github.com/tarantool/prometheus/pkg/config"
	"github.com/tarantool/prometheus/pkg/logger"
)

// NetCollector 网络采集器,基于两次采样差值累加计数器
type NetCollector struct {
	name    string
	ignore  map[string]struct{}
	metrics *Metrics
	last    map[string]gnet.IOCountersStat // 上次采样,接口名为键
}

// NewNetCollector 创建网络采集器
func NewNetCollector(cfg config.NetCollectorConfig, m *Metrics) *NetCollector {
	ignore := make(map[string]struct{}, len(cfg.IgnoreInterfaces))
	for _, iface := range cfg.IgnoreInterfaces {
		ignore[iface] = struct{}{}
	}
	return &NetCollector{
		name:    "net-collector",
		ignore:  ignore,
		metrics: m,
		last:    make(map[string]gnet.IOCountersStat),
	}
}

// Name 返回采集器名称
func (c *NetCollector) Name() string { return c.name }

// Init 预检查网络IO统计可读
func (c *NetCollector) Init() error {
	if _, err := gnet.IOCounters(true); err != nil {
		logger.Error("failed to get network io counters", zap.Error(err))
		return err
	}
	return nil
}

// Collect 执行指标采集
func (c *NetCollector) Collect(ctx context.Context) error {
	start := time.Now()
	defer func() {
		_ = c.metrics.Agent.CollectDuration.Observe(time.Since(start).Seconds(), c.name)
	}()

	stats, err := gnet.IOCountersWithContext(ctx, true)
	if err != nil {
		_ = c.metrics.Agent.CollectErrors.Inc(c.name)
		return fmt.Errorf("get network io counters failed: %w", err)
	}

	for _, s := range stats {
		if _, skip := c.ignore[s.Name]; skip {
			continue
		}
		prev, seen := c.last[s.Name]
		if seen {
			c.addDelta(c.metrics.Net.TransmitBytes, prev.BytesSent, s.BytesSent, s.Name)
			c.addDelta(c.metrics.Net.ReceiveBytes, prev.BytesRecv, s.BytesRecv, s.Name)
			c.addDelta(c.metrics.Net.TransmitErrors, prev.Errout, s.Errout, s.Name)
			c.addDelta(c.metrics.Net.ReceiveErrors, prev.Errin, s.Errin, s.Name)
		} else {
			// 首次采样只建立基准,同时让序列出现在输出里
			_ = c.metrics.Net.TransmitBytes.Add(0, s.Name)
			_ = c.metrics.Net.ReceiveBytes.Add(0, s.Name)
			_ = c.metrics.Net.TransmitErrors.Add(0, s.Name)
			_ = c.metrics.Net.ReceiveErrors.Add(0, s.Name)
		}
		c.last[s.Name] = s
	}

	logger.Debug("collected network metrics", zap.Int("interfaces", len(stats)))
	return nil
}

// addDelta 差值累加,内核计数器回绕(如接口重置)时从当前值重新累计
func (c *NetCollector) addDelta(counter *prometheus.Counter, prev, cur uint64, iface string) {
	delta := cur - prev
	if cur < prev {
		delta = cur
		logger.Warn("network counter reset detected",
			zap.String("interface", iface), zap.String("metric", counter.Name()))
	}
	_ = counter.Add(float64(delta), iface)
}

// Close 无持有资源
func (c *NetCollector) Close() error { return nil }
