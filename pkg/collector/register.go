package collector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tarantool/prometheus/pkg/config"
	"github.com/tarantool/prometheus/pkg/logger"
)

// Module 采集器注册表条目(开关控制 + 构造函数)
type Module struct {
	Enabled bool
	Name    string
	NewFunc func() Collector
}

// RegisterCollectors 采集器注册统一入口,新增采集器只需在表里加一条
func RegisterCollectors(agent Agent, cfg config.CollectorConfig, m *Metrics) ([]Collector, error) {
	modules := []Module{
		{
			Enabled: cfg.CPU.Enable,
			Name:    "cpu",
			NewFunc: func() Collector { return NewCPUCollector(cfg.CPU, m) },
		},
		{
			Enabled: cfg.Mem.Enable,
			Name:    "mem",
			NewFunc: func() Collector { return NewMemCollector(m) },
		},
		{
			Enabled: cfg.Disk.Enable,
			Name:    "disk",
			NewFunc: func() Collector { return NewDiskCollector(cfg.Disk, m) },
		},
		{
			Enabled: cfg.Net.Enable,
			Name:    "net",
			NewFunc: func() Collector { return NewNetCollector(cfg.Net, m) },
		},
	}

	var registered []Collector
	for _, mod := range modules {
		if !mod.Enabled {
			logger.Debug("collector disabled", zap.String("name", mod.Name))
			continue
		}
		col := mod.NewFunc()
		if err := agent.Register(col); err != nil {
			return nil, err
		}
		registered = append(registered, col)
		logger.Debug("registered collector", zap.String("name", mod.Name))
	}
	if len(registered) == 0 {
		return nil, fmt.Errorf("no collectors enabled; check monitor.collectors config")
	}

	var names []string
	for _, col := range registered {
		names = append(names, col.Name())
	}
	logger.Debug("all enabled collectors registered", zap.Strings("collectors", names))
	return registered, nil
}
