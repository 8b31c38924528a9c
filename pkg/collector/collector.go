package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tarantool/prometheus/pkg/logger"
)

// Agent 顶层采集器接口(封装所有采集器的生命周期管理)
// 后续扩展采集器仅需实现Collector接口,通过Agent注册即可
type Agent interface {
	Register(collector Collector) error // 注册采集器
	Start(ctx context.Context) error    // 启动采集(定时器循环)
	Shutdown(ctx context.Context) error // 优雅停止
}

// Collector 采集器核心接口(所有采集器必须实现)
type Collector interface {
	Name() string                      // 采集器名称(唯一标识)
	Init() error                       // 初始化(预检查资源)
	Collect(ctx context.Context) error // 采集数据(更新指标)
	Close() error                      // 关闭(释放资源)
}

// Runner 实现 Agent 接口,按固定间隔驱动全部采集器
type Runner struct {
	collectors []Collector
	names      map[string]struct{}
	interval   time.Duration
	ticker     *time.Ticker
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
}

// NewRunner 创建采集器运行器(初始化内部上下文)
func NewRunner(interval time.Duration) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		collectors: make([]Collector, 0),
		names:      make(map[string]struct{}),
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Register 注册采集器,名称重复返回错误
func (r *Runner) Register(c Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.names[c.Name()]; ok {
		return fmt.Errorf("collector already registered: %s", c.Name())
	}
	r.names[c.Name()] = struct{}{}
	r.collectors = append(r.collectors, c)
	return nil
}

// InitAll 初始化所有已注册采集器,任一失败直接返回
func (r *Runner) InitAll() error {
	for _, col := range r.collectors {
		if err := col.Init(); err != nil {
			return fmt.Errorf("collector %s init failed: %w", col.Name(), err)
		}
		logger.Debug("collector initialized successfully", zap.String("name", col.Name()))
	}
	return nil
}

// Start 启动采集循环,同时监听外部 ctx 和内部关闭信号
func (r *Runner) Start(ctx context.Context) error {
	if err := r.InitAll(); err != nil {
		return err
	}

	r.ticker = time.NewTicker(r.interval)
	logger.Debug("collector loop started",
		zap.Duration("interval", r.interval),
		zap.Int("collectors", len(r.collectors)))

	go func() {
		// 首次采集(失败仅警告)
		if err := r.CollectAll(ctx); err != nil {
			logger.Warn("first collection failed", zap.Error(err))
		}

		for {
			select {
			case <-r.ticker.C:
				_ = r.CollectAll(ctx) // 单采集器失败不影响整体
			case <-ctx.Done(): // 响应外部关闭信号(如服务停止)
				r.ticker.Stop()
				logger.Info("collector loop stopped by external context", zap.Error(ctx.Err()))
				return
			case <-r.ctx.Done(): // 响应内部关闭信号(主动调用 Shutdown)
				r.ticker.Stop()
				logger.Info("collector loop stopped by shutdown")
				return
			}
		}
	}()
	return nil
}

// Shutdown 优雅关闭采集器(停止循环并释放资源)
func (r *Runner) Shutdown(ctx context.Context) error {
	logger.Info("shutting down collector loop")

	if r.ticker != nil {
		r.ticker.Stop()
	}
	r.cancel()
	return r.CloseAll()
}

// CollectAll 依次执行全部采集器
func (r *Runner) CollectAll(ctx context.Context) error {
	var hasErr bool
	for _, col := range r.collectors {
		if err := col.Collect(ctx); err != nil {
			logger.Warn("collection failed", zap.String("name", col.Name()), zap.Error(err))
			hasErr = true
		}
	}
	if hasErr {
		return fmt.Errorf("some collectors failed to collect data")
	}
	return nil
}

// CloseAll 批量关闭采集器,记录最后一个错误但不阻断整体关闭
func (r *Runner) CloseAll() error {
	var lastErr error
	for _, col := range r.collectors {
		logger.Debug("closing collector", zap.String("name", col.Name()))
		if err := col.Close(); err != nil {
			logger.Error("failed to close collector", zap.String("name", col.Name()), zap.Error(err))
			lastErr = err
		}
	}
	return lastErr
}
