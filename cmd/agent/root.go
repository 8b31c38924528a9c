package agent

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarantool/prometheus"
	"github.com/tarantool/prometheus/internal/server"
	"github.com/tarantool/prometheus/pkg/collector"
	"github.com/tarantool/prometheus/pkg/config"
	"github.com/tarantool/prometheus/pkg/logger"
	"github.com/tarantool/prometheus/pkg/util"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "metrics-agent",
	Short:        "System metrics agent with Prometheus text exposition (CPU/memory/disk/network)",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfigWithCli(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return runAgent(cmd.Context(), cfg)
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径(默认搜索 ./configs/agent.yaml, ./agent.yaml)")
	// 注册分组 flag
	initServerFlags(rootCmd)
	initMonitorFlags(rootCmd)
	initLogFlags(rootCmd)
}

func runAgent(ctx context.Context, cfg *config.Config) error {
	// 1. 初始化日志
	if err := logger.Init(cfg.Log); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	util.PrintBanner("metrics agent", "cyan")

	// 2. 构建注册表与指标句柄
	registry := prometheus.NewRegistry()
	metrics := collector.NewMetrics(registry)

	// 3. 按配置注册采集器并启动采集循环
	runner := collector.NewRunner(cfg.Monitor.Interval)
	if _, err := collector.RegisterCollectors(runner, cfg.Monitor.Collectors, metrics); err != nil {
		return fmt.Errorf("register collectors: %w", err)
	}
	if err := runner.Start(ctx); err != nil {
		return fmt.Errorf("start collectors: %w", err)
	}

	// 4. 启动HTTP服务暴露指标
	httpServer := server.NewServer(cfg.Server, registry)
	if err := httpServer.Start(); err != nil {
		return fmt.Errorf("start HTTP server: %w", err)
	}

	// 5. 等待退出信号,关闭顺序:HTTP服务 → 采集器
	server.WaitForShutdown(func() error {
		httpErr := httpServer.Shutdown()
		runErr := runner.Shutdown(context.Background())
		if httpErr != nil || runErr != nil {
			return fmt.Errorf("shutdown errors: http=%v, collectors=%v", httpErr, runErr)
		}
		logger.Info("all services shutdown successfully")
		return nil
	})
	return nil
}
