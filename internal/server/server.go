// Package server 提供HTTP服务器核心功能,包含指标暴露、健康检查端点、
// 优雅关闭机制及系统信号监听能力。
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tarantool/prometheus"
	"github.com/tarantool/prometheus/pkg/config"
	"github.com/tarantool/prometheus/pkg/logger"
)

// shutdownTimeout 优雅关闭超时时间,避免关闭流程无限阻塞
const shutdownTimeout = 5 * time.Second

const indexHTML = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
	<meta charset="UTF-8">
	<title>Metrics Agent</title>
	<style>
		body { font-family: Arial, sans-serif; margin: 40px; }
		h1 { color: #333; }
		a { display: block; margin: 8px 0; font-size: 18px; }
	</style>
</head>
<body>
	<h1>Metrics Agent</h1>
	<p>Service is running.</p>
	<h2>Available Endpoints:</h2>
	<a href="/health">/health - 健康检查</a>
	<a href="/metrics">/metrics - Prometheus 指标暴露</a>
</body>
</html>
`

// Server HTTP服务实例,封装监听配置和指标注册表
type Server struct {
	cfg      config.ServerConfig
	server   *http.Server
	registry *prometheus.Registry
}

// statusWriter 包装http.ResponseWriter,捕获响应状态码
type statusWriter struct {
	http.ResponseWriter
	status int
}

// WriteHeader 记录状态码后转调原生方法
func (w *statusWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// NewServer 创建HTTP服务实例
// 路由: / 首页导航, /health 健康检查, /metrics 指标暴露
// 超时参数全部来自配置
func NewServer(cfg config.ServerConfig, registry *prometheus.Registry) *Server {
	srv := &Server{
		cfg:      cfg,
		registry: registry,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(indexHTML))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/metrics", registry.Handler())

	srv.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.logMiddleware(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return srv
}

// logMiddleware 统一请求日志记录
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Start 启动HTTP服务(非阻塞,监听错误在子goroutine中记录)
func (s *Server) Start() error {
	logger.Info("starting HTTP server",
		zap.String("listen_addr", s.cfg.Addr),
		zap.Duration("read_timeout", s.cfg.ReadTimeout),
		zap.Duration("write_timeout", s.cfg.WriteTimeout),
		zap.Duration("idle_timeout", s.cfg.IdleTimeout),
	)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err), zap.String("listen_addr", s.cfg.Addr))
		}
	}()
	return nil
}

// Shutdown 优雅关闭HTTP服务,超时视为关闭完成
func (s *Server) Shutdown() error {
	logger.Info("starting graceful shutdown of HTTP server", zap.String("listen_addr", s.cfg.Addr))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.Warn("shutdown timeout exceeded")
			return nil
		}
		logger.Error("HTTP server shutdown failed", zap.Error(err))
		return err
	}
	logger.Info("HTTP server shutdown successfully")
	return nil
}

// WaitForShutdown 监听SIGINT/SIGTERM,收到信号后执行自定义关闭逻辑
// 关闭函数异步执行,超时后不再等待
func WaitForShutdown(shutdownFunc func() error) {
	if shutdownFunc == nil {
		logger.Error("shutdownFunc is nil, cannot execute shutdown")
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	logger.Info("service is running, waiting for shutdown signal (SIGINT/SIGTERM)...")

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErrChan := make(chan error, 1)
	go func() {
		shutdownErrChan <- shutdownFunc()
		close(shutdownErrChan)
	}()

	select {
	case err := <-shutdownErrChan:
		if err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		} else {
			logger.Info("graceful shutdown completed successfully")
		}
	case <-ctx.Done():
		logger.Error("graceful shutdown timed out", zap.Error(ctx.Err()))
	}

	// 忽略stdout句柄的同步错误
	if err := logger.Sync(); err != nil {
		if err.Error() != "sync /dev/stdout: bad file descriptor" {
			logger.Warn("logger sync failed", zap.Error(err))
		}
	}

	logger.Info("shutdown workflow finished, program exiting")
}
