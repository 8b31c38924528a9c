package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Validate 日志配置校验。tag 校验之外再确认级别合法、目录可用。
func (l *LogConfig) Validate() error {
	if err := valid.Struct(l); err != nil {
		return fmt.Errorf("log config invalid: %w", err)
	}

	// 级别必须是 zap 支持且本项目开放的取值
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(l.Level)] {
		return fmt.Errorf("log.level invalid (valid: debug/info/warn/error), got %s", l.Level)
	}

	if l.Format != "json" && l.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console', got %s", l.Format)
	}

	// 日志目录解析为绝对路径并确保存在可写
	abs, err := filepath.Abs(l.Path)
	if err != nil {
		return fmt.Errorf("log.path cannot be resolved, got %s: %w", l.Path, err)
	}
	if err := ensureDir(abs); err != nil {
		return fmt.Errorf("log.path is not a writable directory, got %s: %w", l.Path, err)
	}
	return nil
}

func ensureDir(path string) error {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	if err != nil {
		return err
	}
	if !stat.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
