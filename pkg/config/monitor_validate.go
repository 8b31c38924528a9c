package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// Validate HTTP 服务配置校验。
func (h *ServerConfig) Validate() error {
	if err := valid.Struct(h); err != nil {
		return err
	}
	if h.Addr == "" {
		return errors.New("server.addr cannot be empty")
	}
	// 用 net 包解析地址,验证 ":port" 或 "ip:port" 格式
	if _, err := net.ResolveTCPAddr("tcp", h.Addr); err != nil {
		return fmt.Errorf("server.addr format invalid (expected :port or ip:port), got %s: %w", h.Addr, err)
	}
	return nil
}

// Validate 采集配置校验。
func (m *MonitorConfig) Validate() error {
	if err := valid.Struct(m); err != nil {
		return err
	}
	if m.Interval < time.Second || m.Interval > 3600*time.Second {
		return fmt.Errorf("monitor.interval must be between 1s and 3600s, got %s", m.Interval)
	}
	return m.Collectors.validate()
}

// validate 至少启用一个采集器,否则进程没有存在意义。
func (col *CollectorConfig) validate() error {
	if err := valid.Struct(col); err != nil {
		return err
	}
	if !col.CPU.Enable && !col.Mem.Enable && !col.Disk.Enable && !col.Net.Enable {
		return errors.New("at least one collector must be enabled (cpu/mem/disk/net)")
	}
	if err := col.Disk.Validate(); err != nil {
		return err
	}
	return col.Net.Validate()
}

// Validate 磁盘忽略列表:条目非空、必须是绝对路径、无重复。未启用时跳过。
func (col *DiskCollectorConfig) Validate() error {
	if !col.Enable {
		return nil
	}
	seen := map[string]bool{}
	for _, mp := range col.IgnoreMountpoints {
		if strings.TrimSpace(mp) == "" {
			return errors.New("disk.ignore_mountpoints cannot contain empty string")
		}
		if !strings.HasPrefix(mp, "/") {
			return fmt.Errorf("disk.ignore_mountpoints: %q must be an absolute path", mp)
		}
		if seen[mp] {
			return fmt.Errorf("disk.ignore_mountpoints contains duplicate entry: %s", mp)
		}
		seen[mp] = true
	}
	return nil
}

// Validate 网卡忽略列表:条目非空、不含空白和路径分隔符、无重复。未启用时跳过。
// 常见接口名形如 eth0,enp0s3,lo,docker0。
func (col *NetCollectorConfig) Validate() error {
	if !col.Enable {
		return nil
	}
	seen := map[string]bool{}
	for _, iface := range col.IgnoreInterfaces {
		if strings.TrimSpace(iface) == "" {
			return errors.New("net.ignore_interfaces cannot contain empty string")
		}
		if strings.ContainsAny(iface, " \t\r\n") {
			return fmt.Errorf("net.ignore_interfaces: interface %q contains whitespace", iface)
		}
		if strings.ContainsAny(iface, `/\`) {
			return fmt.Errorf(`net.ignore_interfaces: interface %q must not contain '/' or '\'`, iface)
		}
		if seen[iface] {
			return fmt.Errorf("net.ignore_interfaces contains duplicate entry: %q", iface)
		}
		seen[iface] = true
	}
	return nil
}
