package agent

import (
	"github.com/spf13/cobra"
)

func initMonitorFlags(root *cobra.Command) {
	f := root.PersistentFlags()

	f.Duration("monitor.interval", defaultCfg.Monitor.Interval, "采集间隔")

	f.Bool("monitor.collectors.cpu.enable", defaultCfg.Monitor.Collectors.CPU.Enable, "启用CPU采集")
	f.Bool("monitor.collectors.cpu.per_core", defaultCfg.Monitor.Collectors.CPU.PerCore, "按核心输出CPU使用率")

	f.Bool("monitor.collectors.mem.enable", defaultCfg.Monitor.Collectors.Mem.Enable, "启用内存采集")

	f.Bool("monitor.collectors.disk.enable", defaultCfg.Monitor.Collectors.Disk.Enable, "启用磁盘采集")
	f.StringSlice("monitor.collectors.disk.ignore_mountpoints", defaultCfg.Monitor.Collectors.Disk.IgnoreMountpoints, "忽略的挂载点")

	f.Bool("monitor.collectors.net.enable", defaultCfg.Monitor.Collectors.Net.Enable, "启用网络采集")
	f.StringSlice("monitor.collectors.net.ignore_interfaces", defaultCfg.Monitor.Collectors.Net.IgnoreInterfaces, "忽略的网卡")
}
