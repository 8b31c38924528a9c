package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var valid = validator.New()

// Config 顶层配置,聚合 HTTP 服务、指标采集与日志三块。
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server" comment:"HTTP服务配置"`
	Monitor MonitorConfig `yaml:"monitor" mapstructure:"monitor" comment:"指标采集配置"`
	Log     LogConfig     `yaml:"log" mapstructure:"log" comment:"日志配置"`
}

// ServerConfig HTTP 服务配置,超时统一用 time.Duration,支持 "30s" 写法。
type ServerConfig struct {
	Addr         string        `yaml:"addr" mapstructure:"addr" env:"SERVER_ADDR" validate:"required,hostname_port" comment:"HTTP监听地址(格式 ip:port)"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout" env:"SERVER_READ_TIMEOUT" validate:"required,gt=0" comment:"读取超时(如30s)"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout" env:"SERVER_WRITE_TIMEOUT" validate:"required,gt=0" comment:"写入超时(如30s)"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" validate:"required,gt=0" comment:"空闲连接超时(如60s)"`
}

// MonitorConfig 采集全局配置。
type MonitorConfig struct {
	Interval   time.Duration   `yaml:"interval" mapstructure:"interval" env:"MONITOR_INTERVAL" validate:"required,gt=0" comment:"采集间隔(如10s)"`
	Collectors CollectorConfig `yaml:"collectors" mapstructure:"collectors" comment:"各采集器开关与选项"`
}

// CollectorConfig 各系统采集器配置。
type CollectorConfig struct {
	CPU  CPUCollectorConfig  `yaml:"cpu" mapstructure:"cpu" comment:"CPU使用率与负载"`
	Mem  MemCollectorConfig  `yaml:"mem" mapstructure:"mem" comment:"内存用量"`
	Disk DiskCollectorConfig `yaml:"disk" mapstructure:"disk" comment:"磁盘分区用量"`
	Net  NetCollectorConfig  `yaml:"net" mapstructure:"net" comment:"网卡收发累计量"`
}

// CPUCollectorConfig CPU 采集器配置。
type CPUCollectorConfig struct {
	Enable  bool `yaml:"enable" mapstructure:"enable" env:"MONITOR_COLLECTORS_CPU_ENABLE" comment:"是否启用CPU采集"`
	PerCore bool `yaml:"per_core" mapstructure:"per_core" env:"MONITOR_COLLECTORS_CPU_PER_CORE" comment:"是否按核心输出使用率"`
}

// MemCollectorConfig 内存采集器配置。
type MemCollectorConfig struct {
	Enable bool `yaml:"enable" mapstructure:"enable" env:"MONITOR_COLLECTORS_MEM_ENABLE" comment:"是否启用内存采集"`
}

// DiskCollectorConfig 磁盘采集器配置。
type DiskCollectorConfig struct {
	Enable            bool     `yaml:"enable" mapstructure:"enable" env:"MONITOR_COLLECTORS_DISK_ENABLE" comment:"是否启用磁盘采集"`
	IgnoreMountpoints []string `yaml:"ignore_mountpoints" mapstructure:"ignore_mountpoints" env:"MONITOR_COLLECTORS_DISK_IGNORE_MOUNTPOINTS" comment:"忽略的挂载点列表(如 /boot)"`
}

// NetCollectorConfig 网络采集器配置。
type NetCollectorConfig struct {
	Enable           bool     `yaml:"enable" mapstructure:"enable" env:"MONITOR_COLLECTORS_NET_ENABLE" comment:"是否启用网络采集"`
	IgnoreInterfaces []string `yaml:"ignore_interfaces" mapstructure:"ignore_interfaces" env:"MONITOR_COLLECTORS_NET_IGNORE_INTERFACES" comment:"忽略的网卡列表(如 lo)"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level   string `yaml:"level" mapstructure:"level" env:"LOG_LEVEL" validate:"required,oneof=debug info warn error" comment:"日志级别"`
	Format  string `yaml:"format" mapstructure:"format" env:"LOG_FORMAT" validate:"required,oneof=json console" comment:"控制台输出格式(json/console)"`
	Path    string `yaml:"path" mapstructure:"path" env:"LOG_PATH" validate:"required" comment:"日志文件目录"`
	MaxSize int    `yaml:"max_size" mapstructure:"max_size" env:"LOG_MAX_SIZE" validate:"required,gt=0" comment:"单个日志文件最大MB"`
	MaxAge  int    `yaml:"max_age" mapstructure:"max_age" env:"LOG_MAX_AGE" validate:"required,gt=0" comment:"日志保存天数"`
}

// NewDefaultConfig 创建默认配置。默认启用 CPU 与内存两个采集器,
// 保证不带任何参数也能通过校验直接跑起来。
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         "0.0.0.0:9100",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Monitor: MonitorConfig{
			Interval: 10 * time.Second,
			Collectors: CollectorConfig{
				CPU: CPUCollectorConfig{
					Enable:  true,
					PerCore: false,
				},
				Mem: MemCollectorConfig{
					Enable: true,
				},
				Disk: DiskCollectorConfig{
					Enable:            false,
					IgnoreMountpoints: []string{},
				},
				Net: NetCollectorConfig{
					Enable:           false,
					IgnoreInterfaces: []string{"lo"},
				},
			},
		},
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Path:    "./logs",
			MaxSize: 100,
			MaxAge:  7,
		},
	}
}

// LoadConfigWithCli 按 Flags + YAML + ENV 的优先级加载配置。
// 未指定 --config 时在默认路径查找 agent.yaml,找不到不算错误;
// 显式给出的配置文件读不到则直接失败。
func LoadConfigWithCli(cmd *cobra.Command) (*Config, error) {
	cfg := NewDefaultConfig()
	v := viper.New()

	// 1. 绑定 Cobra Flags → Viper
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	// 2. 解析配置文件
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("agent")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// 3. 绑定环境变量(SERVER_ADDR → server.addr)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. 反序列化到结构体,支持 time.Duration 与逗号分隔的列表
	decoderConfig := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// 5. 校验
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate 配置校验,逐块下沉。
func (c *Config) Validate() error {
	if err := valid.Struct(c); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Monitor.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}
