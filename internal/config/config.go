// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找和环境变量覆盖
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
	"github.com/joho/godotenv"   // .env 文件加载
)

// 环境变量名
const (
	EnvConfigPath = "MENSAJERIA_CONFIG" // 指定配置文件路径
	EnvMode       = "MENSAJERIA_ENV"    // "test" 时使用测试库
	EnvPort       = "MENSAJERIA_PORT"   // 覆盖监听端口
	ModeTest      = "test"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称
	Host    string `toml:"host"`    // 监听地址
	Port    int    `toml:"port"`    // 监听端口
	Mode    string `toml:"mode"`    // gin 模式：debug / release / test
}

// StoreConfig 关系型存储配置
type StoreConfig struct {
	Driver       string `toml:"driver"`       // sqlite / mysql / postgres
	DSN          string `toml:"dsn"`          // 生产库连接串（sqlite 为文件路径）
	TestDSN      string `toml:"testDsn"`      // 测试库连接串
	MaxOpenConns int    `toml:"maxOpenConns"` // 连接池上限，0 表示不限；sqlite 固定为 1
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// KafkaConfig 消息事件投递配置
type KafkaConfig struct {
	MessageMode string        `toml:"messageMode"` // "channel" 或 "kafka"
	HostPort    string        `toml:"hostPort"`    // Kafka 地址，如 "localhost:9092"
	ChatTopic   string        `toml:"chatTopic"`   // 消息事件主题
	Timeout     time.Duration `toml:"timeout"`     // 写超时（秒）
}

// SecurityConfig HTTP 安全相关配置
type SecurityConfig struct {
	TLSRedirect  bool     `toml:"tlsRedirect"`  // 是否将 HTTP 重定向到 HTTPS
	AllowOrigins []string `toml:"allowOrigins"` // CORS 允许的来源
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig     `toml:"mainConfig"`
	StoreConfig    `toml:"storeConfig"`
	LogConfig      `toml:"logConfig"`
	KafkaConfig    `toml:"kafkaConfig"`
	SecurityConfig `toml:"securityConfig"`
}

// config 全局配置单例，延迟加载
var config *Config

// Default 返回内置默认配置，配置文件中缺失的字段保持这些值
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "mensajeria_server",
			Host:    "0.0.0.0",
			Port:    5000,
			Mode:    "debug",
		},
		StoreConfig: StoreConfig{
			Driver:       "sqlite",
			DSN:          "mensajeria.db",
			TestDSN:      "mensajeria_test.db",
			MaxOpenConns: 1,
		},
		LogConfig: LogConfig{
			LogPath: "logs",
			Level:   "info",
		},
		KafkaConfig: KafkaConfig{
			MessageMode: "channel",
			HostPort:    "localhost:9092",
			ChatTopic:   "mensajeria.messages",
			Timeout:     1,
		},
		SecurityConfig: SecurityConfig{
			AllowOrigins: []string{"*"},
		},
	}
}

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func LoadConfig(cfg *Config) error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = []string{p}
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, cfg); err == nil {
			return nil
		}
	}
	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// applyEnv 用环境变量覆盖配置文件中的值
func applyEnv(cfg *Config) {
	if p := os.Getenv(EnvPort); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.MainConfig.Port = port
		}
	}
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会加载 .env 与配置文件，找不到配置文件时使用默认值
func GetConfig() *Config {
	if config == nil {
		_ = godotenv.Load() // .env 可选
		config = Default()
		_ = LoadConfig(config)
		applyEnv(config)
	}
	return config
}

// IsTestMode 是否运行在测试存储上
func IsTestMode() bool {
	return os.Getenv(EnvMode) == ModeTest
}

// ActiveDSN 根据运行环境选择生产库或测试库
func (s StoreConfig) ActiveDSN() string {
	if IsTestMode() && s.TestDSN != "" {
		return s.TestDSN
	}
	return s.DSN
}
