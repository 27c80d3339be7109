package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	SeedOnly bool `mapstructure:"-"` // 仅写入默认种子快照后退出
}

type ServerConfig struct {
	Port string
	Mode string
}

// SnapshotConfig 进度快照文件配置
type SnapshotConfig struct {
	Path         string        `mapstructure:"path"`
	AutoSave     bool          `mapstructure:"auto_save"`
	SaveInterval time.Duration `mapstructure:"save_interval_minutes"`
}

// ChatConfig 学习助手聊天配置
type ChatConfig struct {
	TypingDelayMs int `mapstructure:"typing_delay_ms"`
	MaxHistory    int `mapstructure:"max_history"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LPD")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Snapshot
	viper.BindEnv("snapshot.path", "SNAPSHOT_PATH")
	viper.BindEnv("snapshot.auto_save", "SNAPSHOT_AUTO_SAVE")

	// Chat
	viper.BindEnv("chat.typing_delay_ms", "CHAT_TYPING_DELAY_MS")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("snapshot.path", "data/progress.json")
	viper.SetDefault("snapshot.auto_save", true)
	viper.SetDefault("snapshot.save_interval_minutes", 5)
	viper.SetDefault("chat.typing_delay_ms", 0)
	viper.SetDefault("chat.max_history", 500)
	viper.SetDefault("rate_limit.max_requests", 100000)
	viper.SetDefault("rate_limit.window_minutes", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Snapshot.SaveInterval = cfg.Snapshot.SaveInterval * time.Minute

	// 打字延迟只是界面节奏，不允许配置成阻塞级别的时长
	if cfg.Chat.TypingDelayMs < 0 || cfg.Chat.TypingDelayMs > 3000 {
		return nil, fmt.Errorf("chat.typing_delay_ms must be within [0, 3000], got %d", cfg.Chat.TypingDelayMs)
	}

	if dir := filepath.Dir(cfg.Snapshot.Path); dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			os.MkdirAll(dir, 0755)
		}
	}

	return &cfg, nil
}
