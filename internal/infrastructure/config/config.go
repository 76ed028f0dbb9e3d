package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Algolia   AlgoliaConfig   `mapstructure:"algolia"`
	Pexels    PexelsConfig    `mapstructure:"pexels"`
	AI        AIConfig        `mapstructure:"ai"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Sync      SyncConfig      `mapstructure:"sync"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	LogLevel  string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodySize  int64         `mapstructure:"max_body_size"`
}

// DatabaseConfig 資料庫配置
type DatabaseConfig struct {
	URL          string `mapstructure:"url"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// AlgoliaConfig 搜尋索引配置，AppID 或 AdminKey 缺一即停用同步
type AlgoliaConfig struct {
	AppID     string `mapstructure:"app_id"`
	AdminKey  string `mapstructure:"admin_key"`
	IndexName string `mapstructure:"index_name"`
}

// Enabled 是否已設定搜尋索引
func (c AlgoliaConfig) Enabled() bool {
	return c.AppID != "" && c.AdminKey != ""
}

// PexelsConfig 圖片搜尋配置，APIKey 為空時退回佔位圖
type PexelsConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// AIConfig AI 配置。Provider 可選 openrouter 或 gemini。
type AIConfig struct {
	Provider   string        `mapstructure:"provider"`
	APIKey     string        `mapstructure:"api_key"`
	Model      string        `mapstructure:"model"`
	MaxTokens  int           `mapstructure:"max_tokens"`
	Timeout    time.Duration `mapstructure:"timeout"`
	GeminiKey  string        `mapstructure:"gemini_key"`
	GeminiName string        `mapstructure:"gemini_model"`
}

// CacheConfig AI 回應快取配置。Backend 可選 memory 或 redis。
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
}

// SyncConfig 索引同步工作隊列設定
type SyncConfig struct {
	QueueSize int `mapstructure:"queue_size"`
	BatchSize int `mapstructure:"batch_size"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// .env 不存在時沿用行程環境變數
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("algolia.app_id", "ALGOLIA_APP_ID")
	viper.BindEnv("algolia.admin_key", "ALGOLIA_ADMIN_KEY")
	viper.BindEnv("algolia.index_name", "ALGOLIA_INDEX_NAME")
	viper.BindEnv("pexels.api_key", "PEXELS_API_KEY")
	viper.BindEnv("ai.provider", "AI_PROVIDER")
	viper.BindEnv("ai.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("ai.model", "OPENROUTER_MODEL")
	viper.BindEnv("ai.max_tokens", "MODEL_MAX_TOKENS")
	viper.BindEnv("ai.gemini_key", "GEMINI_API_KEY")
	viper.BindEnv("ai.gemini_model", "GEMINI_MODEL")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.backend", "CACHE_BACKEND")
	viper.BindEnv("cache.redis_addr", "REDIS_ADDR")
	viper.BindEnv("cache.redis_password", "REDIS_PASSWORD")
	viper.BindEnv("cache.redis_db", "REDIS_DB")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-catalog")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.max_body_size", 1*1024*1024) // 1MB

	// 資料庫設定
	viper.SetDefault("database.url", "postgres://localhost:5432/recipes?sslmode=disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)

	// 搜尋索引設定
	viper.SetDefault("algolia.index_name", "recipes")

	// AI 設定
	viper.SetDefault("ai.provider", "openrouter")
	viper.SetDefault("ai.model", "qwen/qwen2.5-vl-72b-instruct:free")
	viper.SetDefault("ai.max_tokens", 4096)
	viper.SetDefault("ai.timeout", "60s")
	viper.SetDefault("ai.gemini_model", "gemini-1.5-flash")

	// 快取設定
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")
	viper.SetDefault("cache.redis_addr", "localhost:6379")
	viper.SetDefault("cache.redis_db", 0)

	// 同步隊列設定
	viper.SetDefault("sync.queue_size", 100)
	viper.SetDefault("sync.batch_size", 100)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Database.URL == "" {
		return fmt.Errorf("database url is required")
	}

	switch config.AI.Provider {
	case "openrouter", "gemini":
	default:
		return fmt.Errorf("unknown ai provider: %s", config.AI.Provider)
	}

	if config.Cache.Enabled {
		switch config.Cache.Backend {
		case "memory":
			if config.Cache.MaxSize <= 0 {
				return fmt.Errorf("invalid cache max size")
			}
		case "redis":
			if config.Cache.RedisAddr == "" {
				return fmt.Errorf("redis addr is required")
			}
		default:
			return fmt.Errorf("unknown cache backend: %s", config.Cache.Backend)
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	if config.Sync.QueueSize <= 0 {
		return fmt.Errorf("invalid sync queue size")
	}
	if config.Sync.BatchSize <= 0 {
		return fmt.Errorf("invalid sync batch size")
	}

	return nil
}
