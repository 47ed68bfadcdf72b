package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Storage    StorageConfig
	Tracing    TracingConfig `mapstructure:"tracing"`
	Redis      RedisConfig
	AI         AIConfig
	Placement  PlacementConfig  `mapstructure:"placement"`
	Checkpoint CheckpointConfig `mapstructure:"checkpoint"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`

	// Runtime flags (set from the command line, not the config file).
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// AIConfig configures the external generative-text provider. An empty APIKey
// disables AI generation entirely; every caller falls back to static content.
type AIConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	APIKey            string        `mapstructure:"api_key"`
	Model             string        `mapstructure:"model"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl_seconds"`
	RoadmapCacheTTL   time.Duration `mapstructure:"roadmap_cache_ttl_seconds"`
	RequestTimeoutSec int           `mapstructure:"request_timeout_seconds"`
}

// BandBound maps an inclusive upper percentage bound to a CEFR level.
type BandBound struct {
	Max   float64 `mapstructure:"max"`
	Level string  `mapstructure:"level"`
}

// PlacementConfig holds the percentage-to-CEFR band table. Bounds are closed
// on the upper end: a percentage equal to Max still maps to that band.
type PlacementConfig struct {
	Bands []BandBound `mapstructure:"bands"`
}

// CheckpointConfig supplies the criteria written into modules whose generator
// omitted them. Evaluation itself never assumes defaults.
type CheckpointConfig struct {
	DefaultAccuracyThreshold float64 `mapstructure:"default_accuracy_threshold"`
	DefaultMinTasks          int     `mapstructure:"default_min_tasks_completed"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DefaultBands is the band table from the placement-test design:
// 0-20 A0, 21-35 A1, 36-50 A2, 51-65 B1, 66-80 B2, 81-90 C1, 91-100 C2.
var DefaultBands = []BandBound{
	{Max: 20, Level: "A0"},
	{Max: 35, Level: "A1"},
	{Max: 50, Level: "A2"},
	{Max: 65, Level: "B1"},
	{Max: 80, Level: "B2"},
	{Max: 90, Level: "C1"},
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LINGUA")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI provider
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("ai.cache_ttl_seconds", 3600)
	viper.SetDefault("ai.roadmap_cache_ttl_seconds", 86400)
	viper.SetDefault("ai.request_timeout_seconds", 60)
	viper.SetDefault("checkpoint.default_accuracy_threshold", 0.85)
	viper.SetDefault("checkpoint.default_min_tasks_completed", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour
	cfg.AI.CacheTTL = cfg.AI.CacheTTL * time.Second
	cfg.AI.RoadmapCacheTTL = cfg.AI.RoadmapCacheTTL * time.Second

	if len(cfg.Placement.Bands) == 0 {
		cfg.Placement.Bands = DefaultBands
	} else if !sort.SliceIsSorted(cfg.Placement.Bands, func(i, j int) bool {
		return cfg.Placement.Bands[i].Max < cfg.Placement.Bands[j].Max
	}) {
		return nil, fmt.Errorf("placement.bands must be sorted by ascending max percentage")
	}

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
