package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Log       LogConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
	Redis     RedisConfig
	Export    ExportConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SchedulerConfig tunes the assignment engine and the run store.
type SchedulerConfig struct {
	RunTTL               time.Duration
	MaxSwapPasses        int
	MaxBalanceIterations int
}

// RedisConfig enables the Redis-backed run store. When disabled, runs live
// in process memory.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// ExportConfig carries schedule export defaults. An empty ArchiveDir
// disables the on-disk export archive.
type ExportConfig struct {
	DefaultTeamName string
	ArchiveDir      string
	ArchiveWorkers  int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Scheduler = SchedulerConfig{
		RunTTL:               parseDuration(v.GetString("SCHEDULER_RUN_TTL"), 24*time.Hour),
		MaxSwapPasses:        v.GetInt("SCHEDULER_MAX_SWAP_PASSES"),
		MaxBalanceIterations: v.GetInt("SCHEDULER_MAX_BALANCE_ITERATIONS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("ENABLE_RUN_CACHE"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Export = ExportConfig{
		DefaultTeamName: v.GetString("EXPORT_TEAM_NAME"),
		ArchiveDir:      v.GetString("EXPORT_ARCHIVE_DIR"),
		ArchiveWorkers:  v.GetInt("EXPORT_ARCHIVE_WORKERS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ALLOWED_ORIGINS", "")

	v.SetDefault("SCHEDULER_RUN_TTL", "24h")
	v.SetDefault("SCHEDULER_MAX_SWAP_PASSES", 100)
	v.SetDefault("SCHEDULER_MAX_BALANCE_ITERATIONS", 500)

	v.SetDefault("ENABLE_RUN_CACHE", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("EXPORT_TEAM_NAME", "Duty Roster")
	v.SetDefault("EXPORT_ARCHIVE_DIR", "")
	v.SetDefault("EXPORT_ARCHIVE_WORKERS", 2)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
