// Package config loads the application configuration from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"skillroots/internal/platform/db"
)

// Config is the full application configuration.
type Config struct {
	HTTPAddr string
	LogLevel slog.Level

	DB     db.Config
	Redis  RedisConfig
	JWT    JWTConfig
	Gemini GeminiConfig

	// PaymentDelay is the simulated gateway delay before an order is committed.
	PaymentDelay time.Duration
	// TranslationCacheTTL is how long translated UI tables stay in Redis.
	TranslationCacheTTL time.Duration
	// SessionTTL is the lifetime of a login session.
	SessionTTL time.Duration
}

// RedisConfig holds the Redis connection settings. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// JWTConfig holds the token signing settings.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// GeminiConfig holds the generative AI settings. An empty APIKey disables AI features.
type GeminiConfig struct {
	APIKey         string
	Model          string
	Timeout        time.Duration
	CallsPerMinute int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_DRIVER", db.DriverSQLite)
	v.SetDefault("DB_PATH", db.DefaultSQLitePath)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_CONNECT_TIMEOUT", "60s")

	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("SESSION_TTL", "168h")

	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TIMEOUT", "30s")
	v.SetDefault("GEMINI_CALLS_PER_MINUTE", 30)

	v.SetDefault("PAYMENT_DELAY", "3s")
	v.SetDefault("TRANSLATION_CACHE_TTL", "24h")
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTPAddr: v.GetString("HTTP_ADDR"),
		LogLevel: parseLevel(v.GetString("LOG_LEVEL")),
		DB: db.Config{
			Driver:         strings.ToLower(v.GetString("DB_DRIVER")),
			Path:           v.GetString("DB_PATH"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			InstanceName:   v.GetString("INSTANCE_CONNECTION_NAME"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetDuration("JWT_EXPIRATION"),
		},
		Gemini: GeminiConfig{
			APIKey:         v.GetString("GEMINI_API_KEY"),
			Model:          v.GetString("GEMINI_MODEL"),
			Timeout:        v.GetDuration("GEMINI_TIMEOUT"),
			CallsPerMinute: v.GetInt("GEMINI_CALLS_PER_MINUTE"),
		},
		PaymentDelay:        v.GetDuration("PAYMENT_DELAY"),
		TranslationCacheTTL: v.GetDuration("TRANSLATION_CACHE_TTL"),
		SessionTTL:          v.GetDuration("SESSION_TTL"),
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
