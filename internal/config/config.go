// Package config loads client configuration from .env, an optional
// config.yaml and GOOGLEAPI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "GOOGLEAPI"

type Config struct {
	APIKey      string      `mapstructure:"api_key"`
	Env         string      `mapstructure:"env" validate:"oneof=development production test"`
	LogLevel    string      `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	HTTP        HTTPConfig  `mapstructure:"http"`
	DatabaseURL string      `mapstructure:"database_url" validate:"omitempty,url"`
	Redis       RedisConfig `mapstructure:"redis"`
}

type HTTPConfig struct {
	Timeout       time.Duration `mapstructure:"timeout" validate:"gte=0"`
	NoHandler     bool          `mapstructure:"no_handler"`
	MaxAttempts   int           `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	Backoff       time.Duration `mapstructure:"backoff" validate:"gt=0"`
	RatePerSecond float64       `mapstructure:"rate_per_second" validate:"gte=0"`
	Burst         int           `mapstructure:"burst" validate:"gte=1"`
	BaseURL       string        `mapstructure:"base_url" validate:"omitempty,url"`
}

type RedisConfig struct {
	Addr       string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	DailyQuota int64  `mapstructure:"daily_quota" validate:"gte=0"`
}

// Load reads .env (if present), then config.yaml (if present), then the
// environment. GOOGLEAPI_HTTP_TIMEOUT overrides http.timeout and so on.
func Load() (*Config, error) {
	// Missing .env is fine; the real environment still applies.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("env", "production")
	v.SetDefault("log_level", "")
	v.SetDefault("api_key", "")
	v.SetDefault("database_url", "")
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.no_handler", false)
	v.SetDefault("http.max_attempts", 4)
	v.SetDefault("http.backoff", 200*time.Millisecond)
	v.SetDefault("http.rate_per_second", 0)
	v.SetDefault("http.burst", 1)
	v.SetDefault("http.base_url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.daily_quota", 0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("config validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// QuotaEnabled reports whether a Redis daily quota is configured.
func (c *Config) QuotaEnabled() bool {
	return c.Redis.Addr != "" && c.Redis.DailyQuota > 0
}

// Get returns the environment variable key, or fallback when it is unset
// or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
