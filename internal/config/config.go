package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrSeedInProduction = errors.New("generator.seed must not be set in production")

type Config struct {
	Env       string          `mapstructure:"env"`
	Server    ServerConfig    `mapstructure:"server"`
	Generator GeneratorConfig `mapstructure:"generator"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// GeneratorConfig holds the defaults applied to requests that omit fields,
// and the random source selection.
type GeneratorConfig struct {
	DefaultLength int    `mapstructure:"default_length"`
	Letters       bool   `mapstructure:"letters"`
	Numbers       bool   `mapstructure:"numbers"`
	Symbols       bool   `mapstructure:"symbols"`
	Source        string `mapstructure:"source"`
	Seed          uint64 `mapstructure:"seed"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	RedisAddr         string  `mapstructure:"redis_addr"`
	RedisPassword     string  `mapstructure:"redis_password"`
	RedisDB           int     `mapstructure:"redis_db"`
}

// RequestsPerMinute converts the per-second rate for window-based limiters.
func (c RateLimitConfig) RequestsPerMinute() int {
	return int(c.RequestsPerSecond * 60)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from an optional YAML file and the environment.
// CONFIG_PATH selects the file; otherwise config.yaml is searched for in
// ./configs and the working directory.
func Load() (*Config, error) {
	v := viper.New()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("passgen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings that are unsafe for the current environment.
func (c *Config) Validate() error {
	if c.IsProduction() && c.Generator.Seed != 0 {
		return ErrSeedInProduction
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	// Server
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Generator
	v.SetDefault("generator.default_length", 12)
	v.SetDefault("generator.letters", true)
	v.SetDefault("generator.numbers", true)
	v.SetDefault("generator.symbols", false)
	v.SetDefault("generator.source", "math")
	v.SetDefault("generator.seed", 0)

	// Rate limit
	v.SetDefault("rate_limit.requests_per_second", 5)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("rate_limit.redis_addr", "")
	v.SetDefault("rate_limit.redis_password", "")
	v.SetDefault("rate_limit.redis_db", 0)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("env", "ENV")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("logging.level", "LOG_LEVEL")
	v.BindEnv("rate_limit.redis_addr", "REDIS_ADDR")
	v.BindEnv("rate_limit.redis_password", "REDIS_PASSWORD")
}
