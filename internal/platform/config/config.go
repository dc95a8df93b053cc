package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/ridloal/product-api/internal/platform/logger"
)

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8082"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// "*" allows any origin
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Addr is the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"0"` // 0 disables the limiter
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

type StatsConfig struct {
	// Cron spec for the catalog stats job; empty disables it.
	Schedule string `envconfig:"STATS_SCHEDULE" default:"@every 1m"`
}

type Config struct {
	Server    ServerConfig
	App       AppConfig
	RateLimit RateLimitConfig
	Stats     StatsConfig
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	// each section is processed on its own so keys stay unprefixed (SERVER_PORT, not SERVER_SERVER_PORT)
	for _, section := range []interface{}{&cfg.Server, &cfg.App, &cfg.RateLimit, &cfg.Stats} {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a port number, got %q", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled, got %d", c.RateLimit.Burst)
	}
	for _, origin := range c.Server.CORSAllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS entries must be * or start with http:// or https://, got %q", origin)
		}
	}
	switch c.App.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("APP_ENV must be development, production or test, got %q", c.App.Environment)
	}
	c.Stats.Schedule = strings.TrimSpace(c.Stats.Schedule)
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
