package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Tag filter policies applied when a tag slug does not resolve.
const (
	TagFilterIgnore = "ignore"
	TagFilterEmpty  = "empty"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Hosted backend gateway (auth + object storage)
	GatewayDriver  string
	GatewayURL     string
	GatewayAnonKey string
	GatewayTimeout time.Duration

	// Browser sessions
	SessionBackend      string
	RedisURL            string
	SessionTTL          time.Duration
	SessionKey          string
	SessionCookieName   string
	SessionCookieSecure bool

	// Content behaviour
	TagFilterPolicy   string
	UploadRollback    bool
	CommentModeration bool
	DisplayTimezone   string

	// Sign-in throttling
	SignInRatePerSecond float64
	SignInBurst         int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", time.Minute),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout:     getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 30*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "blog"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		GatewayDriver:       getEnv("GATEWAY_DRIVER", "supabase"),
		GatewayURL:          strings.TrimRight(getEnv("GATEWAY_URL", ""), "/"),
		GatewayAnonKey:      getEnv("GATEWAY_ANON_KEY", ""),
		GatewayTimeout:      getEnvDuration("GATEWAY_TIMEOUT", 15*time.Second),
		SessionBackend:      getEnv("SESSION_BACKEND", "memory"),
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SessionTTL:          getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionKey:          getEnv("SESSION_KEY", ""),
		SessionCookieName:   getEnv("SESSION_COOKIE_NAME", "blog_session"),
		SessionCookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		TagFilterPolicy:     getEnv("TAG_FILTER_POLICY", TagFilterIgnore),
		UploadRollback:      getEnvBool("UPLOAD_ROLLBACK", true),
		CommentModeration:   getEnvBool("COMMENT_MODERATION", false),
		DisplayTimezone:     getEnv("DISPLAY_TIMEZONE", "Asia/Shanghai"),
		SignInRatePerSecond: getEnvFloat("SIGNIN_RATE_PER_SECOND", 0.2),
		SignInBurst:         getEnvInt("SIGNIN_BURST", 5),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabaseURL renders the postgres connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	switch c.GatewayDriver {
	case "supabase":
		if c.GatewayURL == "" {
			return fmt.Errorf("GATEWAY_URL is required")
		}
		if c.GatewayAnonKey == "" {
			return fmt.Errorf("GATEWAY_ANON_KEY is required")
		}
	case "memory":
	default:
		return fmt.Errorf("GATEWAY_DRIVER must be supabase or memory, got %q", c.GatewayDriver)
	}
	if c.SessionBackend != "memory" && c.SessionBackend != "redis" {
		return fmt.Errorf("SESSION_BACKEND must be memory or redis, got %q", c.SessionBackend)
	}
	if c.SessionKey != "" {
		if key, err := hex.DecodeString(c.SessionKey); err != nil || len(key) != 32 {
			return fmt.Errorf("SESSION_KEY must be 64 hex characters")
		}
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.TagFilterPolicy != TagFilterIgnore && c.TagFilterPolicy != TagFilterEmpty {
		return fmt.Errorf("TAG_FILTER_POLICY must be ignore or empty, got %q", c.TagFilterPolicy)
	}
	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE: %w", err)
	}
	if c.SignInRatePerSecond <= 0 {
		return fmt.Errorf("SIGNIN_RATE_PER_SECOND must be positive")
	}
	if c.SignInBurst < 1 {
		return fmt.Errorf("SIGNIN_BURST must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets an environment variable as float64 with a default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
