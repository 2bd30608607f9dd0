// Package config loads application configuration from the environment,
// with optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// HTTP server
	HTTP HTTPConfig

	// Gemini AI integration
	Gemini GeminiConfig

	// Feature Flags
	Features *FeatureFlags
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Version     string

	// SeedDemoData loads the demo dataset on startup.
	SeedDemoData bool

	// Graceful shutdown timeout.
	ShutdownTimeout time.Duration
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	EnableCORS     bool
	AllowedOrigins []string

	// RateLimitPerMinute - requests per minute per IP (0 = disabled).
	RateLimitPerMinute int
}

// GeminiConfig holds Gemini API settings.
type GeminiConfig struct {
	// APIKey - Gemini API key. Empty disables AI features at runtime:
	// smart match and bio generation fall back gracefully.
	APIKey string

	// BaseURL - API base URL, overridable for tests.
	BaseURL string

	// Model - model identifier.
	Model string

	// Timeout - per-call timeout.
	Timeout time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:            getEnv("APP_NAME", "tutorhub"),
			Environment:     Environment(getEnv("APP_ENV", string(EnvDevelopment))),
			Version:         getEnv("APP_VERSION", "dev"),
			SeedDemoData:    getEnvBool("APP_SEED_DEMO_DATA", true),
			ShutdownTimeout: getEnvDuration("APP_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		HTTP: HTTPConfig{
			Host:               getEnv("HTTP_HOST", "0.0.0.0"),
			Port:               getEnvInt("HTTP_PORT", 8080),
			ReadTimeout:        getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:        getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			EnableCORS:         getEnvBool("HTTP_ENABLE_CORS", true),
			AllowedOrigins:     []string{getEnv("HTTP_ALLOWED_ORIGINS", "*")},
			RateLimitPerMinute: getEnvInt("HTTP_RATE_LIMIT_PER_MINUTE", 120),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Model:   getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			Timeout: getEnvDuration("GEMINI_TIMEOUT", 20*time.Second),
		},
		Features: LoadFeatureFlags(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	switch c.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("unknown environment %q", c.App.Environment)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP port %d", c.HTTP.Port)
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini timeout must be positive")
	}
	if c.App.Environment == EnvProduction && c.Gemini.APIKey == "" &&
		c.Features.IsEnabled(FeatureSmartMatch) {
		return fmt.Errorf("smart match is enabled but GEMINI_API_KEY is not set")
	}
	return nil
}

// IsProduction returns true in the production environment.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// ─────────────────────────────────────────────────────────────────────────────
// Env helpers
// ─────────────────────────────────────────────────────────────────────────────

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
