package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Seed         SeedConfig
	List         ListConfig
	Logger       LoggerConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// SeedConfig points at the startup datasets. Empty paths fall back to the
// embedded seed files.
type SeedConfig struct {
	TicketsPath string
	ReasonsPath string
}

// ListConfig holds listing defaults.
type ListConfig struct {
	PageSize int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// NotificationConfig controls the transient notification center.
type NotificationConfig struct {
	ToastTTLSeconds int
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "careflow-desk"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Seed: SeedConfig{
			TicketsPath: os.Getenv("SEED_TICKETS_PATH"),
			ReasonsPath: os.Getenv("SEED_REASONS_PATH"),
		},
		List: ListConfig{
			PageSize: getEnvAsInt("LIST_PAGE_SIZE", 10),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Notification: NotificationConfig{
			ToastTTLSeconds: getEnvAsInt("NOTIFY_TOAST_TTL_SECONDS", 5),
		},
	}

	if cfg.List.PageSize <= 0 {
		return nil, fmt.Errorf("invalid LIST_PAGE_SIZE: %d", cfg.List.PageSize)
	}
	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ToastTTL returns how long a transient notification stays visible.
func (n NotificationConfig) ToastTTL() time.Duration {
	if n.ToastTTLSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(n.ToastTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
