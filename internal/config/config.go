package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Telegram      TelegramConfig
	Notifications NotificationsConfig
	Log           LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// RateLimit is the per-client request rate on /api, in requests per second
	RateLimit float64
	RateBurst int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	RunMigrations   bool
	MigrationsPath  string
	SeedDatabase    bool
	SeedsPath       string
}

type TelegramConfig struct {
	BotToken string
	Debug    bool
	// RatePerSecond bounds outgoing messages across all chats
	RatePerSecond float64
	Burst         int
	SendTimeout   time.Duration
}

type NotificationsConfig struct {
	Enabled           bool
	Interval          time.Duration
	Workers           int
	BreakerThreshold  int
	BreakerTimeout    time.Duration
	RecordHistory     bool
	UserBatchSize     int
	DetectionDeadline time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimit:    getFloatEnv("API_RATE_LIMIT", 10),
			RateBurst:    getIntEnv("API_RATE_BURST", 20),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance_user"),
			Password:        getEnv("DB_PASSWORD", "finance_password"),
			Name:            getEnv("DB_NAME", "finance_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			RunMigrations:   getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
		},
		Telegram: TelegramConfig{
			BotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
			Debug:         getBoolEnv("TELEGRAM_DEBUG", false),
			RatePerSecond: getFloatEnv("TELEGRAM_RATE_PER_SECOND", 25),
			Burst:         getIntEnv("TELEGRAM_BURST", 5),
			SendTimeout:   getDurationEnv("TELEGRAM_SEND_TIMEOUT", 10*time.Second),
		},
		Notifications: NotificationsConfig{
			Enabled:           getBoolEnv("NOTIFICATIONS_ENABLED", true),
			Interval:          getDurationEnv("NOTIFICATIONS_INTERVAL", time.Hour),
			Workers:           getIntEnv("NOTIFICATIONS_WORKERS", 4),
			BreakerThreshold:  getIntEnv("NOTIFICATIONS_BREAKER_THRESHOLD", 5),
			BreakerTimeout:    getDurationEnv("NOTIFICATIONS_BREAKER_TIMEOUT", time.Minute),
			RecordHistory:     getBoolEnv("NOTIFICATIONS_RECORD_HISTORY", true),
			UserBatchSize:     getIntEnv("NOTIFICATIONS_USER_BATCH_SIZE", 500),
			DetectionDeadline: getDurationEnv("NOTIFICATIONS_DETECTION_DEADLINE", 30*time.Second),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// TelegramConfigured reports whether a bot token was provided
func (c *Config) TelegramConfigured() bool {
	return c.Telegram.BotToken != ""
}

// SlogLevel maps the configured level name onto slog levels, defaulting to info
func (c *LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger from the log section
func (c *LogConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
