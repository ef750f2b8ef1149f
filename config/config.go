package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mail     MailConfig
	Redis    RedisConfig
	App      AppConfig
}

type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URL          string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// Enabled reports whether any database location was configured. When it is
// false the service runs on the in-memory store.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != "" || d.Host != ""
}

type MailConfig struct {
	User      string
	Password  string
	Host      string
	Port      int
	Recipient string
}

// Enabled reports whether the mail relay credential pair is present.
func (m MailConfig) Enabled() bool {
	return m.User != "" && m.Password != ""
}

type RedisConfig struct {
	URL            string
	ContactChannel string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	SeedOnStart bool
}

func Load() (*Config, error) {
	// .env is optional; production reads the real environment.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	mailUser := getEnv("MAIL_USER", "")

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			AllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Database: DatabaseConfig{
			URL:          getEnv("DATABASE_URL", ""),
			Host:         getEnv("DB_HOST", ""),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "portfolio"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
		},
		Mail: MailConfig{
			User:      mailUser,
			Password:  getEnv("MAIL_PASS", ""),
			Host:      getEnv("MAIL_HOST", "smtp.gmail.com"),
			Port:      getEnvAsInt("MAIL_PORT", 587),
			Recipient: getEnv("CONTACT_RECIPIENT", mailUser),
		},
		Redis: RedisConfig{
			URL:            getEnv("REDIS_URL", ""),
			ContactChannel: getEnv("CONTACT_CHANNEL", "portfolio:contact"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			SeedOnStart: getEnvAsBool("SEED_ON_START", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if p, err := strconv.Atoi(c.Server.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %q", c.Server.Port)
	}

	if c.Database.Enabled() {
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive")
		}
		if c.Database.MaxIdleConns < 0 {
			return fmt.Errorf("DB_MAX_IDLE_CONNS must not be negative")
		}
	}

	if c.Mail.Enabled() && c.Mail.Host == "" {
		return fmt.Errorf("MAIL_HOST is required when MAIL_USER and MAIL_PASS are set")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Warnf("invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		logrus.Warnf("invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	out := make([]string, 0, 4)
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
