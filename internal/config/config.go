package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig

	HTTPAddr       string
	Timezone       string
	ReminderAt     string
	SessionTTL     time.Duration
	ResetPoolSize  int
	ResetSeed      int64
	MigrationsPath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("bot_token", "")
	v.SetDefault("bot_password", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_name", "vocabox")
	v.SetDefault("db_user", "vocabox")
	v.SetDefault("db_password", "")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("reminder_time", "09:00")
	v.SetDefault("session_ttl", 2*time.Hour)
	v.SetDefault("reset_pool_size", 100)
	v.SetDefault("reset_seed", int64(0))
	v.SetDefault("migrations_path", "file://migrations")

	v.AutomaticEnv()
	return v
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	v := newViper()
	cfg := &Config{
		BotToken:    v.GetString("bot_token"),
		BotPassword: v.GetString("bot_password"),
		Database: DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			Name:     v.GetString("db_name"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
		},
		HTTPAddr:       v.GetString("http_addr"),
		Timezone:       v.GetString("timezone"),
		ReminderAt:     v.GetString("reminder_time"),
		SessionTTL:     v.GetDuration("session_ttl"),
		ResetPoolSize:  v.GetInt("reset_pool_size"),
		ResetSeed:      v.GetInt64("reset_seed"),
		MigrationsPath: v.GetString("migrations_path"),
	}

	// Validate required fields
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.ResetPoolSize <= 0 {
		return nil, fmt.Errorf("RESET_POOL_SIZE must be positive")
	}

	return cfg, nil
}

// ValidateBot checks the settings the Telegram bot needs
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.BotPassword == "" {
		return fmt.Errorf("BOT_PASSWORD is required")
	}
	return nil
}

// Location resolves the timezone that defines calendar days
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
