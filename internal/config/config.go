// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the root application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Harvester HarvesterConfig `mapstructure:"harvester"`
	AI        AIConfig        `mapstructure:"ai"`
}

// AppConfig holds application metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// HarvesterConfig holds harvest pipeline configuration.
type HarvesterConfig struct {
	ArticlesPerSource int           `mapstructure:"articles_per_source"`
	FetchTimeout      time.Duration `mapstructure:"fetch_timeout"`
	UserAgent         string        `mapstructure:"user_agent"`
	Schedule          string        `mapstructure:"schedule"`
}

// AIConfig holds DeepSeek chat-completions configuration. An empty APIKey
// is valid and switches every AI consumer to its deterministic fallback.
type AIConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	Endpoint string        `mapstructure:"endpoint"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Enabled reports whether an API key is configured.
func (a AIConfig) Enabled() bool {
	return a.APIKey != ""
}

// Load builds a Config from the given viper instance, applying defaults
// and environment overrides.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Harvester.ArticlesPerSource < 1 {
		return fmt.Errorf("harvester.articles_per_source must be positive, got %d",
			c.Harvester.ArticlesPerSource)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("database.port out of range: %d", c.Database.Port)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "rmgpulse")
	v.SetDefault("app.environment", "development")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "rmgpulse")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("harvester.articles_per_source", 15)
	v.SetDefault("harvester.fetch_timeout", 30*time.Second)
	v.SetDefault("harvester.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	v.SetDefault("harvester.schedule", "")

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.endpoint", "https://api.deepseek.com/v1/chat/completions")
	v.SetDefault("ai.model", "deepseek-chat")
	v.SetDefault("ai.timeout", 30*time.Second)
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("server.address", "SERVER_ADDRESS")
	_ = v.BindEnv("database.host", "DATABASE_HOST")
	_ = v.BindEnv("database.port", "DATABASE_PORT")
	_ = v.BindEnv("database.user", "DATABASE_USER")
	_ = v.BindEnv("database.password", "DATABASE_PASSWORD")
	_ = v.BindEnv("database.name", "DATABASE_NAME")
	_ = v.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	_ = v.BindEnv("harvester.schedule", "HARVEST_SCHEDULE")
	_ = v.BindEnv("ai.api_key", "DEEPSEEK_API_KEY")
}
