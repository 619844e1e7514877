// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var envOnce sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Database struct {
		Host     string `mapstructure:"host" yaml:"host"`
		Port     int    `mapstructure:"port" yaml:"port"`
		User     string `mapstructure:"user" yaml:"user"`
		Password string `mapstructure:"password" yaml:"-"` // Never serialize the password
		Name     string `mapstructure:"name" yaml:"name"`
		SSLMode  string `mapstructure:"sslmode" yaml:"sslmode"`
	} `mapstructure:"database" yaml:"database"`

	Import struct {
		DefaultFormat  string `mapstructure:"default_format" yaml:"default_format"`
		DefaultAccount int64  `mapstructure:"default_account" yaml:"default_account"`
	} `mapstructure:"import" yaml:"import"`

	Seed struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"seed" yaml:"seed"`
}

// DSN builds the Postgres connection string from the database settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// LoadEnv loads environment variables from a .env file if one exists, looking
// in the current directory and then the parent.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then BOURSO_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bourso-import")
	v.AddConfigPath(".bourso-import")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BOURSO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed file should not take the tool down; defaults and
			// environment variables still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The database password is read from the conventional unprefixed variable
	// as well, so existing Postgres tooling setups keep working.
	if err := v.BindEnv("database.password", "BOURSO_DATABASE_PASSWORD", "PGPASSWORD"); err != nil {
		fmt.Printf("Warning: failed to bind database password environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "bourso")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "bourso_import")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("import.default_format", "boursorama")
	v.SetDefault("import.default_account", 1)

	v.SetDefault("seed.file", filepath.Join("config", "categories.yaml"))
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Database.Port < 1 || config.Database.Port > 65535 {
		return fmt.Errorf("database.port must be between 1 and 65535, got: %d", config.Database.Port)
	}

	if config.Import.DefaultAccount < 1 {
		return fmt.Errorf("import.default_account must be positive, got: %d", config.Import.DefaultAccount)
	}

	return nil
}
