package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Datastore DatastoreConfig `mapstructure:"datastore"`
	Export    ExportConfig    `mapstructure:"export"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatastoreConfig describes the fixed endpoint descriptor. It is read once at
// process start and never mutated afterwards.
type DatastoreConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ResourceID string `mapstructure:"resource_id"`
	Limit      int    `mapstructure:"limit"`
}

type ExportConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads config.yaml from configPath (falling back to the working
// directory) and applies DASHBOARD_* environment overrides. A missing config
// file is fine; defaults cover every key.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("DASHBOARD")
	v.AutomaticEnv()
	bindEnvKeys(v)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if cfg.Datastore.ResourceID == "" {
		return nil, errors.New("datastore.resource_id is required")
	}
	if cfg.Datastore.Limit <= 0 {
		return nil, fmt.Errorf("datastore.limit must be positive, got %d", cfg.Datastore.Limit)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("datastore.base_url", "https://datos.gob.cl")
	v.SetDefault("datastore.resource_id", "2c44d782-3365-44e3-aefb-2c8b8363a1bc")
	v.SetDefault("datastore.limit", 1000)
	v.SetDefault("export.dir", "exports")
	v.SetDefault("export.formats", []string{"csv", "json"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Nested keys need explicit env bindings to be visible before Unmarshal.
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"server.host", "server.port",
		"datastore.base_url", "datastore.resource_id", "datastore.limit",
		"export.dir",
		"logging.level", "logging.format",
	}
	for _, key := range keys {
		envKey := "DASHBOARD_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, envKey)
	}
}
