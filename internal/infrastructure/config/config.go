// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all engine configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Data    DataConfig    `mapstructure:"data"`
	Model   ModelConfig   `mapstructure:"model"`
	Stats   StatsConfig   `mapstructure:"stats"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// DataConfig locates the food knowledge sources. Both paths are
// optional: a missing expanded store degrades to the curated table.
type DataConfig struct {
	// FoodStorePath is the sqlite database holding the expanded food
	// table.
	FoodStorePath string `mapstructure:"food_store_path"`
	// CuratedOverridesPath is an optional JSON file merged over the
	// built-in curated table.
	CuratedOverridesPath string `mapstructure:"curated_overrides_path"`
}

// ModelConfig locates the trained model artifact. A missing artifact
// leaves the engine in rule-based mode.
type ModelConfig struct {
	ArtifactPath string `mapstructure:"artifact_path"`
}

// StatsConfig controls the prediction log sink.
type StatsConfig struct {
	PredictionLogPath string `mapstructure:"prediction_log_path"`
	LogEnabled        bool   `mapstructure:"log_enabled"`
}

// MetricsConfig controls the optional Prometheus listener.
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

// Load reads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("KALORYE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; env and defaults suffice
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "kalorye")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	v.SetDefault("data.food_store_path", "data/food_store.db")
	v.SetDefault("data.curated_overrides_path", "")

	v.SetDefault("model.artifact_path", "data/calorie_model.json")

	v.SetDefault("stats.prediction_log_path", "prediction_log.jsonl")
	v.SetDefault("stats.log_enabled", true)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen_addr", ":9090")
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	switch c.App.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.App.LogFormat)
	}
	if c.Metrics.Enabled && c.Metrics.ListenAddr == "" {
		return fmt.Errorf("metrics enabled but no listen address configured")
	}
	return nil
}

// IsDevelopment reports whether the engine runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
