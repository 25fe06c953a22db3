package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
//
// Lookup order: defaults, then an optional questline.yaml (current
// directory or ~/.config/questline), then QUESTLINE_-prefixed environment
// variables (e.g. QUESTLINE_DATABASE_URL overrides database.url).
func Load() (*Config, error) {
	v := viper.New()

	// Defaults also register the keys so environment binding sees them.
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.content_dir", "content")
	v.SetDefault("database.url", "")
	v.SetDefault("progression.daily_mission_count", 0)
	v.SetDefault("progression.selection_weight_floor", 0)
	v.SetDefault("progression.max_node_level", 0)
	v.SetDefault("progression.xp_chart_days", 0)

	v.SetConfigName("questline")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/questline")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env and defaults carry it.
	}

	v.SetEnvPrefix("QUESTLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
