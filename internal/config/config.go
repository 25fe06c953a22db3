package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App         AppConfig         `mapstructure:"app"         validate:"required"`
	Database    DatabaseConfig    `mapstructure:"database"    validate:"required"`
	Progression ProgressionConfig `mapstructure:"progression"`
}

// AppConfig contains general application settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ContentDir is the directory holding the static JSON content
	// (cards, skill tree, phases, reflection templates).
	ContentDir string `mapstructure:"content_dir" validate:"required"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// ProgressionConfig contains tunables for the progression engines. Zero
// values mean "use the engine default".
type ProgressionConfig struct {
	DailyMissionCount    int     `mapstructure:"daily_mission_count"    validate:"gte=0"`
	SelectionWeightFloor float64 `mapstructure:"selection_weight_floor" validate:"gte=0"`
	MaxNodeLevel         int     `mapstructure:"max_node_level"         validate:"gte=0"`
	XPChartDays          int     `mapstructure:"xp_chart_days"          validate:"gte=0"`
}
