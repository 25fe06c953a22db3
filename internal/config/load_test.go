package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so a stray
// questline.yaml in the working tree cannot leak into the test.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
	return dir
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("QUESTLINE_DATABASE_URL", "postgres://localhost:5432/questline")
	t.Setenv("QUESTLINE_APP_LOG_LEVEL", "debug")
	t.Setenv("QUESTLINE_APP_CONTENT_DIR", "/data/content")
	t.Setenv("QUESTLINE_PROGRESSION_DAILY_MISSION_COUNT", "5")
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/questline", cfg.Database.URL)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "/data/content", cfg.App.ContentDir)
	assert.Equal(t, 5, cfg.Progression.DailyMissionCount)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QUESTLINE_DATABASE_URL", "postgres://localhost:5432/questline")
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "content", cfg.App.ContentDir)
	assert.Zero(t, cfg.Progression.DailyMissionCount)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("QUESTLINE_DATABASE_URL", "")
		chdirTemp(t)

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("QUESTLINE_DATABASE_URL", "postgres://localhost:5432/questline")
		t.Setenv("QUESTLINE_APP_LOG_LEVEL", "loud")
		chdirTemp(t)

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoadFromConfigFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
app:
  log_level: warn
  content_dir: ./mycontent
database:
  url: postgres://db:5432/questline
progression:
  xp_chart_days: 30
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questline.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "./mycontent", cfg.App.ContentDir)
	assert.Equal(t, "postgres://db:5432/questline", cfg.Database.URL)
	assert.Equal(t, 30, cfg.Progression.XPChartDays)
}
