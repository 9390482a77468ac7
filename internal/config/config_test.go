package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 50, cfg.Today.Limit)
	assert.Equal(t, 3, cfg.Today.CoachTop)
	assert.Equal(t, 30, cfg.Journal.TrendDays)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: /tmp/aurum-test.db
timezone: Europe/Berlin
today:
  limit: 20
  coach_top: 5
journal:
  trend_days: 14
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/aurum-test.db", cfg.DBPath)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, 20, cfg.Today.Limit)
	assert.Equal(t, 5, cfg.Today.CoachTop)
	assert.Equal(t, 14, cfg.Journal.TrendDays)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezone: America/Chicago\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "America/Chicago", cfg.Timezone)
	assert.Equal(t, 50, cfg.Today.Limit, "unset fields keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /from/file.db\n"), 0o644))

	t.Setenv("AURUM_DB", "/from/env.db")
	t.Setenv("AURUM_TZ", "Asia/Tokyo")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("today: [not, a, map]\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
