package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "clinigo.db", cfg.DatabaseFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filepath.Join(cfg.DataDir, "clinigo.db"), cfg.DatabasePath())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLINIGO_LOG_LEVEL", "debug")
	t.Setenv("CLINIGO_DATABASE_FILE", "other.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "other.db", cfg.DatabaseFile)
}
