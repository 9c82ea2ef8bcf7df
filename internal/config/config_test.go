package config

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Pictures", "Screenshots"), cfg.SourceDir)
	assert.Equal(t, filepath.Join(home, "Pictures", "Misc"), cfg.DestDir)
	assert.Equal(t, DefaultPattern, cfg.Pattern)
	assert.Equal(t, filepath.Join(home, ".local", "share", "shotwiz", "shotwiz.db"), cfg.HistoryPath)
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	t.Setenv("SHOTWIZ_SOURCE_DIR", src)
	t.Setenv("SHOTWIZ_DEST_DIR", dst)
	t.Setenv("SHOTWIZ_PATTERN", "Screen Shot *.png")
	t.Setenv("SHOTWIZ_HISTORY", "false")
	t.Setenv("SHOTWIZ_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, src, cfg.SourceDir)
	assert.Equal(t, dst, cfg.DestDir)
	assert.Equal(t, "Screen Shot *.png", cfg.Pattern)
	assert.False(t, cfg.HistoryEnabled)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Pattern = "sub/Screenshot *.png"
	assert.ErrorContains(t, cfg.Validate(), "must match file names")

	cfg = Default()
	cfg.SourceDir = ""
	cfg.DestDir = ""
	err := cfg.Validate()
	assert.ErrorContains(t, err, "source_dir")
	assert.ErrorContains(t, err, "dest_dir")

	cfg = Default()
	cfg.HistoryPath = ""
	assert.Error(t, cfg.Validate())
	cfg.HistoryEnabled = false
	assert.NoError(t, cfg.Validate())
}
