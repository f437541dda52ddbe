package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PEARL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	os.Unsetenv("PEARL_USER_ID")

	// A missing explicit config file is an error.
	_, err := Load()
	require.Error(t, err, "expected error for missing PEARL_CONFIG file")

	t.Setenv("PEARL_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.UserID)
	assert.Equal(t, 70.0, cfg.PassThreshold)
	assert.Equal(t, 10.0, cfg.HoursPerWeek)
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "user_id: alice\nhours_per_week: 6\npass_threshold: 80\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("PEARL_CONFIG", path)
	t.Setenv("PEARL_HOURS_PER_WEEK", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.UserID, "file value should override default")
	assert.Equal(t, 80.0, cfg.PassThreshold)
	assert.Equal(t, 12.0, cfg.HoursPerWeek, "env should override file")
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pass_threshold: 150\n"), 0o644))
	t.Setenv("PEARL_CONFIG", path)

	_, err := Load()
	require.Error(t, err, "pass_threshold above 100 must be rejected")
}
