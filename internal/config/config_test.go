package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal-eisen/thunderbird-msgFilterRules-builder/internal/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml",
		"rules_file: /tmp/msgFilterRules.dat\nstrict: true\nbackup: false\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/msgFilterRules.dat", cfg.RulesFile)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.Backup)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_Defaults(t *testing.T) {
	// Point the candidate search at an empty directory.
	// t.Chdir needs Go 1.24; do the equivalent by hand.
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.RulesFile)
	assert.False(t, cfg.Strict)
	assert.True(t, cfg.Backup, "backups default to on")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "partial.yaml", "strict: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Backup, "unset keys keep their defaults")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.yaml", "rules_file: [\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
