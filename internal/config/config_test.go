package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VITRINE_CONFIG", filepath.Join(t.TempDir(), "nonexistent.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "apps.json", cfg.Manifest.Source)
	require.True(t, cfg.History.Enabled)
	require.Equal(t, "January 2, 2006", cfg.UI.DateFormat)
	require.Equal(t, 4096, cfg.UI.PreviewBytes)
	require.NotEmpty(t, cfg.Database.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[manifest]
source = "https://example.com/showcase/apps.json"

[history]
enabled = false

[ui]
date_format = "2006-01-02"
preview_bytes = 512
`), 0o644))
	t.Setenv("VITRINE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://example.com/showcase/apps.json", cfg.Manifest.Source)
	require.False(t, cfg.History.Enabled)
	require.Equal(t, "2006-01-02", cfg.UI.DateFormat)
	require.Equal(t, 512, cfg.UI.PreviewBytes)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("VITRINE_CONFIG", filepath.Join(t.TempDir(), "nonexistent.toml"))
	t.Setenv("VITRINE_MANIFEST_SOURCE", "/srv/showcase/apps.json")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/srv/showcase/apps.json", cfg.Manifest.Source)
}
