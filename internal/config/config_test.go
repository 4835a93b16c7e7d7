package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
collapse_on_minimize = true
shell = "zsh"

[[panel]]
id = "main"
title = "Main Shell"
kind = "shell"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.CollapseOnMinimize)
	require.Equal(t, "zsh", cfg.Shell)
	require.Len(t, cfg.Panels, 1)
	require.Equal(t, PanelConfig{ID: "main", Title: "Main Shell", Kind: "shell"}, cfg.Panels[0])
}

func TestLoad_AppliesDefaultsForMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
collapse_on_minimize = true

[[panel]]
kind = "sessions"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "bash", cfg.Shell)
	require.Equal(t, "panel-0", cfg.Panels[0].ID)
	require.Equal(t, "panel-0", cfg.Panels[0].Title)
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("shell = ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing config")
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	// Second write must refuse to clobber
	require.Error(t, WriteDefault(path))
}
