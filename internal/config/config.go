// Package config loads the dockpanel TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration.
type Config struct {
	// CollapseOnMinimize hides a panel's surface entirely when it is
	// minimized, instead of leaving it in the tray.
	CollapseOnMinimize bool `toml:"collapse_on_minimize"`

	// Shell is the command spawned inside shell panels.
	Shell string `toml:"shell"`

	Panels []PanelConfig `toml:"panel"`
}

// PanelConfig declares one panel in the workspace.
type PanelConfig struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Kind  string `toml:"kind"` // "shell", "sessions", or "activity"
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dockpanel", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dockpanel", "config.toml")
}

// Default returns the default configuration: shell, sessions, and activity
// panels side by side, tray behavior on minimize.
func Default() *Config {
	return &Config{
		CollapseOnMinimize: false,
		Shell:              "bash",
		Panels: []PanelConfig{
			{ID: "shell", Title: "Shell", Kind: "shell"},
			{ID: "sessions", Title: "Sessions", Kind: "sessions"},
			{ID: "activity", Title: "Activity", Kind: "activity"},
		},
	}
}

// Load loads configuration from a file. A missing file yields the default
// configuration rather than an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults for missing values
	if cfg.Shell == "" {
		cfg.Shell = Default().Shell
	}
	if len(cfg.Panels) == 0 {
		cfg.Panels = Default().Panels
	}
	for i := range cfg.Panels {
		if cfg.Panels[i].ID == "" {
			cfg.Panels[i].ID = fmt.Sprintf("panel-%d", i)
		}
		if cfg.Panels[i].Title == "" {
			cfg.Panels[i].Title = cfg.Panels[i].ID
		}
	}

	return &cfg, nil
}

// WriteDefault writes the default config to path, creating parent
// directories. Fails if the file already exists.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	return nil
}
