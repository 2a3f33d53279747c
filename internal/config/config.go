// Package config loads tada settings from an optional YAML file and TADA_*
// environment variables.
//
// Precedence (highest to lowest):
//  1. Environment variables (TADA_UI_THEME, TADA_LOGGING_LEVEL, ...)
//  2. Explicit config file, or ~/.config/tada/config.yaml
//  3. Built-in defaults
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

const appName = "tada"

// Config holds all configuration for a session.
type Config struct {
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	IDs     IDsConfig     `mapstructure:"ids" yaml:"ids"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	// Theme is the starting theme, dark or light.
	Theme string `mapstructure:"theme" yaml:"theme"`
	// ThemeToggle enables the dark/light switch.
	ThemeToggle bool   `mapstructure:"theme_toggle" yaml:"theme_toggle"`
	Title       string `mapstructure:"title" yaml:"title"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	// CharLimit caps input length; 0 means unlimited.
	CharLimit int `mapstructure:"char_limit" yaml:"char_limit"`
}

// IDsConfig selects how todo ids are generated.
type IDsConfig struct {
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
}

// LoggingConfig holds log sink settings. An empty File discards logs.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:       "dark",
			ThemeToggle: true,
			Title:       "Todo App",
			Placeholder: "Add a new todo",
			CharLimit:   200,
		},
		IDs:     IDsConfig{Strategy: string(todo.StrategySequence)},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config like Read and validates it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads the user config if present without validating it, so callers
// can apply overrides first. An explicit path must exist.
func Read(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(UserConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading user config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, err := ui.ParseMode(c.UI.Theme); err != nil {
		return fmt.Errorf("ui.theme: %w", err)
	}
	if c.UI.CharLimit < 0 {
		return fmt.Errorf("ui.char_limit: must not be negative, got %d", c.UI.CharLimit)
	}
	if _, err := todo.NewIDSource(c.IDs.Strategy); err != nil {
		return fmt.Errorf("ids.strategy: %w", err)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// UserConfigPath returns the path of the default config file.
func UserConfigPath() string {
	return filepath.Join(UserConfigDir(), "config.yaml")
}

// UserConfigDir honors XDG_CONFIG_HOME, falling back to ~/.config/tada.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.theme_toggle", d.UI.ThemeToggle)
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.placeholder", d.UI.Placeholder)
	v.SetDefault("ui.char_limit", d.UI.CharLimit)
	v.SetDefault("ids.strategy", d.IDs.Strategy)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
