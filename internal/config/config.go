// Package config resolves assistant settings from defaults, a config file,
// the environment and command-line flags.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "happy"

	// DefaultName is the assistant's name used in the welcome banner.
	DefaultName = "Happy"

	// DefaultFile is the config file looked up in the config directory.
	DefaultFile = "config.toml"
)

// Config holds assistant settings.
type Config struct {
	// Name is shown in the welcome banner.
	Name string `toml:"name" yaml:"name"`

	// Theme selects glyphs and colors: classic, neon or mono.
	Theme string `toml:"theme" yaml:"theme"`

	// Color enables styled output on terminals.
	Color bool `toml:"color" yaml:"color"`

	// Echo repeats each entered line before handling it.
	Echo bool `toml:"echo" yaml:"echo"`

	// Prompt is printed before reading each line in line mode.
	Prompt string `toml:"prompt" yaml:"prompt"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// LogFormat is one of text, json, logfmt.
	LogFormat string `toml:"log_format" yaml:"log_format"`

	// TUI starts the interactive terminal interface instead of line mode.
	TUI bool `toml:"tui" yaml:"tui"`

	// Path is the config file that was loaded, if any.
	Path string `toml:"-" yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Name:      DefaultName,
		Theme:     "classic",
		Color:     true,
		Echo:      true,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// DefaultDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultPath returns the config file path used when none is given.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), DefaultFile)
}
