package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load resolves configuration in priority order:
// 1. Defaults
// 2. Config file (path, or DefaultPath when path is empty)
// 3. Environment variables
//
// Command-line flags are applied on top by the caller.
// A missing default file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if err := loadFile(cfg, path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			// no user config, keep defaults
		} else {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else {
		cfg.Path = path
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// loadFile decodes a TOML or YAML file (chosen by extension) into cfg
// after validating it against the config schema.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	yamlFile := isYAML(path)

	doc := map[string]any{}
	if yamlFile {
		err = yaml.Unmarshal(data, &doc)
	} else {
		_, err = toml.Decode(string(data), &doc)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validateDocument(doc); err != nil {
		return err
	}

	if yamlFile {
		return yaml.Unmarshal(data, cfg)
	}
	_, err = toml.Decode(string(data), cfg)
	return err
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("HAPPY_NAME")); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("HAPPY_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("HAPPY_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("HAPPY_LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv("HAPPY_ECHO")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("HAPPY_ECHO: %w", err)
		}
		cfg.Echo = b
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	return nil
}
