package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file: PEARL_CONFIG if set, else ~/.config/pearl/config.yaml if present
//  3. env (prefix PEARL_, e.g. PEARL_USER_ID, PEARL_HOURS_PER_WEEK)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := configFilePath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Map env keys like PEARL_HOURS_PER_WEEK -> hours_per_week (flat keys).
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("PEARL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "pearl_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.UserID == "" {
		return nil, errors.New("user_id must not be empty")
	}
	if cfg.PassThreshold <= 0 || cfg.PassThreshold > 100 {
		return nil, errors.New("pass_threshold must be in (0, 100]")
	}
	if cfg.HoursPerWeek <= 0 {
		return nil, errors.New("hours_per_week must be positive")
	}
	return &cfg, nil
}

func configFilePath() string {
	if path := os.Getenv("PEARL_CONFIG"); path != "" {
		return path
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	path := filepath.Join(configDir, "pearl", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
