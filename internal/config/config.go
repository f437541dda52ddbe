// Package config loads application-level settings. LLM provider selection
// and API keys live in internal/llm; this package covers everything else
// the CLI needs before it can open the store.
package config

import (
	"github.com/plaroindia/Pearl/internal/progression"
)

// Config contains process configuration.
type Config struct {
	// DBPath is the SQLite database location. Empty means the default
	// per-user data path.
	DBPath string `koanf:"db_path"`

	// UserID identifies the learner. The CLI is single-user; this exists
	// so shared machines can keep separate profiles.
	UserID string `koanf:"user_id"`

	// HoursPerWeek is the learner's weekly study budget, used by the
	// path optimizer to spread modules over weeks.
	HoursPerWeek float64 `koanf:"hours_per_week"`

	// PassThreshold is the checkpoint pass mark in percent.
	PassThreshold float64 `koanf:"pass_threshold"`

	// Provider overrides the LLM provider chosen from the environment.
	// Values: "anthropic", "openai", "gemini", "mock". Empty defers to
	// PEARL_LLM_PROVIDER and key discovery.
	Provider string `koanf:"provider"`
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		UserID:        "local",
		HoursPerWeek:  10,
		PassThreshold: progression.DefaultPassThreshold,
	}
}
