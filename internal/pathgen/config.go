package pathgen

import "github.com/plaroindia/Pearl/internal/progression"

// Config controls the behavior of the generators.
type Config struct {
	// MaxAttempts is how many times a generation call is tried before
	// falling back to the deterministic templates.
	MaxAttempts int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// PassThreshold is the checkpoint pass mark in percent, attached to
	// every generated checkpoint action.
	PassThreshold float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   3,
		MaxTokens:     2048,
		Temperature:   0.7,
		PassThreshold: progression.DefaultPassThreshold,
	}
}
