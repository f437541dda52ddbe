package pathgen

import (
	"fmt"

	"github.com/plaroindia/Pearl/internal/progression"
)

// ValidationError describes why a generated plan or question batch was
// rejected.
type ValidationError struct {
	Check     string // Short identifier of the failed check
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("check %q: %s", e.Check, e.Message)
}

// validQuestion reports whether a generated question is structurally
// usable: exactly 4 options, an in-range correct index, and a non-empty
// prompt and explanation.
func validQuestion(q progression.Question) bool {
	if q.Text == "" || q.Explanation == "" {
		return false
	}
	if len(q.Options) != 4 {
		return false
	}
	if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
		return false
	}
	for _, opt := range q.Options {
		if opt == "" {
			return false
		}
	}
	return true
}
