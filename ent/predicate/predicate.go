// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CheckpointResult is the predicate function for checkpointresult builders.
type CheckpointResult func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningPath is the predicate function for learningpath builders.
type LearningPath func(*sql.Selector)

// PracticeAttempt is the predicate function for practiceattempt builders.
type PracticeAttempt func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SkillProfile is the predicate function for skillprofile builders.
type SkillProfile func(*sql.Selector)
