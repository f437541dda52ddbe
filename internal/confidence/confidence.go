// Package confidence aggregates learning evidence into a per-skill
// confidence score in [0, 1]. Scores only ever move up; a bad checkpoint
// or practice run adds nothing rather than subtracting.
package confidence

import "github.com/plaroindia/Pearl/internal/progression"

// Kind identifies the evidence behind a confidence update.
type Kind string

const (
	// KindHandsOn is completing a module's hands-on action.
	KindHandsOn Kind = "hands_on_completed"

	// KindCheckpoint is passing a module checkpoint. Delta scales with
	// the score above the pass threshold.
	KindCheckpoint Kind = "checkpoint_passed"

	// KindPractice is submitting a scored practice set.
	KindPractice Kind = "practice_submitted"

	// KindModule is completing a whole module.
	KindModule Kind = "module_completed"
)

// Event is one piece of evidence. Score and Threshold are percentages and
// only read for the kinds that scale with them.
type Event struct {
	Kind      Kind
	Score     float64
	Threshold float64
}

// DefaultTarget is the confidence treated as job-ready for a skill.
const DefaultTarget = 0.8

// Delta returns the confidence increase an event is worth.
func Delta(e Event) float64 {
	switch e.Kind {
	case KindHandsOn:
		return 0.15
	case KindCheckpoint:
		threshold := e.Threshold
		if threshold <= 0 || threshold >= 100 {
			threshold = progression.DefaultPassThreshold
		}
		// 0.10 at the pass mark, 0.15 at a perfect score.
		d := 0.10 + 0.05*(e.Score-threshold)/(100-threshold)
		if d < 0.10 {
			d = 0.10
		}
		if d > 0.15 {
			d = 0.15
		}
		return d
	case KindPractice:
		d := (e.Score / 100) * 0.1
		if d > 0.05 {
			d = 0.05
		}
		if d < 0 {
			d = 0
		}
		return d
	case KindModule:
		return 0.08
	}
	return 0
}

// Apply returns the confidence after an event. The result never drops
// below current and never exceeds 1.0.
func Apply(current float64, e Event) float64 {
	next := current + Delta(e)
	if next > 1.0 {
		next = 1.0
	}
	if next < current {
		next = current
	}
	return next
}

// Status buckets a confidence score for display.
type Status string

const (
	StatusMastered     Status = "mastered"
	StatusIntermediate Status = "intermediate"
	StatusBeginner     Status = "beginner"
	StatusNotStarted   Status = "not_started"
)

// StatusOf maps a confidence score to its display bucket.
func StatusOf(conf float64) Status {
	switch {
	case conf >= 0.8:
		return StatusMastered
	case conf >= 0.5:
		return StatusIntermediate
	case conf >= 0.2:
		return StatusBeginner
	default:
		return StatusNotStarted
	}
}

// GapSeverity is the remaining distance to the target confidence.
// A non-positive target uses DefaultTarget. Never negative.
func GapSeverity(conf, target float64) float64 {
	if target <= 0 {
		target = DefaultTarget
	}
	gap := target - conf
	if gap < 0 {
		return 0
	}
	return gap
}

// DifficultyFor maps confidence to the plan difficulty used when
// decomposing a skill.
func DifficultyFor(conf float64) string {
	switch {
	case conf < 0.3:
		return "beginner"
	case conf < 0.7:
		return "intermediate"
	default:
		return "advanced"
	}
}
