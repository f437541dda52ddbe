package store

import (
	"context"
	"errors"
	"time"

	"github.com/plaroindia/Pearl/internal/progression"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a compare-and-swap write lost to a concurrent
	// update. The caller should re-read and retry.
	ErrConflict = errors.New("version conflict")
)

// Session groups the learning paths created for one career goal.
type Session struct {
	SessionID string
	UserID    string
	Goal      string
	Skills    []string
	CreatedAt time.Time
}

// SessionRepo persists sessions.
type SessionRepo interface {
	Create(ctx context.Context, s *Session) error

	// Get returns the session, or ErrNotFound.
	Get(ctx context.Context, sessionID string) (*Session, error)
}

// PathRepo persists learning paths as single documents. Writes use
// optimistic concurrency: the path's Version must match the stored row or
// the write fails with ErrConflict.
type PathRepo interface {
	Create(ctx context.Context, p *progression.Path) error

	// Get returns the path for (sessionID, skill), or ErrNotFound.
	Get(ctx context.Context, sessionID, skill string) (*progression.Path, error)

	// List returns all paths in a session, ordered by skill.
	List(ctx context.Context, sessionID string) ([]*progression.Path, error)

	// UpdateCAS writes the path back iff the stored version still equals
	// p.Version; on success p.Version is advanced. Returns ErrConflict on
	// a version miss.
	UpdateCAS(ctx context.Context, p *progression.Path) error
}

// Profile is the per-(user, skill) confidence record.
type Profile struct {
	UserID          string
	SkillName       string
	Confidence      float64
	Evidence        map[string]int
	PracticeCount   int
	LastPracticedAt *time.Time
}

// ProfileRepo persists skill profiles. Profiles accrete and are never
// deleted.
type ProfileRepo interface {
	// Get returns the profile, or ErrNotFound.
	Get(ctx context.Context, userID, skillName string) (*Profile, error)

	// ListByUser returns all of a user's profiles, ordered by skill name.
	ListByUser(ctx context.Context, userID string) ([]*Profile, error)

	// Save upserts the profile keyed on (UserID, SkillName).
	Save(ctx context.Context, p *Profile) error
}

// LLMRequestEventData captures a single generation-gateway call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// CheckpointResultData is the append-only record of a checkpoint submission.
type CheckpointResultData struct {
	SessionID      string
	UserID         string
	Skill          string
	ModuleID       int
	Score          float64
	Passed         bool
	CorrectCount   int
	TotalQuestions int
	Answers        []int
}

// PracticeAttemptData is the append-only record of a scored practice set.
type PracticeAttemptData struct {
	UserID         string
	Skill          string
	Topic          string
	Score          float64
	CorrectCount   int
	TotalQuestions int
	TimeTakenSecs  int
}

// LLMEventSummary is one row of the LLM request log.
type LLMEventSummary struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStat aggregates LLM requests by purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM requests by served model, for cost
// estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the evidence/result records.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendCheckpointResult(ctx context.Context, data CheckpointResultData) error
	AppendPracticeAttempt(ctx context.Context, data PracticeAttemptData) error

	// PracticeHistory returns a user's practice attempts, most recent
	// first. An empty skill matches all skills.
	PracticeHistory(ctx context.Context, userID, skill string, limit int) ([]PracticeAttemptData, error)

	// CheckpointPassRate returns (passed, total) checkpoint submissions
	// for a user and skill.
	CheckpointPassRate(ctx context.Context, userID, skill string) (int, int, error)

	// RecentLLMRequests returns the newest LLM request events.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMEventSummary, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per served model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
