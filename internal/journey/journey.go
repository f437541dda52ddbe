// Package journey orchestrates the learner's end-to-end flow: session
// creation, path generation, action progression, checkpoints, and the
// confidence updates they earn.
package journey

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/plaroindia/Pearl/internal/checkpoint"
	"github.com/plaroindia/Pearl/internal/confidence"
	"github.com/plaroindia/Pearl/internal/llm"
	"github.com/plaroindia/Pearl/internal/pathgen"
	"github.com/plaroindia/Pearl/internal/progression"
	"github.com/plaroindia/Pearl/internal/store"
)

// ErrInvalidInput marks requests rejected before touching state.
var ErrInvalidInput = errors.New("invalid input")

// Service wires the generators, state machine, and repos together.
type Service struct {
	provider   llm.Provider
	decomposer *pathgen.Decomposer
	populator  *pathgen.Populator
	sessions   store.SessionRepo
	paths      store.PathRepo
	events     store.EventRepo
	confidence *confidence.Service
}

// New creates a journey Service.
func New(
	provider llm.Provider,
	cfg pathgen.Config,
	sessions store.SessionRepo,
	paths store.PathRepo,
	events store.EventRepo,
	conf *confidence.Service,
) *Service {
	return &Service{
		provider:   provider,
		decomposer: pathgen.NewDecomposer(provider, cfg),
		populator:  pathgen.NewPopulator(provider, cfg),
		sessions:   sessions,
		paths:      paths,
		events:     events,
		confidence: conf,
	}
}

// StartResult is the outcome of starting a learning journey.
type StartResult struct {
	SessionID string
	Skills    []string
	Paths     []*progression.Path
}

// Start creates a session for a career goal: extracts the skill set,
// generates one learning path per skill, and persists everything. Path
// generation degrades to deterministic templates, so Start only fails on
// validation or storage errors.
func (s *Service) Start(ctx context.Context, userID, goal string) (*StartResult, error) {
	if userID == "" || goal == "" {
		return nil, fmt.Errorf("%w: user and goal are required", ErrInvalidInput)
	}

	skills := s.extractSkills(ctx, goal)
	sessionID := uuid.NewString()

	if err := s.sessions.Create(ctx, &store.Session{
		SessionID: sessionID,
		UserID:    userID,
		Goal:      goal,
		Skills:    skills,
	}); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	result := &StartResult{SessionID: sessionID, Skills: skills}
	for _, skill := range skills {
		path, err := s.buildPath(ctx, sessionID, userID, skill, goal)
		if err != nil {
			return nil, err
		}
		result.Paths = append(result.Paths, path)
	}
	return result, nil
}

func (s *Service) buildPath(ctx context.Context, sessionID, userID, skill, goal string) (*progression.Path, error) {
	conf, err := s.confidence.Confidence(ctx, userID, skill)
	if err != nil {
		return nil, fmt.Errorf("load confidence for %s: %w", skill, err)
	}
	difficulty := confidence.DifficultyFor(conf)

	specs := s.decomposer.Decompose(ctx, pathgen.DecomposeInput{
		Skill:       skill,
		Difficulty:  difficulty,
		GoalContext: goal,
	})

	modules := make([]progression.Module, len(specs))
	for i, spec := range specs {
		modules[i] = progression.Module{
			Name:               spec.Name,
			Description:        spec.Description,
			LearningObjectives: spec.LearningObjectives,
			CompletionCriteria: spec.CompletionCriteria,
			EstimatedHours:     spec.EstimatedHours,
			Actions:            s.populator.Populate(ctx, skill, spec),
		}
	}

	path := progression.NewPath(sessionID, userID, skill, difficulty, modules)
	if err := s.paths.Create(ctx, path); err != nil {
		return nil, fmt.Errorf("create path for %s: %w", skill, err)
	}
	return path, nil
}

// NextAction returns the first incomplete action in the active module.
// The bool is false when the path is fully completed.
func (s *Service) NextAction(ctx context.Context, sessionID, skill string) (progression.NextAction, bool, error) {
	path, err := s.paths.Get(ctx, sessionID, skill)
	if err != nil {
		return progression.NextAction{}, false, err
	}
	next, ok := progression.FindNextAction(path)
	return next, ok, nil
}

// ActionOutcome reports what completing an action changed.
type ActionOutcome struct {
	ModuleCompleted bool
	UnlockedModule  int
	PathCompleted   bool
	NewConfidence   float64
}

// CompleteAction marks a non-checkpoint action done and persists the
// path. Completing the hands-on action earns confidence evidence;
// finishing a module (possible when its checkpoint already passed) earns
// more. Returns store.ErrConflict when a concurrent writer won; callers
// retry by re-reading.
func (s *Service) CompleteAction(ctx context.Context, sessionID, skill string, moduleID, actionIndex int) (*ActionOutcome, error) {
	path, err := s.paths.Get(ctx, sessionID, skill)
	if err != nil {
		return nil, err
	}

	mod := path.Module(moduleID)
	var actionType progression.ActionType
	if mod != nil && actionIndex >= 0 && actionIndex < len(mod.Actions) {
		actionType = mod.Actions[actionIndex].Type
	}

	transition, err := progression.CompleteAction(path, moduleID, actionIndex)
	if err != nil {
		return nil, err
	}

	if err := s.paths.UpdateCAS(ctx, path); err != nil {
		return nil, err
	}

	outcome := &ActionOutcome{}
	if actionType == progression.ActionHandsOn {
		profile, err := s.confidence.Record(ctx, path.UserID, skill, confidence.Event{Kind: confidence.KindHandsOn})
		if err != nil {
			return nil, err
		}
		outcome.NewConfidence = profile.Confidence
	}

	if transition != nil {
		outcome.ModuleCompleted = transition.ModuleCompleted > 0
		outcome.UnlockedModule = transition.UnlockedModule
		outcome.PathCompleted = transition.PathCompleted
		profile, err := s.confidence.Record(ctx, path.UserID, skill, confidence.Event{Kind: confidence.KindModule})
		if err != nil {
			return nil, err
		}
		outcome.NewConfidence = profile.Confidence
	}
	return outcome, nil
}

// CheckpointOutcome is the result of a checkpoint submission.
type CheckpointOutcome struct {
	Result          checkpoint.Result
	ModuleCompleted bool
	UnlockedModule  int
	PathCompleted   bool
	NewConfidence   float64
}

// SubmitCheckpoint evaluates answers against the module's checkpoint,
// records the attempt, and on a pass advances the state machine and the
// learner's confidence. A failed checkpoint changes no path state; the
// learner retries with a fresh evaluation.
func (s *Service) SubmitCheckpoint(ctx context.Context, sessionID, skill string, moduleID int, answers []int) (*CheckpointOutcome, error) {
	path, err := s.paths.Get(ctx, sessionID, skill)
	if err != nil {
		return nil, err
	}

	mod := path.Module(moduleID)
	if mod == nil {
		return nil, progression.ErrModuleNotFound
	}
	cp := mod.Checkpoint()
	if cp == nil {
		return nil, progression.ErrNoCheckpoint
	}

	result := checkpoint.Evaluate(cp.Questions, answers, cp.PassThreshold)

	if err := s.events.AppendCheckpointResult(ctx, store.CheckpointResultData{
		SessionID:      sessionID,
		UserID:         path.UserID,
		Skill:          skill,
		ModuleID:       moduleID,
		Score:          result.Score,
		Passed:         result.Passed,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		Answers:        answers,
	}); err != nil {
		return nil, fmt.Errorf("record checkpoint result: %w", err)
	}

	outcome := &CheckpointOutcome{Result: result}
	if !result.Passed {
		return outcome, nil
	}

	transition, err := progression.RecordCheckpoint(path, moduleID, true)
	if err != nil {
		return nil, err
	}
	if err := s.paths.UpdateCAS(ctx, path); err != nil {
		return nil, err
	}

	threshold := cp.PassThreshold
	profile, err := s.confidence.Record(ctx, path.UserID, skill, confidence.Event{
		Kind:      confidence.KindCheckpoint,
		Score:     result.Score,
		Threshold: threshold,
	})
	if err != nil {
		return nil, err
	}
	outcome.NewConfidence = profile.Confidence

	if transition != nil {
		outcome.ModuleCompleted = transition.ModuleCompleted > 0
		outcome.UnlockedModule = transition.UnlockedModule
		outcome.PathCompleted = transition.PathCompleted
		profile, err := s.confidence.Record(ctx, path.UserID, skill, confidence.Event{Kind: confidence.KindModule})
		if err != nil {
			return nil, err
		}
		outcome.NewConfidence = profile.Confidence
	}
	return outcome, nil
}

// PathProgress pairs a skill with its progression summary.
type PathProgress struct {
	Skill    string
	Progress progression.Progress
}

// SessionProgress is the whole-session view.
type SessionProgress struct {
	Session *store.Session
	Paths   []PathProgress
}

// Progress summarizes every path in a session.
func (s *Service) Progress(ctx context.Context, sessionID string) (*SessionProgress, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	paths, err := s.paths.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := &SessionProgress{Session: session}
	for _, p := range paths {
		out.Paths = append(out.Paths, PathProgress{
			Skill:    p.Skill,
			Progress: progression.Summarize(p),
		})
	}
	return out, nil
}

// Path returns one path document for display.
func (s *Service) Path(ctx context.Context, sessionID, skill string) (*progression.Path, error) {
	return s.paths.Get(ctx, sessionID, skill)
}
