package journey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/plaroindia/Pearl/internal/confidence"
	"github.com/plaroindia/Pearl/internal/llm"
	"github.com/plaroindia/Pearl/internal/pathgen"
	"github.com/plaroindia/Pearl/internal/progression"
	"github.com/plaroindia/Pearl/internal/store"
)

// In-memory repo fakes.

type fakeSessionRepo struct {
	sessions map[string]*store.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, s *store.Session) error {
	clone := *s
	f.sessions[s.SessionID] = &clone
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, sessionID string) (*store.Session, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session: %w", store.ErrNotFound)
	}
	clone := *s
	return &clone, nil
}

type fakePathRepo struct {
	paths     map[string]*progression.Path
	conflicts int // UpdateCAS calls to fail with ErrConflict before succeeding
}

func pathKey(sessionID, skill string) string { return sessionID + "/" + skill }

func clonePath(p *progression.Path) *progression.Path {
	clone := *p
	clone.Modules = make([]progression.Module, len(p.Modules))
	copy(clone.Modules, p.Modules)
	for i := range clone.Modules {
		actions := make([]progression.Action, len(p.Modules[i].Actions))
		copy(actions, p.Modules[i].Actions)
		clone.Modules[i].Actions = actions
	}
	return &clone
}

func (f *fakePathRepo) Create(_ context.Context, p *progression.Path) error {
	p.Version = 1
	f.paths[pathKey(p.SessionID, p.Skill)] = clonePath(p)
	return nil
}

func (f *fakePathRepo) Get(_ context.Context, sessionID, skill string) (*progression.Path, error) {
	p, ok := f.paths[pathKey(sessionID, skill)]
	if !ok {
		return nil, fmt.Errorf("path: %w", store.ErrNotFound)
	}
	return clonePath(p), nil
}

func (f *fakePathRepo) List(_ context.Context, sessionID string) ([]*progression.Path, error) {
	var out []*progression.Path
	for _, p := range f.paths {
		if p.SessionID == sessionID {
			out = append(out, clonePath(p))
		}
	}
	return out, nil
}

func (f *fakePathRepo) UpdateCAS(_ context.Context, p *progression.Path) error {
	if f.conflicts > 0 {
		f.conflicts--
		return store.ErrConflict
	}
	stored, ok := f.paths[pathKey(p.SessionID, p.Skill)]
	if !ok || stored.Version != p.Version {
		return store.ErrConflict
	}
	p.Version++
	f.paths[pathKey(p.SessionID, p.Skill)] = clonePath(p)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*store.Profile
}

func (f *fakeProfileRepo) Get(_ context.Context, userID, skill string) (*store.Profile, error) {
	p, ok := f.profiles[userID+"/"+skill]
	if !ok {
		return nil, fmt.Errorf("profile: %w", store.ErrNotFound)
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProfileRepo) ListByUser(_ context.Context, _ string) ([]*store.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) Save(_ context.Context, p *store.Profile) error {
	clone := *p
	f.profiles[p.UserID+"/"+p.SkillName] = &clone
	return nil
}

type fakeEventRepo struct {
	checkpoints []store.CheckpointResultData
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendCheckpointResult(_ context.Context, data store.CheckpointResultData) error {
	f.checkpoints = append(f.checkpoints, data)
	return nil
}

func (f *fakeEventRepo) AppendPracticeAttempt(_ context.Context, _ store.PracticeAttemptData) error {
	return nil
}

func (f *fakeEventRepo) PracticeHistory(_ context.Context, _, _ string, _ int) ([]store.PracticeAttemptData, error) {
	return nil, nil
}

func (f *fakeEventRepo) CheckpointPassRate(_ context.Context, _, _ string) (int, int, error) {
	return 0, 0, nil
}

func (f *fakeEventRepo) RecentLLMRequests(_ context.Context, _ int) ([]store.LLMEventSummary, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

type testEnv struct {
	svc      *Service
	sessions *fakeSessionRepo
	paths    *fakePathRepo
	profiles *fakeProfileRepo
	events   *fakeEventRepo
}

func newTestEnv(provider llm.Provider) *testEnv {
	sessions := &fakeSessionRepo{sessions: map[string]*store.Session{}}
	paths := &fakePathRepo{paths: map[string]*progression.Path{}}
	profiles := &fakeProfileRepo{profiles: map[string]*store.Profile{}}
	events := &fakeEventRepo{}
	conf := confidence.NewService(profiles)

	// MaxAttempts 1 keeps fallback tests short.
	cfg := pathgen.Config{MaxAttempts: 1, MaxTokens: 2048, Temperature: 0.7}
	return &testEnv{
		svc:      New(provider, cfg, sessions, paths, events, conf),
		sessions: sessions,
		paths:    paths,
		profiles: profiles,
		events:   events,
	}
}

// seedPath installs a ready-made two-module path.
func seedPath(env *testEnv, sessionID, userID, skill string) *progression.Path {
	questions := []progression.Question{
		{Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "e"},
		{Text: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "e"},
		{Text: "q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "e"},
		{Text: "q4", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3, Explanation: "e"},
	}
	makeModule := func(name string) progression.Module {
		return progression.Module{
			Name: name,
			Actions: []progression.Action{
				{Type: progression.ActionOverview, Title: "Overview"},
				{Type: progression.ActionCourse, Title: "Course"},
				{Type: progression.ActionHandsOn, Title: "Hands-on"},
				{Type: progression.ActionCheckpoint, Title: "Checkpoint", Questions: questions, PassThreshold: 70},
			},
		}
	}
	path := progression.NewPath(sessionID, userID, skill, "beginner",
		[]progression.Module{makeModule("Basics"), makeModule("Advanced")})
	env.paths.Create(context.Background(), path)
	env.sessions.Create(context.Background(), &store.Session{
		SessionID: sessionID,
		UserID:    userID,
		Goal:      "test goal",
		Skills:    []string{skill},
	})
	return path
}

func skillListJSON(skills ...string) json.RawMessage {
	out, _ := json.Marshal(map[string]any{"skills": skills})
	return out
}

func TestStartCreatesPathPerSkill(t *testing.T) {
	// Skill extraction succeeds; path generation falls back to templates.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: skillListJSON("Python", "SQL", "REST APIs", "Git", "Docker"),
	})
	env := newTestEnv(mock)

	result, err := env.svc.Start(context.Background(), "u1", "become a backend developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Skills) != 5 {
		t.Fatalf("expected 5 skills, got %d", len(result.Skills))
	}
	if len(result.Paths) != 5 {
		t.Fatalf("expected 5 paths, got %d", len(result.Paths))
	}
	for _, p := range result.Paths {
		if p.TotalModules < 4 {
			t.Errorf("%s: expected at least 4 modules, got %d", p.Skill, p.TotalModules)
		}
		if p.CurrentModule != 1 {
			t.Errorf("%s: expected current module 1, got %d", p.Skill, p.CurrentModule)
		}
		for _, m := range p.Modules {
			if len(m.Actions) != 4 {
				t.Errorf("%s/%s: expected 4 actions, got %d", p.Skill, m.Name, len(m.Actions))
			}
		}
	}
	if _, err := env.sessions.Get(context.Background(), result.SessionID); err != nil {
		t.Errorf("session not persisted: %v", err)
	}
}

func TestStartFallbackSkills(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider()) // all LLM calls fail

	result, err := env.svc.Start(context.Background(), "u1", "I want a backend role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Python", "SQL", "REST APIs", "Git", "Docker"}
	if len(result.Skills) != len(want) {
		t.Fatalf("expected %d fallback skills, got %v", len(want), result.Skills)
	}
	for i, s := range want {
		if result.Skills[i] != s {
			t.Errorf("skill %d: expected %s, got %s", i, s, result.Skills[i])
		}
	}
}

func TestStartRejectsEmptyInput(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	if _, err := env.svc.Start(context.Background(), "", "goal"); err == nil {
		t.Fatal("expected error for empty user")
	}
	if _, err := env.svc.Start(context.Background(), "u1", ""); err == nil {
		t.Fatal("expected error for empty goal")
	}
}

func TestNextActionWalksTheModule(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	seedPath(env, "s1", "u1", "SQL")
	ctx := context.Background()

	next, ok, err := env.svc.NextAction(ctx, "s1", "SQL")
	if err != nil || !ok {
		t.Fatalf("expected next action, ok=%v err=%v", ok, err)
	}
	if next.ModuleID != 1 || next.ActionIndex != 0 {
		t.Fatalf("expected module 1 action 0, got module %d action %d", next.ModuleID, next.ActionIndex)
	}

	if _, err := env.svc.CompleteAction(ctx, "s1", "SQL", 1, 0); err != nil {
		t.Fatal(err)
	}

	next, ok, err = env.svc.NextAction(ctx, "s1", "SQL")
	if err != nil || !ok {
		t.Fatalf("expected next action, ok=%v err=%v", ok, err)
	}
	if next.ActionIndex != 1 {
		t.Errorf("expected action 1 after completing action 0, got %d", next.ActionIndex)
	}
}

func TestCompleteActionRejectsCheckpointSlot(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	seedPath(env, "s1", "u1", "SQL")

	_, err := env.svc.CompleteAction(context.Background(), "s1", "SQL", 1, 3)
	if err == nil {
		t.Fatal("expected checkpoint slot to be rejected")
	}
}

func TestHandsOnEarnsConfidence(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	seedPath(env, "s1", "u1", "SQL")
	ctx := context.Background()

	outcome, err := env.svc.CompleteAction(ctx, "s1", "SQL", 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(outcome.NewConfidence-0.15) > 1e-9 {
		t.Errorf("expected confidence 0.15 after hands-on, got %v", outcome.NewConfidence)
	}
}

func TestCheckpointPassUnlocksNextModule(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	seedPath(env, "s1", "u1", "SQL")
	ctx := context.Background()

	// Finish the three non-checkpoint actions.
	for i := 0; i < 3; i++ {
		if _, err := env.svc.CompleteAction(ctx, "s1", "SQL", 1, i); err != nil {
			t.Fatal(err)
		}
	}

	// 3 of 4 correct: 75%, passes the 70 threshold.
	outcome, err := env.svc.SubmitCheckpoint(ctx, "s1", "SQL", 1, []int{0, 1, 2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Result.Passed {
		t.Fatal("expected 75% to pass")
	}
	if outcome.Result.Score != 75 {
		t.Errorf("expected score 75, got %v", outcome.Result.Score)
	}
	if !outcome.ModuleCompleted || outcome.UnlockedModule != 2 {
		t.Errorf("expected module 1 completed and module 2 unlocked, got %+v", outcome)
	}

	// hands_on 0.15 + checkpoint (0.10 + 0.05*5/30) + module 0.08.
	want := 0.15 + (0.10 + 0.05*5.0/30.0) + 0.08
	if math.Abs(outcome.NewConfidence-want) > 1e-9 {
		t.Errorf("expected confidence %v, got %v", want, outcome.NewConfidence)
	}

	path, err := env.svc.Path(ctx, "s1", "SQL")
	if err != nil {
		t.Fatal(err)
	}
	if path.CurrentModule != 2 {
		t.Errorf("expected current module 2, got %d", path.CurrentModule)
	}
	if path.Modules[1].Status != progression.StatusActive {
		t.Errorf("expected module 2 active, got %s", path.Modules[1].Status)
	}
	if len(env.events.checkpoints) != 1 || !env.events.checkpoints[0].Passed {
		t.Errorf("expected 1 passed checkpoint event, got %+v", env.events.checkpoints)
	}
}

func TestCheckpointFailLeavesStateUntouched(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	seedPath(env, "s1", "u1", "SQL")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := env.svc.CompleteAction(ctx, "s1", "SQL", 1, i); err != nil {
			t.Fatal(err)
		}
	}
	confBefore := env.profiles.profiles["u1/SQL"].Confidence

	// 1 of 4 correct: 25%, fails.
	outcome, err := env.svc.SubmitCheckpoint(ctx, "s1", "SQL", 1, []int{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Result.Passed {
		t.Fatal("expected 25% to fail")
	}
	if outcome.ModuleCompleted {
		t.Error("failed checkpoint must not complete the module")
	}

	path, _ := env.svc.Path(ctx, "s1", "SQL")
	if path.CurrentModule != 1 {
		t.Errorf("expected current module still 1, got %d", path.CurrentModule)
	}
	if env.profiles.profiles["u1/SQL"].Confidence != confBefore {
		t.Error("failed checkpoint must not change confidence")
	}
	if len(env.events.checkpoints) != 1 || env.events.checkpoints[0].Passed {
		t.Errorf("expected 1 failed checkpoint event, got %+v", env.events.checkpoints)
	}

	// The learner can retry and pass.
	retry, err := env.svc.SubmitCheckpoint(ctx, "s1", "SQL", 1, []int{0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !retry.Result.Passed || !retry.ModuleCompleted {
		t.Errorf("expected retry to pass and complete the module, got %+v", retry)
	}
}

func TestLastModulePassCompletesPath(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	seedPath(env, "s1", "u1", "SQL")
	ctx := context.Background()

	for moduleID := 1; moduleID <= 2; moduleID++ {
		for i := 0; i < 3; i++ {
			if _, err := env.svc.CompleteAction(ctx, "s1", "SQL", moduleID, i); err != nil {
				t.Fatal(err)
			}
		}
		outcome, err := env.svc.SubmitCheckpoint(ctx, "s1", "SQL", moduleID, []int{0, 1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		if moduleID == 2 && !outcome.PathCompleted {
			t.Error("expected path completed after final module")
		}
	}

	if _, ok, _ := env.svc.NextAction(ctx, "s1", "SQL"); ok {
		t.Error("expected no next action on a completed path")
	}
}

func TestCASConflictSurfaces(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	seedPath(env, "s1", "u1", "SQL")
	env.paths.conflicts = 1

	_, err := env.svc.CompleteAction(context.Background(), "s1", "SQL", 1, 0)
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestProgressSummary(t *testing.T) {
	env := newTestEnv(llm.NewMockProvider())
	seedPath(env, "s1", "u1", "SQL")
	ctx := context.Background()

	if _, err := env.svc.CompleteAction(ctx, "s1", "SQL", 1, 0); err != nil {
		t.Fatal(err)
	}

	progress, err := env.svc.Progress(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress.Session.Goal != "test goal" {
		t.Errorf("unexpected session goal %q", progress.Session.Goal)
	}
	if len(progress.Paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(progress.Paths))
	}
	p := progress.Paths[0].Progress
	if p.ActionsCompleted != 1 {
		t.Errorf("expected 1 action completed, got %d", p.ActionsCompleted)
	}
	if p.CompletedModules != 0 {
		t.Errorf("expected 0 modules completed, got %d", p.CompletedModules)
	}
}
