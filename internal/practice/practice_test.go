package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/plaroindia/Pearl/internal/confidence"
	"github.com/plaroindia/Pearl/internal/llm"
	"github.com/plaroindia/Pearl/internal/pathgen"
	"github.com/plaroindia/Pearl/internal/store"
)

// fakeProfileRepo is an in-memory ProfileRepo.
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

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	attempts []store.PracticeAttemptData
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendCheckpointResult(_ context.Context, _ store.CheckpointResultData) error {
	return nil
}

func (f *fakeEventRepo) AppendPracticeAttempt(_ context.Context, data store.PracticeAttemptData) error {
	f.attempts = append(f.attempts, data)
	return nil
}

func (f *fakeEventRepo) PracticeHistory(_ context.Context, userID, skill string, _ int) ([]store.PracticeAttemptData, error) {
	var out []store.PracticeAttemptData
	for _, a := range f.attempts {
		if a.UserID != userID {
			continue
		}
		if skill != "" && a.Skill != skill {
			continue
		}
		out = append(out, a)
	}
	return out, nil
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

func newTestService(provider llm.Provider) (*Service, *fakeEventRepo) {
	events := &fakeEventRepo{}
	conf := confidence.NewService(&fakeProfileRepo{profiles: map[string]*store.Profile{}})
	return NewService(provider, pathgen.DefaultConfig(), events, conf), events
}

func practiceBatchJSON(count int) json.RawMessage {
	type q struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
	}
	var qs []q
	for i := 0; i < count; i++ {
		qs = append(qs, q{
			Question:     fmt.Sprintf("Question %d?", i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
			Explanation:  "because",
		})
	}
	out, _ := json.Marshal(map[string]any{"questions": qs})
	return out
}

func TestGenerateSetHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: practiceBatchJSON(6)})
	svc, _ := newTestService(mock)

	set := svc.GenerateSet(context.Background(), "SQL", "joins")

	if len(set.Questions) != SetSize {
		t.Fatalf("expected %d questions, got %d", SetSize, len(set.Questions))
	}
	if set.Topic != "joins" {
		t.Errorf("expected topic joins, got %q", set.Topic)
	}
}

func TestGenerateSetDefaultsTopicToSkill(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: practiceBatchJSON(5)})
	svc, _ := newTestService(mock)

	set := svc.GenerateSet(context.Background(), "SQL", "")
	if set.Topic != "SQL" {
		t.Errorf("expected topic SQL, got %q", set.Topic)
	}
}

func TestGenerateSetFallsBack(t *testing.T) {
	mock := llm.NewMockProvider() // every call errors
	svc, _ := newTestService(mock)

	set := svc.GenerateSet(context.Background(), "Kubernetes", "")

	if len(set.Questions) != SetSize {
		t.Fatalf("expected %d fallback questions, got %d", SetSize, len(set.Questions))
	}
	for i, q := range set.Questions {
		if !usableQuestion(q) {
			t.Errorf("fallback question %d invalid", i)
		}
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 attempts, got %d", mock.CallCount())
	}
}

func TestSubmitRecordsAttemptAndConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: practiceBatchJSON(5)})
	svc, events := newTestService(mock)
	ctx := context.Background()

	set := svc.GenerateSet(ctx, "SQL", "joins")

	// Correct answers follow the i%4 pattern; miss the last one.
	answers := []int{0, 1, 2, 3, 1}
	result, err := svc.Submit(ctx, "u1", set, answers, 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CorrectCount != 4 {
		t.Errorf("expected 4 correct, got %d", result.CorrectCount)
	}
	if result.Score != 80 {
		t.Errorf("expected score 80, got %v", result.Score)
	}
	// Practice delta: min(0.05, 0.8*0.1) = 0.05.
	if math.Abs(result.NewConfidence-0.05) > 1e-9 {
		t.Errorf("expected confidence 0.05, got %v", result.NewConfidence)
	}

	if len(events.attempts) != 1 {
		t.Fatalf("expected 1 recorded attempt, got %d", len(events.attempts))
	}
	if events.attempts[0].TimeTakenSecs != 120 {
		t.Errorf("expected time 120s, got %d", events.attempts[0].TimeTakenSecs)
	}
}

func TestHistoryAnalytics(t *testing.T) {
	svc, events := newTestService(llm.NewMockProvider())
	ctx := context.Background()

	events.attempts = []store.PracticeAttemptData{
		{UserID: "u1", Skill: "SQL", Score: 60},
		{UserID: "u1", Skill: "SQL", Score: 80},
		{UserID: "u1", Skill: "Python", Score: 100},
		{UserID: "u2", Skill: "SQL", Score: 40},
	}

	a, err := svc.History(ctx, "u1", "SQL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", a.Attempts)
	}
	if a.AvgScore != 70 {
		t.Errorf("expected avg 70, got %v", a.AvgScore)
	}
	if a.BestScore != 80 {
		t.Errorf("expected best 80, got %v", a.BestScore)
	}

	all, err := svc.History(ctx, "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if all.Attempts != 3 {
		t.Errorf("expected 3 attempts across skills, got %d", all.Attempts)
	}
}

func TestHistoryEmpty(t *testing.T) {
	svc, _ := newTestService(llm.NewMockProvider())
	a, err := svc.History(context.Background(), "nobody", "")
	if err != nil {
		t.Fatal(err)
	}
	if a.Attempts != 0 || a.AvgScore != 0 {
		t.Errorf("expected empty analytics, got %+v", a)
	}
}
