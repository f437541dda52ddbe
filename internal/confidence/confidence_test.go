package confidence

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/plaroindia/Pearl/internal/store"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDeltaHandsOn(t *testing.T) {
	if d := Delta(Event{Kind: KindHandsOn}); !almostEqual(d, 0.15) {
		t.Errorf("expected 0.15, got %v", d)
	}
}

func TestDeltaCheckpointScalesWithScore(t *testing.T) {
	cases := []struct {
		score float64
		want  float64
	}{
		{70, 0.10},  // at the pass mark
		{75, 0.10 + 0.05*5.0/30.0}, // ~0.108
		{100, 0.15}, // perfect
		{50, 0.10},  // below threshold still floors at 0.10
	}
	for _, tc := range cases {
		d := Delta(Event{Kind: KindCheckpoint, Score: tc.score, Threshold: 70})
		if !almostEqual(d, tc.want) {
			t.Errorf("score %v: expected %v, got %v", tc.score, tc.want, d)
		}
	}
}

func TestDeltaCheckpointDefaultsThreshold(t *testing.T) {
	d := Delta(Event{Kind: KindCheckpoint, Score: 100})
	if !almostEqual(d, 0.15) {
		t.Errorf("expected 0.15 with default threshold, got %v", d)
	}
}

func TestDeltaPracticeCapped(t *testing.T) {
	if d := Delta(Event{Kind: KindPractice, Score: 30}); !almostEqual(d, 0.03) {
		t.Errorf("expected 0.03, got %v", d)
	}
	if d := Delta(Event{Kind: KindPractice, Score: 90}); !almostEqual(d, 0.05) {
		t.Errorf("expected cap at 0.05, got %v", d)
	}
}

func TestApplyClampsAtOne(t *testing.T) {
	if got := Apply(0.95, Event{Kind: KindHandsOn}); !almostEqual(got, 1.0) {
		t.Errorf("expected clamp at 1.0, got %v", got)
	}
}

func TestStatusBuckets(t *testing.T) {
	cases := []struct {
		conf float64
		want Status
	}{
		{0.85, StatusMastered},
		{0.8, StatusMastered},
		{0.5, StatusIntermediate},
		{0.2, StatusBeginner},
		{0.1, StatusNotStarted},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.conf); got != tc.want {
			t.Errorf("conf %v: expected %s, got %s", tc.conf, tc.want, got)
		}
	}
}

func TestGapSeverityNeverNegative(t *testing.T) {
	if g := GapSeverity(0.9, 0.8); g != 0 {
		t.Errorf("expected 0 gap above target, got %v", g)
	}
	if g := GapSeverity(0.3, 0); !almostEqual(g, 0.5) {
		t.Errorf("expected default target 0.8, got gap %v", g)
	}
}

func TestDifficultyFor(t *testing.T) {
	if d := DifficultyFor(0.1); d != "beginner" {
		t.Errorf("expected beginner, got %s", d)
	}
	if d := DifficultyFor(0.5); d != "intermediate" {
		t.Errorf("expected intermediate, got %s", d)
	}
	if d := DifficultyFor(0.7); d != "advanced" {
		t.Errorf("expected advanced, got %s", d)
	}
}

// fakeProfileRepo is an in-memory ProfileRepo for service tests.
type fakeProfileRepo struct {
	profiles map[string]*store.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*store.Profile{}}
}

func key(userID, skill string) string { return userID + "/" + skill }

func (f *fakeProfileRepo) Get(_ context.Context, userID, skill string) (*store.Profile, error) {
	p, ok := f.profiles[key(userID, skill)]
	if !ok {
		return nil, fmt.Errorf("profile: %w", store.ErrNotFound)
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProfileRepo) ListByUser(_ context.Context, userID string) ([]*store.Profile, error) {
	var out []*store.Profile
	for _, p := range f.profiles {
		if p.UserID == userID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Save(_ context.Context, p *store.Profile) error {
	clone := *p
	f.profiles[key(p.UserID, p.SkillName)] = &clone
	return nil
}

func TestServiceRecordCreatesProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Record(ctx, "u1", "SQL", Event{Kind: KindHandsOn})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(p.Confidence, 0.15) {
		t.Errorf("expected confidence 0.15, got %v", p.Confidence)
	}
	if p.Evidence["hands_on_completed"] != 1 {
		t.Errorf("expected evidence count 1, got %d", p.Evidence["hands_on_completed"])
	}
}

func TestServiceRecordAccumulates(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Record(ctx, "u1", "SQL", Event{Kind: KindCheckpoint, Score: 75, Threshold: 70}); err != nil {
		t.Fatal(err)
	}
	p, err := svc.Record(ctx, "u1", "SQL", Event{Kind: KindModule})
	if err != nil {
		t.Fatal(err)
	}

	want := (0.10 + 0.05*5.0/30.0) + 0.08
	if !almostEqual(p.Confidence, want) {
		t.Errorf("expected confidence %v, got %v", want, p.Confidence)
	}
}

func TestServiceRecordPracticeTracksCount(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Record(ctx, "u1", "SQL", Event{Kind: KindPractice, Score: 80})
	if err != nil {
		t.Fatal(err)
	}
	if p.PracticeCount != 1 {
		t.Errorf("expected practice count 1, got %d", p.PracticeCount)
	}
	if p.LastPracticedAt == nil {
		t.Error("expected last practiced timestamp")
	}
}

func TestGapReportReadiness(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo)
	ctx := context.Background()

	repo.profiles[key("u1", "SQL")] = &store.Profile{UserID: "u1", SkillName: "SQL", Confidence: 0.8}
	repo.profiles[key("u1", "Python")] = &store.Profile{UserID: "u1", SkillName: "Python", Confidence: 0.4}

	report, err := svc.GapReport(ctx, "u1", []string{"SQL", "Python", "Git"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Skills) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report.Skills))
	}

	// (0.8+0.4+0)/(3*0.8)*100 = 50
	if !almostEqual(report.Readiness, 50) {
		t.Errorf("expected readiness 50, got %v", report.Readiness)
	}
	if report.ReadinessLevel != "progressing_well" {
		t.Errorf("expected progressing_well, got %s", report.ReadinessLevel)
	}

	if report.Skills[2].Skill != "Git" || report.Skills[2].Status != StatusNotStarted {
		t.Errorf("expected git row not_started, got %+v", report.Skills[2])
	}
	if !almostEqual(report.Skills[1].Gap, 0.4) {
		t.Errorf("expected python gap 0.4, got %v", report.Skills[1].Gap)
	}
}

func TestGapReportEmptySkills(t *testing.T) {
	svc := NewService(newFakeProfileRepo())
	report, err := svc.GapReport(context.Background(), "u1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if report.Readiness != 0 || report.ReadinessLevel != "getting_started" {
		t.Errorf("expected zero readiness, got %+v", report)
	}
}
