package optimizer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/plaroindia/Pearl/internal/llm"
)

func testInput() Input {
	return Input{
		Confidences: map[string]float64{
			"SQL":    0.8,
			"Python": 0.3,
			"Git":    0.75,
		},
		RequiredSkills:  []string{"SQL", "Python", "Docker", "Git"},
		TimeBudgetWeeks: 12,
		Preference:      "hands_on",
	}
}

func TestHeuristicOrdersByGap(t *testing.T) {
	plan := Heuristic(testInput())

	// Gaps: Docker 1.0, Python 0.7, Git 0.25, SQL 0.2.
	want := []string{"Docker", "Python", "Git", "SQL"}
	for i, skill := range want {
		if plan.Entries[i].Skill != skill {
			t.Errorf("position %d: expected %s, got %s", i, skill, plan.Entries[i].Skill)
		}
		if plan.Entries[i].Priority != i+1 {
			t.Errorf("position %d: expected priority %d, got %d", i, i+1, plan.Entries[i].Priority)
		}
	}
	if plan.Source != "heuristic" {
		t.Errorf("expected heuristic source, got %q", plan.Source)
	}
}

func TestHeuristicTiesKeepDeclarationOrder(t *testing.T) {
	in := Input{
		Confidences:     map[string]float64{},
		RequiredSkills:  []string{"A", "B", "C"},
		TimeBudgetWeeks: 6,
	}
	plan := Heuristic(in)
	for i, skill := range []string{"A", "B", "C"} {
		if plan.Entries[i].Skill != skill {
			t.Errorf("position %d: expected %s, got %s", i, skill, plan.Entries[i].Skill)
		}
	}
}

func TestHeuristicSkipModulesForKnownSkills(t *testing.T) {
	plan := Heuristic(testInput())

	for _, e := range plan.Entries {
		switch e.Skill {
		case "SQL", "Git": // confidence > 0.7
			if len(e.SkipModules) != 2 || e.SkipModules[0] != 1 || e.SkipModules[1] != 2 {
				t.Errorf("%s: expected skip modules [1 2], got %v", e.Skill, e.SkipModules)
			}
		default:
			if len(e.SkipModules) != 0 {
				t.Errorf("%s: expected no skips, got %v", e.Skill, e.SkipModules)
			}
		}
	}
}

func TestHeuristicWeeksProportionalToGap(t *testing.T) {
	plan := Heuristic(testInput())

	var total int
	for _, e := range plan.Entries {
		if e.EstimatedWeeks < 1 {
			t.Errorf("%s: expected at least 1 week, got %d", e.Skill, e.EstimatedWeeks)
		}
		total += e.EstimatedWeeks
	}
	// Docker (gap 1.0) should get the largest share of the 12 weeks.
	if plan.Entries[0].EstimatedWeeks <= plan.Entries[3].EstimatedWeeks {
		t.Errorf("expected biggest gap to get most weeks: %v vs %v",
			plan.Entries[0].EstimatedWeeks, plan.Entries[3].EstimatedWeeks)
	}
}

func TestHeuristicParallelTracks(t *testing.T) {
	plan := Heuristic(testInput())

	// Sorted entries: Docker, Python, Git (0.25), SQL (0.2). Only the
	// trailing pair is low-gap on both sides.
	if len(plan.ParallelTracks) != 1 {
		t.Fatalf("expected 1 parallel track, got %d", len(plan.ParallelTracks))
	}
	if plan.ParallelTracks[0] != [2]string{"Git", "SQL"} {
		t.Errorf("expected Git+SQL track, got %v", plan.ParallelTracks[0])
	}
}

func TestHeuristicContentMix(t *testing.T) {
	plan := Heuristic(testInput())
	if plan.ContentMix["practice"] != 0.6 {
		t.Errorf("expected hands_on practice weight 0.6, got %v", plan.ContentMix["practice"])
	}
}

func TestOptimizeUsesLLMPlan(t *testing.T) {
	out, _ := json.Marshal(map[string]any{
		"entries": []map[string]any{
			{"skill": "Docker", "priority": 1, "estimated_weeks": 5, "skip_modules": []int{}},
			{"skill": "Python", "priority": 2, "estimated_weeks": 4, "skip_modules": []int{}},
			{"skill": "Git", "priority": 3, "estimated_weeks": 2, "skip_modules": []int{1, 2}},
			{"skill": "SQL", "priority": 4, "estimated_weeks": 1, "skip_modules": []int{1, 2}},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: out})
	o := New(mock, DefaultConfig())

	plan, err := o.Optimize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Source != "llm" {
		t.Fatalf("expected llm source, got %q", plan.Source)
	}
	if plan.Entries[0].Skill != "Docker" {
		t.Errorf("expected LLM ordering preserved, got %s first", plan.Entries[0].Skill)
	}
	if plan.Entries[0].EstimatedWeeks != 5 {
		t.Errorf("expected LLM week estimate kept, got %d", plan.Entries[0].EstimatedWeeks)
	}
}

func TestOptimizeRejectsMisorderedPlan(t *testing.T) {
	// Python (gap 0.7) ahead of Docker (gap 1.0) violates the
	// biggest-gap-first ordering; the heuristic takes over.
	out, _ := json.Marshal(map[string]any{
		"entries": []map[string]any{
			{"skill": "Python", "priority": 1, "estimated_weeks": 5, "skip_modules": []int{}},
			{"skill": "Docker", "priority": 2, "estimated_weeks": 4, "skip_modules": []int{}},
			{"skill": "Git", "priority": 3, "estimated_weeks": 2, "skip_modules": []int{}},
			{"skill": "SQL", "priority": 4, "estimated_weeks": 1, "skip_modules": []int{}},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: out})
	o := New(mock, DefaultConfig())

	plan, err := o.Optimize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Source != "heuristic" {
		t.Fatalf("expected heuristic fallback for misordered plan, got %q", plan.Source)
	}
	if plan.Entries[0].Skill != "Docker" {
		t.Errorf("expected Docker first after fallback, got %s", plan.Entries[0].Skill)
	}
}

func TestOptimizeRejectsDuplicateSkills(t *testing.T) {
	out, _ := json.Marshal(map[string]any{
		"entries": []map[string]any{
			{"skill": "Docker", "priority": 1, "estimated_weeks": 5, "skip_modules": []int{}},
			{"skill": "Docker", "priority": 2, "estimated_weeks": 4, "skip_modules": []int{}},
			{"skill": "Git", "priority": 3, "estimated_weeks": 2, "skip_modules": []int{}},
			{"skill": "SQL", "priority": 4, "estimated_weeks": 1, "skip_modules": []int{}},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: out})
	o := New(mock, DefaultConfig())

	plan, err := o.Optimize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Source != "heuristic" {
		t.Errorf("expected heuristic fallback for duplicate skill, got %q", plan.Source)
	}
}

func TestBudgetWeeks(t *testing.T) {
	cases := []struct {
		hours int
		perWk float64
		want  int
	}{
		{60, 10, 6},
		{61, 10, 7},
		{5, 10, 1},
		{0, 10, 1},
		{40, 0, 4}, // unset allowance falls back to 10h/week
	}
	for _, c := range cases {
		if got := BudgetWeeks(c.hours, c.perWk); got != c.want {
			t.Errorf("BudgetWeeks(%d, %v) = %d, want %d", c.hours, c.perWk, got, c.want)
		}
	}
}

func TestOptimizeFallsBackOnBadPlan(t *testing.T) {
	// Plan names a skill outside the required set.
	out, _ := json.Marshal(map[string]any{
		"entries": []map[string]any{
			{"skill": "Blockchain", "priority": 1, "estimated_weeks": 5, "skip_modules": []int{}},
			{"skill": "Docker", "priority": 2, "estimated_weeks": 4, "skip_modules": []int{}},
			{"skill": "SQL", "priority": 3, "estimated_weeks": 2, "skip_modules": []int{}},
			{"skill": "Git", "priority": 4, "estimated_weeks": 1, "skip_modules": []int{}},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: out})
	o := New(mock, DefaultConfig())

	plan, err := o.Optimize(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Source != "heuristic" {
		t.Errorf("expected heuristic fallback, got %q", plan.Source)
	}
}

func TestOptimizeRejectsEmptyInput(t *testing.T) {
	o := New(nil, DefaultConfig())
	if _, err := o.Optimize(context.Background(), Input{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}
