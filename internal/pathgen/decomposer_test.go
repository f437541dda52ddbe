package pathgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/plaroindia/Pearl/internal/llm"
)

func modulePlanJSON(names ...string) json.RawMessage {
	type mod struct {
		Name               string   `json:"name"`
		Description        string   `json:"description"`
		LearningObjectives []string `json:"learning_objectives"`
		CompletionCriteria string   `json:"completion_criteria"`
		EstimatedHours     float64  `json:"estimated_hours"`
	}
	var mods []mod
	for _, n := range names {
		mods = append(mods, mod{
			Name:               n,
			Description:        "covers " + n,
			LearningObjectives: []string{"objective one", "objective two"},
			CompletionCriteria: "finish the exercises",
			EstimatedHours:     5,
		})
	}
	out, _ := json.Marshal(map[string]any{"modules": mods})
	return out
}

func TestDecomposeHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: modulePlanJSON("SQL Basics", "Joins", "Aggregation", "Query Tuning", "Schema Design"),
	})
	d := NewDecomposer(mock, DefaultConfig())

	specs := d.Decompose(context.Background(), DecomposeInput{Skill: "SQL", Difficulty: "beginner"})

	if len(specs) != 5 {
		t.Fatalf("expected 5 modules, got %d", len(specs))
	}
	if specs[0].Name != "SQL Basics" {
		t.Errorf("expected first module 'SQL Basics', got %q", specs[0].Name)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestDecomposeRoundsFractionalHours(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{"modules": []map[string]any{
		{"name": "Basics", "description": "d", "learning_objectives": []string{"o"}, "completion_criteria": "c", "estimated_hours": 5.5},
		{"name": "Joins", "description": "d", "learning_objectives": []string{"o"}, "completion_criteria": "c", "estimated_hours": 2.4},
		{"name": "Tuning", "description": "d", "learning_objectives": []string{"o"}, "completion_criteria": "c", "estimated_hours": 0},
		{"name": "Design", "description": "d", "learning_objectives": []string{"o"}, "completion_criteria": "c", "estimated_hours": 8},
	}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	d := NewDecomposer(mock, DefaultConfig())

	specs := d.Decompose(context.Background(), DecomposeInput{Skill: "SQL", Difficulty: "beginner"})

	want := []int{6, 2, 4, 8}
	for i, hours := range want {
		if specs[i].EstimatedHours != hours {
			t.Errorf("module %d: expected %d hours, got %d", i+1, hours, specs[i].EstimatedHours)
		}
	}
}

func TestDecomposeRetriesThinPlan(t *testing.T) {
	// First response has too few modules; second is acceptable.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: modulePlanJSON("Only", "Three", "Modules")},
		llm.MockResponse{Content: modulePlanJSON("One", "Two", "Three", "Four")},
	)
	d := NewDecomposer(mock, DefaultConfig())

	specs := d.Decompose(context.Background(), DecomposeInput{Skill: "Go", Difficulty: "intermediate"})

	if len(specs) != 4 {
		t.Fatalf("expected 4 modules from retry, got %d", len(specs))
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 LLM calls, got %d", mock.CallCount())
	}
}

func TestDecomposeFallsBackAfterBudget(t *testing.T) {
	// Empty mock queue: every call errors.
	mock := llm.NewMockProvider()
	d := NewDecomposer(mock, DefaultConfig())

	specs := d.Decompose(context.Background(), DecomposeInput{Skill: "Kubernetes", Difficulty: "beginner"})

	if len(specs) != 4 {
		t.Fatalf("expected 4 fallback modules, got %d", len(specs))
	}
	if specs[0].Name != "Kubernetes Fundamentals" {
		t.Errorf("unexpected fallback module name %q", specs[0].Name)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected attempt budget of 3, got %d calls", mock.CallCount())
	}
}

func TestDecomposeHonorsCancellation(t *testing.T) {
	mock := llm.NewMockProvider()
	d := NewDecomposer(mock, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	specs := d.Decompose(ctx, DecomposeInput{Skill: "Rust", Difficulty: "beginner"})

	if len(specs) != 4 {
		t.Fatalf("expected fallback on cancellation, got %d modules", len(specs))
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls after cancellation, got %d", mock.CallCount())
	}
}
