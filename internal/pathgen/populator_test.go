package pathgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/plaroindia/Pearl/internal/llm"
	"github.com/plaroindia/Pearl/internal/progression"
)

type actionItem struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Platform     string `json:"platform,omitempty"`
	URL          string `json:"url,omitempty"`
	DurationMins int    `json:"duration_mins"`
}

func actionPlanJSON(items ...actionItem) json.RawMessage {
	out, _ := json.Marshal(map[string]any{"actions": items})
	return out
}

// fullActionPlan is a valid three-slot plan with generator-supplied
// resources on the course action.
func fullActionPlan() json.RawMessage {
	return actionPlanJSON(
		actionItem{Type: "overview", Title: "Watch: Joins in 10 Minutes", Description: "Orientation to join types.", DurationMins: 10},
		actionItem{Type: "course", Title: "Study: Mastering SQL Joins", Description: "Work through the join chapters.", Platform: "Mode", URL: "https://mode.com/sql-tutorial/sql-joins/", DurationMins: 45},
		actionItem{Type: "hands_on", Title: "Build: Join Two Datasets", Description: "Join orders to customers and verify row counts.", DurationMins: 80},
	)
}

func questionBatchJSON(count, optionCount int) json.RawMessage {
	type q struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
	}
	var qs []q
	for i := 0; i < count; i++ {
		opts := make([]string, optionCount)
		for j := range opts {
			opts[j] = "option"
		}
		qs = append(qs, q{
			Question:     "What does a JOIN do?",
			Options:      opts,
			CorrectIndex: 1,
			Explanation:  "It combines rows from two tables.",
		})
	}
	out, _ := json.Marshal(map[string]any{"questions": qs})
	return out
}

func testSpec() ModuleSpec {
	return ModuleSpec{
		Name:               "SQL Joins",
		Description:        "Inner, outer, and cross joins.",
		LearningObjectives: []string{"Write inner joins", "Choose the right join type"},
		CompletionCriteria: "Query two related tables",
		EstimatedHours:     5,
	}
}

func TestPopulateActionOrder(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: fullActionPlan()},
		llm.MockResponse{Content: questionBatchJSON(4, 4)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "SQL", testSpec())

	if len(actions) != 4 {
		t.Fatalf("expected 4 actions, got %d", len(actions))
	}
	want := []progression.ActionType{
		progression.ActionOverview,
		progression.ActionCourse,
		progression.ActionHandsOn,
		progression.ActionCheckpoint,
	}
	for i, typ := range want {
		if actions[i].Type != typ {
			t.Errorf("action %d: expected %s, got %s", i, typ, actions[i].Type)
		}
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 LLM calls (actions + questions), got %d", mock.CallCount())
	}
}

func TestPopulateGeneratedContent(t *testing.T) {
	// The plan arrives in slot order hands_on, overview, course; the
	// populator must place each item by type, not by position.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: actionPlanJSON(
			actionItem{Type: "hands_on", Title: "Build: Join Two Datasets", Description: "Join orders to customers.", DurationMins: 80},
			actionItem{Type: "overview", Title: "Watch: Joins in 10 Minutes", Description: "Orientation to join types.", DurationMins: 10},
			actionItem{Type: "course", Title: "Study: Mastering SQL Joins", Description: "Work through the join chapters.", Platform: "Mode", URL: "https://mode.com/sql-tutorial/sql-joins/", DurationMins: 45},
		)},
		llm.MockResponse{Content: questionBatchJSON(4, 4)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "SQL", testSpec())

	if actions[0].Title != "Watch: Joins in 10 Minutes" {
		t.Errorf("expected generated overview title, got %q", actions[0].Title)
	}
	if actions[0].DurationMins != 10 {
		t.Errorf("expected generated overview duration 10, got %d", actions[0].DurationMins)
	}
	if actions[1].URL != "https://mode.com/sql-tutorial/sql-joins/" {
		t.Errorf("expected generated course URL kept, got %q", actions[1].URL)
	}
	if actions[1].Platform != "Mode" {
		t.Errorf("expected generated course platform kept, got %q", actions[1].Platform)
	}
	if actions[2].Title != "Build: Join Two Datasets" {
		t.Errorf("expected generated hands-on title, got %q", actions[2].Title)
	}
}

func TestPopulateContentFallsBackToTemplates(t *testing.T) {
	// Every content attempt is missing the hands_on slot; the question
	// batch is fine. Templates cover the three content actions.
	thin := actionPlanJSON(
		actionItem{Type: "overview", Title: "Watch", Description: "d", DurationMins: 10},
		actionItem{Type: "course", Title: "Study", Description: "d", DurationMins: 45},
		actionItem{Type: "course", Title: "Study again", Description: "d", DurationMins: 45},
	)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: thin},
		llm.MockResponse{Content: thin},
		llm.MockResponse{Content: thin},
		llm.MockResponse{Content: questionBatchJSON(4, 4)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "SQL", testSpec())

	if actions[0].Title != "Overview: SQL Joins" {
		t.Errorf("expected template overview title, got %q", actions[0].Title)
	}
	if actions[2].Title != "Hands-on: SQL Joins" {
		t.Errorf("expected template hands-on title, got %q", actions[2].Title)
	}
	if len(actions[3].Questions) != 4 {
		t.Fatalf("question generation should still run after content fallback, got %d questions", len(actions[3].Questions))
	}
	if actions[3].Questions[0].Text != "What does a JOIN do?" {
		t.Errorf("expected generated questions, got %q", actions[3].Questions[0].Text)
	}
	if mock.CallCount() != 4 {
		t.Errorf("expected 3 content attempts + 1 question call, got %d", mock.CallCount())
	}
}

func TestPopulateDefaultsZeroDurations(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: actionPlanJSON(
			actionItem{Type: "overview", Title: "Watch", Description: "d"},
			actionItem{Type: "course", Title: "Study", Description: "d"},
			actionItem{Type: "hands_on", Title: "Build", Description: "d"},
		)},
		llm.MockResponse{Content: questionBatchJSON(4, 4)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "COBOL", testSpec())

	want := []int{15, 60, 90}
	for i, mins := range want {
		if actions[i].DurationMins != mins {
			t.Errorf("action %d: expected default %d mins, got %d", i, mins, actions[i].DurationMins)
		}
	}
}

func TestPopulateCheckpointQuestions(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: fullActionPlan()},
		llm.MockResponse{Content: questionBatchJSON(5, 4)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "SQL", testSpec())

	cp := actions[3]
	if len(cp.Questions) != 4 {
		t.Fatalf("expected checkpoint capped at 4 questions, got %d", len(cp.Questions))
	}
	if cp.PassThreshold != 70 {
		t.Errorf("expected pass threshold 70, got %v", cp.PassThreshold)
	}
	if cp.Questions[0].CorrectIndex != 1 {
		t.Errorf("expected correct index 1, got %d", cp.Questions[0].CorrectIndex)
	}
}

func TestPopulateConfiguredPassThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PassThreshold = 85

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: fullActionPlan()},
		llm.MockResponse{Content: questionBatchJSON(4, 4)},
	)
	p := NewPopulator(mock, cfg)

	actions := p.Populate(context.Background(), "SQL", testSpec())

	if actions[3].PassThreshold != 85 {
		t.Errorf("expected configured threshold 85, got %v", actions[3].PassThreshold)
	}
}

func TestPopulateRejectsMalformedBatch(t *testing.T) {
	// Three options per question is structurally invalid; after the retry
	// budget the fallback bank takes over.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: fullActionPlan()},
		llm.MockResponse{Content: questionBatchJSON(4, 3)},
		llm.MockResponse{Content: questionBatchJSON(4, 3)},
		llm.MockResponse{Content: questionBatchJSON(4, 3)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "SQL", testSpec())

	cp := actions[3]
	if len(cp.Questions) != 4 {
		t.Fatalf("expected 4 fallback questions, got %d", len(cp.Questions))
	}
	if mock.CallCount() != 4 {
		t.Errorf("expected 1 content call + 3 question attempts, got %d", mock.CallCount())
	}
	for i, q := range cp.Questions {
		if !validQuestion(q) {
			t.Errorf("fallback question %d is structurally invalid", i)
		}
	}
}

func TestPopulateCatalogEnrichment(t *testing.T) {
	// Content plan without resource links; the catalog fills them in.
	bare := actionPlanJSON(
		actionItem{Type: "overview", Title: "Watch", Description: "d", DurationMins: 10},
		actionItem{Type: "course", Title: "Study", Description: "d", DurationMins: 45},
		actionItem{Type: "hands_on", Title: "Build", Description: "d", DurationMins: 80},
	)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bare},
		llm.MockResponse{Content: questionBatchJSON(4, 4)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "Python", testSpec())

	if actions[0].URL == "" {
		t.Error("expected overview to link a curated resource")
	}
	if actions[0].Platform != "YouTube" {
		t.Errorf("expected YouTube overview, got %q", actions[0].Platform)
	}
	// Shortest python video is the 2-minute primer.
	if actions[0].DurationMins != 2 {
		t.Errorf("expected shortest video for overview, got %d mins", actions[0].DurationMins)
	}
	if actions[2].Platform != "freeCodeCamp" {
		t.Errorf("expected freeCodeCamp hands-on, got %q", actions[2].Platform)
	}
	if actions[3].URL != "" {
		t.Error("checkpoint should not be enriched")
	}
}

func TestPopulateEnrichmentKeepsGeneratedLinks(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: actionPlanJSON(
			actionItem{Type: "overview", Title: "Watch", Description: "d", Platform: "Vimeo", URL: "https://vimeo.com/py-intro", DurationMins: 8},
			actionItem{Type: "course", Title: "Study", Description: "d", DurationMins: 45},
			actionItem{Type: "hands_on", Title: "Build", Description: "d", DurationMins: 80},
		)},
		llm.MockResponse{Content: questionBatchJSON(4, 4)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "Python", testSpec())

	if actions[0].URL != "https://vimeo.com/py-intro" {
		t.Errorf("enrichment must not replace a generated link, got %q", actions[0].URL)
	}
	if actions[0].Platform != "Vimeo" {
		t.Errorf("enrichment must not replace a generated platform, got %q", actions[0].Platform)
	}
	if actions[2].URL == "" {
		t.Error("expected catalog link on the bare hands-on action")
	}
}

func TestPopulateUnknownSkillSkipsEnrichment(t *testing.T) {
	bare := actionPlanJSON(
		actionItem{Type: "overview", Title: "Watch", Description: "d", DurationMins: 10},
		actionItem{Type: "course", Title: "Study", Description: "d", DurationMins: 45},
		actionItem{Type: "hands_on", Title: "Build", Description: "d", DurationMins: 80},
	)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bare},
		llm.MockResponse{Content: questionBatchJSON(4, 4)},
	)
	p := NewPopulator(mock, DefaultConfig())

	actions := p.Populate(context.Background(), "Underwater Basket Weaving", testSpec())

	for i, a := range actions {
		if a.URL != "" {
			t.Errorf("action %d: expected no URL for unknown skill, got %q", i, a.URL)
		}
	}
}

func TestFallbackQuestionsDistinctAnswers(t *testing.T) {
	qs := FallbackQuestions("SQL", testSpec())
	if len(qs) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(qs))
	}
	seen := map[int]bool{}
	for _, q := range qs {
		if !validQuestion(q) {
			t.Errorf("invalid fallback question %q", q.Text)
		}
		seen[q.CorrectIndex] = true
	}
	if len(seen) < 2 {
		t.Error("fallback answers should not all share one index")
	}
}
