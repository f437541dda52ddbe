package pathgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plaroindia/Pearl/internal/catalog"
	"github.com/plaroindia/Pearl/internal/llm"
	"github.com/plaroindia/Pearl/internal/progression"
)

const actionSystemPrompt = `You are a career learning mentor assembling
one module of a learning path. Produce the module's three content
actions: a short overview to orient the learner, a structured course
covering the objectives, and a hands-on exercise that applies them.
Recommend a real platform and link only when you are confident one
exists.`

const questionSystemPrompt = `You are a career learning mentor writing
checkpoint quizzes. Write multiple-choice questions that test whether the
learner met the module's objectives. Each question has exactly 4 options
with one correct answer and a short explanation.`

// Populator attaches the fixed action sequence to a module skeleton.
type Populator struct {
	provider llm.Provider
	config   Config
}

// NewPopulator creates a Populator with the given provider and config.
func NewPopulator(provider llm.Provider, cfg Config) *Populator {
	return &Populator{provider: provider, config: cfg}
}

// ActionContent is the learner-facing material for one content action.
type ActionContent struct {
	Title        string
	Description  string
	Platform     string
	URL          string
	DurationMins int
}

// actionPlanOutput is the raw LLM response before validation.
type actionPlanOutput struct {
	Actions []struct {
		Type         string `json:"type"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		Platform     string `json:"platform"`
		URL          string `json:"url"`
		DurationMins int    `json:"duration_mins"`
	} `json:"actions"`
}

// questionBatchOutput is the raw LLM response before validation.
type questionBatchOutput struct {
	Questions []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Explanation  string   `json:"explanation"`
	} `json:"questions"`
}

// contentOrder is the fixed slot sequence ahead of the checkpoint.
var contentOrder = []progression.ActionType{
	progression.ActionOverview,
	progression.ActionCourse,
	progression.ActionHandsOn,
}

// defaultDurations applies when the generator omits or zeroes a duration.
var defaultDurations = map[progression.ActionType]int{
	progression.ActionOverview: 15,
	progression.ActionCourse:   60,
	progression.ActionHandsOn:  90,
}

// Populate builds the four actions for a module, in the fixed order
// overview, course, hands_on, checkpoint. Content and checkpoint
// questions each come from the LLM with their own retry budget;
// exhausted retries use the deterministic templates. Catalog enrichment
// fills in resources the generator left blank, best effort.
func (p *Populator) Populate(ctx context.Context, skill string, spec ModuleSpec) []progression.Action {
	content := p.generateContent(ctx, skill, spec)
	questions := p.generateQuestions(ctx, skill, spec)

	threshold := p.config.PassThreshold
	if threshold <= 0 {
		threshold = progression.DefaultPassThreshold
	}

	actions := make([]progression.Action, 0, 4)
	for _, typ := range contentOrder {
		c := content[typ]
		actions = append(actions, progression.Action{
			Type:         typ,
			Title:        c.Title,
			Description:  c.Description,
			Platform:     c.Platform,
			URL:          c.URL,
			DurationMins: c.DurationMins,
		})
	}
	actions = append(actions, progression.Action{
		Type:          progression.ActionCheckpoint,
		Title:         fmt.Sprintf("Checkpoint: %s", spec.Name),
		Description:   "Pass this quiz to unlock the next module.",
		DurationMins:  20,
		Questions:     questions,
		PassThreshold: threshold,
	})

	enrich(skill, actions)
	return actions
}

// generateContent asks the LLM for the three content actions. After the
// attempt budget the deterministic templates take over.
func (p *Populator) generateContent(ctx context.Context, skill string, spec ModuleSpec) map[progression.ActionType]ActionContent {
	ctx = llm.WithPurpose(ctx, "actions")

	for attempt := 0; attempt < p.config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		content, err := p.generateActionBatch(ctx, skill, spec)
		if err == nil {
			return content
		}
	}

	return FallbackActions(spec)
}

func (p *Populator) generateActionBatch(ctx context.Context, skill string, spec ModuleSpec) (map[progression.ActionType]ActionContent, error) {
	req := llm.Request{
		System: actionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildActionMessage(skill, spec)},
		},
		Schema:      ActionPlanSchema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw actionPlanOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	content := make(map[progression.ActionType]ActionContent, len(contentOrder))
	for _, a := range raw.Actions {
		typ, err := progression.ParseActionType(a.Type)
		if err != nil || typ == progression.ActionCheckpoint {
			return nil, &ValidationError{
				Check:     "action-type",
				Message:   fmt.Sprintf("unexpected action type %q", a.Type),
				Retryable: true,
			}
		}
		if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Description) == "" {
			return nil, &ValidationError{
				Check:     "action-content",
				Message:   fmt.Sprintf("%s action is missing title or description", typ),
				Retryable: true,
			}
		}
		duration := a.DurationMins
		if duration < 1 {
			duration = defaultDurations[typ]
		}
		content[typ] = ActionContent{
			Title:        strings.TrimSpace(a.Title),
			Description:  strings.TrimSpace(a.Description),
			Platform:     strings.TrimSpace(a.Platform),
			URL:          strings.TrimSpace(a.URL),
			DurationMins: duration,
		}
	}

	for _, typ := range contentOrder {
		if _, ok := content[typ]; !ok {
			return nil, &ValidationError{
				Check:     "action-slots",
				Message:   fmt.Sprintf("plan is missing the %s action", typ),
				Retryable: true,
			}
		}
	}
	return content, nil
}

func buildActionMessage(skill string, spec ModuleSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill: %s\n", skill)
	fmt.Fprintf(&b, "Module: %s\n", spec.Name)
	fmt.Fprintf(&b, "Covers: %s\n", spec.Description)
	if len(spec.LearningObjectives) > 0 {
		b.WriteString("Objectives:\n")
		for _, obj := range spec.LearningObjectives {
			fmt.Fprintf(&b, "- %s\n", obj)
		}
	}
	if spec.CompletionCriteria != "" {
		fmt.Fprintf(&b, "Done when: %s\n", spec.CompletionCriteria)
	}
	b.WriteString("\nProduce one overview, one course, and one hands_on action for this module.")
	return b.String()
}

// generateQuestions asks the LLM for a checkpoint batch. A batch is
// accepted only if it contains at least 4 structurally valid questions.
func (p *Populator) generateQuestions(ctx context.Context, skill string, spec ModuleSpec) []progression.Question {
	ctx = llm.WithPurpose(ctx, "questions")

	for attempt := 0; attempt < p.config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		questions, err := p.generateBatch(ctx, skill, spec)
		if err == nil {
			return questions
		}
	}

	return FallbackQuestions(skill, spec)
}

func (p *Populator) generateBatch(ctx context.Context, skill string, spec ModuleSpec) ([]progression.Question, error) {
	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionMessage(skill, spec)},
		},
		Schema:      QuestionBatchSchema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionBatchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	var valid []progression.Question
	for _, q := range raw.Questions {
		question := progression.Question{
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		}
		if validQuestion(question) {
			valid = append(valid, question)
		}
	}

	if len(valid) < 4 {
		return nil, &ValidationError{
			Check:     "question-count",
			Message:   fmt.Sprintf("batch has %d valid questions, need at least 4", len(valid)),
			Retryable: true,
		}
	}
	return valid[:4], nil
}

func buildQuestionMessage(skill string, spec ModuleSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill: %s\n", skill)
	fmt.Fprintf(&b, "Module: %s\n", spec.Name)
	fmt.Fprintf(&b, "Covers: %s\n", spec.Description)
	if len(spec.LearningObjectives) > 0 {
		fmt.Fprintf(&b, "Objectives:\n")
		for _, obj := range spec.LearningObjectives {
			fmt.Fprintf(&b, "- %s\n", obj)
		}
	}
	b.WriteString("\nWrite 4 multiple-choice questions testing these objectives.")
	return b.String()
}

// enrich attaches a curated catalog resource to each non-checkpoint
// action that the generator left without one. Actions that already carry
// a URL are kept; missing catalog entries leave the action as-is.
func enrich(skill string, actions []progression.Action) {
	kinds := map[progression.ActionType]catalog.Kind{
		progression.ActionOverview: catalog.KindVideo,
		progression.ActionCourse:   catalog.KindText,
		progression.ActionHandsOn:  catalog.KindTask,
	}

	for i := range actions {
		kind, ok := kinds[actions[i].Type]
		if !ok || actions[i].URL != "" {
			continue
		}
		rs := catalog.ForSkill(skill, kind)
		if len(rs) == 0 && kind == catalog.KindText {
			// Not every skill has coursework; a long-form video works.
			rs = catalog.ForSkill(skill, catalog.KindVideo)
		}
		if len(rs) == 0 {
			continue
		}
		r := rs[0]
		if actions[i].Type == progression.ActionOverview {
			// Shortest video makes the better orientation piece.
			for _, cand := range rs[1:] {
				if cand.DurationMins < r.DurationMins {
					r = cand
				}
			}
		}
		actions[i].Platform = r.Platform
		actions[i].URL = r.URL
		if r.DurationMins > 0 {
			actions[i].DurationMins = r.DurationMins
		}
	}
}
