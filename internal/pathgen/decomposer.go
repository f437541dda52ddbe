package pathgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/plaroindia/Pearl/internal/llm"
)

const decomposeSystemPrompt = `You are a career learning mentor who designs
progressive skill curricula. Break the given skill into modules ordered
from fundamentals to advanced application. Each module must build on the
previous one and end with something the learner can demonstrate.`

// Decomposer breaks a skill into an ordered module plan.
type Decomposer struct {
	provider llm.Provider
	config   Config
}

// NewDecomposer creates a Decomposer with the given provider and config.
func NewDecomposer(provider llm.Provider, cfg Config) *Decomposer {
	return &Decomposer{provider: provider, config: cfg}
}

// modulePlanOutput is the raw LLM response before validation.
type modulePlanOutput struct {
	Modules []struct {
		Name               string   `json:"name"`
		Description        string   `json:"description"`
		LearningObjectives []string `json:"learning_objectives"`
		CompletionCriteria string   `json:"completion_criteria"`
		EstimatedHours     float64  `json:"estimated_hours"`
	} `json:"modules"`
}

// Decompose produces 4-6 module skeletons for the skill. Generation
// failures never surface to the caller: after the attempt budget is
// exhausted the deterministic fallback plan is returned instead. Context
// cancellation is still honored.
func (d *Decomposer) Decompose(ctx context.Context, input DecomposeInput) []ModuleSpec {
	ctx = llm.WithPurpose(ctx, "decompose")

	for attempt := 0; attempt < d.config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}
		specs, err := d.generate(ctx, input)
		if err == nil {
			return specs
		}
	}

	return FallbackModules(input.Skill, input.Difficulty)
}

func (d *Decomposer) generate(ctx context.Context, input DecomposeInput) ([]ModuleSpec, error) {
	req := llm.Request{
		System: decomposeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDecomposeMessage(input)},
		},
		Schema:      ModulePlanSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw modulePlanOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if len(raw.Modules) < 4 || len(raw.Modules) > 6 {
		return nil, &ValidationError{
			Check:     "module-count",
			Message:   fmt.Sprintf("expected 4-6 modules, got %d", len(raw.Modules)),
			Retryable: true,
		}
	}

	specs := make([]ModuleSpec, len(raw.Modules))
	for i, m := range raw.Modules {
		if strings.TrimSpace(m.Name) == "" {
			return nil, &ValidationError{
				Check:     "module-name",
				Message:   fmt.Sprintf("module %d has an empty name", i+1),
				Retryable: true,
			}
		}
		hours := int(math.Round(m.EstimatedHours))
		if hours < 1 {
			hours = 4
		}
		specs[i] = ModuleSpec{
			Name:               strings.TrimSpace(m.Name),
			Description:        m.Description,
			LearningObjectives: m.LearningObjectives,
			CompletionCriteria: m.CompletionCriteria,
			EstimatedHours:     hours,
		}
	}
	return specs, nil
}

func buildDecomposeMessage(input DecomposeInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill: %s\n", input.Skill)
	fmt.Fprintf(&b, "Learner level: %s\n", input.Difficulty)
	if input.GoalContext != "" {
		fmt.Fprintf(&b, "Career goal: %s\n", input.GoalContext)
	}
	b.WriteString("\nDesign 4-6 modules. Calibrate depth to the learner level: ")
	b.WriteString("beginners need more fundamentals, advanced learners can skip basics.")
	return b.String()
}
