package optimizer

import "github.com/plaroindia/Pearl/internal/llm"

// PlanSchema defines the JSON schema for LLM plan optimization responses.
var PlanSchema = &llm.Schema{
	Name:        "learning-plan",
	Description: "A prioritized study plan covering every required skill",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"entries": map[string]any{
				"type":        "array",
				"description": "One entry per required skill, highest priority first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill": map[string]any{
							"type":        "string",
							"description": "Skill name, exactly as given in the request",
						},
						"priority": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "1 is the most urgent skill",
						},
						"estimated_weeks": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Weeks of the budget allotted to this skill",
						},
						"skip_modules": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"description": "Module IDs to skip for already-known skills; usually empty",
						},
					},
					"required":             []any{"skill", "priority", "estimated_weeks", "skip_modules"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"entries"},
		"additionalProperties": false,
	},
}
