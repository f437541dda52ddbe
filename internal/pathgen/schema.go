package pathgen

import "github.com/plaroindia/Pearl/internal/llm"

// ModulePlanSchema defines the JSON schema for LLM skill decomposition
// responses.
var ModulePlanSchema = &llm.Schema{
	Name:        "module-plan",
	Description: "A progressive learning plan breaking one skill into 4-6 modules",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"modules": map[string]any{
				"type":        "array",
				"minItems":    4,
				"maxItems":    6,
				"description": "Modules ordered from fundamentals to advanced; each builds on the previous",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Short module title",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One or two sentences on what the module covers",
						},
						"learning_objectives": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-4 concrete outcomes the learner can demonstrate",
						},
						"completion_criteria": map[string]any{
							"type":        "string",
							"description": "How the learner proves the module is complete",
						},
						"estimated_hours": map[string]any{
							"type":        "number",
							"minimum":     1,
							"description": "Expected study effort in hours",
						},
					},
					"required":             []any{"name", "description", "learning_objectives", "completion_criteria", "estimated_hours"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"modules"},
		"additionalProperties": false,
	},
}

// ActionPlanSchema defines the JSON schema for content-action generation
// responses: one overview, one course, and one hands_on item per module.
var ActionPlanSchema = &llm.Schema{
	Name:        "action-plan",
	Description: "The three content actions for one module: overview, course, hands_on",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"actions": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"overview", "course", "hands_on"},
							"description": "The action slot this item fills",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Short imperative title shown to the learner",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One or two sentences on what to do and why",
						},
						"platform": map[string]any{
							"type":        "string",
							"description": "Where the resource lives (e.g. YouTube, freeCodeCamp), if a specific one is recommended",
						},
						"url": map[string]any{
							"type":        "string",
							"description": "Direct link to the recommended resource, if known",
						},
						"duration_mins": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Expected time to complete, in minutes",
						},
					},
					"required":             []any{"type", "title", "description", "duration_mins"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"actions"},
		"additionalProperties": false,
	},
}

// QuestionBatchSchema defines the JSON schema for checkpoint question
// generation responses.
var QuestionBatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "Multiple-choice checkpoint questions testing one module's objectives",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 4,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 answer options",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right, shown after submission",
						},
					},
					"required":             []any{"question", "options", "correct_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
