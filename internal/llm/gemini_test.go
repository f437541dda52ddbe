package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-flash-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Direct IDs pass through.
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":            map[string]any{"type": "string"},
			"estimated_hours": map[string]any{"type": "integer"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"objectives": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"name", "estimated_hours"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["name"].Type != "STRING" {
		t.Fatalf("expected STRING for name, got %s", schema.Properties["name"].Type)
	}
	if schema.Properties["estimated_hours"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for estimated_hours, got %s", schema.Properties["estimated_hours"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 difficulty levels, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["objectives"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for objectives, got %s", schema.Properties["objectives"].Type)
	}
	if schema.Properties["objectives"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for objectives items, got %s", schema.Properties["objectives"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
