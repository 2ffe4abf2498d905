package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
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
			"label":    map[string]any{"type": "string"},
			"position": map[string]any{"type": "integer"},
			"status":   map[string]any{"type": "string", "enum": []any{"resolved", "needs_clarification"}},
			"learning_objectives": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"label", "position"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["label"].Type != "STRING" {
		t.Fatalf("expected STRING for label, got %s", schema.Properties["label"].Type)
	}
	if schema.Properties["position"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for position, got %s", schema.Properties["position"].Type)
	}
	if len(schema.Properties["status"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["status"].Enum))
	}
	if schema.Properties["learning_objectives"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for learning_objectives, got %s", schema.Properties["learning_objectives"].Type)
	}
	if schema.Properties["learning_objectives"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for learning_objectives items, got %s", schema.Properties["learning_objectives"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %s", schema.Required)
	}
}
