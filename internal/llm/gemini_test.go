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
			"text":      map[string]any{"type": "string"},
			"id":        map[string]any{"type": "integer"},
			"dimension": map[string]any{"type": "string", "enum": []any{"openness", "resilience", "control"}},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"text", "id"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["text"].Type != "STRING" {
		t.Fatalf("expected STRING for text, got %s", schema.Properties["text"].Type)
	}
	if schema.Properties["id"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for id, got %s", schema.Properties["id"].Type)
	}
	if len(schema.Properties["dimension"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["dimension"].Enum))
	}
	if schema.Properties["options"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for options, got %s", schema.Properties["options"].Type)
	}
	if schema.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for options items, got %s", schema.Properties["options"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiSchema_Bounds(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 100,
			},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
		},
	}

	schema := buildGeminiSchema(def)

	score := schema.Properties["score"]
	if score.Minimum == nil || *score.Minimum != 1 {
		t.Fatalf("expected minimum 1, got %v", score.Minimum)
	}
	if score.Maximum == nil || *score.Maximum != 100 {
		t.Fatalf("expected maximum 100, got %v", score.Maximum)
	}

	options := schema.Properties["options"]
	if options.MinItems == nil || *options.MinItems != 4 {
		t.Fatalf("expected minItems 4, got %v", options.MinItems)
	}
	if options.MaxItems == nil || *options.MaxItems != 4 {
		t.Fatalf("expected maxItems 4, got %v", options.MaxItems)
	}
}

func TestNumberValue(t *testing.T) {
	if v, ok := numberValue(7); !ok || v != 7 {
		t.Fatalf("expected 7 from int, got %v %v", v, ok)
	}
	if v, ok := numberValue(float64(2.5)); !ok || v != 2.5 {
		t.Fatalf("expected 2.5 from float64, got %v %v", v, ok)
	}
	if _, ok := numberValue("nope"); ok {
		t.Fatal("expected string to be rejected")
	}
	if _, ok := numberValue(nil); ok {
		t.Fatal("expected nil to be rejected")
	}
}
