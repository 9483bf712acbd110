package llm

import (
	"context"
	"slices"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string", "description": "one line"},
			"score":    map[string]any{"type": "integer"},
			"tier":     map[string]any{"type": "string", "enum": []any{"Yes", "Maybe", "No"}},
			"strengths": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
				"maxItems": 3,
			},
		},
		"required": []string{"headline", "tier"},
	}

	s := geminiSchema(def)

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(s.Properties))
	}
	want := []string{"headline", "score", "strengths", "tier"}
	if !slices.Equal(s.PropertyOrdering, want) {
		t.Fatalf("property ordering = %v, want %v", s.PropertyOrdering, want)
	}
	if s.Properties["headline"].Description != "one line" {
		t.Fatalf("description lost: %+v", s.Properties["headline"])
	}
	if s.Properties["score"].Type != genai.TypeInteger {
		t.Fatalf("score type = %s", s.Properties["score"].Type)
	}
	if len(s.Properties["tier"].Enum) != 3 {
		t.Fatalf("tier enum = %v", s.Properties["tier"].Enum)
	}
	arr := s.Properties["strengths"]
	if arr.Type != genai.TypeArray || arr.Items.Type != genai.TypeString {
		t.Fatalf("strengths = %+v", arr)
	}
	if arr.MinItems == nil || *arr.MinItems != 1 || arr.MaxItems == nil || *arr.MaxItems != 3 {
		t.Fatalf("item bounds not carried over")
	}
	if !slices.Equal(s.Required, []string{"headline", "tier"}) {
		t.Fatalf("required = %v", s.Required)
	}
}

func TestGeminiContents(t *testing.T) {
	contents := geminiContents([]Message{
		{Role: RoleUser, Content: "scores"},
		{Role: RoleAssistant, Content: "advice"},
	})
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != genai.RoleUser || contents[1].Role != genai.RoleModel {
		t.Fatalf("roles = %q, %q", contents[0].Role, contents[1].Role)
	}
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
