package advisor

import "github.com/abhisek/riskready/internal/llm"

// NarrativeSchema constrains the provider output to a Narrative.
var NarrativeSchema = &llm.Schema{
	Name:        "readiness-narrative",
	Description: "Coaching narrative for a risk and audit readiness report",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line verdict consistent with the recommendation (5-12 words)",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence interpretation of the scores",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    4,
				"description": "Strengths backed by the highest scores",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    4,
				"description": "Concrete areas to work on, drawn from the skill gaps",
			},
		},
		"required":             []any{"headline", "summary", "strengths", "focus_areas"},
		"additionalProperties": false,
	},
}
