package profile

import "github.com/dsengupta/mindprobe/internal/llm"

// DossierSchema defines the JSON schema for analysis responses.
var DossierSchema = &llm.Schema{
	Name:        "personality-dossier",
	Description: "A personality evaluation dossier derived from an answer transcript",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     100,
				"description": "Composite psychological evaluation score",
			},
			"dominantTraits": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The strongest personality markers observed, most prominent first",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Operationally useful qualities evidenced by the answers",
			},
			"weaknesses": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Vulnerabilities or blind spots evidenced by the answers",
			},
			"behavioralTendencies": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Predicted behavior patterns, especially under pressure",
			},
			"riskIndicators": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concerning response patterns. Empty if none observed.",
			},
			"confidenceScore": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     100,
				"description": "Self-assessed confidence in this evaluation",
			},
		},
		"required": []any{
			"score", "dominantTraits", "strengths", "weaknesses",
			"behavioralTendencies", "riskIndicators", "confidenceScore",
		},
		"additionalProperties": false,
	},
}
