package questiongen

import "github.com/dsengupta/mindprobe/internal/llm"

// QuestionSetSchema defines the JSON schema for question batch responses.
// The batch is wrapped in an object because tool-style structured output
// requires an object at the top level.
var QuestionSetSchema = &llm.Schema{
	Name:        "assessment-question-set",
	Description: "A batch of scenario-based personality assessment questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Question number starting at 1, unique within the batch",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The scenario presented to the subject, in second person",
						},
						"dimension": map[string]any{
							"type":        "string",
							"description": "The personality axis this question probes, e.g. \"Risk Tolerance\"",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 distinct reactions spanning the dimension. None is correct.",
						},
					},
					"required":             []any{"id", "text", "dimension", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
