package synth

import "github.com/vedantvaibhav/Lumus/internal/llm"

// questionBatchSchema describes the envelope the model must return for a
// question batch. Only the envelope shape is required here; per-item rules
// are enforced afterwards so one malformed question never sinks the batch.
func questionBatchSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "question-batch",
		Description: "A batch of generated quiz questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question":   map[string]any{"type": "string"},
							"answer":     map[string]any{"type": "string"},
							"type":       map[string]any{"type": "string"},
							"difficulty": map[string]any{"type": "string"},
							"options": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"explanation": map[string]any{"type": "string"},
							"topic":       map[string]any{"type": "string"},
						},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}
