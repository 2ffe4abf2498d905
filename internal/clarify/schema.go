package clarify

import "github.com/abhisek/autodidact/internal/llm"

// AnalysisSchema defines the JSON schema for the topic-analysis response.
var AnalysisSchema = &llm.Schema{
	Name:        "topic-analysis",
	Description: "Whether a learning topic needs clarification before deep research, with questions if so",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"need_clarification": map[string]any{
				"type":        "boolean",
				"description": "True when the topic is too broad or ambiguous to research as-is",
			},
			"questions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 5 clarifying questions; empty when need_clarification is false",
			},
			"refined_topic": map[string]any{
				"type":        "string",
				"description": "Polished topic when no clarification is needed; empty otherwise",
			},
		},
		"required":             []any{"need_clarification", "questions", "refined_topic"},
		"additionalProperties": false,
	},
}
