package research

import "github.com/abhisek/autodidact/internal/llm"

// ResearchSchema defines the JSON schema for the deep-research bundle.
var ResearchSchema = &llm.Schema{
	Name:        "research-bundle",
	Description: "A learning report with footnote citations and a prerequisite concept graph",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"report_markdown": map[string]any{
				"type":        "string",
				"description": "The full research report in markdown, with [^n] footnote markers",
			},
			"graph": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"nodes": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":      map[string]any{"type": "string", "description": "Stable short id, e.g. node_01"},
								"label":   map[string]any{"type": "string", "description": "Concept name"},
								"summary": map[string]any{"type": "string", "description": "One-paragraph summary of the concept"},
								"learning_objectives": map[string]any{
									"type":        "array",
									"items":       map[string]any{"type": "string"},
									"minItems":    5,
									"maxItems":    7,
									"description": "Specific, measurable study objectives for the concept",
								},
							},
							"required":             []any{"id", "label", "summary", "learning_objectives"},
							"additionalProperties": false,
						},
					},
					"edges": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"source":     map[string]any{"type": "string", "description": "Prerequisite node id"},
								"target":     map[string]any{"type": "string", "description": "Dependent node id"},
								"confidence": map[string]any{"type": "number", "description": "Strength of the dependency, 0-1"},
								"rationale":  map[string]any{"type": "string", "description": "Why source must come before target"},
							},
							"required":             []any{"source", "target", "confidence", "rationale"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"nodes", "edges"},
				"additionalProperties": false,
			},
			"footnotes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    map[string]any{"type": "integer", "description": "Footnote number matching a [^n] marker"},
						"title": map[string]any{"type": "string"},
						"url":   map[string]any{"type": "string"},
					},
					"required":             []any{"id", "title", "url"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"report_markdown", "graph", "footnotes"},
		"additionalProperties": false,
	},
}
