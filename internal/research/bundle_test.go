package research

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/autodidact/internal/graph"
)

func TestParseBundle(t *testing.T) {
	raw := json.RawMessage(`{
		"report_markdown": "# Topic\n\nBody.[^1]",
		"graph": {
			"nodes": [
				{"id": "node_01", "label": "Basics", "summary": "Start here.",
					"learning_objectives": ["Explain the core terms", "Identify the moving parts"]},
				{"id": "node_02", "label": "Advanced", "summary": "Builds on basics."}
			],
			"edges": [
				{"source": "node_01", "target": "node_02", "confidence": 0.85, "rationale": "ordering"}
			]
		},
		"footnotes": [{"id": 1, "title": "Source", "url": "https://example.com"}]
	}`)

	b, err := parseBundle(raw)
	require.NoError(t, err)

	assert.Equal(t, "# Topic\n\nBody.[^1]", b.ReportMarkdown)
	require.Len(t, b.Graph.Nodes, 2)
	assert.Equal(t, "node_01", b.Graph.Nodes[0].ID)
	assert.Equal(t, []string{"Explain the core terms", "Identify the moving parts"},
		b.Graph.Nodes[0].LearningObjectives)
	require.Len(t, b.Graph.Edges, 1)
	assert.InDelta(t, 0.85, b.Graph.Edges[0].Confidence, 1e-9)
	require.Len(t, b.Footnotes, 1)
	assert.Equal(t, "https://example.com", b.Footnotes[0].URL)
}

func TestParseBundleRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"report_markdown": `},
		{"missing report", `{"report_markdown": "", "graph": {"nodes": [{"id": "a", "label": "A"}], "edges": []}}`},
		{"empty graph", `{"report_markdown": "# R", "graph": {"nodes": [], "edges": []}}`},
		{"dangling edge", `{"report_markdown": "# R", "graph": {"nodes": [{"id": "a", "label": "A"}], "edges": [{"source": "a", "target": "ghost"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBundle(json.RawMessage(tt.raw))
			require.Error(t, err)

			var rerr *ResearchError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, StageBundle, rerr.Stage)
		})
	}
}

func TestParseBundlePreservesGraphValidationDetail(t *testing.T) {
	raw := json.RawMessage(`{
		"report_markdown": "# R",
		"graph": {"nodes": [{"id": "a", "label": ""}], "edges": []}
	}`)

	_, err := parseBundle(raw)
	var verr *graph.ValidationError
	require.True(t, errors.As(err, &verr), "expected graph.ValidationError in chain, got %v", err)
	assert.NotEmpty(t, verr.Problems)
}

func TestFootnotesJSON(t *testing.T) {
	out, err := footnotesJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = footnotesJSON([]Footnote{{ID: 1, Title: "T", URL: "u"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"title":"T","url":"u"}]`, out)
}
