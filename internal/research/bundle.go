package research

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/autodidact/internal/graph"
)

// Bundle is the deep-research collaborator's output: a markdown report with
// footnote citations and the prerequisite graph payload.
type Bundle struct {
	ReportMarkdown string        `json:"report_markdown"`
	Graph          graph.Payload `json:"graph"`
	Footnotes      []Footnote    `json:"footnotes"`
}

// Footnote is one citation record, in report order.
type Footnote struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// parseBundle decodes and validates a research response. Responses are
// schema-checked by the provider already; this guards the semantic rules a
// JSON schema cannot express.
func parseBundle(raw json.RawMessage) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, &ResearchError{Stage: StageBundle, Err: fmt.Errorf("parse bundle: %w", err)}
	}
	if b.ReportMarkdown == "" {
		return nil, &ResearchError{Stage: StageBundle, Err: fmt.Errorf("bundle has no report")}
	}
	if err := b.Graph.Validate(); err != nil {
		return nil, &ResearchError{Stage: StageBundle, Err: err}
	}
	return &b, nil
}

// footnotesJSON serializes footnotes for storage on the project row.
func footnotesJSON(footnotes []Footnote) (string, error) {
	if footnotes == nil {
		footnotes = []Footnote{}
	}
	data, err := json.Marshal(footnotes)
	if err != nil {
		return "", fmt.Errorf("encode footnotes: %w", err)
	}
	return string(data), nil
}
