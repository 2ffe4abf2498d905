package research

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/llm"
)

type fakeStore struct {
	created    bool
	saved      bool
	topic      string
	reportPath string
	payload    graph.Payload
	createErr  error
	saveErr    error
}

func (f *fakeStore) Create(_ context.Context, topic, reportPath string, payload graph.Payload, _ string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = true
	f.topic = topic
	f.reportPath = reportPath
	f.payload = payload
	return "project-1", nil
}

func (f *fakeStore) SaveGraph(_ context.Context, _ string, payload graph.Payload) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = true
	f.payload = payload
	return nil
}

type fakeReports struct {
	saved    map[string]string
	writeErr error
}

func (f *fakeReports) Save(key, markdown string) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	if f.saved == nil {
		f.saved = make(map[string]string)
	}
	f.saved[key] = markdown
	return "/tmp/reports/" + key + "/report.md", nil
}

func goodBundle(t *testing.T) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(Bundle{
		ReportMarkdown: "# Graph Theory\n\nBasics first.[^1]",
		Graph: graph.Payload{
			Nodes: []graph.PayloadNode{
				{ID: "node_01", Label: "Sets", Summary: "Collections of elements.",
					LearningObjectives: []string{
						"Explain what a set is",
						"Identify elements, subsets and the empty set",
						"Apply union, intersection and difference",
						"Calculate the cardinality of finite sets",
						"Explain the Cartesian product",
					}},
				{ID: "node_02", Label: "Graphs", Summary: "Vertices and edges.",
					LearningObjectives: []string{
						"Explain vertices, edges and adjacency",
						"Identify directed and undirected graphs",
						"Calculate vertex degrees",
						"Implement an adjacency list",
						"Apply breadth-first traversal",
					}},
			},
			Edges: []graph.PayloadEdge{
				{Source: "node_01", Target: "node_02", Confidence: 0.9, Rationale: "graphs are built on sets"},
			},
		},
		Footnotes: []Footnote{{ID: 1, Title: "Intro to Graph Theory", URL: "https://example.com/gt"}},
	})
	if err != nil {
		t.Fatalf("marshal bundle: %v", err)
	}
	return data
}

func TestRunHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: goodBundle(t)})
	store := &fakeStore{}
	reports := &fakeReports{}
	o := NewOrchestrator(mock, store, reports)

	res, err := o.Run(context.Background(), "Research the topic of graph theory.", 6)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.ProjectID != "project-1" {
		t.Errorf("project id = %q", res.ProjectID)
	}
	if res.NodeCount != 2 || res.EdgeCount != 1 {
		t.Errorf("counts = %d nodes, %d edges; want 2, 1", res.NodeCount, res.EdgeCount)
	}
	if res.CycleWarning {
		t.Error("acyclic graph flagged with cycle warning")
	}
	if len(res.NextUp) != 1 || res.NextUp[0].ID != "node_01" {
		t.Errorf("next up = %+v; want just node_01", res.NextUp)
	}
	if !store.created || !store.saved {
		t.Error("project or graph not persisted")
	}
	if store.reportPath == "" {
		t.Error("project row missing report path")
	}
	if len(reports.saved) != 1 {
		t.Errorf("expected 1 report file, got %d", len(reports.saved))
	}
	if len(mock.Calls) != 1 || mock.Calls[0].Schema != ResearchSchema {
		t.Error("research request missing the bundle schema")
	}
}

func TestRunCyclicGraphCreatesProjectWithWarning(t *testing.T) {
	data, err := json.Marshal(Bundle{
		ReportMarkdown: "# Report",
		Graph: graph.Payload{
			Nodes: []graph.PayloadNode{
				{ID: "a", Label: "A"},
				{ID: "b", Label: "B"},
			},
			Edges: []graph.PayloadEdge{
				{Source: "a", Target: "b"},
				{Source: "b", Target: "a"},
			},
		},
	})
	if err != nil {
		t.Fatalf("marshal bundle: %v", err)
	}

	store := &fakeStore{}
	o := NewOrchestrator(llm.NewMockProvider(llm.MockResponse{Content: data}), store, &fakeReports{})

	res, err := o.Run(context.Background(), "topic", 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.CycleWarning {
		t.Error("cyclic graph not flagged")
	}
	if !store.saved {
		t.Error("cyclic graph should still be persisted")
	}
}

func TestRunFailureStages(t *testing.T) {
	providerErr := &llm.ErrRateLimit{}
	storageErr := errors.New("disk full")

	tests := []struct {
		name    string
		mock    *llm.MockProvider
		store   *fakeStore
		reports *fakeReports
		stage   string
	}{
		{
			name:    "provider failure",
			mock:    llm.NewMockProvider(llm.MockResponse{Err: providerErr}),
			store:   &fakeStore{},
			reports: &fakeReports{},
			stage:   StageResearch,
		},
		{
			name:    "malformed bundle",
			mock:    llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"report_markdown": ""}`)}),
			store:   &fakeStore{},
			reports: &fakeReports{},
			stage:   StageBundle,
		},
		{
			name:    "report write failure",
			mock:    llm.NewMockProvider(llm.MockResponse{Content: goodBundle(t)}),
			store:   &fakeStore{},
			reports: &fakeReports{writeErr: storageErr},
			stage:   StageReport,
		},
		{
			name:    "project creation failure",
			mock:    llm.NewMockProvider(llm.MockResponse{Content: goodBundle(t)}),
			store:   &fakeStore{createErr: storageErr},
			reports: &fakeReports{},
			stage:   StageProject,
		},
		{
			name:    "graph save failure",
			mock:    llm.NewMockProvider(llm.MockResponse{Content: goodBundle(t)}),
			store:   &fakeStore{saveErr: storageErr},
			reports: &fakeReports{},
			stage:   StageGraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrchestrator(tt.mock, tt.store, tt.reports)
			_, err := o.Run(context.Background(), "topic", 1)

			var rerr *ResearchError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected *ResearchError, got %v", err)
			}
			if rerr.Stage != tt.stage {
				t.Errorf("stage = %q, want %q", rerr.Stage, tt.stage)
			}
		})
	}
}

func TestRunInvalidGraphPersistsNothing(t *testing.T) {
	data, err := json.Marshal(Bundle{
		ReportMarkdown: "# Report",
		Graph: graph.Payload{
			Nodes: []graph.PayloadNode{{ID: "a", Label: "A"}},
			Edges: []graph.PayloadEdge{{Source: "a", Target: "missing"}},
		},
	})
	if err != nil {
		t.Fatalf("marshal bundle: %v", err)
	}

	store := &fakeStore{}
	reports := &fakeReports{}
	o := NewOrchestrator(llm.NewMockProvider(llm.MockResponse{Content: data}), store, reports)

	_, runErr := o.Run(context.Background(), "topic", 1)

	var verr *graph.ValidationError
	if !errors.As(runErr, &verr) {
		t.Fatalf("expected graph validation error in chain, got %v", runErr)
	}
	if store.created || store.saved || len(reports.saved) != 0 {
		t.Error("invalid bundle left persisted state behind")
	}
}
