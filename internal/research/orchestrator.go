package research

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/llm"
)

// GraphStore is the slice of project storage the orchestrator needs.
type GraphStore interface {
	Create(ctx context.Context, topic, reportPath string, payload graph.Payload, footnotesJSON string) (string, error)
	SaveGraph(ctx context.Context, projectID string, payload graph.Payload) error
}

// ReportWriter persists a report and returns its filesystem path.
type ReportWriter interface {
	Save(key, markdown string) (string, error)
}

// Orchestrator runs the deep-research pipeline: one collaborator call, then
// persistence of the report file, the project row, and the graph rows.
type Orchestrator struct {
	provider  llm.Provider
	store     GraphStore
	reports   ReportWriter
	maxTokens int
}

// NewOrchestrator wires a research orchestrator. The provider should carry a
// research-grade timeout; a full run can take many minutes.
func NewOrchestrator(provider llm.Provider, store GraphStore, reports ReportWriter) *Orchestrator {
	return &Orchestrator{
		provider:  provider,
		store:     store,
		reports:   reports,
		maxTokens: 32768,
	}
}

// Result summarizes a completed research run.
type Result struct {
	ProjectID string
	NodeCount int
	EdgeCount int

	// NextUp holds the concepts unlocked from the start, i.e. those with
	// no prerequisites.
	NextUp []graph.NextNode

	// CycleWarning is set when the returned graph contains a dependency
	// cycle. The project is still created; nodes on the cycle will never
	// become eligible until the graph is re-saved without it.
	CycleWarning bool
}

// Run executes deep research for a resolved topic and materializes the
// project. Nothing is persisted unless the collaborator call and bundle
// validation both succeed; cancellation mid-call leaves no trace.
func (o *Orchestrator) Run(ctx context.Context, topic string, hours int) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "deep-research")

	resp, err := o.provider.Generate(ctx, llm.Request{
		System: researchSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildResearchUserMessage(topic, hours)},
		},
		Schema:    ResearchSchema,
		MaxTokens: o.maxTokens,
	})
	if err != nil {
		return nil, &ResearchError{Stage: StageResearch, Err: err}
	}

	bundle, err := parseBundle(resp.Content)
	if err != nil {
		return nil, err
	}

	// The report file is keyed by its own id rather than the project id:
	// the path must exist before the project row that references it.
	path, err := o.reports.Save(uuid.NewString(), bundle.ReportMarkdown)
	if err != nil {
		return nil, &ResearchError{Stage: StageReport, Err: err}
	}

	footnotes, err := footnotesJSON(bundle.Footnotes)
	if err != nil {
		return nil, &ResearchError{Stage: StageProject, Err: err}
	}

	projectID, err := o.store.Create(ctx, topic, path, bundle.Graph, footnotes)
	if err != nil {
		return nil, &ResearchError{Stage: StageProject, Err: err}
	}

	if err := o.store.SaveGraph(ctx, projectID, bundle.Graph); err != nil {
		return nil, &ResearchError{Stage: StageGraph, Err: err}
	}

	return &Result{
		ProjectID:    projectID,
		NodeCount:    len(bundle.Graph.Nodes),
		EdgeCount:    len(bundle.Graph.Edges),
		NextUp:       graph.NextNodes(bundle.Graph, nil, graph.MasteryThreshold),
		CycleWarning: bundle.Graph.HasCycle(),
	}, nil
}
