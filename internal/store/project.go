package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/autodidact/ent"
	entedge "github.com/abhisek/autodidact/ent/edge"
	entnode "github.com/abhisek/autodidact/ent/node"
	entproject "github.com/abhisek/autodidact/ent/project"
	"github.com/abhisek/autodidact/internal/graph"
)

// Project is a stored curriculum record.
type Project struct {
	ID            string
	Topic         string
	ReportPath    string
	GraphJSON     string
	FootnotesJSON string
	CreatedAt     time.Time
}

// NodeDetail is one stored concept joined with its learner state.
type NodeDetail struct {
	OriginalID string
	Label      string
	Summary    string
	Objectives []string
	Mastery    float64
}

// ProjectSummary is a catalog entry for the project list.
type ProjectSummary struct {
	ID        string
	Topic     string
	CreatedAt time.Time
	Mastered  int
	Total     int
}

// Percent returns mastered nodes as a whole percentage of the total.
func (p ProjectSummary) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Mastered * 100 / p.Total
}

// ProjectRepo is the GraphStore: durable storage for projects and their
// prerequisite graphs, and the mastery write hook.
type ProjectRepo interface {
	// Create allocates a new project row and returns its id.
	// The graph is not materialized until SaveGraph succeeds; readers of
	// List never observe the project before that.
	Create(ctx context.Context, topic, reportPath string, payload graph.Payload, footnotesJSON string) (string, error)

	// SaveGraph decomposes the payload into node and edge rows and writes
	// them in one transaction. Re-invocation with the same payload is
	// idempotent: rows are replaced per project, never duplicated.
	// Returns *graph.ValidationError for structurally invalid payloads.
	SaveGraph(ctx context.Context, projectID string, payload graph.Payload) error

	// Get returns a project by id, or NotFoundError.
	Get(ctx context.Context, id string) (*Project, error)

	// List returns all materialized projects, newest first.
	List(ctx context.Context) ([]ProjectSummary, error)

	// GraphPayload returns the graph payload stored on the project row,
	// preserving the research step's node order.
	GraphPayload(ctx context.Context, projectID string) (graph.Payload, error)

	// GetNode returns one node with its learning objectives and mastery,
	// or NotFoundError.
	GetNode(ctx context.Context, projectID, originalID string) (*NodeDetail, error)

	// NodeMastery returns a mastery snapshot keyed by original node id.
	NodeMastery(ctx context.Context, projectID string) (map[string]float64, error)

	// UpdateMastery sets one node's mastery, clamped to [0,1].
	UpdateMastery(ctx context.Context, projectID, originalID string, value float64) error
}

// projectRepo implements ProjectRepo using the ent client.
type projectRepo struct {
	client *ent.Client
}

func (r *projectRepo) Create(ctx context.Context, topic, reportPath string, payload graph.Payload, footnotesJSON string) (string, error) {
	graphJSON, err := payload.JSON()
	if err != nil {
		return "", fmt.Errorf("encode graph payload: %w", err)
	}

	p, err := r.client.Project.Create().
		SetTopic(topic).
		SetReportPath(reportPath).
		SetGraphJSON(string(graphJSON)).
		SetFootnotesJSON(footnotesJSON).
		Save(ctx)
	if err != nil {
		return "", &StorageError{Op: "create project", Err: err}
	}
	return p.ID, nil
}

func (r *projectRepo) SaveGraph(ctx context.Context, projectID string, payload graph.Payload) error {
	if err := payload.Validate(); err != nil {
		return err
	}

	exists, err := r.client.Project.Query().
		Where(entproject.ID(projectID)).
		Exist(ctx)
	if err != nil {
		return &StorageError{Op: "check project", Err: err}
	}
	if !exists {
		return &NotFoundError{Kind: "project", Key: projectID}
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return &StorageError{Op: "begin save graph", Err: err}
	}

	if err := saveGraphTx(ctx, tx, projectID, payload); err != nil {
		if rberr := tx.Rollback(); rberr != nil {
			err = fmt.Errorf("%w (rollback: %v)", err, rberr)
		}
		return &StorageError{Op: "save graph", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "commit save graph", Err: err}
	}
	return nil
}

// saveGraphTx replaces the project's node and edge rows inside tx.
// Replace-then-insert keeps re-invocation idempotent without upsert
// gymnastics, and preserves mastery via carry-over by original id.
func saveGraphTx(ctx context.Context, tx *ent.Tx, projectID string, payload graph.Payload) error {
	// Carry existing mastery over a re-save so a retried materialization
	// never resets learner progress.
	existing, err := tx.Node.Query().
		Where(entnode.ProjectID(projectID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query existing nodes: %w", err)
	}
	mastery := make(map[string]float64, len(existing))
	for _, n := range existing {
		mastery[n.OriginalID] = n.Mastery
	}

	if _, err := tx.Edge.Delete().Where(entedge.ProjectID(projectID)).Exec(ctx); err != nil {
		return fmt.Errorf("clear edges: %w", err)
	}
	if _, err := tx.Node.Delete().Where(entnode.ProjectID(projectID)).Exec(ctx); err != nil {
		return fmt.Errorf("clear nodes: %w", err)
	}

	nodes := make([]*ent.NodeCreate, len(payload.Nodes))
	for i, n := range payload.Nodes {
		nodes[i] = tx.Node.Create().
			SetProjectID(projectID).
			SetOriginalID(n.ID).
			SetLabel(n.Label).
			SetSummary(n.Summary).
			SetObjectives(n.LearningObjectives).
			SetPosition(i).
			SetMastery(mastery[n.ID])
	}
	if _, err := tx.Node.CreateBulk(nodes...).Save(ctx); err != nil {
		return fmt.Errorf("insert nodes: %w", err)
	}

	edges := make([]*ent.EdgeCreate, len(payload.Edges))
	for i, e := range payload.Edges {
		confidence := e.Confidence
		if confidence == 0 {
			confidence = 1.0
		}
		edges[i] = tx.Edge.Create().
			SetProjectID(projectID).
			SetSource(e.Source).
			SetTarget(e.Target).
			SetConfidence(confidence).
			SetRationale(e.Rationale)
	}
	if len(edges) > 0 {
		if _, err := tx.Edge.CreateBulk(edges...).Save(ctx); err != nil {
			return fmt.Errorf("insert edges: %w", err)
		}
	}

	return nil
}

func (r *projectRepo) Get(ctx context.Context, id string) (*Project, error) {
	p, err := r.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "project", Key: id}
		}
		return nil, &StorageError{Op: "get project", Err: err}
	}
	return &Project{
		ID:            p.ID,
		Topic:         p.Topic,
		ReportPath:    p.ReportPath,
		GraphJSON:     p.GraphJSON,
		FootnotesJSON: p.FootnotesJSON,
		CreatedAt:     p.CreatedAt,
	}, nil
}

func (r *projectRepo) List(ctx context.Context) ([]ProjectSummary, error) {
	projects, err := r.client.Project.Query().
		Order(ent.Desc(entproject.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list projects", Err: err}
	}

	var out []ProjectSummary
	for _, p := range projects {
		total, err := r.client.Node.Query().
			Where(entnode.ProjectID(p.ID)).
			Count(ctx)
		if err != nil {
			return nil, &StorageError{Op: "count nodes", Err: err}
		}
		if total == 0 {
			// Graph never materialized; the project is not ready for readers.
			continue
		}
		mastered, err := r.client.Node.Query().
			Where(entnode.ProjectID(p.ID), entnode.MasteryGTE(graph.MasteryThreshold)).
			Count(ctx)
		if err != nil {
			return nil, &StorageError{Op: "count mastered nodes", Err: err}
		}
		out = append(out, ProjectSummary{
			ID:        p.ID,
			Topic:     p.Topic,
			CreatedAt: p.CreatedAt,
			Mastered:  mastered,
			Total:     total,
		})
	}
	return out, nil
}

func (r *projectRepo) GraphPayload(ctx context.Context, projectID string) (graph.Payload, error) {
	p, err := r.Get(ctx, projectID)
	if err != nil {
		return graph.Payload{}, err
	}
	return graph.ParsePayload([]byte(p.GraphJSON))
}

func (r *projectRepo) GetNode(ctx context.Context, projectID, originalID string) (*NodeDetail, error) {
	n, err := r.client.Node.Query().
		Where(entnode.ProjectID(projectID), entnode.OriginalID(originalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "node", Key: projectID + "/" + originalID}
		}
		return nil, &StorageError{Op: "get node", Err: err}
	}
	return &NodeDetail{
		OriginalID: n.OriginalID,
		Label:      n.Label,
		Summary:    n.Summary,
		Objectives: n.Objectives,
		Mastery:    n.Mastery,
	}, nil
}

func (r *projectRepo) NodeMastery(ctx context.Context, projectID string) (map[string]float64, error) {
	nodes, err := r.client.Node.Query().
		Where(entnode.ProjectID(projectID)).
		All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query node mastery", Err: err}
	}
	mastery := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		mastery[n.OriginalID] = n.Mastery
	}
	return mastery, nil
}

func (r *projectRepo) UpdateMastery(ctx context.Context, projectID, originalID string, value float64) error {
	value = clampMastery(value)

	n, err := r.client.Node.Update().
		Where(entnode.ProjectID(projectID), entnode.OriginalID(originalID)).
		SetMastery(value).
		Save(ctx)
	if err != nil {
		return &StorageError{Op: "update mastery", Err: err}
	}
	if n == 0 {
		return &NotFoundError{Kind: "node", Key: projectID + "/" + originalID}
	}
	return nil
}

func clampMastery(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
