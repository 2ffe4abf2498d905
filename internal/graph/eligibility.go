package graph

import "context"

// MasteryThreshold is the mastery score at or above which a node counts as
// mastered, both for its own completion and for unlocking its dependents.
const MasteryThreshold = 0.7

// NextNode is one concept the learner may study next.
type NextNode struct {
	ID    string
	Label string
}

// Progress summarizes how much of a project's graph is mastered.
type Progress struct {
	Mastered int
	Total    int
}

// Percent returns the mastered fraction as a whole percentage.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Mastered * 100 / p.Total
}

// NextNodes computes the eligible set for a payload and mastery snapshot:
// nodes below the threshold whose every direct prerequisite is at or above
// it. Results follow payload insertion order, so the computation is a pure
// function of its inputs. Runs in O(nodes + edges); nodes missing from the
// mastery snapshot count as mastery 0. Nodes on a prerequisite cycle are
// never eligible, which keeps the result well-defined for cyclic payloads.
func NextNodes(p Payload, mastery map[string]float64, threshold float64) []NextNode {
	prereqs := p.Prerequisites()

	var eligible []NextNode
	for _, n := range p.Nodes {
		if mastery[n.ID] >= threshold {
			continue
		}
		unlocked := true
		for _, pre := range prereqs[n.ID] {
			if mastery[pre] < threshold {
				unlocked = false
				break
			}
		}
		if unlocked {
			eligible = append(eligible, NextNode{ID: n.ID, Label: n.Label})
		}
	}
	return eligible
}

// ProjectSource is the slice of the graph store the resolver reads from.
type ProjectSource interface {
	// GraphPayload returns the stored graph payload for a project.
	GraphPayload(ctx context.Context, projectID string) (Payload, error)

	// NodeMastery returns the current mastery snapshot keyed by original id.
	NodeMastery(ctx context.Context, projectID string) (map[string]float64, error)
}

// Resolver answers "what should I study next" for stored projects.
// It re-reads the mastery snapshot on every call and never mutates state,
// so it is safe to query repeatedly and concurrently with writes.
type Resolver struct {
	source    ProjectSource
	threshold float64
}

// NewResolver creates a resolver with the conventional mastery threshold.
func NewResolver(source ProjectSource) *Resolver {
	return &Resolver{source: source, threshold: MasteryThreshold}
}

// NextNodes returns the eligible nodes for a project in payload order.
// An empty result means the curriculum is complete (or fully blocked by a
// cycle, which the caller was warned about at creation time).
func (r *Resolver) NextNodes(ctx context.Context, projectID string) ([]NextNode, error) {
	payload, err := r.source.GraphPayload(ctx, projectID)
	if err != nil {
		return nil, err
	}
	mastery, err := r.source.NodeMastery(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return NextNodes(payload, mastery, r.threshold), nil
}

// Progress returns mastered/total node counts for a project.
func (r *Resolver) Progress(ctx context.Context, projectID string) (Progress, error) {
	mastery, err := r.source.NodeMastery(ctx, projectID)
	if err != nil {
		return Progress{}, err
	}
	p := Progress{Total: len(mastery)}
	for _, m := range mastery {
		if m >= r.threshold {
			p.Mastered++
		}
	}
	return p, nil
}
