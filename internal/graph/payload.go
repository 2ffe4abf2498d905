package graph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payload is the graph bundle produced by the research step. Node order is
// significant: it is preserved through storage and used as the tie-break
// when several nodes are eligible at once.
type Payload struct {
	Nodes []PayloadNode `json:"nodes"`
	Edges []PayloadEdge `json:"edges"`
}

// PayloadNode is one concept as the research step emitted it.
// LearningObjectives are the node's study goals, five to seven per concept.
type PayloadNode struct {
	ID                 string   `json:"id"`
	Label              string   `json:"label"`
	Summary            string   `json:"summary,omitempty"`
	LearningObjectives []string `json:"learning_objectives,omitempty"`
}

// PayloadEdge is a directed prerequisite relation: source must be learned
// before target.
type PayloadEdge struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Confidence float64 `json:"confidence,omitempty"`
	Rationale  string  `json:"rationale,omitempty"`
}

// ParsePayload decodes a JSON graph payload.
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("parse graph payload: %w", err)
	}
	return p, nil
}

// JSON encodes the payload for storage on the project row.
func (p Payload) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// ValidationError reports every structural problem found in a payload.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("graph payload validation failed:\n  %s",
		strings.Join(e.Problems, "\n  "))
}

// Validate performs the structural checks a payload must pass before it may
// be persisted: non-empty node set, unique node ids, labels present, and
// both endpoints of every edge resolving to a node in the payload.
// Cycles are deliberately not rejected here; see HasCycle.
func (p Payload) Validate() error {
	var problems []string

	if len(p.Nodes) == 0 {
		problems = append(problems, "payload has no nodes")
	}

	idSet := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		if n.ID == "" {
			problems = append(problems, fmt.Sprintf("node %q has an empty id", n.Label))
			continue
		}
		if idSet[n.ID] {
			problems = append(problems, fmt.Sprintf("duplicate node id: %q", n.ID))
		}
		idSet[n.ID] = true
		if n.Label == "" {
			problems = append(problems, fmt.Sprintf("node %q has an empty label", n.ID))
		}
	}

	for _, e := range p.Edges {
		if !idSet[e.Source] {
			problems = append(problems, fmt.Sprintf("edge %s→%s references unknown source node %q", e.Source, e.Target, e.Source))
		}
		if !idSet[e.Target] {
			problems = append(problems, fmt.Sprintf("edge %s→%s references unknown target node %q", e.Source, e.Target, e.Target))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// HasCycle reports whether the prerequisite graph contains a cycle, using
// Kahn's algorithm. A cyclic payload is still storable — every node on the
// cycle is simply never eligible — but callers use this to warn the user.
func (p Payload) HasCycle() bool {
	inDegree := make(map[string]int, len(p.Nodes))
	dependents := make(map[string][]string)

	for _, n := range p.Nodes {
		inDegree[n.ID] = 0
	}
	for _, e := range p.Edges {
		// Edges with an endpoint outside the node set cannot close a cycle;
		// counting them would leave residual in-degree and report one.
		if _, ok := inDegree[e.Source]; !ok {
			continue
		}
		if _, ok := inDegree[e.Target]; !ok {
			continue
		}
		inDegree[e.Target]++
		dependents[e.Source] = append(dependents[e.Source], e.Target)
	}

	var queue []string
	for _, n := range p.Nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	return visited < len(p.Nodes)
}

// Prerequisites returns, for each node id, the original ids of its direct
// prerequisites, in edge order.
func (p Payload) Prerequisites() map[string][]string {
	prereqs := make(map[string][]string)
	for _, e := range p.Edges {
		prereqs[e.Target] = append(prereqs[e.Target], e.Source)
	}
	return prereqs
}
