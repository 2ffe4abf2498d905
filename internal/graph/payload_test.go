package graph

import (
	"errors"
	"strings"
	"testing"
)

func validPayload() Payload {
	return Payload{
		Nodes: []PayloadNode{
			{ID: "node_01", Label: "Foundations", Summary: "The basics.",
				LearningObjectives: []string{"Explain the core terms", "Identify the moving parts"}},
			{ID: "node_02", Label: "Core Concepts", Summary: "Builds on the basics."},
			{ID: "node_03", Label: "Applications", Summary: "Putting it together."},
		},
		Edges: []PayloadEdge{
			{Source: "node_01", Target: "node_02", Confidence: 0.9, Rationale: "needs the basics"},
			{Source: "node_02", Target: "node_03", Confidence: 0.8, Rationale: "needs the core"},
		},
	}
}

func TestValidateAcceptsWellFormedPayload(t *testing.T) {
	if err := validPayload().Validate(); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Payload)
		problem string
	}{
		{
			name:    "empty node set",
			mutate:  func(p *Payload) { p.Nodes = nil; p.Edges = nil },
			problem: "no nodes",
		},
		{
			name:    "duplicate node id",
			mutate:  func(p *Payload) { p.Nodes[2].ID = "node_01" },
			problem: "duplicate node id",
		},
		{
			name:    "empty node id",
			mutate:  func(p *Payload) { p.Nodes[1].ID = "" },
			problem: "empty id",
		},
		{
			name:    "empty label",
			mutate:  func(p *Payload) { p.Nodes[0].Label = "" },
			problem: "empty label",
		},
		{
			name:    "dangling edge source",
			mutate:  func(p *Payload) { p.Edges[0].Source = "node_99" },
			problem: "unknown source",
		},
		{
			name:    "dangling edge target",
			mutate:  func(p *Payload) { p.Edges[1].Target = "node_99" },
			problem: "unknown target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)

			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.problem) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.problem)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	p := validPayload()
	p.Nodes[0].Label = ""
	p.Edges[0].Source = "node_99"
	p.Edges[1].Target = "node_98"

	err := p.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Problems) != 3 {
		t.Errorf("expected 3 problems, got %d: %v", len(verr.Problems), verr.Problems)
	}
}

func TestHasCycle(t *testing.T) {
	p := validPayload()
	if p.HasCycle() {
		t.Error("linear chain reported as cyclic")
	}

	p.Edges = append(p.Edges, PayloadEdge{Source: "node_03", Target: "node_01"})
	if !p.HasCycle() {
		t.Error("three-node cycle not detected")
	}
}

func TestHasCycleIgnoresDanglingEdges(t *testing.T) {
	p := validPayload()
	p.Edges = append(p.Edges, PayloadEdge{Source: "node_99", Target: "node_01"})
	if p.HasCycle() {
		t.Error("dangling-source edge reported as cycle")
	}

	p = validPayload()
	p.Edges = append(p.Edges, PayloadEdge{Source: "node_03", Target: "node_99"})
	if p.HasCycle() {
		t.Error("dangling-target edge reported as cycle")
	}
}

func TestHasCycleSelfLoop(t *testing.T) {
	p := validPayload()
	p.Edges = append(p.Edges, PayloadEdge{Source: "node_02", Target: "node_02"})
	if !p.HasCycle() {
		t.Error("self-loop not detected as cycle")
	}
}

func TestParsePayloadRoundTrip(t *testing.T) {
	p := validPayload()
	data, err := p.JSON()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := ParsePayload(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got.Nodes) != 3 || len(got.Edges) != 2 {
		t.Errorf("round trip lost content: %d nodes, %d edges", len(got.Nodes), len(got.Edges))
	}
	if got.Nodes[0].ID != "node_01" || got.Edges[0].Rationale != "needs the basics" {
		t.Error("round trip changed field values")
	}
	if len(got.Nodes[0].LearningObjectives) != 2 || got.Nodes[0].LearningObjectives[0] != "Explain the core terms" {
		t.Errorf("round trip lost learning objectives: %v", got.Nodes[0].LearningObjectives)
	}
}

func TestPrerequisites(t *testing.T) {
	p := validPayload()
	p.Edges = append(p.Edges, PayloadEdge{Source: "node_01", Target: "node_03"})

	prereqs := p.Prerequisites()
	if got := prereqs["node_03"]; len(got) != 2 || got[0] != "node_02" || got[1] != "node_01" {
		t.Errorf("node_03 prerequisites = %v, want [node_02 node_01]", got)
	}
	if len(prereqs["node_01"]) != 0 {
		t.Errorf("root node has prerequisites: %v", prereqs["node_01"])
	}
}
