package graph

import (
	"context"
	"testing"
)

// diamond builds A -> B, A -> C, B -> D, C -> D.
func diamond() Payload {
	return Payload{
		Nodes: []PayloadNode{
			{ID: "a", Label: "A"},
			{ID: "b", Label: "B"},
			{ID: "c", Label: "C"},
			{ID: "d", Label: "D"},
		},
		Edges: []PayloadEdge{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "c"},
			{Source: "b", Target: "d"},
			{Source: "c", Target: "d"},
		},
	}
}

func ids(nodes []NextNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestNextNodesFreshGraphReturnsRoots(t *testing.T) {
	got := NextNodes(diamond(), nil, MasteryThreshold)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("fresh diamond eligible = %v, want [a]", ids(got))
	}
}

func TestNextNodesUnlocksDependentsInPayloadOrder(t *testing.T) {
	mastery := map[string]float64{"a": 0.9}
	got := NextNodes(diamond(), mastery, MasteryThreshold)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Fatalf("after mastering a, eligible = %v, want [b c]", ids(got))
	}
}

func TestNextNodesRequiresAllPrerequisites(t *testing.T) {
	// d needs both b and c; only b is mastered.
	mastery := map[string]float64{"a": 1, "b": 0.7}
	got := NextNodes(diamond(), mastery, MasteryThreshold)
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("eligible = %v, want [c]", ids(got))
	}
}

func TestNextNodesThresholdIsInclusive(t *testing.T) {
	// Exactly at the threshold counts as mastered.
	mastery := map[string]float64{"a": MasteryThreshold}
	got := NextNodes(diamond(), mastery, MasteryThreshold)
	for _, n := range got {
		if n.ID == "a" {
			t.Error("node at threshold still eligible")
		}
	}
	if len(got) != 2 {
		t.Errorf("eligible = %v, want [b c]", ids(got))
	}
}

func TestNextNodesCompleteGraphIsEmpty(t *testing.T) {
	mastery := map[string]float64{"a": 1, "b": 1, "c": 0.8, "d": 0.7}
	if got := NextNodes(diamond(), mastery, MasteryThreshold); len(got) != 0 {
		t.Fatalf("complete graph eligible = %v, want empty", ids(got))
	}
}

func TestNextNodesCycleNeverEligible(t *testing.T) {
	p := Payload{
		Nodes: []PayloadNode{
			{ID: "x", Label: "X"},
			{ID: "y", Label: "Y"},
			{ID: "z", Label: "Z"},
		},
		Edges: []PayloadEdge{
			{Source: "x", Target: "y"},
			{Source: "y", Target: "x"},
		},
	}
	got := NextNodes(p, nil, MasteryThreshold)
	if len(got) != 1 || got[0].ID != "z" {
		t.Fatalf("eligible = %v, want only the off-cycle node z", ids(got))
	}
}

func TestNextNodesRegressionRelocksDependents(t *testing.T) {
	// b was mastered, then regressed below the threshold.
	mastery := map[string]float64{"a": 1, "b": 0.5, "c": 1}
	got := NextNodes(diamond(), mastery, MasteryThreshold)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("eligible = %v, want [b]", ids(got))
	}
}

type fakeSource struct {
	payload Payload
	mastery map[string]float64
}

func (f *fakeSource) GraphPayload(context.Context, string) (Payload, error) {
	return f.payload, nil
}

func (f *fakeSource) NodeMastery(context.Context, string) (map[string]float64, error) {
	return f.mastery, nil
}

func TestResolverNextNodesAndProgress(t *testing.T) {
	src := &fakeSource{
		payload: diamond(),
		mastery: map[string]float64{"a": 0.9, "b": 0.2, "c": 0, "d": 0},
	}
	r := NewResolver(src)
	ctx := context.Background()

	next, err := r.NextNodes(ctx, "p1")
	if err != nil {
		t.Fatalf("NextNodes: %v", err)
	}
	if len(next) != 2 || next[0].ID != "b" || next[1].ID != "c" {
		t.Errorf("next = %v, want [b c]", ids(next))
	}

	prog, err := r.Progress(ctx, "p1")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if prog.Mastered != 1 || prog.Total != 4 {
		t.Errorf("progress = %d/%d, want 1/4", prog.Mastered, prog.Total)
	}
	if prog.Percent() != 25 {
		t.Errorf("percent = %d, want 25", prog.Percent())
	}
}
