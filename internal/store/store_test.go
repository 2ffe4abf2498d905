package store

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/autodidact/internal/graph"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPayload() graph.Payload {
	return graph.Payload{
		Nodes: []graph.PayloadNode{
			{ID: "node_01", Label: "Sets", Summary: "Collections.",
				LearningObjectives: []string{
					"Explain what a set is",
					"Identify elements and subsets",
					"Apply union and intersection",
				}},
			{ID: "node_02", Label: "Functions", Summary: "Mappings between sets."},
			{ID: "node_03", Label: "Relations", Summary: "Subsets of products."},
		},
		Edges: []graph.PayloadEdge{
			{Source: "node_01", Target: "node_02", Confidence: 0.9, Rationale: "functions are defined on sets"},
			{Source: "node_01", Target: "node_03", Confidence: 0.8, Rationale: "relations are defined on sets"},
		},
	}
}

func createTestProject(t *testing.T, s *Store) string {
	t.Helper()
	ctx := context.Background()
	id, err := s.ProjectRepo().Create(ctx, "Set theory basics", "/tmp/report.md", testPayload(), "[]")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return id
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProjectCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id := createTestProject(t, s)

	p, err := s.ProjectRepo().Get(ctx, id)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if p.Topic != "Set theory basics" {
		t.Errorf("topic = %q", p.Topic)
	}
	if p.ReportPath != "/tmp/report.md" {
		t.Errorf("report path = %q", p.ReportPath)
	}
	if p.GraphJSON == "" {
		t.Error("graph JSON not stored on project row")
	}
}

func TestProjectGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ProjectRepo().Get(context.Background(), "no-such-id")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSaveGraphMaterializesRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()
	id := createTestProject(t, s)

	if err := repo.SaveGraph(ctx, id, testPayload()); err != nil {
		t.Fatalf("save graph: %v", err)
	}

	mastery, err := repo.NodeMastery(ctx, id)
	if err != nil {
		t.Fatalf("node mastery: %v", err)
	}
	if len(mastery) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(mastery))
	}
	for id, m := range mastery {
		if m != 0 {
			t.Errorf("fresh node %s has mastery %v", id, m)
		}
	}

	payload, err := repo.GraphPayload(ctx, id)
	if err != nil {
		t.Fatalf("graph payload: %v", err)
	}
	if len(payload.Nodes) != 3 || payload.Nodes[0].ID != "node_01" {
		t.Error("stored payload lost node order")
	}
}

func TestSaveGraphIdempotentAndPreservesMastery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()
	id := createTestProject(t, s)

	if err := repo.SaveGraph(ctx, id, testPayload()); err != nil {
		t.Fatalf("save graph: %v", err)
	}
	if err := repo.UpdateMastery(ctx, id, "node_01", 0.8); err != nil {
		t.Fatalf("update mastery: %v", err)
	}

	// Re-save the same payload: no duplicate rows, mastery carried over.
	if err := repo.SaveGraph(ctx, id, testPayload()); err != nil {
		t.Fatalf("re-save graph: %v", err)
	}

	mastery, err := repo.NodeMastery(ctx, id)
	if err != nil {
		t.Fatalf("node mastery: %v", err)
	}
	if len(mastery) != 3 {
		t.Fatalf("re-save duplicated rows: %d nodes", len(mastery))
	}
	if mastery["node_01"] != 0.8 {
		t.Errorf("mastery after re-save = %v, want 0.8", mastery["node_01"])
	}
}

func TestSaveGraphRejectsInvalidPayloadWithoutPartialRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()
	id := createTestProject(t, s)

	bad := testPayload()
	bad.Edges = append(bad.Edges, graph.PayloadEdge{Source: "node_01", Target: "node_99"})

	err := repo.SaveGraph(ctx, id, bad)
	var verr *graph.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *graph.ValidationError, got %v", err)
	}

	mastery, err := repo.NodeMastery(ctx, id)
	if err != nil {
		t.Fatalf("node mastery: %v", err)
	}
	if len(mastery) != 0 {
		t.Errorf("rejected payload left %d node rows behind", len(mastery))
	}
}

func TestSaveGraphUnknownProject(t *testing.T) {
	s := openTestStore(t)

	err := s.ProjectRepo().SaveGraph(context.Background(), "no-such-id", testPayload())
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListHidesUnmaterializedProjects(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()

	// First project fully materialized, second never got its graph saved.
	ready := createTestProject(t, s)
	if err := repo.SaveGraph(ctx, ready, testPayload()); err != nil {
		t.Fatalf("save graph: %v", err)
	}
	if _, err := repo.Create(ctx, "Abandoned topic", "/tmp/r2.md", testPayload(), "[]"); err != nil {
		t.Fatalf("create second project: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 listed project, got %d", len(list))
	}
	if list[0].ID != ready {
		t.Errorf("listed project = %s, want %s", list[0].ID, ready)
	}
	if list[0].Total != 3 || list[0].Mastered != 0 {
		t.Errorf("summary = %d/%d, want 0/3", list[0].Mastered, list[0].Total)
	}
}

func TestListCountsMasteredNodes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()
	id := createTestProject(t, s)

	if err := repo.SaveGraph(ctx, id, testPayload()); err != nil {
		t.Fatalf("save graph: %v", err)
	}
	if err := repo.UpdateMastery(ctx, id, "node_01", graph.MasteryThreshold); err != nil {
		t.Fatalf("update mastery: %v", err)
	}
	if err := repo.UpdateMastery(ctx, id, "node_02", 0.69); err != nil {
		t.Fatalf("update mastery: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Mastered != 1 {
		t.Fatalf("mastered count = %d, want 1 (threshold is inclusive)", list[0].Mastered)
	}
	if list[0].Percent() != 33 {
		t.Errorf("percent = %d, want 33", list[0].Percent())
	}
}

func TestUpdateMasteryClampsOutOfRangeValues(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()
	id := createTestProject(t, s)

	if err := repo.SaveGraph(ctx, id, testPayload()); err != nil {
		t.Fatalf("save graph: %v", err)
	}

	if err := repo.UpdateMastery(ctx, id, "node_01", 1.7); err != nil {
		t.Fatalf("update mastery: %v", err)
	}
	if err := repo.UpdateMastery(ctx, id, "node_02", -0.3); err != nil {
		t.Fatalf("update mastery: %v", err)
	}

	mastery, err := repo.NodeMastery(ctx, id)
	if err != nil {
		t.Fatalf("node mastery: %v", err)
	}
	if mastery["node_01"] != 1 {
		t.Errorf("mastery clamped high = %v, want 1", mastery["node_01"])
	}
	if mastery["node_02"] != 0 {
		t.Errorf("mastery clamped low = %v, want 0", mastery["node_02"])
	}
}

func TestGetNodeReturnsObjectives(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()
	id := createTestProject(t, s)

	if err := repo.SaveGraph(ctx, id, testPayload()); err != nil {
		t.Fatalf("save graph: %v", err)
	}
	if err := repo.UpdateMastery(ctx, id, "node_01", 0.4); err != nil {
		t.Fatalf("update mastery: %v", err)
	}

	n, err := repo.GetNode(ctx, id, "node_01")
	if err != nil {
		t.Fatalf("get node: %v", err)
	}
	if n.Label != "Sets" || n.Mastery != 0.4 {
		t.Errorf("node = %q mastery %v, want Sets at 0.4", n.Label, n.Mastery)
	}
	if len(n.Objectives) != 3 || n.Objectives[0] != "Explain what a set is" {
		t.Errorf("objectives not persisted: %v", n.Objectives)
	}

	if _, err := repo.GetNode(ctx, id, "node_99"); err == nil {
		t.Fatal("expected error for unknown node")
	} else {
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected *NotFoundError, got %T", err)
		}
	}
}

func TestUpdateMasteryUnknownNode(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()
	id := createTestProject(t, s)

	if err := repo.SaveGraph(ctx, id, testPayload()); err != nil {
		t.Fatalf("save graph: %v", err)
	}

	err := repo.UpdateMastery(ctx, id, "node_99", 0.5)
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestResolverAgainstStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProjectRepo()
	id := createTestProject(t, s)

	if err := repo.SaveGraph(ctx, id, testPayload()); err != nil {
		t.Fatalf("save graph: %v", err)
	}
	resolver := graph.NewResolver(repo)

	next, err := resolver.NextNodes(ctx, id)
	if err != nil {
		t.Fatalf("next nodes: %v", err)
	}
	if len(next) != 1 || next[0].ID != "node_01" {
		t.Fatalf("fresh project next = %v, want [node_01]", next)
	}

	if err := repo.UpdateMastery(ctx, id, "node_01", 0.9); err != nil {
		t.Fatalf("update mastery: %v", err)
	}
	next, err = resolver.NextNodes(ctx, id)
	if err != nil {
		t.Fatalf("next nodes: %v", err)
	}
	if len(next) != 2 || next[0].ID != "node_02" || next[1].ID != "node_03" {
		t.Fatalf("after mastering node_01, next = %v, want [node_02 node_03]", next)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "topic-analysis", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "deep-research", InputTokens: 2000, OutputTokens: 8000, LatencyMs: 90000, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "topic-analysis", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// Newest first.
	if all[0].Purpose != "topic-analysis" || all[0].Success {
		t.Errorf("first event = %+v, want the failed analysis call", all[0])
	}
	if all[0].Sequence <= all[1].Sequence || all[1].Sequence <= all[2].Sequence {
		t.Error("events not in descending sequence order")
	}

	research, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "deep-research"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(research) != 1 || research[0].OutputTokens != 8000 {
		t.Errorf("purpose filter returned %v", research)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d events", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got == nil || got.Purpose != "topic-analysis" || !got.Success {
		t.Errorf("get event = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "topic-analysis", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "topic-analysis", InputTokens: 300, OutputTokens: 150, LatencyMs: 600, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "deep-research", InputTokens: 1000, OutputTokens: 5000, LatencyMs: 60000, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	for _, row := range byPurpose {
		if row.Purpose == "topic-analysis" {
			if row.Calls != 2 || row.InputTokens != 400 || row.OutputTokens != 200 {
				t.Errorf("topic-analysis usage = %+v", row)
			}
			if row.AvgLatencyMs != 500 {
				t.Errorf("avg latency = %d, want 500", row.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
	for _, row := range byModel {
		if row.Model == "gpt-4o-mini" && (row.Calls != 1 || row.OutputTokens != 5000) {
			t.Errorf("gpt-4o-mini usage = %+v", row)
		}
	}
}

func TestTranscriptAppendAndReadBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.TranscriptRepo()

	turns := []TranscriptEntry{
		{SessionID: "sess-1", TurnIdx: 0, Role: "assistant", Content: "Which era interests you most?"},
		{SessionID: "sess-1", TurnIdx: 1, Role: "user", Content: "the Cold War"},
		{SessionID: "sess-2", TurnIdx: 0, Role: "assistant", Content: "What is your goal?"},
	}
	for _, turn := range turns {
		if err := repo.Append(ctx, turn); err != nil {
			t.Fatalf("append transcript: %v", err)
		}
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(got))
	}
	if got[0].TurnIdx != 0 || got[1].Content != "the Cold War" {
		t.Errorf("transcript order wrong: %+v", got)
	}
}
