package clarify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/autodidact/internal/llm"
)

func analysisResponse(t *testing.T, out analysisOutput) llm.MockResponse {
	t.Helper()
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal analysis output: %v", err)
	}
	return llm.MockResponse{Content: data}
}

func TestAnalyzeSpecificTopicResolvesImmediately(t *testing.T) {
	mock := llm.NewMockProvider(analysisResponse(t, analysisOutput{
		NeedClarification: false,
		RefinedTopic:      "Bitcoin consensus mechanisms",
	}))
	engine := NewEngine(mock)

	state, err := engine.Analyze(context.Background(), "bitcoin consensus", 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !state.Resolved() {
		t.Fatal("specific topic did not resolve")
	}
	if state.Required {
		t.Error("specific topic marked as requiring clarification")
	}
	if got := state.ResolvedTopic(); got != "Bitcoin consensus mechanisms" {
		t.Errorf("resolved topic = %q, want the refined one", got)
	}
}

func TestAnalyzeBroadTopicReturnsQuestions(t *testing.T) {
	mock := llm.NewMockProvider(analysisResponse(t, analysisOutput{
		NeedClarification: true,
		Questions:         []string{"Which era?", "What level?"},
	}))
	engine := NewEngine(mock)

	state, err := engine.Analyze(context.Background(), "Modern World History", 10)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if state.Resolved() {
		t.Fatal("broad topic resolved without answers")
	}
	if !state.Required || len(state.Questions) != 2 {
		t.Errorf("state = required %v, %d questions; want required with 2", state.Required, len(state.Questions))
	}
}

func TestAnalyzeEmptyRefinedTopicFallsBackToOriginal(t *testing.T) {
	mock := llm.NewMockProvider(analysisResponse(t, analysisOutput{
		NeedClarification: false,
	}))
	engine := NewEngine(mock)

	state, err := engine.Analyze(context.Background(), "React hooks", 3)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := state.ResolvedTopic(); got != "React hooks" {
		t.Errorf("resolved topic = %q, want the original", got)
	}
}

func TestAnalyzeNeedClarificationWithoutQuestionsResolves(t *testing.T) {
	mock := llm.NewMockProvider(analysisResponse(t, analysisOutput{
		NeedClarification: true,
	}))
	engine := NewEngine(mock)

	state, err := engine.Analyze(context.Background(), "Science", 8)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !state.Resolved() {
		t.Fatal("question-free clarification should resolve with the original topic")
	}
	if got := state.ResolvedTopic(); got != "Science" {
		t.Errorf("resolved topic = %q, want the original", got)
	}
}

func TestAnalyzeProviderErrorWrapsAsAnalysisError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	engine := NewEngine(mock)

	_, err := engine.Analyze(context.Background(), "anything", 1)
	var aerr *AnalysisError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *AnalysisError, got %v", err)
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("provider error not preserved in chain: %v", err)
	}
}

func TestAnalyzeSendsSchemaAndPurpose(t *testing.T) {
	mock := llm.NewMockProvider(analysisResponse(t, analysisOutput{
		NeedClarification: false,
		RefinedTopic:      "x",
	}))
	engine := NewEngine(mock)

	if _, err := engine.Analyze(context.Background(), "x", 2); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != AnalysisSchema {
		t.Error("analysis request did not carry the analysis schema")
	}
}
