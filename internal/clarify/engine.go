package clarify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/autodidact/internal/llm"
)

// AnalysisError indicates the topic-analysis collaborator failed: provider
// error or a response that does not match the analysis schema. Nothing is
// retained on failure; the caller may retry the whole operation.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("topic analysis: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// Engine decides whether a topic needs narrowing before research and runs
// the bounded question/answer loop. It holds no per-conversation state:
// each Analyze call returns a fresh State owned by the caller.
type Engine struct {
	provider llm.Provider
}

// NewEngine creates a clarification engine.
func NewEngine(provider llm.Provider) *Engine {
	return &Engine{provider: provider}
}

type analysisOutput struct {
	NeedClarification bool     `json:"need_clarification"`
	Questions         []string `json:"questions"`
	RefinedTopic      string   `json:"refined_topic"`
}

// Analyze asks the topic-analysis collaborator whether the topic is
// actionable as-is. It returns a resolved State when no clarification is
// needed, or one carrying the questions to put to the learner.
func (e *Engine) Analyze(ctx context.Context, topic string, hours int) (*State, error) {
	ctx = llm.WithPurpose(ctx, "topic-analysis")

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalysisUserMessage(topic, hours)},
		},
		Schema:    AnalysisSchema,
		MaxTokens: 1024,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, &AnalysisError{Err: err}
	}

	var out analysisOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &AnalysisError{Err: fmt.Errorf("parse analysis response: %w", err)}
	}

	state := &State{
		Topic: topic,
		Hours: hours,
	}

	if !out.NeedClarification {
		refined := out.RefinedTopic
		if refined == "" {
			refined = topic
		}
		state.resolve(refined)
		return state, nil
	}

	if len(out.Questions) == 0 {
		// Collaborator claimed clarification is needed but asked nothing;
		// treat the topic as actionable rather than dead-ending the user.
		state.resolve(topic)
		return state, nil
	}

	state.Required = true
	state.Questions = out.Questions
	return state, nil
}

func buildAnalysisUserMessage(topic string, hours int) string {
	return fmt.Sprintf("Topic: %s\nTarget study time: %d hours", topic, hours)
}
