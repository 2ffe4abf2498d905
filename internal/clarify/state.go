package clarify

import (
	"fmt"
	"strings"
)

// MaxSkipRetries is how many all-skip submissions are re-prompted before
// resolution is forced with the original topic.
const MaxSkipRetries = 2

// State is the transient per-conversation clarification state. The caller
// owns it, threads it between turns, and discards it once a research job is
// launched. It is never persisted.
type State struct {
	Topic     string
	Hours     int
	Required  bool
	Questions []string
	Attempts  int

	refined  string
	resolved bool
}

// SubmitAnswers records the learner's answers to the clarification
// questions. It returns true when the state resolved, false when the
// learner skipped everything and should be re-prompted.
//
// An all-skip submission re-prompts at most MaxSkipRetries times; the next
// one forces resolution with the original topic. Any substantive answer
// resolves immediately with a refined topic that excludes the skipped
// answers.
func (s *State) SubmitAnswers(answers []string) bool {
	if s.resolved {
		return true
	}

	allSkip := true
	for _, a := range answers {
		if !IsSkipResponse(a) {
			allSkip = false
			break
		}
	}

	if allSkip {
		if s.Attempts < MaxSkipRetries {
			s.Attempts++
			return false
		}
		s.resolve(s.Topic)
		return true
	}

	s.resolve(synthesizeRefinedTopic(s.Topic, s.Questions, answers))
	return true
}

// SkipAll force-resolves the state with the original, unmodified topic.
// The learner may do this at any time instead of answering.
func (s *State) SkipAll() {
	if !s.resolved {
		s.resolve(s.Topic)
	}
}

// Resolved reports whether a topic is ready to hand to research.
func (s *State) Resolved() bool {
	return s.resolved
}

// ResolvedTopic returns the topic to research: the refined topic when one
// was synthesized, otherwise the original.
func (s *State) ResolvedTopic() string {
	if s.refined != "" {
		return s.refined
	}
	return s.Topic
}

func (s *State) resolve(topic string) {
	s.refined = topic
	s.resolved = true
}

// synthesizeRefinedTopic builds a research directive from the original
// topic and the substantive answers, pairing each with its question.
// Skip answers are excluded entirely.
func synthesizeRefinedTopic(topic string, questions, answers []string) string {
	var parts []string
	for i, a := range answers {
		if IsSkipResponse(a) {
			continue
		}
		answer := strings.TrimSpace(a)
		if i < len(questions) {
			parts = append(parts, fmt.Sprintf("%s %s.", questions[i], answer))
		} else {
			parts = append(parts, answer+".")
		}
	}
	if len(parts) == 0 {
		return topic
	}
	return fmt.Sprintf("Research the topic of %s. The learner added: %s",
		topic, strings.Join(parts, " "))
}
