package clarify

import (
	"strings"
	"testing"
)

func TestIsSkipResponse(t *testing.T) {
	tests := []struct {
		answer string
		skip   bool
	}{
		{"", true},
		{"   ", true},
		{"skip", true},
		{"SKIP", true},
		{"idk", true},
		{"IDK", true},
		{"i don't know", true},
		{"I dont know", true},
		{"na", true},
		{"N/A", true},
		{"none", true},
		{"not sure", true},
		{"  skip  ", true},
		{"no clue", false},
		{"skipping the basics", false},
		{"none of the advanced parts", false},
		{"I want to focus on cryptography", false},
	}

	for _, tt := range tests {
		if got := IsSkipResponse(tt.answer); got != tt.skip {
			t.Errorf("IsSkipResponse(%q) = %v, want %v", tt.answer, got, tt.skip)
		}
	}
}

func questionState() *State {
	return &State{
		Topic:    "Modern World History",
		Hours:    10,
		Required: true,
		Questions: []string{
			"Which era interests you most?",
			"What is your current knowledge level?",
		},
	}
}

func TestSubmitAnswersSubstantiveResolvesImmediately(t *testing.T) {
	s := questionState()

	if !s.SubmitAnswers([]string{"the Cold War", "skip"}) {
		t.Fatal("substantive answer did not resolve")
	}
	if !s.Resolved() {
		t.Fatal("state not resolved after substantive answer")
	}

	topic := s.ResolvedTopic()
	if !strings.Contains(topic, "Modern World History") {
		t.Errorf("refined topic %q lost the original topic", topic)
	}
	if !strings.Contains(topic, "the Cold War") {
		t.Errorf("refined topic %q lost the answer", topic)
	}
	if strings.Contains(topic, "knowledge level") {
		t.Errorf("refined topic %q includes the skipped question", topic)
	}
}

func TestSubmitAnswersAllSkipRepromptsTwiceThenForcesResolution(t *testing.T) {
	s := questionState()

	if s.SubmitAnswers([]string{"skip", ""}) {
		t.Fatal("first all-skip submission resolved early")
	}
	if s.SubmitAnswers([]string{"idk", "n/a"}) {
		t.Fatal("second all-skip submission resolved early")
	}
	if !s.SubmitAnswers([]string{"", "none"}) {
		t.Fatal("third all-skip submission did not force resolution")
	}

	if got := s.ResolvedTopic(); got != "Modern World History" {
		t.Errorf("forced resolution topic = %q, want the original", got)
	}
}

func TestSkipAllResolvesWithOriginalTopic(t *testing.T) {
	s := questionState()
	s.SkipAll()

	if !s.Resolved() {
		t.Fatal("SkipAll did not resolve")
	}
	if got := s.ResolvedTopic(); got != "Modern World History" {
		t.Errorf("topic = %q, want the original", got)
	}
}

func TestSubmitAnswersAfterResolutionIsIdempotent(t *testing.T) {
	s := questionState()
	s.SkipAll()
	before := s.ResolvedTopic()

	if !s.SubmitAnswers([]string{"the Cold War", "beginner"}) {
		t.Fatal("submission on resolved state returned false")
	}
	if got := s.ResolvedTopic(); got != before {
		t.Errorf("resolved topic changed from %q to %q", before, got)
	}
}

func TestSynthesizeRefinedTopicPairsQuestionsWithAnswers(t *testing.T) {
	got := synthesizeRefinedTopic(
		"Programming",
		[]string{"Which language?", "What goal?"},
		[]string{"Go", "build web services"},
	)
	want := "Research the topic of Programming. The learner added: Which language? Go. What goal? build web services."
	if got != want {
		t.Errorf("refined topic = %q, want %q", got, want)
	}
}
