package newproject

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/autodidact/internal/clarify"
	"github.com/abhisek/autodidact/internal/llm"
	"github.com/abhisek/autodidact/internal/research"
	"github.com/abhisek/autodidact/internal/screen"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/abhisek/autodidact/internal/ui/components"
	"github.com/abhisek/autodidact/internal/ui/layout"
	"github.com/abhisek/autodidact/internal/ui/theme"
)

type phase int

const (
	phaseTopic phase = iota
	phaseHours
	phaseAnalyzing
	phaseQuestions
	phaseResearching
	phaseDone
	phaseError
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewProjectScreen walks the learner from a raw topic to a materialized
// project: topic and hours input, the clarification loop, then the
// deep-research wait.
type NewProjectScreen struct {
	clarifier    *clarify.Engine
	orchestrator *research.Orchestrator
	transcripts  store.TranscriptRepo

	phase      phase
	topicInput components.TextInput
	hoursInput components.TextInput
	topic      string
	hours      int

	state       *clarify.State
	answerInput components.TextInput
	answers     []string
	questionIdx int
	reprompted  bool

	spinnerFrame int
	result       *research.Result
	err          error
}

var _ screen.Screen = (*NewProjectScreen)(nil)
var _ screen.KeyHintProvider = (*NewProjectScreen)(nil)

// New creates the new-project wizard. transcripts may be nil; the
// clarification dialogue is then not persisted.
func New(clarifier *clarify.Engine, orchestrator *research.Orchestrator, transcripts store.TranscriptRepo) *NewProjectScreen {
	return &NewProjectScreen{
		clarifier:    clarifier,
		orchestrator: orchestrator,
		transcripts:  transcripts,
		topicInput:   components.NewTextInput("What do you want to learn?", false, 120),
		hoursInput:   components.NewTextInput("Hours you can spend, e.g. 10", true, 3),
	}
}

func (s *NewProjectScreen) Init() tea.Cmd {
	return s.topicInput.Init()
}

func (s *NewProjectScreen) Title() string {
	return "New Project"
}

func (s *NewProjectScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestions:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Ctrl+S", Description: "Skip all"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseAnalyzing, phaseResearching:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseDone, phaseError:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *NewProjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if s.phase == phaseAnalyzing || s.phase == phaseResearching {
			s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
			return s, spinnerTick()
		}
		return s, nil

	case analysisDoneMsg:
		if msg.Err != nil {
			s.phase = phaseError
			s.err = msg.Err
			return s, nil
		}
		s.state = msg.State
		if s.state.Resolved() {
			return s, s.startResearch()
		}
		s.phase = phaseQuestions
		s.answers = nil
		s.questionIdx = 0
		s.answerInput = components.NewTextInput("Your answer (or: skip)", false, 200)
		return s, s.answerInput.Init()

	case researchDoneMsg:
		if msg.Err != nil {
			s.phase = phaseError
			s.err = msg.Err
			return s, nil
		}
		s.phase = phaseDone
		s.result = msg.Result
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *NewProjectScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseTopic:
		if msg.String() == "enter" {
			topic := strings.TrimSpace(s.topicInput.Value())
			if topic == "" {
				return s, nil
			}
			s.topic = topic
			s.phase = phaseHours
			return s, s.hoursInput.Init()
		}

	case phaseHours:
		if msg.String() == "enter" {
			hours, err := s.hoursInput.NumericValue()
			if err != nil || hours <= 0 {
				return s, nil
			}
			s.hours = hours
			s.phase = phaseAnalyzing
			return s, tea.Batch(s.startAnalysis(), spinnerTick())
		}

	case phaseQuestions:
		switch msg.String() {
		case "ctrl+s":
			s.state.SkipAll()
			return s, s.startResearch()
		case "enter":
			s.answers = append(s.answers, s.answerInput.Value())
			s.questionIdx++
			if s.questionIdx < len(s.state.Questions) {
				s.answerInput = components.NewTextInput("Your answer (or: skip)", false, 200)
				return s, s.answerInput.Init()
			}
			if s.state.SubmitAnswers(s.answers) {
				return s, s.startResearch()
			}
			// Everything was skipped; ask again from the top.
			s.reprompted = true
			s.answers = nil
			s.questionIdx = 0
			s.answerInput = components.NewTextInput("Your answer (or: skip)", false, 200)
			return s, s.answerInput.Init()
		}
	}

	return s.forwardToInput(msg)
}

func (s *NewProjectScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.phase {
	case phaseTopic:
		s.topicInput, cmd = s.topicInput.Update(msg)
	case phaseHours:
		s.hoursInput, cmd = s.hoursInput.Update(msg)
	case phaseQuestions:
		s.answerInput, cmd = s.answerInput.Update(msg)
	}
	return s, cmd
}

func (s *NewProjectScreen) startAnalysis() tea.Cmd {
	topic, hours := s.topic, s.hours
	timeout := llm.DefaultConfig().Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		state, err := s.clarifier.Analyze(ctx, topic, hours)
		return analysisDoneMsg{State: state, Err: err}
	}
}

func (s *NewProjectScreen) startResearch() tea.Cmd {
	s.phase = phaseResearching
	topic := s.state.ResolvedTopic()
	hours := s.hours
	timeout := llm.DefaultConfig().ResearchTimeout
	saveTranscript := s.saveTranscript()
	run := func() tea.Msg {
		saveTranscript()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := s.orchestrator.Run(ctx, topic, hours)
		return researchDoneMsg{Result: result, Err: err}
	}
	return tea.Batch(run, spinnerTick())
}

// saveTranscript snapshots the clarification dialogue for persistence.
// Best effort: a failed write never blocks the research run.
func (s *NewProjectScreen) saveTranscript() func() {
	if s.transcripts == nil || len(s.state.Questions) == 0 {
		return func() {}
	}
	questions := s.state.Questions
	answers := s.answers
	return func() {
		sessionID := uuid.NewString()
		ctx := context.Background()
		for i, q := range questions {
			answer := ""
			if i < len(answers) {
				answer = answers[i]
			}
			_ = s.transcripts.Append(ctx, store.TranscriptEntry{
				SessionID: sessionID, TurnIdx: i * 2, Role: "assistant", Content: q,
			})
			_ = s.transcripts.Append(ctx, store.TranscriptEntry{
				SessionID: sessionID, TurnIdx: i*2 + 1, Role: "user", Content: answer,
			})
		}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *NewProjectScreen) View(width, height int) string {
	var body string

	switch s.phase {
	case phaseTopic:
		body = strings.Join([]string{
			theme.Body.Render("What topic do you want to learn?"),
			"",
			s.topicInput.View(),
		}, "\n")

	case phaseHours:
		body = strings.Join([]string{
			theme.Body.Render("Topic: ") + theme.Selected.Render(s.topic),
			"",
			theme.Body.Render("How many hours can you spend on it?"),
			"",
			s.hoursInput.View(),
		}, "\n")

	case phaseAnalyzing:
		body = s.spinnerLine("Checking whether your topic needs narrowing...")

	case phaseQuestions:
		lines := []string{
			theme.Body.Render("A few questions to focus the research."),
			theme.Hint.Render("Answer in one sentence, or type \"skip\"."),
			"",
		}
		if s.reprompted {
			lines = append(lines,
				theme.Eligible.Render("All answers were skipped. One more pass, or Ctrl+S to research the topic as-is."),
				"")
		}
		for i := 0; i < s.questionIdx; i++ {
			lines = append(lines,
				theme.Hint.Render(fmt.Sprintf("%d. %s", i+1, s.state.Questions[i])),
				theme.Body.Render("   "+displayAnswer(s.answers[i])))
		}
		lines = append(lines,
			theme.Body.Render(fmt.Sprintf("%d. %s", s.questionIdx+1, s.state.Questions[s.questionIdx])),
			"",
			s.answerInput.View())
		body = strings.Join(lines, "\n")

	case phaseResearching:
		body = strings.Join([]string{
			s.spinnerLine("Researching: " + s.state.ResolvedTopic()),
			"",
			theme.Hint.Render("Deep research can take several minutes."),
		}, "\n")

	case phaseDone:
		lines := []string{
			theme.Mastered.Render("Project created."),
			"",
			theme.Body.Render(fmt.Sprintf("ID:        %s", s.result.ProjectID)),
			theme.Body.Render(fmt.Sprintf("Concepts:  %d", s.result.NodeCount)),
			theme.Body.Render(fmt.Sprintf("Relations: %d", s.result.EdgeCount)),
		}
		if len(s.result.NextUp) > 0 {
			lines = append(lines, "", theme.Body.Render("Start with:"))
			for i, n := range s.result.NextUp {
				if i == 2 {
					lines = append(lines, theme.Hint.Render(fmt.Sprintf("  ... and %d more", len(s.result.NextUp)-2)))
					break
				}
				lines = append(lines, theme.Eligible.Render("  ▸ "+n.Label))
			}
		}
		if s.result.CycleWarning {
			lines = append(lines, "",
				theme.Eligible.Render("Warning: the prerequisite graph contains a cycle."),
				theme.Hint.Render("Concepts on the cycle will stay locked."))
		}
		lines = append(lines, "", theme.Hint.Render("Press Esc to go back."))
		body = strings.Join(lines, "\n")

	case phaseError:
		body = strings.Join([]string{
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong."),
			"",
			theme.Body.Render(s.err.Error()),
			"",
			theme.Hint.Render("Press Esc to go back and try again."),
		}, "\n")
	}

	card := theme.Card.Width(min(width-4, 90)).Render(body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *NewProjectScreen) spinnerLine(text string) string {
	return theme.Selected.Render(spinnerFrames[s.spinnerFrame]) + " " + theme.Body.Render(text)
}

func displayAnswer(a string) string {
	if clarify.IsSkipResponse(a) {
		return "(skipped)"
	}
	return strings.TrimSpace(a)
}
