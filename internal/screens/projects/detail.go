package projects

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/screen"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/abhisek/autodidact/internal/ui/layout"
	"github.com/abhisek/autodidact/internal/ui/theme"
)

// DetailScreen shows one project's concept graph with per-node status and
// the set of concepts that are unlocked right now.
type DetailScreen struct {
	project *store.Project
	payload graph.Payload
	mastery map[string]float64
	next    []graph.NextNode
	loadErr error
	scroll  int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail loads and creates a project detail screen.
func NewDetail(repo store.ProjectRepo, resolver *graph.Resolver, projectID string) *DetailScreen {
	s := &DetailScreen{}
	ctx := context.Background()

	s.project, s.loadErr = repo.Get(ctx, projectID)
	if s.loadErr != nil {
		return s
	}
	if s.payload, s.loadErr = repo.GraphPayload(ctx, projectID); s.loadErr != nil {
		return s
	}
	if s.mastery, s.loadErr = repo.NodeMastery(ctx, projectID); s.loadErr != nil {
		return s
	}
	s.next, s.loadErr = resolver.NextNodes(ctx, projectID)
	return s
}

func (s *DetailScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailScreen) Title() string {
	if s.project == nil {
		return "Project"
	}
	return s.project.Topic
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(s.payload.Nodes)-1 {
			s.scroll++
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	if s.loadErr != nil {
		return centered(width, height,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Could not load project: "+s.loadErr.Error()))
	}

	eligible := make(map[string]bool, len(s.next))
	for _, n := range s.next {
		eligible[n.ID] = true
	}

	var lines []string

	if len(s.next) == 0 {
		lines = append(lines, theme.Mastered.Render("All concepts mastered, or everything left is blocked."))
	} else {
		labels := make([]string, 0, 2)
		for i, n := range s.next {
			if i == 2 {
				labels = append(labels, fmt.Sprintf("and %d more", len(s.next)-2))
				break
			}
			labels = append(labels, n.Label)
		}
		lines = append(lines, theme.Eligible.Render("Next up: ")+theme.Body.Render(strings.Join(labels, ", ")))
	}
	lines = append(lines, "")

	visible := height - 6
	if visible < 1 {
		visible = 1
	}
	end := s.scroll + visible
	if end > len(s.payload.Nodes) {
		end = len(s.payload.Nodes)
	}

	for _, n := range s.payload.Nodes[s.scroll:end] {
		m := s.mastery[n.ID]
		var glyph string
		var style lipgloss.Style
		switch {
		case m >= graph.MasteryThreshold:
			glyph, style = "✓", theme.Mastered
		case eligible[n.ID]:
			glyph, style = "▸", theme.Eligible
		default:
			glyph, style = "·", theme.Blocked
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			style.Render(glyph),
			style.Render(fmt.Sprintf("%-40s", n.Label)),
			theme.Hint.Render(fmt.Sprintf("%3.0f%%", m*100)),
		))
	}

	if len(s.payload.Nodes) > 0 {
		focused := s.payload.Nodes[s.scroll]
		if len(focused.LearningObjectives) > 0 {
			lines = append(lines, "", theme.Subtitle.Render("Objectives for "+focused.Label))
			for _, o := range focused.LearningObjectives {
				lines = append(lines, theme.Hint.Render("  - "+o))
			}
		}
	}

	lines = append(lines, "", theme.Hint.Render("Report: "+s.project.ReportPath))

	return centered(width, height, theme.Card.Render(strings.Join(lines, "\n")))
}
