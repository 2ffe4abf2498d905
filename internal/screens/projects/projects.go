package projects

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/router"
	"github.com/abhisek/autodidact/internal/screen"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/abhisek/autodidact/internal/ui/components"
	"github.com/abhisek/autodidact/internal/ui/layout"
	"github.com/abhisek/autodidact/internal/ui/theme"
)

// ProjectsScreen lists materialized learning projects with their progress.
type ProjectsScreen struct {
	repo     store.ProjectRepo
	resolver *graph.Resolver

	summaries []store.ProjectSummary
	selected  int
	loadErr   error
}

var _ screen.Screen = (*ProjectsScreen)(nil)
var _ screen.KeyHintProvider = (*ProjectsScreen)(nil)

// New creates the project list screen.
func New(repo store.ProjectRepo, resolver *graph.Resolver) *ProjectsScreen {
	s := &ProjectsScreen{repo: repo, resolver: resolver}
	s.summaries, s.loadErr = repo.List(context.Background())
	return s
}

func (s *ProjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *ProjectsScreen) Title() string {
	return "Projects"
}

func (s *ProjectsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.summaries) == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.summaries)-1 {
			s.selected++
		}
	case "enter":
		summary := s.summaries[s.selected]
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: NewDetail(s.repo, s.resolver, summary.ID)}
		}
	}

	return s, nil
}

func (s *ProjectsScreen) View(width, height int) string {
	if s.loadErr != nil {
		return centered(width, height,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Could not load projects: "+s.loadErr.Error()))
	}
	if len(s.summaries) == 0 {
		return centered(width, height,
			theme.Hint.Render("No projects yet.\n\nCreate one from the home screen."))
	}

	barWidth := width / 3
	if barWidth > 40 {
		barWidth = 40
	}

	var rows []string
	for i, p := range s.summaries {
		marker := "  "
		style := theme.Unselected
		if i == s.selected {
			marker = "▸ "
			style = theme.Selected
		}

		topic := p.Topic
		if len(topic) > 48 {
			topic = topic[:45] + "..."
		}

		bar := components.NewProgressBar("", float64(p.Percent())/100, true, barWidth)
		rows = append(rows, fmt.Sprintf("%s%-50s %s  %s",
			marker,
			style.Render(topic),
			bar.View(),
			theme.Hint.Render(p.CreatedAt.Format("2006-01-02")),
		))
	}

	list := strings.Join(rows, "\n")
	return centered(width, height, theme.Card.Render(list))
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
