package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/autodidact/internal/clarify"
	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/research"
	"github.com/abhisek/autodidact/internal/router"
	"github.com/abhisek/autodidact/internal/screen"
	"github.com/abhisek/autodidact/internal/screens/newproject"
	"github.com/abhisek/autodidact/internal/screens/notice"
	"github.com/abhisek/autodidact/internal/screens/projects"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/abhisek/autodidact/internal/ui/components"
	"github.com/abhisek/autodidact/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu         components.Menu
	projectCount int
	mastered     int
	total        int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. A nil clarifier or orchestrator means the
// LLM provider is not configured; the new-project flow is then replaced by
// a setup notice.
func New(repo store.ProjectRepo, resolver *graph.Resolver, clarifier *clarify.Engine, orchestrator *research.Orchestrator, transcripts store.TranscriptRepo) *HomeScreen {
	var projectCount, mastered, total int
	if repo != nil {
		if list, err := repo.List(context.Background()); err == nil {
			projectCount = len(list)
			for _, p := range list {
				mastered += p.Mastered
				total += p.Total
			}
		}
	}

	items := []components.MenuItem{
		{Label: "NEW LEARNING PROJECT", Action: func() tea.Cmd {
			if clarifier == nil || orchestrator == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: notice.New("New Project",
						"LLM provider not configured.\n\nSet OPENAI_API_KEY, ANTHROPIC_API_KEY or GEMINI_API_KEY\nand restart to create learning projects.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newproject.New(clarifier, orchestrator, transcripts)}
			}
		}},
		{Label: "MY PROJECTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: projects.New(repo, resolver)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		projectCount: projectCount,
		mastered:     mastered,
		total:        total,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("AUTODIDACT")
	subtitle := theme.Subtitle.Width(width).Render("Research any topic. Learn it in order.")

	stats := theme.Hint.Width(width).Align(lipgloss.Center).Render(
		fmt.Sprintf("%d projects   %d/%d concepts mastered",
			h.projectCount, h.mastered, h.total))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(h.menu.View()))

	content := strings.Join([]string{title, subtitle, "", stats, "", menu}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
