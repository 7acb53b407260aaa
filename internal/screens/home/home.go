package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rchau/learnloop/internal/practice"
	"github.com/rchau/learnloop/internal/router"
	"github.com/rchau/learnloop/internal/screen"
	"github.com/rchau/learnloop/internal/screens/knowledgemap"
	practicescreen "github.com/rchau/learnloop/internal/screens/practice"
	"github.com/rchau/learnloop/internal/screens/records"
	"github.com/rchau/learnloop/internal/screens/stats"
	"github.com/rchau/learnloop/internal/store"
	"github.com/rchau/learnloop/internal/ui/components"
	"github.com/rchau/learnloop/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu         components.Menu
	weakestName  string
	weakestLevel int
	sessionCount int
	resumable    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The store seeds default weak points on
// first run, so the summary line always has something to show.
func New(st *store.Store) *HomeScreen {
	h := &HomeScreen{}

	ctx := context.Background()
	if points, err := st.WeakPoints().List(ctx); err == nil && len(points) > 0 {
		h.weakestName = points[0].Name
		h.weakestLevel = points[0].WeaknessLevel
	}
	if n, err := st.Records().Count(ctx); err == nil {
		h.sessionCount = n
	}
	var snap practice.Snapshot
	if ok, err := st.Sessions().Load(ctx, &snap); err == nil && ok {
		h.resumable = true
	}

	practiceLabel := "PRACTICE"
	if h.resumable {
		practiceLabel = "PRACTICE (resume)"
	}

	items := []components.MenuItem{
		{Label: practiceLabel, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practicescreen.New(st)}
			}
		}},
		{Label: "KNOWLEDGE MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: knowledgemap.New()}
			}
		}},
		{Label: "RECORDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: records.New(st)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
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
	var sections []string

	title := theme.Title.Width(width).Render("LearnLoop")
	subtitle := theme.Subtitle.Width(width).Render("Targeted practice for your weakest topics")
	sections = append(sections, title+"\n"+subtitle)

	if h.weakestName != "" {
		summary := fmt.Sprintf("Weakest topic: %s (%d%%)   Sessions completed: %d",
			h.weakestName, h.weakestLevel, h.sessionCount)
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(summary))
	}

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
