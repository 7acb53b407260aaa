package records

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rchau/learnloop/internal/router"
	"github.com/rchau/learnloop/internal/screen"
	"github.com/rchau/learnloop/internal/store"
	"github.com/rchau/learnloop/internal/ui/layout"
	"github.com/rchau/learnloop/internal/ui/theme"
)

const listLimit = 50

type recordsLoadedMsg struct {
	Records []store.Record
	Err     error
}

// RecordsScreen lists past practice sessions with expandable
// per-question detail.
type RecordsScreen struct {
	st       *store.Store
	records  []store.Record
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*RecordsScreen)(nil)
var _ screen.KeyHintProvider = (*RecordsScreen)(nil)

// New creates a new RecordsScreen.
func New(st *store.Store) *RecordsScreen {
	return &RecordsScreen{
		st:       st,
		expanded: make(map[int]bool),
	}
}

func (s *RecordsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		recs, err := s.st.Records().List(context.Background(), listLimit)
		if err != nil {
			return recordsLoadedMsg{Err: err}
		}
		return recordsLoadedMsg{Records: recs}
	}
}

func (s *RecordsScreen) Title() string {
	return "Records"
}

func (s *RecordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RecordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *RecordsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading records...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.Date
		if t, err := time.Parse(time.RFC3339, rec.Date); err == nil {
			dateStr = t.Format("Jan 02, 2006")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-28s %-6s  %d/%d correct  %d%%  %d min",
			prefix, dateStr, rec.Topic, rec.Difficulty,
			rec.CorrectAnswers, rec.TotalQuestions, rec.Accuracy, rec.TimeSpentMinutes)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for n, q := range rec.Questions {
				mark := theme.Correct.Render("✓")
				if !q.IsCorrect {
					mark = theme.Incorrect.Render("✗")
				}
				detail := fmt.Sprintf("    %s %d. %s", mark, n+1, q.Question)
				if !q.IsCorrect {
					detail += lipgloss.NewStyle().Foreground(theme.TextDim).
						Render(fmt.Sprintf("  (answered %q, correct %q)", q.UserAnswer, q.CorrectAnswer))
				}
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
