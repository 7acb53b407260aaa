package stats

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rchau/learnloop/internal/analytics"
	"github.com/rchau/learnloop/internal/router"
	"github.com/rchau/learnloop/internal/screen"
	"github.com/rchau/learnloop/internal/store"
	"github.com/rchau/learnloop/internal/ui/layout"
	"github.com/rchau/learnloop/internal/ui/theme"
)

var rangeChoices = []int{7, 14, 30, 90}

type statsLoadedMsg struct {
	Records []store.Record
	Err     error
}

// StatsScreen renders practice analytics: totals, time per day and an
// activity heatmap. With no history yet it falls back to generated demo
// records so the charts have a shape to show.
type StatsScreen struct {
	st       *store.Store
	records  []store.Record
	summary  analytics.Summary
	rangeIdx int
	demoMode bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(st *store.Store) *StatsScreen {
	return &StatsScreen{st: st, rangeIdx: 0}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		recs, err := s.st.Records().List(context.Background(), 0)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Records: recs}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Range"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.loaded = true
			return s, nil
		}
		s.records = msg.Records
		if len(s.records) == 0 {
			rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
			s.records = analytics.DemoRecords(time.Now(), rng)
			s.demoMode = true
		}
		s.recompute()
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.rangeIdx = (s.rangeIdx + 1) % len(rangeChoices)
			s.recompute()
			return s, nil
		}
	}
	return s, nil
}

func (s *StatsScreen) recompute() {
	s.summary = analytics.Aggregate(s.records, rangeChoices[s.rangeIdx], time.Now())
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Crunching numbers...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.demoMode {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Italic(true).
			Render("Showing demo data — complete a practice session to see your own."))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderTotals(width))
	b.WriteString("\n\n")
	b.WriteString(s.renderTimeSeries(width))
	b.WriteString("\n\n")
	b.WriteString(s.renderHeatmap(width))

	return b.String()
}

func (s *StatsScreen) renderTotals(width int) string {
	t := s.summary.Totals
	line := fmt.Sprintf("Sessions %d   Questions %d   Correct %d   Minutes %d   Avg accuracy %.0f%%",
		t.Sessions, t.Questions, t.Correct, t.Minutes, t.AverageAccuracy)
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render(line)
}

// renderTimeSeries draws minutes-per-day as horizontal bars for the
// selected trailing range.
func (s *StatsScreen) renderTimeSeries(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Practice time — last %d days", rangeChoices[s.rangeIdx])))
	b.WriteString("\n\n")

	if len(s.summary.Time) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No practice time in this range."))
		return b.String()
	}

	maxMinutes := 0
	for _, p := range s.summary.Time {
		if p.Minutes > maxMinutes {
			maxMinutes = p.Minutes
		}
	}

	// Show at most the last ten days so the chart fits any window.
	points := s.summary.Time
	if len(points) > 10 {
		points = points[len(points)-10:]
	}

	barMax := min(width-30, 40)
	for _, p := range points {
		barLen := 0
		if maxMinutes > 0 {
			barLen = p.Minutes * barMax / maxMinutes
		}
		line := fmt.Sprintf("%s  %s %3d min",
			p.Date.Format("Jan 02"),
			lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("█", barLen)),
			p.Minutes)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderHeatmap draws the trailing weeks as a Mon-Sun grid, one row per
// week, colored by questions answered.
func (s *StatsScreen) renderHeatmap(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Secondary).Bold(true).
		Render("Activity"))
	b.WriteString("\n\n")

	header := "          Mon  Tue  Wed  Thu  Fri  Sat  Sun"
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")

	cells := s.summary.Heatmap
	for w := 0; w+7 <= len(cells); w += 7 {
		week := cells[w : w+7]
		label := week[0].Date.Format("Jan 02")
		line := fmt.Sprintf("%-8s ", label)
		for _, day := range week {
			line += fmt.Sprintf(" %s  ", heatCell(day))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	legend := "░ rest   ▒ light   ▓ steady   █ heavy"
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(legend)))

	return b.String()
}

// heatCell buckets a day's question count into a shaded glyph.
func heatCell(day analytics.HeatmapDay) string {
	switch {
	case day.Count == 0:
		return lipgloss.NewStyle().Foreground(theme.Border).Render("░░")
	case day.Count < 10:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render("▒▒")
	case day.Count < 25:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render("▓▓")
	default:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("██")
	}
}
