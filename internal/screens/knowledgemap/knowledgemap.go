package knowledgemap

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rchau/learnloop/internal/corpus"
	"github.com/rchau/learnloop/internal/knowledge"
	"github.com/rchau/learnloop/internal/router"
	"github.com/rchau/learnloop/internal/screen"
	"github.com/rchau/learnloop/internal/ui/layout"
	"github.com/rchau/learnloop/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowTopic
)

type row struct {
	kind     rowKind
	category knowledge.Category
	node     *knowledge.Node
}

// MapScreen displays the knowledge graph grouped by category, with
// prerequisite and followup detail per topic.
type MapScreen struct {
	graph        knowledge.Graph
	rows         []row
	cursor       int
	scrollOffset int
	expanded     map[string]bool
	errMsg       string
}

var _ screen.Screen = (*MapScreen)(nil)
var _ screen.KeyHintProvider = (*MapScreen)(nil)

// New builds the knowledge map from the bundled corpus.
func New() *MapScreen {
	s := &MapScreen{expanded: make(map[string]bool)}

	records, err := corpus.Load()
	if err != nil {
		s.errMsg = err.Error()
		return s
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	s.graph = knowledge.Generate(records, rng)

	byCategory := s.graph.ByCategory()
	for _, cat := range knowledge.AllCategories() {
		nodes := byCategory[cat]
		if len(nodes) == 0 {
			continue
		}
		s.rows = append(s.rows, row{kind: rowCategoryHeader, category: cat})
		for i := range nodes {
			s.rows = append(s.rows, row{kind: rowTopic, category: cat, node: &nodes[i]})
		}
	}

	for i, r := range s.rows {
		if r.kind == rowTopic {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *MapScreen) Init() tea.Cmd {
	return nil
}

func (s *MapScreen) Title() string {
	return "Knowledge Map"
}

func (s *MapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Category"},
		{Key: "Enter", Description: "Related"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if len(s.rows) == 0 {
			if k := msg.String(); k == "esc" || k == "q" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextCategory()
		case "enter":
			if r := s.rows[s.cursor]; r.kind == rowTopic && r.node != nil {
				s.expanded[r.node.ID] = !s.expanded[r.node.ID]
			}
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *MapScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The corpus has no topics.")
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category, width))
			visible++
		case rowTopic:
			lines = append(lines, s.renderTopicRow(r, i == s.cursor, width))
			visible++
			if s.expanded[r.node.ID] {
				detail := s.renderRelated(r.node.ID)
				lines = append(lines, detail...)
				visible += len(detail)
			}
		}
	}

	return strings.Join(lines, "\n")
}

// moveCursor moves the cursor by delta, skipping category headers.
func (s *MapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowTopic {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCategory jumps the cursor to the first topic of the next
// category, wrapping around at the end.
func (s *MapScreen) nextCategory() {
	current := s.rows[s.cursor].category
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowTopic && s.rows[i].category != current {
			s.cursor = i
			return
		}
	}
	for i, r := range s.rows {
		if r.kind == rowTopic {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor visible within the viewport.
func (s *MapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *MapScreen) renderCategoryHeader(cat knowledge.Category, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(string(cat)))
}

func (s *MapScreen) renderTopicRow(r row, selected bool, width int) string {
	n := r.node

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	nameWidth := 30
	name := n.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	bar := weaknessBar(n.WeaknessLevel, 16)
	stats := fmt.Sprintf("weak %3d%%  correct %3d%%  answered %2d",
		n.WeaknessLevel, n.CorrectRate, n.QuestionsAnswered)

	var nameStyle, statStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		statStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		statStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	return fmt.Sprintf("    %s%s %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		bar,
		statStyle.Render(stats),
	)
}

// renderRelated renders the prerequisite / followup detail lines for an
// expanded topic.
func (s *MapScreen) renderRelated(id string) []string {
	prereqs, followups, _ := s.graph.Related(id)

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var lines []string
	if len(prereqs) > 0 {
		names := make([]string, 0, len(prereqs))
		for _, n := range prereqs {
			names = append(names, n.Name)
		}
		lines = append(lines, dim.Render("        needs: "+strings.Join(names, ", ")))
	}
	if len(followups) > 0 {
		names := make([]string, 0, len(followups))
		for _, n := range followups {
			names = append(names, n.Name)
		}
		lines = append(lines, dim.Render("        leads to: "+strings.Join(names, ", ")))
	}
	if len(lines) == 0 {
		lines = append(lines, dim.Render("        no related topics"))
	}
	return lines
}

// weaknessBar renders a fixed-width bar for a 0-100 weakness level.
func weaknessBar(level, width int) string {
	filled := level * width / 100
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled))
}
