package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/rchau/learnloop/internal/practice"
	"github.com/rchau/learnloop/internal/ui/components"
	"github.com/rchau/learnloop/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading weak points...")
	}

	switch s.phase {
	case phaseSelection:
		return s.renderSelection(width)
	case phaseGenerating:
		return s.renderGenerating(width, height)
	case phaseQuestion:
		if s.showingFeedback {
			return s.renderFeedback(width)
		}
		return s.renderQuestion(width)
	case phaseAnalysis:
		return s.renderAnalysis(width)
	}
	return ""
}

// renderSelection lists the weak points, weakest first.
func (s *PracticeScreen) renderSelection(width int) string {
	if len(s.points) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No weak points yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("Pick a topic to practice"))
	b.WriteString("\n\n")

	for i, p := range s.points {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		bar := weaknessBar(p.WeaknessLevel, 20)
		line := fmt.Sprintf("%s%-28s %s %3d%%  %s  %s",
			prefix, p.Name, bar, p.WeaknessLevel,
			fmt.Sprintf("%-14s", p.Category),
			engine.DifficultyFor(p.WeaknessLevel))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderGenerating shows the simulated generation pipeline.
func (s *PracticeScreen) renderGenerating(width, height int) string {
	idx := s.genIndex
	if idx >= len(genSteps) {
		idx = len(genSteps) - 1
	}
	step := genSteps[idx]

	bar := components.NewProgressBar("", step.progress, true, min(width-20, 50))

	point := s.points[s.selected]
	content := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(point.Name) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(step.label) +
		"\n\n" +
		bar.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}

// renderQuestion shows the active question with its input.
func (s *PracticeScreen) renderQuestion(width int) string {
	q, ok := s.eng.Current()
	if !ok {
		return ""
	}

	current, total := s.eng.Progress()

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic: %s", s.eng.Point().Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  correct %d", current, total, s.eng.CorrectCount()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Prompt))
	b.WriteString("\n\n")

	if q.Type == engine.MultipleChoice {
		b.WriteString(s.renderOptions(q, width))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	return b.String()
}

func (s *PracticeScreen) renderOptions(q engine.Question, width int) string {
	var b strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback shows correctness and the explanation after an answer.
func (s *PracticeScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastAnswer.IsCorrect {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", s.lastQuestion.CorrectAnswer)))
	}

	b.WriteString("\n\n")

	if s.lastQuestion.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.lastQuestion.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Press any key to continue..."))

	return b.String()
}

// renderAnalysis shows the session summary.
func (s *PracticeScreen) renderAnalysis(width int) string {
	rec := s.record

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("Session complete"))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("%s  ·  %s  ·  %d/%d correct  ·  %d%% accuracy  ·  %d min",
		rec.Topic, rec.Difficulty, rec.CorrectAnswers, rec.TotalQuestions,
		rec.Accuracy, rec.TimeSpentMinutes)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(summary))
	b.WriteString("\n\n")

	updated := fmt.Sprintf("Weakness level for %s is now %d%% (correct rate %d%%)",
		s.folded.Name, s.folded.WeaknessLevel, s.folded.CorrectRate)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(updated))
	b.WriteString("\n\n")

	for i, q := range rec.Questions {
		mark := theme.Correct.Render("✓")
		if !q.IsCorrect {
			mark = theme.Incorrect.Render("✗")
		}
		line := fmt.Sprintf("%s  %d. %s", mark, i+1, q.Question)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// weaknessBar renders a fixed-width bar for a 0-100 weakness level.
func weaknessBar(level, width int) string {
	filled := level * width / 100
	if filled > width {
		filled = width
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled))
}
