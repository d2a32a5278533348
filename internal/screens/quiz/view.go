package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/quizkit/internal/quiz"
	"github.com/abhisek/quizkit/internal/ui/components"
	"github.com/abhisek/quizkit/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width, height)
	}

	switch s.session.Phase() {
	case engine.PhaseAnswering, engine.PhaseAnswered:
		return s.renderQuestion(width)
	default:
		return s.renderLoading(width, height)
	}
}

func (s *QuizScreen) renderLoading(width, height int) string {
	content := s.spin.View() + " " + theme.Hint.Render("Loading stage "+s.stageID+"...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderError(width, height int) string {
	card := theme.Card.Render(
		theme.Incorrect.Render("Could not start the quiz") + "\n\n" +
			theme.Body.Render(s.errMsg) + "\n\n" +
			theme.Hint.Render("press any key to go back"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuizScreen) renderQuestion(width int) string {
	q, idx := s.session.Current()
	if q == nil {
		return ""
	}
	st := s.session.Stage()
	total := s.session.TotalQuestions()

	var b strings.Builder

	// Meta line: question counter left, category label right.
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d / %d", idx+1, total))

	catLabel := ""
	if cat := st.CategoryByID(q.Category); cat != nil {
		catLabel = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("%s %s  ", cat.Icon, cat.Name))
	}

	gap := width - lipgloss.Width(counter) - lipgloss.Width(catLabel)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(counter + strings.Repeat(" ", gap) + catLabel)
	b.WriteString("\n")

	// Progress bar and category dots.
	bar := components.NewProgressBar("", s.session.Progress(), false, width-14)
	dots := components.CategoryDots(st.Categories, s.session.Questions(), idx)
	b.WriteString("  " + bar.View() + "  " + dots)
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	// Options, centered as a block.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	// Feedback after answering.
	if s.session.Answered() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderExplanation(q.Explanation, width)))
		b.WriteString("\n\n")

		hint := "next question →"
		if idx == total-1 {
			hint = "see your results 🎉"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("press Enter: "+hint)))
	}

	return b.String()
}

func (s *QuizScreen) renderExplanation(explanation string, width int) string {
	heading := "💡 Did you know?"
	if s.options.IsCorrect() {
		heading = "✅ Correct!"
	}

	boxWidth := width - 12
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	return theme.ExplanationBox.Width(boxWidth).Render(
		theme.Body.Bold(true).Render(heading) + "\n" +
			theme.Body.Render(explanation))
}
