package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizkit/internal/stage"
	"github.com/abhisek/quizkit/internal/ui/theme"
)

// CategoryDots renders one marker per stage category, in declaration
// order: the current question's category highlighted, finished
// categories filled. A category counts as finished once every one of
// its questions sits before the current position in attempt order, so
// the markers stay truthful even when shuffling scatters a category.
func CategoryDots(categories []stage.Category, questions []stage.Question, current int) string {
	remaining := make(map[string]int, len(categories))
	for i := current; i < len(questions); i++ {
		remaining[questions[i].Category]++
	}

	var active string
	if current >= 0 && current < len(questions) {
		active = questions[current].Category
	}

	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		switch {
		case c.ID == active:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●"))
		case remaining[c.ID] == 0:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render("●"))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return strings.Join(parts, " ")
}
