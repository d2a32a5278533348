package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizkit/internal/router"
	"github.com/abhisek/quizkit/internal/scoring"
	"github.com/abhisek/quizkit/internal/screen"
	"github.com/abhisek/quizkit/internal/store"
	"github.com/abhisek/quizkit/internal/ui/components"
	"github.com/abhisek/quizkit/internal/ui/layout"
	"github.com/abhisek/quizkit/internal/ui/theme"
)

// savedMsg reports the outcome of the history write.
type savedMsg struct {
	Err error
}

// ResultsScreen shows the scored attempt: personality tier, score,
// per-category breakdown, and the copyable share card.
type ResultsScreen struct {
	results   *scoring.Results
	stageID   string
	attemptID string
	attempts  store.AttemptRepo
	restart   func() screen.Screen
	saveErr   error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. restart produces a fresh quiz screen
// for the same stage; attempts may be nil to skip history recording.
func New(results *scoring.Results, stageID, attemptID string, attempts store.AttemptRepo, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		results:   results,
		stageID:   stageID,
		attemptID: attemptID,
		attempts:  attempts,
		restart:   restart,
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

// Init records the attempt in history. Best effort: a failed write only
// dims the footer note, it never blocks the results.
func (s *ResultsScreen) Init() tea.Cmd {
	if s.attempts == nil {
		return nil
	}
	r := s.results
	attempt := &store.Attempt{
		ID:             s.attemptID,
		StageID:        s.stageID,
		TotalCorrect:   r.TotalCorrect,
		TotalQuestions: r.TotalQuestions,
		Percentage:     r.Percentage,
		TierName:       r.Tier.Name,
		TierEmoji:      r.Tier.Emoji,
		Categories:     r.Categories,
		CompletedAt:    time.Now(),
	}
	return func() tea.Msg {
		return savedMsg{Err: s.attempts.Save(context.Background(), attempt)}
	}
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Play again"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			if s.restart != nil {
				next := s.restart()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.results
	var b strings.Builder

	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Render(r.Tier.Emoji))
	center(theme.Title.Render(r.Tier.Name))
	center(theme.Subtitle.Render(r.Tier.Tagline))
	b.WriteString("\n")

	center(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("%d%%", r.Percentage)))
	center(theme.Hint.Render(fmt.Sprintf("%d of %d correct", r.TotalCorrect, r.TotalQuestions)))
	b.WriteString("\n")

	if r.Tier.Description != "" {
		descWidth := min(width-10, 64)
		center(lipgloss.NewStyle().
			Width(descWidth).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(r.Tier.Description))
		b.WriteString("\n")
	}

	// Per-category breakdown.
	center(theme.Subtitle.Render("By category"))
	barWidth := min(width-20, 44)
	for _, c := range r.Categories {
		pct := 0.0
		if c.Total > 0 {
			pct = float64(c.Correct) / float64(c.Total)
		}
		label := fmt.Sprintf("%s %-14s %d/%d", c.Icon, c.Name, c.Correct, c.Total)
		bar := components.NewProgressBar("", pct, false, barWidth)
		center(theme.Body.Render(label) + "  " + bar.View())
	}
	b.WriteString("\n")

	// Share card.
	center(theme.ShareCard.Render(scoring.ShareCard(r, s.stageID)))

	if s.saveErr != nil {
		center(theme.Hint.Render("(could not save to history)"))
	}

	return b.String()
}
