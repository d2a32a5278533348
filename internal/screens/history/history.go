package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizkit/internal/router"
	"github.com/abhisek/quizkit/internal/screen"
	"github.com/abhisek/quizkit/internal/store"
	"github.com/abhisek/quizkit/internal/ui/layout"
	"github.com/abhisek/quizkit/internal/ui/theme"
)

const recentLimit = 20

// loadedMsg carries the attempt list (or the error loading it).
type loadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// HistoryScreen lists recent attempts from the local history store.
type HistoryScreen struct {
	attempts store.AttemptRepo
	rows     []store.Attempt
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a history screen over the given repository.
func New(attempts store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{attempts: attempts}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rows, err := s.attempts.Recent(context.Background(), recentLimit)
		return loadedMsg{Attempts: rows, Err: err}
	}
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Attempts
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Past results"))
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Loading..."))
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg))
	case len(s.rows) == 0:
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("No attempts yet. Go play!"))
	default:
		for _, a := range s.rows {
			line := fmt.Sprintf("  %s  %-16s %3d%%  %s %s",
				a.CompletedAt.Local().Format("2006-01-02 15:04"),
				a.StageID, a.Percentage, a.TierEmoji, a.TierName)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
