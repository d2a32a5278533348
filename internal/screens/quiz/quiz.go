package quiz

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/quizkit/internal/quiz"
	"github.com/abhisek/quizkit/internal/router"
	"github.com/abhisek/quizkit/internal/screen"
	"github.com/abhisek/quizkit/internal/screens/results"
	"github.com/abhisek/quizkit/internal/store"
	"github.com/abhisek/quizkit/internal/ui/components"
	"github.com/abhisek/quizkit/internal/ui/layout"
	"github.com/abhisek/quizkit/internal/ui/theme"
)

// startedMsg reports the outcome of the stage load kicked off in Init.
type startedMsg struct {
	Err error
}

// QuizScreen drives one quiz attempt. All progression logic lives in
// the session; this screen translates keys into transitions and renders
// the session's state.
type QuizScreen struct {
	session  *engine.Session
	stageID  string
	attempts store.AttemptRepo

	spin    spinner.Model
	options components.OptionList
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given stage. attempts may be nil;
// results then simply aren't recorded.
func New(session *engine.Session, stageID string, attempts store.AttemptRepo) *QuizScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &QuizScreen{
		session:  session,
		stageID:  stageID,
		attempts: attempts,
		spin:     sp,
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.startCmd(), s.spin.Tick)
}

// startCmd loads the stage off the update loop. The session guards
// against a second start while this one is in flight.
func (s *QuizScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{Err: s.session.Start(context.Background(), s.stageID)}
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	switch s.session.Phase() {
	case engine.PhaseAnswered:
		q, idx := s.session.Current()
		if q != nil && idx == s.session.TotalQuestions()-1 {
			return []layout.KeyHint{{Key: "Enter", Description: "See results"}}
		}
		return []layout.KeyHint{{Key: "Enter", Description: "Next question"}}
	case engine.PhaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-4", Description: "Jump"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon"},
		}
	default:
		return nil
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case spinner.TickMsg:
		if s.session.Phase() == engine.PhaseLoading || s.session.Phase() == engine.PhaseIdle {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.syncQuestion()
	return s, nil
}

// syncQuestion rebuilds the option list for the session's current question.
func (s *QuizScreen) syncQuestion() {
	q, _ := s.session.Current()
	if q == nil {
		return
	}
	s.options = components.NewOptionList(q.Options, q.Correct)
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Load failure: any key goes back, session untouched and retryable.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.session.Phase() {
	case engine.PhaseAnswered:
		if key := msg.String(); key == "enter" || key == "space" {
			return s.advance()
		}
		return s, nil

	case engine.PhaseAnswering:
		if msg.String() == "enter" {
			return s.submit()
		}
		s.options = s.options.Update(msg)
		return s, nil
	}

	return s, nil
}

// submit records the highlighted option. Rejected submissions (repeats,
// out of range) leave both session and UI untouched.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	sel := s.options.Selected
	if err := s.session.Answer(sel); err != nil {
		return s, nil
	}
	s.options = s.options.Submit(sel)
	return s, nil
}

// advance moves past the answered question; after the last one it
// scores the attempt and shows the results screen.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.session.Next(); err != nil {
		return s, nil
	}

	if s.session.Phase() != engine.PhaseComplete {
		s.syncQuestion()
		return s, nil
	}

	res, err := s.session.Results()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	session, stageID, attempts := s.session, s.stageID, s.attempts
	restart := func() screen.Screen {
		return New(session, stageID, attempts)
	}

	resultsScreen := results.New(res, stageID, s.session.AttemptID(), s.attempts, restart)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsScreen}
	}
}
