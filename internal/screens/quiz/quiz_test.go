package quiz

import (
	"math/rand"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/quizkit/internal/quiz"
	"github.com/abhisek/quizkit/internal/router"
	"github.com/abhisek/quizkit/internal/stage"
)

func testStage() *stage.Stage {
	return &stage.Stage{
		ID: "test-stage",
		Categories: []stage.Category{
			{ID: "sleep", Name: "Sleep", Icon: "😴"},
		},
		Questions: []stage.Question{
			{Text: "q1", Options: []string{"a", "b"}, Correct: 0, Category: "sleep", Explanation: "e1"},
			{Text: "q2", Options: []string{"a", "b"}, Correct: 1, Category: "sleep", Explanation: "e2"},
		},
		PersonalityTypes: []stage.PersonalityTier{
			{MinPct: 0, Name: "Rookie", Emoji: "☕"},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// startedScreen builds the screen and drives the load synchronously.
func startedScreen(t *testing.T) *QuizScreen {
	t.Helper()
	loader := stage.NewStaticLoader(map[string]*stage.Stage{"test-stage": testStage()})
	session := engine.NewSession(loader, rand.New(rand.NewSource(1)))
	s := New(session, "test-stage", nil)

	msg := s.startCmd()()
	started, ok := msg.(startedMsg)
	if !ok {
		t.Fatalf("startCmd returned %T, want startedMsg", msg)
	}
	if started.Err != nil {
		t.Fatalf("start: %v", started.Err)
	}
	s.Update(started)
	return s
}

func TestQuizScreen_LoadFailureShowsError(t *testing.T) {
	loader := stage.NewStaticLoader(map[string]*stage.Stage{})
	session := engine.NewSession(loader, nil)
	s := New(session, "missing", nil)

	msg := s.startCmd()()
	s.Update(msg)

	view := s.View(80, 24)
	if !strings.Contains(view, "stage") {
		t.Errorf("error view missing message:\n%s", view)
	}

	// Any key navigates back.
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQuizScreen_ShowsQuestion(t *testing.T) {
	s := startedScreen(t)

	view := s.View(80, 24)
	q, _ := s.session.Current()
	if !strings.Contains(view, q.Text) {
		t.Errorf("view missing question text %q:\n%s", q.Text, view)
	}
	if !strings.Contains(view, "1 / 2") {
		t.Errorf("view missing counter:\n%s", view)
	}
}

func TestQuizScreen_AnswerShowsExplanation(t *testing.T) {
	s := startedScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.session.Phase() != engine.PhaseAnswered {
		t.Fatalf("Phase = %v, want %v", s.session.Phase(), engine.PhaseAnswered)
	}

	q, _ := s.session.Current()
	view := s.View(80, 24)
	if !strings.Contains(view, q.Explanation) {
		t.Errorf("view missing explanation %q:\n%s", q.Explanation, view)
	}
}

func TestQuizScreen_EnterAfterAnswerAdvances(t *testing.T) {
	s := startedScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // answer q1
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // next

	if _, idx := s.session.Current(); idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
	if s.session.Phase() != engine.PhaseAnswering {
		t.Errorf("Phase = %v, want %v", s.session.Phase(), engine.PhaseAnswering)
	}
}

func TestQuizScreen_CompletionReplacesWithResults(t *testing.T) {
	s := startedScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // answer q1
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // next
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // answer q2
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.session.Phase() != engine.PhaseComplete {
		t.Fatalf("Phase = %v, want %v", s.session.Phase(), engine.PhaseComplete)
	}
	if cmd == nil {
		t.Fatal("expected a navigation command on completion")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the results screen")
	}
}

func TestQuizScreen_RepeatAnswerIgnored(t *testing.T) {
	s := startedScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	first := s.session.Answers()[0]

	// Phase is Answered; digits and a second enter must not re-score,
	// and enter advances instead.
	s.Update(keyPress('2'))
	if got := s.session.Answers()[0]; got != first {
		t.Errorf("answer changed from %d to %d after feedback", first, got)
	}
}

func TestQuizScreen_KeyHintsFollowPhase(t *testing.T) {
	s := startedScreen(t)

	hints := s.KeyHints()
	if len(hints) == 0 || hints[len(hints)-1].Key != "Esc" {
		t.Errorf("answering hints = %+v", hints)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	hints = s.KeyHints()
	if len(hints) != 1 || hints[0].Key != "Enter" {
		t.Errorf("answered hints = %+v", hints)
	}
}
