package landing

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizkit/internal/router"
	"github.com/abhisek/quizkit/internal/stage"
)

func testLanding() *LandingScreen {
	loader := stage.NewStaticLoader(map[string]*stage.Stage{})
	return New(loader, nil, []string{"newborn-0-6", "toddler-1-3"})
}

func TestView_ListsStages(t *testing.T) {
	s := testLanding()
	view := s.View(80, 24)

	for _, want := range []string{"Q U I Z K I T", "PLAY  Newborn 0 6", "PLAY  Toddler 1 3", "HISTORY", "QUIT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEnter_PushesQuizScreen(t *testing.T) {
	s := testLanding()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %#v, want PushScreenMsg", msg)
	}
	if push.Screen == nil {
		t.Fatal("pushed a nil screen")
	}
	if push.Screen.Title() != "Quiz" {
		t.Errorf("pushed screen = %q, want Quiz", push.Screen.Title())
	}
}

func TestHistoryDisabledWithoutRepo(t *testing.T) {
	s := testLanding()

	// Navigate down past both stages; the disabled HISTORY entry is
	// skipped, landing on QUIT.
	for i := 0; i < 3; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if got := s.menu.Items[s.menu.Selected].Label; got != "QUIT" {
		t.Errorf("selected %q, want QUIT", got)
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"newborn-0-6": "Newborn 0 6",
		"toddler-1-3": "Toddler 1 3",
		"simple":      "Simple",
	}
	for in, want := range tests {
		if got := displayName(in); got != want {
			t.Errorf("displayName(%q) = %q, want %q", in, got, want)
		}
	}
}
