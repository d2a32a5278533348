package components

import (
	"strings"
	"testing"

	"github.com/abhisek/quizkit/internal/stage"
)

func dotsFixture() ([]stage.Category, []stage.Question) {
	categories := []stage.Category{
		{ID: "sleep", Name: "Sleep"},
		{ID: "feeding", Name: "Feeding"},
	}
	// Shuffled attempt order: feeding questions bracket a sleep one.
	questions := []stage.Question{
		{Text: "q1", Category: "feeding"},
		{Text: "q2", Category: "sleep"},
		{Text: "q3", Category: "feeding"},
	}
	return categories, questions
}

func TestCategoryDots_OneMarkerPerCategory(t *testing.T) {
	categories, questions := dotsFixture()
	out := CategoryDots(categories, questions, 0)

	total := strings.Count(out, "●") + strings.Count(out, "○")
	if total != len(categories) {
		t.Errorf("rendered %d markers, want %d", total, len(categories))
	}
}

func TestCategoryDots_ScatteredCategoryNotDoneEarly(t *testing.T) {
	categories, questions := dotsFixture()

	// At question 1 (sleep), one feeding question is still ahead, so
	// feeding must not show as done: exactly one filled dot (the active
	// sleep category).
	out := CategoryDots(categories, questions, 1)
	if got := strings.Count(out, "●"); got != 1 {
		t.Errorf("filled markers = %d, want 1:\n%q", got, out)
	}
	if got := strings.Count(out, "○"); got != 1 {
		t.Errorf("open markers = %d, want 1:\n%q", got, out)
	}
}

func TestCategoryDots_DoneWhenNoQuestionsRemain(t *testing.T) {
	categories, questions := dotsFixture()

	// At the last question (feeding), sleep has nothing left ahead:
	// both markers filled, none open.
	out := CategoryDots(categories, questions, 2)
	if got := strings.Count(out, "●"); got != 2 {
		t.Errorf("filled markers = %d, want 2:\n%q", got, out)
	}
	if strings.Contains(out, "○") {
		t.Errorf("open marker rendered when all categories active or done:\n%q", out)
	}
}
