package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizkit/internal/ui/theme"
)

// OptionList is the answer selector for one question. Before submission
// it handles navigation; after submission it freezes and colors the
// correct option green and a wrong choice red, mirroring the feedback
// state of the quiz.
type OptionList struct {
	Options   []string
	Correct   int
	Selected  int
	Submitted bool
	Chosen    int
}

// NewOptionList creates an option list for a question.
func NewOptionList(options []string, correct int) OptionList {
	return OptionList{
		Options: options,
		Correct: correct,
		Chosen:  -1,
	}
}

// Update handles navigation keys. Digit keys jump straight to an
// option. Submission itself is the screen's job (it has to drive the
// session), so enter is ignored here.
func (o OptionList) Update(msg tea.Msg) OptionList {
	if o.Submitted {
		return o
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(o.Options) {
				o.Selected = i
			}
		}
	}

	return o
}

// Submit freezes the list with the given choice.
func (o OptionList) Submit(chosen int) OptionList {
	o.Submitted = true
	o.Chosen = chosen
	return o
}

// IsCorrect reports whether the submitted choice was the correct one.
func (o OptionList) IsCorrect() bool {
	return o.Submitted && o.Chosen == o.Correct
}

// View renders the options with letter labels.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		switch {
		case o.Submitted && i == o.Correct:
			s += theme.Correct.Render(line) + "\n"
		case o.Submitted && i == o.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Submitted:
			s += theme.Hint.Render(line) + "\n"
		case i == o.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
