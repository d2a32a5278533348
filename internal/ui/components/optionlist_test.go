package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testOptionList() OptionList {
	return NewOptionList([]string{"first", "second", "third"}, 1)
}

func TestOptionList_Navigation(t *testing.T) {
	o := testOptionList()

	o = o.Update(specialKey(tea.KeyDown))
	if o.Selected != 1 {
		t.Errorf("Selected = %d after down, want 1", o.Selected)
	}

	o = o.Update(keyPress('j'))
	if o.Selected != 2 {
		t.Errorf("Selected = %d after j, want 2", o.Selected)
	}

	// Down at the bottom stays put.
	o = o.Update(specialKey(tea.KeyDown))
	if o.Selected != 2 {
		t.Errorf("Selected = %d past bottom, want 2", o.Selected)
	}

	o = o.Update(specialKey(tea.KeyUp))
	o = o.Update(keyPress('k'))
	if o.Selected != 0 {
		t.Errorf("Selected = %d after up+k, want 0", o.Selected)
	}

	// Up at the top stays put.
	o = o.Update(specialKey(tea.KeyUp))
	if o.Selected != 0 {
		t.Errorf("Selected = %d past top, want 0", o.Selected)
	}
}

func TestOptionList_DigitJump(t *testing.T) {
	o := testOptionList()

	o = o.Update(keyPress('3'))
	if o.Selected != 2 {
		t.Errorf("Selected = %d after '3', want 2", o.Selected)
	}

	// Digit past the option count is ignored.
	o = o.Update(keyPress('9'))
	if o.Selected != 2 {
		t.Errorf("Selected = %d after '9', want 2", o.Selected)
	}
}

func TestOptionList_SubmitFreezes(t *testing.T) {
	o := testOptionList()
	o = o.Submit(0)

	if !o.Submitted {
		t.Fatal("Submitted = false after Submit")
	}
	if o.IsCorrect() {
		t.Error("IsCorrect = true for wrong choice")
	}

	before := o.Selected
	o = o.Update(specialKey(tea.KeyDown))
	if o.Selected != before {
		t.Error("navigation changed selection after submit")
	}
}

func TestOptionList_IsCorrect(t *testing.T) {
	o := testOptionList()
	if o.IsCorrect() {
		t.Error("IsCorrect = true before submit")
	}

	o = o.Submit(1)
	if !o.IsCorrect() {
		t.Error("IsCorrect = false for the correct choice")
	}
}

func TestOptionList_ViewLabels(t *testing.T) {
	o := testOptionList()
	view := o.View()

	for _, want := range []string{"A)", "B)", "C)", "first", "second", "third"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "▸") {
		t.Errorf("view missing selection marker:\n%s", view)
	}

	// Marker disappears once submitted.
	if v := o.Submit(0).View(); strings.Contains(v, "▸") {
		t.Errorf("submitted view still shows selection marker:\n%s", v)
	}
}
