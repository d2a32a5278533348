// Package screen defines the contract between the router and the
// individual application screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizkit/internal/ui/layout"
)

// Screen is one screen on the navigation stack. Screens own their
// content area only; the surrounding header and footer belong to the
// root model.
type Screen interface {
	// Init returns the command to run when the screen enters the stack.
	Init() tea.Cmd

	// Update reacts to a message and returns the screen to keep on the
	// stack along with any follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area at the given size.
	View(width, height int) string

	// Title is shown in the header; empty hides it.
	Title() string
}

// KeyHintProvider lets a screen override the footer key hints. Screens
// without it get the default navigation hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
