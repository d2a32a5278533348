package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/quizkit/internal/quiz"
	"github.com/abhisek/quizkit/internal/router"
	"github.com/abhisek/quizkit/internal/screen"
	"github.com/abhisek/quizkit/internal/screens/landing"
	quizscreen "github.com/abhisek/quizkit/internal/screens/quiz"
	"github.com/abhisek/quizkit/internal/stage"
	"github.com/abhisek/quizkit/internal/store"
	"github.com/abhisek/quizkit/internal/ui/layout"
)

// Options wires the application's dependencies.
type Options struct {
	// Loader fetches stage data; wrap it in stage.NewCachedLoader so each
	// stage is fetched once per process.
	Loader stage.Loader

	// Attempts records quiz history. Nil disables history.
	Attempts store.AttemptRepo

	// StageIDs lists the stages offered on the landing screen.
	StageIDs []string

	// StartStage, when set, jumps straight into that stage.
	StartStage string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(landing.New(opts.Loader, opts.Attempts, opts.StageIDs)),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.opts.StartStage == "" {
		return nil
	}
	opts := m.opts
	return func() tea.Msg {
		session := engine.NewSession(opts.Loader, nil)
		return router.PushScreenMsg{
			Screen: quizscreen.New(session, opts.StartStage, opts.Attempts),
		}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// footerHints asks the active screen for hints, falling back to the
// default navigation hints.
func (m AppModel) footerHints() []layout.KeyHint {
	if provider, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
