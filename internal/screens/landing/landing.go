package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/quizkit/internal/quiz"
	"github.com/abhisek/quizkit/internal/router"
	"github.com/abhisek/quizkit/internal/screen"
	"github.com/abhisek/quizkit/internal/screens/history"
	quizscreen "github.com/abhisek/quizkit/internal/screens/quiz"
	"github.com/abhisek/quizkit/internal/stage"
	"github.com/abhisek/quizkit/internal/store"
	"github.com/abhisek/quizkit/internal/ui/components"
	"github.com/abhisek/quizkit/internal/ui/theme"
)

// LandingScreen is the entry screen: one menu item per stage, plus
// history and quit.
type LandingScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates the landing screen. Each stage entry starts a fresh
// session against the shared (cached) loader; attempts may be nil,
// which disables the history entry.
func New(loader stage.Loader, attempts store.AttemptRepo, stageIDs []string) *LandingScreen {
	items := make([]components.MenuItem, 0, len(stageIDs)+2)
	for _, id := range stageIDs {
		stageID := id
		items = append(items, components.MenuItem{
			Label: "PLAY  " + displayName(stageID),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					session := engine.NewSession(loader, nil)
					return router.PushScreenMsg{
						Screen: quizscreen.New(session, stageID, attempts),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "HISTORY",
		Disabled: attempts == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(attempts)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  "QUIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &LandingScreen{menu: components.NewMenu(items)}
}

func (s *LandingScreen) Title() string {
	return ""
}

func (s *LandingScreen) Init() tea.Cmd {
	return nil
}

func (s *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Q U I Z K I T"))
	sections = append(sections, theme.Subtitle.Render("How much do you really know?"))
	sections = append(sections, "")
	sections = append(sections, s.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// displayName turns a stage identifier like "newborn-0-6" into a menu
// label like "Newborn 0 6".
func displayName(stageID string) string {
	words := strings.Split(stageID, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
