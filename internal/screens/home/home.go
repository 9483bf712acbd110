// Package home is the landing screen: what the assessment covers and a
// menu to start it.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/riskready/internal/advisor"
	"github.com/abhisek/riskready/internal/questionnaire"
	"github.com/abhisek/riskready/internal/router"
	"github.com/abhisek/riskready/internal/screen"
	"github.com/abhisek/riskready/internal/screens/assessment"
	"github.com/abhisek/riskready/internal/ui/components"
	"github.com/abhisek/riskready/internal/ui/theme"
)

const tagline = "Discover your fit for a career in risk management and internal auditing."

type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New builds the home screen. adv may be nil when no LLM provider is
// configured.
func New(adv *advisor.Service, log *zap.Logger) *HomeScreen {
	if log == nil {
		log = zap.NewNop()
	}
	items := []components.MenuItem{
		{Label: "Start assessment", Action: func() tea.Cmd {
			log.Info("assessment started")
			return router.Push(assessment.New(adv, log))
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections,
		theme.Title.Width(cw).Render(questionnaire.Title),
		theme.Subtitle.Width(cw).Render(tagline),
	)

	var overview strings.Builder
	for i, s := range questionnaire.Sections() {
		fmt.Fprintf(&overview, "%d. %s  %s\n   %s\n",
			i+1,
			theme.Body.Bold(true).Render(s.Title),
			theme.Hint.Render(fmt.Sprintf("(%d questions)", len(s.Questions))),
			theme.Hint.UnsetItalic().Render(s.Description),
		)
	}
	sections = append(sections, components.Card("What you'll complete", strings.TrimRight(overview.String(), "\n"), cw))

	careers := theme.Body.Render(strings.Join(questionnaire.TargetCareers, "  ·  "))
	if !compact(height) {
		sections = append(sections, components.Card("Roles assessed", careers, cw))
	}

	sections = append(sections, h.menu.View())

	return components.Center(strings.Join(sections, "\n\n"), width)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func compact(height int) bool {
	return height < 24
}
