// Package results shows the readiness report for a finished session and,
// when a provider is configured, an optional coaching narrative.
package results

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/riskready/internal/advisor"
	"github.com/abhisek/riskready/internal/router"
	"github.com/abhisek/riskready/internal/screen"
	"github.com/abhisek/riskready/internal/session"
	"github.com/abhisek/riskready/internal/ui/layout"
	"github.com/abhisek/riskready/internal/ui/theme"
)

// adviceMsg carries the advisor's answer back to the screen.
type adviceMsg struct {
	narrative *advisor.Narrative
	err       error
}

// savedMsg reports the outcome of writing the export file.
type savedMsg struct {
	path string
	err  error
}

type ResultsScreen struct {
	summary *session.Summary
	advisor *advisor.Service
	retake  func() screen.Screen
	log     *zap.Logger

	// ExportDir is where "s" writes the report. Defaults to the working
	// directory.
	ExportDir string

	spinner   spinner.Model
	loading   bool
	cancel    context.CancelFunc
	narrative *advisor.Narrative
	adviceErr error
	saved     string
	saveErr   error
	offset    int
}

var (
	_ screen.Screen          = (*ResultsScreen)(nil)
	_ screen.KeyHintProvider = (*ResultsScreen)(nil)
	_ screen.StatusProvider  = (*ResultsScreen)(nil)
	_ screen.Closer          = (*ResultsScreen)(nil)
)

// New shows summary. retake builds the screen that replaces this one when
// the user starts over; adv may be nil.
func New(summary *session.Summary, adv *advisor.Service, retake func() screen.Screen, log *zap.Logger) *ResultsScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResultsScreen{
		summary: summary,
		advisor: adv,
		retake:  retake,
		log:     log,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("Recommendation: %s", s.summary.Report.Recommendation)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Retake"},
		{Key: "s", Description: "Save JSON"},
	}
	if s.advisor != nil {
		hints = append(hints, layout.KeyHint{Key: "a", Description: "Coaching"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			s.offset = max(s.offset-1, 0)
		case "down", "j":
			s.offset++
		case "pgup":
			s.offset = max(s.offset-10, 0)
		case "pgdown", "space":
			s.offset += 10
		case "r":
			if s.retake != nil {
				return s, router.Replace(s.retake())
			}
		case "s":
			return s, s.save()
		case "a":
			return s, s.requestAdvice()
		}

	case adviceMsg:
		s.stopAdvice()
		s.loading = false
		s.narrative, s.adviceErr = msg.narrative, msg.err
		if msg.err != nil {
			s.log.Warn("coaching narrative failed", zap.Error(msg.err))
		}

	case savedMsg:
		s.saved, s.saveErr = msg.path, msg.err

	case spinner.TickMsg:
		if s.loading {
			var cmd tea.Cmd
			s.spinner, cmd = s.spinner.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

func (s *ResultsScreen) requestAdvice() tea.Cmd {
	if s.advisor == nil || s.loading {
		return nil
	}
	s.loading = true
	s.narrative, s.adviceErr = nil, nil

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	adv, r := s.advisor, s.summary.Report
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		n, err := adv.Advise(ctx, r)
		return adviceMsg{narrative: n, err: err}
	})
}

// Close abandons a coaching request that is still running.
func (s *ResultsScreen) Close() {
	s.stopAdvice()
}

func (s *ResultsScreen) stopAdvice() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *ResultsScreen) save() tea.Cmd {
	export := s.summary.Export(time.Now())
	path := filepath.Join(s.ExportDir, fmt.Sprintf("riskready-%s.json", s.summary.SessionID.String()[:8]))
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return savedMsg{err: err}
		}
		if err := export.Encode(f); err != nil {
			f.Close()
			return savedMsg{err: err}
		}
		return savedMsg{path: path, err: f.Close()}
	}
}
