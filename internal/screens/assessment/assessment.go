// Package assessment walks the respondent through the questionnaire one
// question at a time and hands the finished session to the results screen.
package assessment

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/riskready/internal/advisor"
	"github.com/abhisek/riskready/internal/questionnaire"
	"github.com/abhisek/riskready/internal/router"
	"github.com/abhisek/riskready/internal/screen"
	"github.com/abhisek/riskready/internal/screens/results"
	"github.com/abhisek/riskready/internal/session"
	"github.com/abhisek/riskready/internal/ui/components"
	"github.com/abhisek/riskready/internal/ui/layout"
)

type AssessmentScreen struct {
	sess    *session.Session
	advisor *advisor.Service
	baseLog *zap.Logger
	log     *zap.Logger

	choices components.ChoiceList
	slider  components.Slider
	notice  string
}

var (
	_ screen.Screen          = (*AssessmentScreen)(nil)
	_ screen.KeyHintProvider = (*AssessmentScreen)(nil)
	_ screen.StatusProvider  = (*AssessmentScreen)(nil)
)

// New starts a fresh session. adv is passed on to the results screen and
// may be nil.
func New(adv *advisor.Service, log *zap.Logger) *AssessmentScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &AssessmentScreen{
		sess:    session.New(),
		advisor: adv,
		baseLog: log,
	}
	s.log = log.With(zap.String("session", s.sess.ID.String()))
	s.load()
	return s
}

// load resets the input widgets for the current question, restoring any
// recorded answer.
func (s *AssessmentScreen) load() {
	q := s.sess.Current().Question
	v, ok := s.sess.Value()
	if !ok {
		v = -1
	}
	switch q.Kind {
	case questionnaire.KindSingleChoice:
		s.choices = components.NewChoiceList(q.Choice.Options, v)
	case questionnaire.KindRatingScale:
		r := q.Rating
		s.slider = components.NewSlider(r.Min, r.Max, r.MinLabel, r.MaxLabel, v)
	}
	s.notice = ""
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return s.sess.Current().Section.Title
}

func (s *AssessmentScreen) Status() string {
	return fmt.Sprintf("Question %d of %d", s.sess.Current().Index+1, questionnaire.Count())
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.sess.Current().Question.Kind == questionnaire.KindRatingScale {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Rate"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Choose"})
	}
	next := "Next"
	if s.sess.IsLast() {
		next = "Finish"
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: next})
	if !s.sess.IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "p", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit assessment"})
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "enter":
		if err := s.record(s.pending()); err != nil {
			s.notice = err.Error()
			return s, nil
		}
		return s, s.advance()
	case "tab", "n":
		return s, s.advance()
	case "shift+tab", "p":
		if s.sess.Previous() {
			s.load()
		}
		return s, nil
	}

	q := s.sess.Current().Question
	if q.Kind == questionnaire.KindRatingScale {
		before := s.slider.Value
		s.slider = s.slider.Update(msg)
		if s.slider.Value != before {
			if err := s.record(s.slider.Value); err != nil {
				s.notice = err.Error()
			}
		}
		return s, nil
	}

	s.choices = s.choices.Update(msg)
	if v, ok := s.sess.Value(); s.choices.Chosen >= 0 && (!ok || v != s.choices.Chosen) {
		if err := s.record(s.choices.Chosen); err != nil {
			s.notice = err.Error()
		}
	}
	return s, nil
}

// pending is the value the widget currently points at.
func (s *AssessmentScreen) pending() int {
	if s.sess.Current().Question.Kind == questionnaire.KindRatingScale {
		return s.slider.Value
	}
	return s.choices.Cursor
}

func (s *AssessmentScreen) record(v int) error {
	if err := s.sess.Answer(v); err != nil {
		return err
	}
	if s.sess.Current().Question.Kind == questionnaire.KindSingleChoice {
		s.choices.Chosen = v
	}
	s.notice = ""
	return nil
}

// advance moves to the next question, or finishes on the last one.
func (s *AssessmentScreen) advance() tea.Cmd {
	if s.sess.IsLast() {
		return s.finish()
	}
	switch err := s.sess.Next(); {
	case errors.Is(err, session.ErrUnanswered):
		s.notice = "Answer this question to continue."
	case err != nil:
		s.notice = err.Error()
	default:
		s.load()
	}
	return nil
}

func (s *AssessmentScreen) finish() tea.Cmd {
	summary, err := s.sess.Complete()
	if err != nil {
		s.notice = "Answer this question to see your results."
		return nil
	}

	r := summary.Report
	s.log.Info("assessment completed",
		zap.Int("answered", summary.Answered),
		zap.Duration("duration", summary.Duration),
		zap.Int("overall", r.OverallConfidenceScore),
		zap.String("recommendation", string(r.Recommendation)),
	)

	adv, base := s.advisor, s.baseLog
	retake := func() screen.Screen { return New(adv, base) }
	return router.Replace(results.New(summary, adv, retake, s.log))
}
