package assessment

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskready/internal/questionnaire"
	"github.com/abhisek/riskready/internal/router"
	"github.com/abhisek/riskready/internal/screens/results"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestNewStartsAtFirstQuestion(t *testing.T) {
	s := New(nil, nil)

	if s.Title() != "Psychometric Evaluation" {
		t.Errorf("title = %q", s.Title())
	}
	if s.Status() != "Question 1 of 16" {
		t.Errorf("status = %q", s.Status())
	}
	if s.sess.CanProceed() {
		t.Error("first question should start unanswered")
	}
}

func TestNextBlockedUntilAnswered(t *testing.T) {
	s := New(nil, nil)

	s.Update(specialKey(tea.KeyTab))

	if s.sess.Current().Index != 0 {
		t.Fatalf("moved to %d without an answer", s.sess.Current().Index)
	}
	if s.notice == "" {
		t.Error("expected a notice explaining why next is blocked")
	}
}

func TestRatingRecordsAndSurvivesBackNavigation(t *testing.T) {
	s := New(nil, nil)
	if s.sess.Current().Question.Kind != questionnaire.KindRatingScale {
		t.Fatal("first question should be a rating")
	}

	s.Update(specialKey(tea.KeyRight))
	if v, ok := s.sess.Value(); !ok || v != 2 {
		t.Fatalf("value after → = %d, %v; want 2", v, ok)
	}

	s.Update(specialKey(tea.KeyTab))
	if s.sess.Current().Index != 1 {
		t.Fatalf("tab should advance once answered, at %d", s.sess.Current().Index)
	}

	s.Update(keyPress('p'))
	if s.sess.Current().Index != 0 || s.slider.Value != 2 {
		t.Fatalf("back navigation lost the answer: index %d, slider %d", s.sess.Current().Index, s.slider.Value)
	}
}

func TestChoiceDigitRecords(t *testing.T) {
	s := New(nil, nil)
	s.Update(specialKey(tea.KeyEnter))
	if s.sess.Current().Question.Key != questionnaire.KeyDetailOrientation {
		t.Fatalf("expected detail orientation, got %s", s.sess.Current().Question.Key)
	}

	s.Update(keyPress('2'))

	if v, ok := s.sess.Value(); !ok || v != 1 {
		t.Fatalf("value = %d, %v; want 1", v, ok)
	}
	if s.choices.Chosen != 1 {
		t.Fatalf("chosen = %d", s.choices.Chosen)
	}
}

func TestEnterAnswersWithCursorAndAdvances(t *testing.T) {
	s := New(nil, nil)
	s.Update(specialKey(tea.KeyEnter))

	if v, _ := s.sess.Answers().Get(questionnaire.KeyInterestFinance); v != 1 {
		t.Fatalf("enter on a fresh rating should record the scale minimum, got %d", v)
	}

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	if v, _ := s.sess.Answers().Get(questionnaire.KeyDetailOrientation); v != 1 {
		t.Fatalf("enter should record the cursor option, got %d", v)
	}
	if s.Title() != "Psychometric Evaluation" || s.Status() != "Question 3 of 16" {
		t.Fatalf("at %q / %q", s.Title(), s.Status())
	}
}

func TestCompletingReplacesWithResults(t *testing.T) {
	s := New(nil, nil)

	var cmd tea.Cmd
	for i := 0; i < questionnaire.Count(); i++ {
		if cmd != nil {
			t.Fatalf("unexpected command before the last question (at %d)", i)
		}
		_, cmd = s.Update(specialKey(tea.KeyEnter))
	}
	if cmd == nil {
		t.Fatal("expected a command after the last question")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	rs, ok := msg.Screen.(*results.ResultsScreen)
	if !ok {
		t.Fatalf("expected results screen, got %T", msg.Screen)
	}
	if rs.Title() != "Your Results" {
		t.Fatalf("title = %q", rs.Title())
	}
}

func TestSectionTitleFollowsQuestion(t *testing.T) {
	s := New(nil, nil)
	for range 5 {
		s.Update(specialKey(tea.KeyEnter))
	}
	if s.Title() != "Technical & Aptitude Assessment" {
		t.Fatalf("title at question 6 = %q", s.Title())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.Title() != "Psychometric Evaluation" {
		t.Fatalf("shift+tab should go back across the section boundary, title %q", s.Title())
	}
}

func TestRejectedWidgetValueShowsNotice(t *testing.T) {
	s := New(nil, nil)
	s.slider.Max = 11

	s.Update(specialKey(tea.KeyEnd))

	if s.notice == "" {
		t.Error("expected a notice for a value the question does not accept")
	}
	if s.sess.CanProceed() {
		t.Fatal("out-of-range rating was recorded")
	}
}
