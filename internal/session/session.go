// Package session tracks one respondent's walk through the questionnaire:
// the current question, the answers given so far, and completion.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/riskready/internal/answers"
	"github.com/abhisek/riskready/internal/questionnaire"
	"github.com/abhisek/riskready/internal/report"
)

var (
	// ErrUnanswered is returned when moving on from an unanswered question.
	ErrUnanswered = errors.New("current question is unanswered")

	// ErrAtEnd is returned by Next on the last question.
	ErrAtEnd = errors.New("already at the last question")

	// ErrOutOfRange is returned when an answer is not legal for the question.
	ErrOutOfRange = errors.New("answer out of range")

	// ErrNotFinished is returned by Complete before the last question.
	ErrNotFinished = errors.New("questionnaire not finished")
)

// Position locates the current question within its section.
type Position struct {
	Index         int // flattened index across all sections
	SectionIndex  int
	QuestionIndex int // index within the section
	Section       questionnaire.Section
	Question      questionnaire.Question
}

// Session is a single pass through the questionnaire. It is not safe for
// concurrent use.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	cursor  int
	answers answers.Set
	now     func() time.Time
}

// New starts a session at the first question.
func New() *Session {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		StartedAt: now(),
		answers:   answers.New(),
		now:       now,
	}
}

// Current returns the position of the question being shown.
func (s *Session) Current() Position {
	q, si, _ := questionnaire.At(s.cursor)
	section := questionnaire.Sections()[si]
	qi := 0
	for i, sq := range section.Questions {
		if sq.Key == q.Key {
			qi = i
			break
		}
	}
	return Position{
		Index:         s.cursor,
		SectionIndex:  si,
		QuestionIndex: qi,
		Section:       section,
		Question:      q,
	}
}

// Answer records v for the current question, replacing any earlier answer.
func (s *Session) Answer(v int) error {
	q := s.Current().Question
	if !q.Accepts(v) {
		lo, hi := q.Bounds()
		return fmt.Errorf("%w: %s accepts %d..%d, got %d", ErrOutOfRange, q.Key, lo, hi, v)
	}
	s.answers.Put(q.Key, v)
	return nil
}

// Value returns the recorded answer for the current question.
func (s *Session) Value() (int, bool) {
	return s.answers.Get(s.Current().Question.Key)
}

// CanProceed reports whether the current question has been answered.
func (s *Session) CanProceed() bool {
	_, ok := s.Value()
	return ok
}

// IsFirst reports whether the current question is the very first one.
func (s *Session) IsFirst() bool {
	return s.cursor == 0
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.cursor == questionnaire.Count()-1
}

// Next advances to the following question, crossing into the next section
// when needed.
func (s *Session) Next() error {
	if !s.CanProceed() {
		return ErrUnanswered
	}
	if s.IsLast() {
		return ErrAtEnd
	}
	s.cursor++
	return nil
}

// Previous moves back one question. Answers are kept. It reports false on
// the first question.
func (s *Session) Previous() bool {
	if s.IsFirst() {
		return false
	}
	s.cursor--
	return true
}

// Progress returns how many questions have been answered out of the total.
func (s *Session) Progress() (answered, total int) {
	return s.answers.Len(), questionnaire.Count()
}

// Percent returns Progress as a fraction in [0,1].
func (s *Session) Percent() float64 {
	answered, total := s.Progress()
	if total == 0 {
		return 0
	}
	return float64(answered) / float64(total)
}

// SectionProgress returns answered and total counts for section i.
func (s *Session) SectionProgress(i int) (answered, total int) {
	sections := questionnaire.Sections()
	if i < 0 || i >= len(sections) {
		return 0, 0
	}
	for _, q := range sections[i].Questions {
		if s.answers.Has(q.Key) {
			answered++
		}
	}
	return answered, len(sections[i].Questions)
}

// Answers returns a copy of the answers recorded so far.
func (s *Session) Answers() answers.Set {
	return s.answers.Clone()
}

// Complete finishes the session from its last question and builds the
// report. Earlier questions may remain unanswered; the scoring defaults
// cover them.
func (s *Session) Complete() (*Summary, error) {
	if !s.IsLast() {
		return nil, fmt.Errorf("complete at question %d of %d: %w", s.cursor+1, questionnaire.Count(), ErrNotFinished)
	}
	if !s.CanProceed() {
		return nil, ErrUnanswered
	}
	a := s.Answers()
	return &Summary{
		SessionID: s.ID,
		Duration:  s.now().Sub(s.StartedAt),
		Answered:  a.Len(),
		Total:     questionnaire.Count(),
		Answers:   a,
		Report:    report.Build(a),
	}, nil
}
