package questionnaire

import (
	"slices"
	"strconv"
)

// Kind distinguishes the two question shapes.
type Kind string

const (
	KindSingleChoice Kind = "single-choice"
	KindRatingScale  Kind = "rating-scale"
)

// Choice describes a single-choice question. Graded questions have an
// objectively correct option.
type Choice struct {
	Options []string
	Correct int
	Graded  bool
}

// Rating describes an integer rating scale with labelled endpoints.
type Rating struct {
	Min      int
	Max      int
	MinLabel string
	MaxLabel string
}

// Question is a single immutable questionnaire item. Exactly one of Choice
// or Rating is set, matching Kind.
type Question struct {
	Key    Key
	Text   string
	Kind   Kind
	Choice *Choice
	Rating *Rating
}

// Section groups questions under a heading. Question order is traversal order.
type Section struct {
	Key         string
	Title       string
	Description string
	Questions   []Question
}

// Accepts reports whether v is a legal answer for the question.
func (q Question) Accepts(v int) bool {
	switch q.Kind {
	case KindSingleChoice:
		return q.Choice != nil && v >= 0 && v < len(q.Choice.Options)
	case KindRatingScale:
		return q.Rating != nil && v >= q.Rating.Min && v <= q.Rating.Max
	default:
		return false
	}
}

// Bounds returns the inclusive range of legal answers.
func (q Question) Bounds() (lo, hi int) {
	switch {
	case q.Kind == KindSingleChoice && q.Choice != nil:
		return 0, len(q.Choice.Options) - 1
	case q.Kind == KindRatingScale && q.Rating != nil:
		return q.Rating.Min, q.Rating.Max
	}
	return 0, -1
}

// CorrectIndex returns the correct option for graded questions.
func (q Question) CorrectIndex() (int, bool) {
	if q.Kind != KindSingleChoice || q.Choice == nil || !q.Choice.Graded {
		return 0, false
	}
	return q.Choice.Correct, true
}

// IsCorrect reports whether v is the correct option of a graded question.
// Ungraded questions are never correct.
func (q Question) IsCorrect(v int) bool {
	c, ok := q.CorrectIndex()
	return ok && c == v
}

// Label returns a human-readable rendering of answer v.
func (q Question) Label(v int) string {
	if q.Kind == KindSingleChoice && q.Accepts(v) {
		return q.Choice.Options[v]
	}
	return strconv.Itoa(v)
}

// clone copies q so that callers cannot reach the seed data through the
// Choice and Rating pointers.
func (q Question) clone() Question {
	if q.Choice != nil {
		c := *q.Choice
		c.Options = slices.Clone(c.Options)
		q.Choice = &c
	}
	if q.Rating != nil {
		r := *q.Rating
		q.Rating = &r
	}
	return q
}

func (s Section) clone() Section {
	qs := make([]Question, len(s.Questions))
	for i, question := range s.Questions {
		qs[i] = question.clone()
	}
	s.Questions = qs
	return s
}

func choice(key Key, text string, options ...string) Question {
	return Question{
		Key:    key,
		Text:   text,
		Kind:   KindSingleChoice,
		Choice: &Choice{Options: options},
	}
}

func graded(key Key, text string, correct int, options ...string) Question {
	q := choice(key, text, options...)
	q.Choice.Correct = correct
	q.Choice.Graded = true
	return q
}

func rating(key Key, text, minLabel, maxLabel string) Question {
	return Question{
		Key:  key,
		Text: text,
		Kind: KindRatingScale,
		Rating: &Rating{
			Min:      1,
			Max:      10,
			MinLabel: minLabel,
			MaxLabel: maxLabel,
		},
	}
}
