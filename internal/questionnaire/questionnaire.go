package questionnaire

import "fmt"

// index holds the questionnaire with precomputed lookups.
type index struct {
	sections  []Section
	questions []Question
	byKey     map[Key]int
	sectionOf []int
}

// q is the package-level questionnaire, built once at init.
var q *index

func init() {
	if err := validateSections(seedSections); err != nil {
		panic(fmt.Sprintf("questionnaire: %v", err))
	}
	q = buildIndex(seedSections)
}

func buildIndex(sections []Section) *index {
	idx := &index{
		sections: sections,
		byKey:    make(map[Key]int),
	}
	for si, s := range sections {
		for _, question := range s.Questions {
			idx.byKey[question.Key] = len(idx.questions)
			idx.questions = append(idx.questions, question)
			idx.sectionOf = append(idx.sectionOf, si)
		}
	}
	return idx
}

// Sections returns a deep copy of all sections in presentation order.
func Sections() []Section {
	out := make([]Section, len(q.sections))
	for i, s := range q.sections {
		out[i] = s.clone()
	}
	return out
}

// Questions returns a deep copy of every question, flattened in traversal
// order.
func Questions() []Question {
	out := make([]Question, len(q.questions))
	for i, question := range q.questions {
		out[i] = question.clone()
	}
	return out
}

// Count returns the total number of questions.
func Count() int {
	return len(q.questions)
}

// At returns the question at flattened position i and the index of the
// section it belongs to.
func At(i int) (Question, int, bool) {
	if i < 0 || i >= len(q.questions) {
		return Question{}, 0, false
	}
	return q.questions[i].clone(), q.sectionOf[i], true
}

// Position returns the flattened position of a question.
func Position(key Key) (int, bool) {
	i, ok := q.byKey[key]
	return i, ok
}

// Lookup returns the question with the given key.
func Lookup(key Key) (Question, bool) {
	i, ok := q.byKey[key]
	if !ok {
		return Question{}, false
	}
	return q.questions[i].clone(), true
}

// MustLookup is Lookup for keys declared in this package.
func MustLookup(key Key) Question {
	question, ok := Lookup(key)
	if !ok {
		panic(fmt.Sprintf("questionnaire: no question %q", key))
	}
	return question
}

// Validate checks the seed questionnaire for consistency.
func Validate() error {
	return validateSections(seedSections)
}
