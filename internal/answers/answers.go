// Package answers holds a respondent's in-progress answers and decodes
// answer sets supplied from outside the terminal UI.
package answers

import (
	"github.com/abhisek/riskready/internal/questionnaire"
)

// Set maps question keys to answers: an option index for single-choice
// questions or a rating for rating-scale questions. A missing key means the
// question has not been answered.
type Set map[questionnaire.Key]int

// New returns an empty answer set.
func New() Set {
	return make(Set)
}

// Put records or overwrites the answer for key.
func (s Set) Put(key questionnaire.Key, v int) {
	s[key] = v
}

// Get returns the answer for key and whether it was answered.
func (s Set) Get(key questionnaire.Key) (int, bool) {
	v, ok := s[key]
	return v, ok
}

// Has reports whether key has been answered.
func (s Set) Has(key questionnaire.Key) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of answered questions.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Keys returns the answered keys in questionnaire order.
func (s Set) Keys() []questionnaire.Key {
	keys := make([]questionnaire.Key, 0, len(s))
	for _, q := range questionnaire.Questions() {
		if s.Has(q.Key) {
			keys = append(keys, q.Key)
		}
	}
	return keys
}
