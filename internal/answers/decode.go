package answers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/riskready/internal/questionnaire"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("question_key", func(fl validator.FieldLevel) bool {
		_, err := questionnaire.ParseKey(fl.Field().String())
		return err == nil
	})
	return v
}

// Decode reads a JSON object of question keys to integer answers. A null
// value leaves the question unanswered. Unknown keys and out-of-range values
// are rejected; every offending entry is reported. The input must hold
// exactly one JSON value.
func Decode(r io.Reader) (Set, error) {
	var raw map[string]*int
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decode answers: unexpected data after the answers object")
	}

	set := New()
	var errs []error
	for _, k := range sortedKeys(raw) {
		if raw[k] == nil {
			if _, err := checkKey(k); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		key, err := check(k, *raw[k])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set.Put(key, *raw[k])
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid answers: %w", errors.Join(errs...))
	}
	return set, nil
}

// ParsePairs builds a Set from key=value strings.
func ParsePairs(pairs []string) (Set, error) {
	set := New()
	var errs []error
	for _, p := range pairs {
		k, raw, ok := strings.Cut(p, "=")
		if !ok {
			errs = append(errs, fmt.Errorf("%q: expected key=value", p))
			continue
		}
		k = strings.TrimSpace(k)
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: value %q is not an integer", k, raw))
			continue
		}
		key, err := check(k, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set.Put(key, v)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid answers: %w", errors.Join(errs...))
	}
	return set, nil
}

// Merge overlays other onto s, replacing existing answers.
func (s Set) Merge(other Set) {
	for k, v := range other {
		s[k] = v
	}
}

func checkKey(k string) (questionnaire.Key, error) {
	if err := validate.Var(k, "required,question_key"); err != nil {
		return "", fmt.Errorf("%s: %w", k, questionnaire.ErrUnknownKey)
	}
	return questionnaire.Key(k), nil
}

func check(k string, v int) (questionnaire.Key, error) {
	key, err := checkKey(k)
	if err != nil {
		return "", err
	}
	lo, hi := questionnaire.MustLookup(key).Bounds()
	if err := validate.Var(v, fmt.Sprintf("min=%d,max=%d", lo, hi)); err != nil {
		return "", fmt.Errorf("%s: value %d outside [%d, %d]", k, v, lo, hi)
	}
	return key, nil
}

func sortedKeys(m map[string]*int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
