package questionnaire

import (
	"errors"
	"fmt"
)

// validateSections checks structural invariants and reports every problem
// found rather than stopping at the first.
func validateSections(sections []Section) error {
	var errs []error

	if len(sections) == 0 {
		errs = append(errs, errors.New("no sections defined"))
	}

	sectionKeys := make(map[string]bool, len(sections))
	questionKeys := make(map[Key]bool)

	for _, s := range sections {
		if sectionKeys[s.Key] {
			errs = append(errs, fmt.Errorf("duplicate section key: %q", s.Key))
		}
		sectionKeys[s.Key] = true

		if len(s.Questions) == 0 {
			errs = append(errs, fmt.Errorf("section %q has no questions", s.Key))
		}

		for _, question := range s.Questions {
			if questionKeys[question.Key] {
				errs = append(errs, fmt.Errorf("duplicate question key: %q", question.Key))
			}
			questionKeys[question.Key] = true

			if err := validateQuestion(question); err != nil {
				errs = append(errs, fmt.Errorf("question %q: %w", question.Key, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("questionnaire validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func validateQuestion(question Question) error {
	if question.Text == "" {
		return errors.New("empty text")
	}
	switch question.Kind {
	case KindSingleChoice:
		if question.Choice == nil || question.Rating != nil {
			return errors.New("single-choice question must carry Choice and no Rating")
		}
		if len(question.Choice.Options) < 2 {
			return fmt.Errorf("needs at least 2 options, got %d", len(question.Choice.Options))
		}
		if question.Choice.Graded && (question.Choice.Correct < 0 || question.Choice.Correct >= len(question.Choice.Options)) {
			return fmt.Errorf("correct index %d out of range", question.Choice.Correct)
		}
	case KindRatingScale:
		if question.Rating == nil || question.Choice != nil {
			return errors.New("rating-scale question must carry Rating and no Choice")
		}
		if question.Rating.Min >= question.Rating.Max {
			return fmt.Errorf("rating min %d must be below max %d", question.Rating.Min, question.Rating.Max)
		}
	default:
		return fmt.Errorf("unknown kind %q", question.Kind)
	}
	return nil
}
