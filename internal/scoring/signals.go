package scoring

import (
	"github.com/abhisek/riskready/internal/answers"
	"github.com/abhisek/riskready/internal/questionnaire"
)

const (
	neutralRating = 5

	strongSignal  = 8
	neutralSignal = 5

	readySignal    = 9
	notReadySignal = 6

	pointsPerCorrect = 20
)

// Signals holds every answer after defaults have been applied, on the 1–10
// scale the scores are built from. Correct flags are false for unanswered
// questions.
type Signals struct {
	InterestFinance   int
	DetailOrientation int
	WorkStyle         int
	ProblemSolving    int
	MotivationLevel   int

	NumericalCorrect   bool
	LogicalCorrect     bool
	ComplianceCorrect  bool
	RiskCorrect        bool
	DataInterpretation int

	WillPersistence    int
	InterestCareer     int
	SkillExcel         int
	CognitiveReadiness int
	LearningAbility    int
	RealWorldFit       int
}

// Baseline is what Resolve returns for an empty answer set.
var Baseline = Signals{
	InterestFinance:    neutralRating,
	DetailOrientation:  neutralSignal,
	WorkStyle:          neutralSignal,
	ProblemSolving:     neutralSignal,
	MotivationLevel:    neutralRating,
	DataInterpretation: neutralRating,
	WillPersistence:    neutralRating,
	InterestCareer:     neutralSignal,
	SkillExcel:         neutralRating,
	CognitiveReadiness: notReadySignal,
	LearningAbility:    neutralRating,
	RealWorldFit:       notReadySignal,
}

// Resolve applies the per-question default policy to a.
func Resolve(a answers.Set) Signals {
	return Signals{
		InterestFinance:   ratingOrNeutral(a, questionnaire.KeyInterestFinance),
		DetailOrientation: strongIfOneOf(a, questionnaire.KeyDetailOrientation, 1, 3),
		WorkStyle:         strongIfOneOf(a, questionnaire.KeyWorkStyle, 0, 3),
		ProblemSolving:    strongIfOneOf(a, questionnaire.KeyProblemSolving, 0, 1),
		MotivationLevel:   ratingOrNeutral(a, questionnaire.KeyMotivationLevel),

		NumericalCorrect:   answeredCorrectly(a, questionnaire.KeyNumericalReasoning),
		LogicalCorrect:     answeredCorrectly(a, questionnaire.KeyLogicalReasoning),
		ComplianceCorrect:  answeredCorrectly(a, questionnaire.KeyComplianceKnowledge),
		RiskCorrect:        answeredCorrectly(a, questionnaire.KeyRiskIdentification),
		DataInterpretation: ratingOrNeutral(a, questionnaire.KeyDataInterpretation),

		WillPersistence:    ratingOrNeutral(a, questionnaire.KeyWillPersistence),
		InterestCareer:     strongIfAnswered(a, questionnaire.KeyInterestCareer),
		SkillExcel:         ratingOrNeutral(a, questionnaire.KeySkillExcel),
		CognitiveReadiness: readyIf(a, questionnaire.KeyCognitiveReadiness, 1),
		LearningAbility:    ratingOrNeutral(a, questionnaire.KeyLearningAbility),
		RealWorldFit:       readyIf(a, questionnaire.KeyRealWorldFit, 2),
	}
}

// CorrectCount returns how many graded questions were answered correctly.
func (s Signals) CorrectCount() int {
	n := 0
	for _, ok := range []bool{s.NumericalCorrect, s.LogicalCorrect, s.ComplianceCorrect, s.RiskCorrect} {
		if ok {
			n++
		}
	}
	return n
}

func ratingOrNeutral(a answers.Set, key questionnaire.Key) int {
	if v, ok := a.Get(key); ok {
		return v
	}
	return neutralRating
}

func strongIfOneOf(a answers.Set, key questionnaire.Key, options ...int) int {
	v, ok := a.Get(key)
	if !ok {
		return neutralSignal
	}
	for _, o := range options {
		if v == o {
			return strongSignal
		}
	}
	return neutralSignal
}

func strongIfAnswered(a answers.Set, key questionnaire.Key) int {
	if a.Has(key) {
		return strongSignal
	}
	return neutralSignal
}

func readyIf(a answers.Set, key questionnaire.Key, option int) int {
	if v, ok := a.Get(key); ok && v == option {
		return readySignal
	}
	return notReadySignal
}

func answeredCorrectly(a answers.Set, key questionnaire.Key) bool {
	v, ok := a.Get(key)
	return ok && questionnaire.MustLookup(key).IsCorrect(v)
}
