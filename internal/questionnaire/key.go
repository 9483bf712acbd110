package questionnaire

import (
	"errors"
	"fmt"
)

// Key identifies a question. The scoring engine depends on these exact keys,
// so they are declared once here instead of being spelled out as strings.
type Key string

const (
	KeyInterestFinance     Key = "interest_finance"
	KeyDetailOrientation   Key = "detail_orientation"
	KeyWorkStyle           Key = "work_style"
	KeyProblemSolving      Key = "problem_solving"
	KeyMotivationLevel     Key = "motivation_level"
	KeyNumericalReasoning  Key = "numerical_reasoning"
	KeyLogicalReasoning    Key = "logical_reasoning"
	KeyComplianceKnowledge Key = "compliance_knowledge"
	KeyRiskIdentification  Key = "risk_identification"
	KeyDataInterpretation  Key = "data_interpretation"
	KeyWillPersistence     Key = "will_persistence"
	KeyInterestCareer      Key = "interest_career"
	KeySkillExcel          Key = "skill_excel"
	KeyCognitiveReadiness  Key = "cognitive_readiness"
	KeyLearningAbility     Key = "learning_ability"
	KeyRealWorldFit        Key = "real_world_fit"
)

// ErrUnknownKey is returned when a string does not name a question.
var ErrUnknownKey = errors.New("unknown question key")

// ParseKey converts a raw string into a Key known to the questionnaire.
func ParseKey(s string) (Key, error) {
	k := Key(s)
	if _, ok := Lookup(k); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	return k, nil
}

func (k Key) String() string { return string(k) }
