package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/riskready/internal/answers"
	"github.com/abhisek/riskready/internal/guidance"
	"github.com/abhisek/riskready/internal/questionnaire"
	"github.com/abhisek/riskready/internal/scoring"
)

func TestBuild_EmptyAnswers(t *testing.T) {
	r := Build(answers.New())

	assert.Equal(t, 50, r.PsychometricFitScore)
	assert.Equal(t, 10, r.TechnicalReadinessScore)
	assert.Equal(t, 38, r.OverallConfidenceScore)
	assert.Equal(t, scoring.RecommendNo, r.Recommendation)
	assert.Equal(t, 48, r.ConfidenceLevel)
	assert.Equal(t, guidance.NextSteps(scoring.RecommendNo), r.NextSteps)
	assert.Len(t, r.AlternativePaths, 4)
	assert.Equal(t, guidance.SkillGaps(10), r.SkillGaps)
}

func TestBuild_YesTierHasNoAlternativePaths(t *testing.T) {
	r := Build(strongAnswers())

	require.Equal(t, scoring.RecommendYes, r.Recommendation)
	assert.NotNil(t, r.AlternativePaths)
	assert.Empty(t, r.AlternativePaths)
	assert.Len(t, r.CareerSuggestions, 5)
}

func TestReport_JSONShape(t *testing.T) {
	data, err := json.Marshal(Build(strongAnswers()))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{
		"psychometric_fit_score", "technical_readiness_score", "wiscar_scores",
		"overall_confidence_score", "recommendation", "confidence_level",
		"next_steps", "career_suggestions", "alternative_paths", "skill_gaps",
	} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, []any{}, doc["alternative_paths"])

	wiscar := doc["wiscar_scores"].(map[string]any)
	assert.Contains(t, wiscar, "CognitiveReadiness")
	gap := doc["skill_gaps"].([]any)[0].(map[string]any)
	assert.Equal(t, "Excel & Data Analysis", gap["skill"])
}

func TestExport_EncodeValidates(t *testing.T) {
	a := strongAnswers()
	id := uuid.MustParse("6f1c2f8e-4c43-4bb2-9a55-0d7a0a3c1f10")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, NewExport(id, a, Build(a), now).Encode(&buf))

	var got Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, id.String(), got.ID)
	assert.True(t, now.Equal(got.GeneratedAt))
	assert.Equal(t, a, got.Answers)
	assert.Equal(t, scoring.RecommendYes, got.Results.Recommendation)
}

func TestExport_NilAnswersEncodeAsObject(t *testing.T) {
	var buf bytes.Buffer
	err := NewExport(uuid.New(), nil, Build(nil), time.Now()).Encode(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"answers": {}`)
}

func TestExport_InvalidReportIsNotWritten(t *testing.T) {
	r := Build(answers.New())
	r.PsychometricFitScore = 140

	var buf bytes.Buffer
	err := NewExport(uuid.New(), answers.New(), r, time.Now()).Encode(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
	assert.Zero(t, buf.Len())
}

func TestValidate_RejectsUnknownTier(t *testing.T) {
	r := Build(answers.New())
	r.Recommendation = "Perhaps"
	data, err := json.Marshal(NewExport(uuid.New(), answers.New(), r, time.Now()))
	require.NoError(t, err)
	assert.Error(t, Validate(data))
}

func TestScoreBand(t *testing.T) {
	assert.Equal(t, BandLow, ScoreBand(49))
	assert.Equal(t, BandModerate, ScoreBand(50))
	assert.Equal(t, BandModerate, ScoreBand(74))
	assert.Equal(t, BandStrong, ScoreBand(75))
	assert.Equal(t, "strong", BandStrong.String())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(answers.New())))

	out := buf.String()
	assert.Contains(t, out, "Recommendation: No (48% confidence level)")
	assert.Contains(t, out, "Technical Readiness")
	assert.Contains(t, out, "CognitiveReadiness")
	assert.Contains(t, out, "Alternative Paths to Consider")
	assert.True(t, strings.Index(out, "Immediate Next Steps") < strings.Index(out, "Alternative Paths"))
}

func TestWriteText_OmitsEmptyAlternativePaths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(strongAnswers())))
	assert.NotContains(t, buf.String(), "Alternative Paths")
}

func strongAnswers() answers.Set {
	return answers.Set{
		questionnaire.KeyInterestFinance:     9,
		questionnaire.KeyDetailOrientation:   3,
		questionnaire.KeyWorkStyle:           0,
		questionnaire.KeyProblemSolving:      1,
		questionnaire.KeyMotivationLevel:     9,
		questionnaire.KeyNumericalReasoning:  1,
		questionnaire.KeyLogicalReasoning:    1,
		questionnaire.KeyComplianceKnowledge: 0,
		questionnaire.KeyRiskIdentification:  1,
		questionnaire.KeyDataInterpretation:  8,
		questionnaire.KeyWillPersistence:     9,
		questionnaire.KeyInterestCareer:      1,
		questionnaire.KeySkillExcel:          7,
		questionnaire.KeyCognitiveReadiness:  1,
		questionnaire.KeyLearningAbility:     8,
		questionnaire.KeyRealWorldFit:        2,
	}
}
