// Package report assembles the readiness report from an answer set and
// serializes it for export.
package report

import (
	"github.com/abhisek/riskready/internal/answers"
	"github.com/abhisek/riskready/internal/guidance"
	"github.com/abhisek/riskready/internal/scoring"
)

// Report is the complete result of one assessment. It is built once and not
// modified afterwards.
type Report struct {
	PsychometricFitScore    int                    `json:"psychometric_fit_score"`
	TechnicalReadinessScore int                    `json:"technical_readiness_score"`
	WiscarScores            scoring.WiscarScores   `json:"wiscar_scores"`
	OverallConfidenceScore  int                    `json:"overall_confidence_score"`
	Recommendation          scoring.Recommendation `json:"recommendation"`
	ConfidenceLevel         int                    `json:"confidence_level"`
	NextSteps               []string               `json:"next_steps"`
	CareerSuggestions       []string               `json:"career_suggestions"`
	AlternativePaths        []string               `json:"alternative_paths"`
	SkillGaps               []guidance.SkillGap    `json:"skill_gaps"`
}

// Build scores a and derives the guidance for the resulting tier.
func Build(a answers.Set) *Report {
	s := scoring.Score(a)
	return &Report{
		PsychometricFitScore:    s.Psychometric,
		TechnicalReadinessScore: s.Technical,
		WiscarScores:            s.Wiscar,
		OverallConfidenceScore:  s.Overall,
		Recommendation:          s.Recommendation,
		ConfidenceLevel:         s.ConfidenceLevel,
		NextSteps:               guidance.NextSteps(s.Recommendation),
		CareerSuggestions:       guidance.CareerSuggestions(s.Recommendation),
		AlternativePaths:        guidance.AlternativePaths(s.Recommendation),
		SkillGaps:               guidance.SkillGaps(s.Technical),
	}
}

// Band classifies a percentage score for display.
type Band int

const (
	BandLow Band = iota
	BandModerate
	BandStrong
)

// ScoreBand returns the display band for a score.
func ScoreBand(score int) Band {
	switch {
	case score >= 75:
		return BandStrong
	case score >= 50:
		return BandModerate
	default:
		return BandLow
	}
}

func (b Band) String() string {
	switch b {
	case BandStrong:
		return "strong"
	case BandModerate:
		return "moderate"
	default:
		return "low"
	}
}
