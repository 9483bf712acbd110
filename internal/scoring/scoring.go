// Package scoring turns an answer set into readiness scores and a
// recommendation tier. Every function here is pure and total: unanswered
// questions fall back to the defaults in Resolve.
package scoring

import (
	"math"

	"github.com/abhisek/riskready/internal/answers"
)

// Recommendation is the categorical verdict on overall fit.
type Recommendation string

const (
	RecommendYes   Recommendation = "Yes"
	RecommendMaybe Recommendation = "Maybe"
	RecommendNo    Recommendation = "No"
)

const (
	yesThreshold   = 70
	maybeThreshold = 50
	confidenceLift = 10
	confidenceCap  = 95
	maxScore       = 100
)

// WiscarScores are the six readiness dimensions, each in [0,100].
type WiscarScores struct {
	Will               int `json:"Will"`
	Interest           int `json:"Interest"`
	Skill              int `json:"Skill"`
	CognitiveReadiness int `json:"CognitiveReadiness"`
	AbilityToLearn     int `json:"AbilityToLearn"`
	RealWorldAlignment int `json:"RealWorldAlignment"`
}

// Values returns the dimensions in WISCAR order.
func (w WiscarScores) Values() [6]int {
	return [6]int{w.Will, w.Interest, w.Skill, w.CognitiveReadiness, w.AbilityToLearn, w.RealWorldAlignment}
}

// Mean returns the unrounded average of the six dimensions.
func (w WiscarScores) Mean() float64 {
	sum := 0
	for _, v := range w.Values() {
		sum += v
	}
	return float64(sum) / 6
}

// Scores is the scoring engine's output.
type Scores struct {
	Psychometric    int
	Technical       int
	Wiscar          WiscarScores
	Overall         int
	Recommendation  Recommendation
	ConfidenceLevel int
}

// Score computes every score for a.
func Score(a answers.Set) Scores {
	sig := Resolve(a)

	psych := Psychometric(sig)
	tech := Technical(sig)
	wiscar := Wiscar(sig)
	overall := Overall(psych, tech, wiscar)

	return Scores{
		Psychometric:    psych,
		Technical:       tech,
		Wiscar:          wiscar,
		Overall:         overall,
		Recommendation:  RecommendationFor(overall),
		ConfidenceLevel: ConfidenceFor(overall),
	}
}

// Psychometric averages the five personality and motivation signals and
// scales the mean to [0,100].
func Psychometric(s Signals) int {
	sum := s.InterestFinance + s.DetailOrientation + s.WorkStyle + s.ProblemSolving + s.MotivationLevel
	mean := float64(sum) / 5
	return clamp(round(mean * 10))
}

// Technical awards points per correct graded answer plus twice the data
// interpretation rating, capped at 100.
func Technical(s Signals) int {
	total := s.CorrectCount()*pointsPerCorrect + s.DataInterpretation*2
	return clamp(min(total, maxScore))
}

// Wiscar scales each WISCAR judgment to [0,100]. Interest blends career
// interest with the psychometric finance interest rating.
func Wiscar(s Signals) WiscarScores {
	interest := float64(s.InterestCareer+s.InterestFinance) / 2
	return WiscarScores{
		Will:               clamp(s.WillPersistence * 10),
		Interest:           clamp(round(interest * 10)),
		Skill:              clamp(s.SkillExcel * 10),
		CognitiveReadiness: clamp(s.CognitiveReadiness * 10),
		AbilityToLearn:     clamp(s.LearningAbility * 10),
		RealWorldAlignment: clamp(s.RealWorldFit * 10),
	}
}

// Overall averages the three pillars. The WISCAR pillar enters as the mean of
// its six dimensions, so each dimension carries 1/18 of the weight.
func Overall(psychometric, technical int, w WiscarScores) int {
	return clamp(round((float64(psychometric) + float64(technical) + w.Mean()) / 3))
}

// RecommendationFor maps an overall score to its tier. Lower bounds are
// inclusive.
func RecommendationFor(overall int) Recommendation {
	switch {
	case overall >= yesThreshold:
		return RecommendYes
	case overall >= maybeThreshold:
		return RecommendMaybe
	default:
		return RecommendNo
	}
}

// ConfidenceFor lifts the overall score by ten points, never above 95.
func ConfidenceFor(overall int) int {
	return clamp(min(overall+confidenceLift, confidenceCap))
}

func round(f float64) int {
	return int(math.Round(f))
}

func clamp(v int) int {
	return max(0, min(v, maxScore))
}
