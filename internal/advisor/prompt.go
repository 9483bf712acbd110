package advisor

import (
	"fmt"
	"strings"

	"github.com/abhisek/riskready/internal/report"
)

const systemPrompt = `You are a career coach for people considering entry-level risk management, internal audit and compliance roles. You explain assessment results honestly and practically.`

func buildUserMessage(r *report.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recommendation: %s (confidence level %d%%)\n", r.Recommendation, r.ConfidenceLevel)
	fmt.Fprintf(&b, "Psychometric fit: %d%% (%s)\n", r.PsychometricFitScore, report.ScoreBand(r.PsychometricFitScore))
	fmt.Fprintf(&b, "Technical readiness: %d%% (%s)\n", r.TechnicalReadinessScore, report.ScoreBand(r.TechnicalReadinessScore))
	fmt.Fprintf(&b, "Overall confidence: %d%%\n", r.OverallConfidenceScore)

	b.WriteString("\nWISCAR:\n")
	for _, e := range report.WiscarEntries(r.WiscarScores) {
		fmt.Fprintf(&b, "- %s: %d%%\n", e.Name, e.Score)
	}

	b.WriteString("\nSkill gaps:\n")
	for _, g := range r.SkillGaps {
		fmt.Fprintf(&b, "- %s: current %d, target %d, %s priority\n", g.Skill, g.Current, g.Target, g.Priority)
	}

	if len(r.CareerSuggestions) > 0 {
		fmt.Fprintf(&b, "\nSuggested roles: %s\n", strings.Join(r.CareerSuggestions, ", "))
	}

	b.WriteString(`
Instructions:
1. Write a headline that agrees with the recommendation above. Do not contradict or restate the numbers as a new score.
2. Summarize what the scores say about fit and readiness in 3-5 sentences.
3. List 1-4 strengths, each tied to one of the higher scores.
4. List 1-4 focus areas, starting with the high priority skill gaps.
Keep every list entry under 15 words. Plain text only.`)

	return b.String()
}
