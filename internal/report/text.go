package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/riskready/internal/scoring"
)

var wiscarLabels = [6]string{
	"Will",
	"Interest",
	"Skill",
	"CognitiveReadiness",
	"AbilityToLearn",
	"RealWorldAlignment",
}

// WiscarEntry pairs a WISCAR dimension name with its score.
type WiscarEntry struct {
	Name  string
	Score int
}

// WiscarEntries lists the WISCAR scores in rubric order.
func WiscarEntries(w scoring.WiscarScores) []WiscarEntry {
	values := w.Values()
	out := make([]WiscarEntry, len(values))
	for i, v := range values {
		out[i] = WiscarEntry{Name: wiscarLabels[i], Score: v}
	}
	return out
}

// WriteText renders r as plain text.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Recommendation: %s (%d%% confidence level)\n\n", r.Recommendation, r.ConfidenceLevel)

	b.WriteString("Overall Assessment Scores\n")
	fmt.Fprintf(&b, "  %-22s %3d%%\n", "Psychometric Fit", r.PsychometricFitScore)
	fmt.Fprintf(&b, "  %-22s %3d%%\n", "Technical Readiness", r.TechnicalReadinessScore)
	fmt.Fprintf(&b, "  %-22s %3d%%\n\n", "Overall Confidence", r.OverallConfidenceScore)

	b.WriteString("WISCAR Framework\n")
	for _, e := range WiscarEntries(r.WiscarScores) {
		fmt.Fprintf(&b, "  %-22s %3d%%  %s\n", e.Name, e.Score, ScoreBand(e.Score))
	}

	b.WriteString("\nRecommended Career Paths\n")
	for _, c := range r.CareerSuggestions {
		fmt.Fprintf(&b, "  - %s\n", c)
	}

	b.WriteString("\nSkill Development Areas\n")
	for _, g := range r.SkillGaps {
		fmt.Fprintf(&b, "  %-30s %3d/%d  %s Priority\n", g.Skill, g.Current, g.Target, g.Priority)
	}

	b.WriteString("\nImmediate Next Steps\n")
	for i, s := range r.NextSteps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}

	if len(r.AlternativePaths) > 0 {
		b.WriteString("\nAlternative Paths to Consider\n")
		for _, p := range r.AlternativePaths {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
