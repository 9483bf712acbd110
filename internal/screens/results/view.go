package results

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskready/internal/guidance"
	"github.com/abhisek/riskready/internal/report"
	"github.com/abhisek/riskready/internal/ui/components"
	"github.com/abhisek/riskready/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	lines := strings.Split(s.render(cw), "\n")

	// Clamp here rather than in Update, where the height is unknown.
	s.offset = min(s.offset, max(len(lines)-height, 0))
	end := min(s.offset+height, len(lines))

	return components.Center(strings.Join(lines[s.offset:end], "\n"), width)
}

func (s *ResultsScreen) render(cw int) string {
	r := s.summary.Report
	barWidth := cw - 6

	var sections []string

	tier := lipgloss.NewStyle().Bold(true).Foreground(theme.RecommendationColor(string(r.Recommendation)))
	sections = append(sections, components.Card("",
		tier.Render(fmt.Sprintf("Recommendation: %s", r.Recommendation))+
			theme.Hint.Render(fmt.Sprintf("   %d%% confidence level", r.ConfidenceLevel))+"\n"+
			theme.Hint.Render(fmt.Sprintf("Answered %d of %d questions in %s",
				s.summary.Answered, s.summary.Total, s.summary.Duration.Round(time.Second))),
		cw))

	scores := []string{
		scoreBar("Psychometric Fit", r.PsychometricFitScore, 22, barWidth),
		scoreBar("Technical Readiness", r.TechnicalReadinessScore, 22, barWidth),
		scoreBar("Overall Confidence", r.OverallConfidenceScore, 22, barWidth),
	}
	sections = append(sections, components.Card("Overall Assessment Scores", strings.Join(scores, "\n"), cw))

	var wiscar []string
	for _, e := range report.WiscarEntries(r.WiscarScores) {
		wiscar = append(wiscar, scoreBar(e.Name, e.Score, 22, barWidth))
	}
	sections = append(sections, components.Card("WISCAR Framework", strings.Join(wiscar, "\n"), cw))

	sections = append(sections, components.Card("Recommended Career Paths", bullets(r.CareerSuggestions), cw))

	var gaps []string
	for _, g := range r.SkillGaps {
		bar := components.NewProgressBar(g.Skill, g.Progress(), barWidth-18)
		bar.LabelWidth = 30
		gaps = append(gaps, bar.View()+"  "+priority(g.Priority, g.Current, g.Target))
	}
	sections = append(sections, components.Card("Skill Development Areas", strings.Join(gaps, "\n"), cw))

	sections = append(sections, components.Card("Next Steps", numbered(r.NextSteps), cw))
	if len(r.AlternativePaths) > 0 {
		sections = append(sections, components.Card("Alternative Career Paths", bullets(r.AlternativePaths), cw))
	}

	if coaching := s.renderCoaching(); coaching != "" {
		sections = append(sections, components.Card("Coaching", coaching, cw))
	}
	if status := s.renderSaveStatus(); status != "" {
		sections = append(sections, status)
	}

	return strings.Join(sections, "\n")
}

func (s *ResultsScreen) renderCoaching() string {
	switch {
	case s.loading:
		return s.spinner.View() + theme.Hint.Render(" Preparing your coaching notes...")
	case s.adviceErr != nil:
		return theme.ErrorText.Render("Coaching is unavailable right now: " + s.adviceErr.Error())
	case s.narrative != nil:
		n := s.narrative
		return theme.Body.Bold(true).Render(n.Headline) + "\n" +
			theme.Body.Render(n.Summary) + "\n\n" +
			theme.Heading.Render("Strengths") + "\n" + bullets(n.Strengths) + "\n" +
			theme.Heading.Render("Focus areas") + "\n" + bullets(n.FocusAreas)
	case s.advisor != nil:
		return theme.Hint.Render("Press a for personalised coaching notes.")
	}
	return ""
}

func (s *ResultsScreen) renderSaveStatus() string {
	switch {
	case s.saveErr != nil:
		return theme.ErrorText.Render("Could not save report: " + s.saveErr.Error())
	case s.saved != "":
		return lipgloss.NewStyle().Foreground(theme.Success).Render("Report saved to " + s.saved)
	}
	return ""
}

func scoreBar(label string, score, labelWidth, width int) string {
	bar := components.NewProgressBar(label, score, width-10)
	bar.LabelWidth = labelWidth
	bar.Color = theme.BandColor(report.ScoreBand(score).String())
	return bar.View() + "  " + theme.Hint.Render(report.ScoreBand(score).String())
}

func priority(p guidance.Priority, current, target int) string {
	return theme.Hint.Render(fmt.Sprintf("%d/%d  %s", current, target, p))
}

func bullets(items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString("• " + it + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func numbered(items []string) string {
	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it)
	}
	return strings.TrimRight(b.String(), "\n")
}
