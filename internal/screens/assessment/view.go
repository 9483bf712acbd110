package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskready/internal/questionnaire"
	"github.com/abhisek/riskready/internal/ui/components"
	"github.com/abhisek/riskready/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	pos := s.sess.Current()

	var b strings.Builder

	b.WriteString(theme.Heading.Render(pos.Section.Title))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(pos.Section.Description))
	b.WriteString("\n\n")

	answered, total := s.sess.Progress()
	bar := components.NewProgressBar(fmt.Sprintf("Question %d of %d", pos.Index+1, total), answered*100/total, cw)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(s.renderSections(pos.SectionIndex))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(cw).Bold(true).Foreground(theme.Text).Render(pos.Question.Text))
	b.WriteString("\n\n")

	switch pos.Question.Kind {
	case questionnaire.KindSingleChoice:
		b.WriteString(s.choices.View())
	case questionnaire.KindRatingScale:
		b.WriteString(s.slider.View())
	}

	b.WriteString("\n")
	switch {
	case s.notice != "":
		b.WriteString(theme.ErrorText.Render(s.notice))
	case !s.sess.CanProceed():
		b.WriteString(theme.Hint.Render("Select an answer, then press Enter."))
	case s.sess.IsLast():
		b.WriteString(theme.Hint.Render("Press Enter to see your results."))
	}

	return components.Center(lipgloss.NewStyle().Width(cw).Render(b.String()), width)
}

// renderSections shows per-section progress, highlighting the current one.
func (s *AssessmentScreen) renderSections(current int) string {
	parts := make([]string, 0, 3)
	for i, sec := range questionnaire.Sections() {
		answered, total := s.sess.SectionProgress(i)
		label := fmt.Sprintf("%s %d/%d", sec.Title, answered, total)
		switch {
		case i == current:
			parts = append(parts, theme.Selected.Render(label))
		case answered == total:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render(label))
		default:
			parts = append(parts, theme.Hint.Render(label))
		}
	}
	return strings.Join(parts, theme.Hint.Render("  ›  "))
}
