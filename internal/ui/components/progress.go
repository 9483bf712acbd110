package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskready/internal/ui/theme"
)

// ProgressBar is a labelled horizontal bar for a 0-100 value.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Percent    int
	Width      int
	Color      color.Color
}

func NewProgressBar(label string, percent, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width, Color: theme.Secondary}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(max(p.LabelWidth, lipgloss.Width(p.Label))).
			Render(p.Label))
		b.WriteString("  ")
	}

	const suffixWidth = 6
	barWidth := max(p.Width-lipgloss.Width(b.String())-suffixWidth, 4)
	filled := min(max(barWidth*p.Percent/100, 0), barWidth)

	b.WriteString(lipgloss.NewStyle().Background(p.Color).Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))
	b.WriteString(theme.Hint.UnsetItalic().Render(fmt.Sprintf(" %3d%%", p.Percent)))
	return b.String()
}
