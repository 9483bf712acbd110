package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskready/internal/ui/theme"
)

// ContentWidth is the width screens lay their cards out at: the frame
// width less margins, capped so long lines stay readable.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 40), 96)
}

// Card renders a titled, rounded-border box of the given outer width.
func Card(title, body string, width int) string {
	content := body
	if title != "" {
		content = theme.Heading.Render(title) + "\n" + body
	}
	return theme.Card.Width(width).Render(content)
}

// Center places block horizontally centered within width.
func Center(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
