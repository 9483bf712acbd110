package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskready/internal/ui/theme"
)

// Slider picks an integer on a closed scale with ←→.
type Slider struct {
	Min, Max           int
	MinLabel, MaxLabel string
	Value              int
}

// NewSlider starts at value, or at the bottom of the scale when value is
// outside it.
func NewSlider(lo, hi int, loLabel, hiLabel string, value int) Slider {
	if value < lo || value > hi {
		value = lo
	}
	return Slider{Min: lo, Max: hi, MinLabel: loLabel, MaxLabel: hiLabel, Value: value}
}

func (s Slider) Update(msg tea.Msg) Slider {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s
	}

	switch key.String() {
	case "left", "h":
		s.Value = max(s.Value-1, s.Min)
	case "right", "l":
		s.Value = min(s.Value+1, s.Max)
	case "home":
		s.Value = s.Min
	case "end":
		s.Value = s.Max
	}
	return s
}

func (s Slider) View() string {
	var track strings.Builder
	for v := s.Min; v <= s.Max; v++ {
		if v == s.Value {
			track.WriteString(theme.Selected.Render(fmt.Sprintf("[%d]", v)))
		} else {
			track.WriteString(theme.Hint.Render(fmt.Sprintf(" %d ", v)))
		}
	}

	labels := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Hint.Render(fmt.Sprintf("%d = %s", s.Min, s.MinLabel)),
		"    ",
		theme.Hint.Render(fmt.Sprintf("%d = %s", s.Max, s.MaxLabel)),
	)
	return "  " + track.String() + "\n\n  " + labels + "\n"
}
