package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskready/internal/ui/theme"
)

// ChoiceList lets the user pick one of several options. It never reveals
// which option is correct.
type ChoiceList struct {
	Options []string
	Cursor  int
	// Chosen is the recorded option, or -1.
	Chosen int
}

// NewChoiceList places the cursor on chosen when it is a valid index.
func NewChoiceList(options []string, chosen int) ChoiceList {
	c := ChoiceList{Options: options, Chosen: -1}
	if chosen >= 0 && chosen < len(options) {
		c.Cursor, c.Chosen = chosen, chosen
	}
	return c
}

// Update moves the cursor with ↑↓ (or k/j) and records it with space. The
// digits 1-9 pick an option directly.
func (c ChoiceList) Update(msg tea.Msg) ChoiceList {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c
	}

	switch s := key.String(); s {
	case "up", "k":
		c.Cursor = max(c.Cursor-1, 0)
	case "down", "j":
		c.Cursor = min(c.Cursor+1, len(c.Options)-1)
	case "space":
		c.Chosen = c.Cursor
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(c.Options) {
				c.Cursor, c.Chosen = i, i
			}
		}
	}
	return c
}

func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		mark := "○"
		if i == c.Chosen {
			mark = "●"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, mark, i+1, opt)
		if i == c.Cursor {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
