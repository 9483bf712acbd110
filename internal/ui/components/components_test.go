package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	}
	r := rune(s[0])
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenuSkipsDisabled(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "Resume", Disabled: true},
		{Label: "Start", Action: func() tea.Cmd { ran = "start"; return nil }},
		{Label: "Export", Disabled: true},
		{Label: "Exit", Action: func() tea.Cmd { ran = "exit"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key("up"))
	if m.Selected != 1 {
		t.Fatalf("up onto disabled item moved to %d", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Fatalf("down should skip disabled, got %d", m.Selected)
	}
	m.Update(key("enter"))
	if ran != "exit" {
		t.Fatalf("action ran = %q", ran)
	}
}

func TestChoiceList(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c"}, -1)
	if c.Cursor != 0 || c.Chosen != -1 {
		t.Fatalf("new list = %+v", c)
	}

	c = c.Update(key("up"))
	if c.Cursor != 0 {
		t.Fatalf("cursor moved above top: %d", c.Cursor)
	}
	c = c.Update(key("down"))
	c = c.Update(key("down"))
	c = c.Update(key("down"))
	if c.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", c.Cursor)
	}
	c = c.Update(key("space"))
	if c.Chosen != 2 {
		t.Fatalf("chosen = %d, want 2", c.Chosen)
	}
	c = c.Update(key("2"))
	if c.Cursor != 1 || c.Chosen != 1 {
		t.Fatalf("digit pick = %+v", c)
	}
	c = c.Update(key("9"))
	if c.Chosen != 1 {
		t.Fatalf("out of range digit changed choice: %+v", c)
	}

	restored := NewChoiceList([]string{"a", "b"}, 1)
	if restored.Cursor != 1 || restored.Chosen != 1 {
		t.Fatalf("restored = %+v", restored)
	}
	if !strings.Contains(restored.View(), "● 2. b") {
		t.Fatalf("view does not mark the chosen option:\n%s", restored.View())
	}
}

func TestSlider(t *testing.T) {
	s := NewSlider(1, 10, "Not at all", "Extremely", 0)
	if s.Value != 1 {
		t.Fatalf("default value = %d, want 1", s.Value)
	}

	s = s.Update(key("right"))
	if s.Value != 2 {
		t.Fatalf("value = %d, want 2", s.Value)
	}
	for range 10 {
		s = s.Update(key("right"))
	}
	if s.Value != 10 {
		t.Fatalf("value not clamped at max: %d", s.Value)
	}
	for range 20 {
		s = s.Update(key("left"))
	}
	if s.Value != 1 {
		t.Fatalf("value not clamped at min: %d", s.Value)
	}

	if got := NewSlider(1, 10, "", "", 8).Value; got != 8 {
		t.Fatalf("initial value = %d, want 8", got)
	}
	if !strings.Contains(s.View(), "10 = Extremely") {
		t.Fatalf("view missing labels:\n%s", s.View())
	}
}

func TestProgressBar(t *testing.T) {
	view := NewProgressBar("Technical", 54, 60).View()
	if !strings.Contains(view, "Technical") || !strings.Contains(view, " 54%") {
		t.Fatalf("view = %q", view)
	}
}

func TestContentWidth(t *testing.T) {
	for _, tt := range []struct{ in, want int }{{80, 74}, {200, 96}, {20, 40}} {
		if got := ContentWidth(tt.in); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
