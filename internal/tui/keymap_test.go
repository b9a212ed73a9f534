package tui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := map[string]key.Binding{
		"Quit":     km.Quit,
		"Pause":    km.Pause,
		"Reset":    km.Reset,
		"Up":       km.Up,
		"Down":     km.Down,
		"PageUp":   km.PageUp,
		"PageDown": km.PageDown,
	}
	for name, b := range bindings {
		if !b.Enabled() || len(b.Keys()) == 0 {
			t.Errorf("%s binding has no keys", name)
		}
		if b.Help().Key == "" {
			t.Errorf("%s binding has no help", name)
		}
	}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	if !slices.Contains(km.Quit.Keys(), "ctrl+c") {
		t.Error("Quit should include ctrl+c")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km.Quit) {
		t.Error("q should quit")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, km.Pause) {
		t.Error("p should pause")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, km.Quit) {
		t.Error("x should not quit")
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
}
