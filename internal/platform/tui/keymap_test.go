package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crossroad/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		wantQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
		{"space unbound", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), action, quit, tc.action, tc.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("w"), &frame) {
		t.Error("w should not quit")
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(runeKey("x"), &frame)

	if !frame.Has(core.ActionUp) || !frame.Has(core.ActionLeft) {
		t.Errorf("frame = %v, expected up and left", frame.Actions)
	}
	if len(frame.Actions) != 2 {
		t.Errorf("frame has %d actions, expected 2", len(frame.Actions))
	}

	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is handled by the model, not the game")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 7 {
		t.Errorf("ShortHelp() has %d bindings, expected 7", len(km.ShortHelp()))
	}

	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 7 {
		t.Errorf("FullHelp() has %d bindings, expected 7", total)
	}
}
