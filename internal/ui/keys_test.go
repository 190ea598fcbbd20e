package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alphapapa/demo-it/internal/macro"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ctrl+c", "C-c"},
		{"alt+x", "M-x"},
		{"shift+tab", "S-Tab"},
		{"ctrl+alt+d", "C-M-d"},
		{"enter", "Enter"},
		{"esc", "Escape"},
		{"backspace", "BSpace"},
		{"pgup", "PageUp"},
		{"f5", "F5"},
		{"f12", "F12"},
		{"up", "Up"},
		{"a", "a"},
	}
	for _, tt := range tests {
		if got := keyName(tt.input); got != tt.expected {
			t.Errorf("keyName(%s) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestKeyPressesFromTeaRunes(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}
	presses := keyPressesFromTea(msg)
	if len(presses) != 2 {
		t.Fatalf("len = %d, want 2", len(presses))
	}
	if presses[0] != macro.Char('h') || presses[1] != macro.Char('i') {
		t.Errorf("presses = %v", presses)
	}
}

func TestKeyPressesFromTeaSpace(t *testing.T) {
	presses := keyPressesFromTea(tea.KeyMsg{Type: tea.KeySpace})
	if len(presses) != 1 || presses[0] != macro.Char(' ') {
		t.Errorf("presses = %v, want one space", presses)
	}
}

func TestKeyPressesFromTeaSpecial(t *testing.T) {
	presses := keyPressesFromTea(tea.KeyMsg{Type: tea.KeyEnter})
	if len(presses) != 1 || presses[0] != macro.Special("Enter") {
		t.Errorf("presses = %v, want [Enter]", presses)
	}

	presses = keyPressesFromTea(tea.KeyMsg{Type: tea.KeyCtrlC})
	if len(presses) != 1 || presses[0] != macro.Special("C-c") {
		t.Errorf("presses = %v, want [C-c]", presses)
	}
}

func TestKeyPressesFromTeaAltRune(t *testing.T) {
	// Alt-modified runes are named keys, not typed text.
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}
	presses := keyPressesFromTea(msg)
	if len(presses) != 1 || presses[0] != macro.Special("M-x") {
		t.Errorf("presses = %v, want [M-x]", presses)
	}
}

func TestAckPrompterRoundTrip(t *testing.T) {
	p := NewAckPrompter()
	done := make(chan struct{})
	go func() {
		p.Acknowledge("demo complete")
		close(done)
	}()

	if msg := p.Next(); msg != "demo complete" {
		t.Errorf("Next() = %q", msg)
	}
	select {
	case <-done:
		t.Fatal("Acknowledge returned before Release")
	default:
	}
	p.Release()
	<-done
}
