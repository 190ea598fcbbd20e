package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alphapapa/demo-it/internal/macro"
)

// specialKeyNames maps Bubble Tea key names to the tmux-style descriptions
// the macro package and the stage both speak.
var specialKeyNames = map[string]string{
	"enter":     "Enter",
	"tab":       "Tab",
	"esc":       "Escape",
	"backspace": "BSpace",
	"delete":    "DC",
	"insert":    "IC",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
}

// keyPressesFromTea converts one console key event into captured presses.
// Plain runes record as characters; everything else records as a named key
// so replay through tmux send-keys keeps its meaning.
func keyPressesFromTea(msg tea.KeyMsg) []macro.KeyPress {
	if msg.Type == tea.KeyRunes && !msg.Alt {
		presses := make([]macro.KeyPress, len(msg.Runes))
		for i, r := range msg.Runes {
			presses[i] = macro.Char(r)
		}
		return presses
	}
	if msg.Type == tea.KeySpace && !msg.Alt {
		return []macro.KeyPress{macro.Char(' ')}
	}
	return []macro.KeyPress{macro.Special(keyName(msg.String()))}
}

// keyName translates a Bubble Tea key string ("ctrl+c", "alt+x", "f5") into
// tmux key syntax ("C-c", "M-x", "F5").
func keyName(s string) string {
	parts := strings.Split(s, "+")
	base := parts[len(parts)-1]

	var prefix strings.Builder
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			prefix.WriteString("C-")
		case "alt":
			prefix.WriteString("M-")
		case "shift":
			prefix.WriteString("S-")
		}
	}

	if name, ok := specialKeyNames[base]; ok {
		base = name
	} else if len(base) >= 2 && base[0] == 'f' && base[1] >= '1' && base[1] <= '9' {
		base = strings.ToUpper(base) // f1..f12
	}
	return prefix.String() + base
}
