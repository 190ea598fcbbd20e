package macro

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeyPress is one captured input event. Character keys carry the typed rune;
// special keys and modifier chords carry a human-readable name instead
// ("Enter", "C-c", "Up", "F5"). Exactly one of Rune/Name is set.
type KeyPress struct {
	Rune rune
	Name string
}

// Char returns a press for a plain typed character.
func Char(r rune) KeyPress {
	return KeyPress{Rune: r}
}

// Special returns a press for a named key or chord.
func Special(name string) KeyPress {
	return KeyPress{Name: name}
}

// Describe returns the human-readable form of the press, suitable for a
// literal key-sequence step ("a", "Space", "C-x").
func (k KeyPress) Describe() string {
	if k.Name != "" {
		return k.Name
	}
	switch k.Rune {
	case ' ':
		return "Space"
	case '\t':
		return "Tab"
	case '\n':
		return "Enter"
	}
	return string(k.Rune)
}

// IsPlainText reports whether the press is plain typed text: an unmodified
// printable rune, or Enter (which types a newline). Everything else forces
// the literal key-sequence form.
func (k KeyPress) IsPlainText() bool {
	if k.Name == "Enter" {
		return true
	}
	if k.Name != "" {
		return false
	}
	return k.Rune == '\n' || (unicode.IsPrint(k.Rune) && k.Rune != utf8.RuneError)
}

// TextRune returns the rune a plain-text press types. Only meaningful when
// IsPlainText reports true.
func (k KeyPress) TextRune() rune {
	if k.Name == "Enter" || k.Rune == '\n' {
		return '\n'
	}
	return k.Rune
}

// ParseKey converts a key description back into a press. Single runes become
// character presses, anything longer is treated as a named key. An empty
// description is an error.
func ParseKey(desc string) (KeyPress, error) {
	if desc == "" {
		return KeyPress{}, fmt.Errorf("empty key description")
	}
	switch strings.ToLower(desc) {
	case "space":
		return Char(' '), nil
	case "tab":
		return Char('\t'), nil
	case "enter", "return":
		return Special("Enter"), nil
	}
	if utf8.RuneCountInString(desc) == 1 {
		r, _ := utf8.DecodeRuneInString(desc)
		return Char(r), nil
	}
	return Special(desc), nil
}
