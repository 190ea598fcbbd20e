package macro

import "strings"

// Convert serializes a captured macro into one script step form, as a single
// YAML list entry.
//
// If every press is plain typed text (printable characters and Enter), the
// macro becomes an insert-text step whose literal reproduces the capture
// exactly once unescaped. Otherwise it becomes a literal key-sequence step
// using the human-readable key descriptions. An empty or unclassifiable
// capture also takes the key-sequence form.
func Convert(m []KeyPress) string {
	if len(m) > 0 && allPlainText(m) {
		var text strings.Builder
		for _, k := range m {
			text.WriteRune(k.TextRune())
		}
		return `- type: "` + EscapeText(text.String()) + `"`
	}
	descs := make([]string, len(m))
	for i, k := range m {
		descs[i] = k.Describe()
	}
	return "- keys: [" + strings.Join(descs, ", ") + "]"
}

func allPlainText(m []KeyPress) bool {
	for _, k := range m {
		if !k.IsPlainText() {
			return false
		}
	}
	return true
}

// EscapeText escapes backslash, double quote, and newline for embedding in a
// double-quoted step literal.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UnescapeText reverses EscapeText.
func UnescapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			switch r {
			case 'n':
				b.WriteRune('\n')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Yank renders every stored macro, oldest first, as one step-list block ready
// to paste into a script. The recorder's list is left untouched.
func Yank(r *Recorder) string {
	macros := r.Macros()
	if len(macros) == 0 {
		return ""
	}
	lines := make([]string, 0, len(macros))
	for i := len(macros) - 1; i >= 0; i-- {
		lines = append(lines, Convert(macros[i]))
	}
	return strings.Join(lines, "\n") + "\n"
}
