package macro

import "testing"

func TestDescribe(t *testing.T) {
	tests := []struct {
		in   KeyPress
		want string
	}{
		{Char('a'), "a"},
		{Char(' '), "Space"},
		{Char('\t'), "Tab"},
		{Char('\n'), "Enter"},
		{Special("C-x"), "C-x"},
		{Special("F5"), "F5"},
	}
	for _, tt := range tests {
		if got := tt.in.Describe(); got != tt.want {
			t.Errorf("Describe(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		in   KeyPress
		want bool
	}{
		{Char('a'), true},
		{Char(' '), true},
		{Char('é'), true},
		{Special("Enter"), true},
		{Special("C-c"), false},
		{Special("Up"), false},
		{Special("BSpace"), false},
	}
	for _, tt := range tests {
		if got := tt.in.IsPlainText(); got != tt.want {
			t.Errorf("IsPlainText(%+v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTextRune(t *testing.T) {
	if r := (Special("Enter")).TextRune(); r != '\n' {
		t.Errorf("TextRune(Enter) = %q, want newline", r)
	}
	if r := Char('x').TextRune(); r != 'x' {
		t.Errorf("TextRune(x) = %q, want x", r)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		desc string
		want KeyPress
	}{
		{"a", Char('a')},
		{"space", Char(' ')},
		{"Space", Char(' ')},
		{"tab", Char('\t')},
		{"enter", Special("Enter")},
		{"return", Special("Enter")},
		{"C-x", Special("C-x")},
		{"PageUp", Special("PageUp")},
		{"é", Char('é')},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.desc)
		if err != nil {
			t.Errorf("ParseKey(%q) error: %v", tt.desc, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %+v, want %+v", tt.desc, got, tt.want)
		}
	}
}

func TestParseKeyEmpty(t *testing.T) {
	if _, err := ParseKey(""); err == nil {
		t.Error("ParseKey(\"\") should fail")
	}
}
