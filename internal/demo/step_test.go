package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphapapa/demo-it/internal/macro"
)

func TestNewStepListConsumesOptions(t *testing.T) {
	list, prefs, err := NewStepList(
		Option("mode", "advanced"),
		Do("first", func() error { return nil }),
		Option("speed", "fast"),
		Do("second", func() error { return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, ModeAdvanced, prefs.Mode)
	assert.Equal(t, "fast", prefs.Speed)
	assert.Equal(t, []string{"first", "second"}, list.Captions())
}

func TestNewStepListRejectsUnknownKeyword(t *testing.T) {
	_, _, err := NewStepList(Option("volume", "11"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume")
}

func TestNewStepListRejectsBadValue(t *testing.T) {
	tests := []struct {
		keyword string
		value   string
	}{
		{"mode", "expert"},
		{"layout", "triple"},
		{"screen", "huge"},
		{"speed", ""},
		{"orientation", "diagonal"},
		{"text-scale", "big"},
	}
	for _, tt := range tests {
		_, _, err := NewStepList(Option(tt.keyword, tt.value))
		if err == nil {
			t.Errorf("Option(%s, %q) should be rejected", tt.keyword, tt.value)
			continue
		}
		assert.Contains(t, err.Error(), tt.keyword)
	}
}

func TestOptionKeywords(t *testing.T) {
	_, prefs, err := NewStepList(
		Option("mode", "advanced"),
		Option("layout", "multi"),
		Option("screen", "full"),
		Option("speed", "slow"),
		Option("orientation", "horizontal"),
		Option("text-scale", "2"),
	)
	require.NoError(t, err)
	assert.Equal(t, ModeAdvanced, prefs.Mode)
	assert.Equal(t, MultiLayout, prefs.Layout)
	assert.Equal(t, FullScreen, prefs.Screen)
	assert.Equal(t, "slow", prefs.Speed)
	assert.Equal(t, Horizontal, prefs.Orientation)
	assert.Equal(t, 2, prefs.TextScale)
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	assert.Equal(t, ModeSimple, prefs.Mode)
	assert.Equal(t, SingleLayout, prefs.Layout)
	assert.Equal(t, Windowed, prefs.Screen)
	assert.Equal(t, "normal", prefs.Speed)
	assert.Equal(t, Vertical, prefs.Orientation)
}

func TestStepListAt(t *testing.T) {
	list, _, err := NewStepList(
		Do("one", func() error { return nil }),
		Do("two", func() error { return nil }),
	)
	require.NoError(t, err)

	st, ok := list.At(1)
	require.True(t, ok)
	assert.Equal(t, "one", st.Caption())

	_, ok = list.At(0)
	assert.False(t, ok)
	_, ok = list.At(3)
	assert.False(t, ok)
}

func TestTextCaptionTruncation(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"ls -la", `type "ls -la"`},
		{"echo hi\nmore", `type "echo hi"`},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", `type "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa..."`},
	}
	for _, tt := range tests {
		if got := Text(tt.text).Caption(); got != tt.want {
			t.Errorf("Text(%q).Caption() = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestKeysCaption(t *testing.T) {
	st := Keys(macro.Char('a'), macro.Special("C-c"))
	assert.Equal(t, "keys a C-c", st.Caption())
}
