package demo

import (
	"fmt"
	"strconv"
)

// Mode selects the key-binding profile for a session.
type Mode int

const (
	// ModeSimple advances on any plain key press.
	ModeSimple Mode = iota
	// ModeAdvanced uses dedicated advance keys plus typed-text insertion and
	// early-termination bindings.
	ModeAdvanced
)

// Layout selects the startup pane arrangement.
type Layout int

const (
	SingleLayout Layout = iota
	MultiLayout
)

// Screen selects the startup screen mode.
type Screen int

const (
	Windowed Screen = iota
	FullScreen
)

// Preferences are the engine/view settings a script's configuration keywords
// control. Each recognized keyword sets exactly one field.
type Preferences struct {
	Mode        Mode
	Layout      Layout
	Screen      Screen
	Speed       string // speed-profile name
	Orientation Orientation
	TextScale   int
}

// DefaultPreferences returns the session defaults: simple mode, single pane,
// windowed, normal typing speed, vertical splits.
func DefaultPreferences() Preferences {
	return Preferences{Speed: "normal", Orientation: Vertical}
}

// applyOption validates one configuration keyword and sets the matching
// preference. Unrecognized keywords and malformed values are rejected.
func applyOption(p *Preferences, o optionForm) error {
	switch o.keyword {
	case "mode":
		switch o.value {
		case "simple":
			p.Mode = ModeSimple
		case "advanced":
			p.Mode = ModeAdvanced
		default:
			return fmt.Errorf("mode: want simple or advanced, got %q", o.value)
		}
	case "layout":
		switch o.value {
		case "single":
			p.Layout = SingleLayout
		case "multi":
			p.Layout = MultiLayout
		default:
			return fmt.Errorf("layout: want single or multi, got %q", o.value)
		}
	case "screen":
		switch o.value {
		case "full":
			p.Screen = FullScreen
		case "windowed":
			p.Screen = Windowed
		default:
			return fmt.Errorf("screen: want full or windowed, got %q", o.value)
		}
	case "speed":
		if o.value == "" {
			return fmt.Errorf("speed: profile name is empty")
		}
		p.Speed = o.value
	case "orientation":
		switch o.value {
		case "horizontal":
			p.Orientation = Horizontal
		case "vertical":
			p.Orientation = Vertical
		default:
			return fmt.Errorf("orientation: want horizontal or vertical, got %q", o.value)
		}
	case "text-scale":
		n, err := strconv.Atoi(o.value)
		if err != nil {
			return fmt.Errorf("text-scale: %q is not an integer", o.value)
		}
		p.TextScale = n
	default:
		return fmt.Errorf("unrecognized configuration keyword %q", o.keyword)
	}
	return nil
}
