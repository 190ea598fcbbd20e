package demo

import (
	"math/rand"
	"time"
)

// SpeedProfile paces the typing simulation. Per character the pause is
// Floor plus a uniform random draw from [0, Ceiling), both in milliseconds.
// An Instant profile sends the whole text in one call with no pacing.
type SpeedProfile struct {
	Floor   int
	Ceiling int
	Instant bool
}

// DefaultProfiles returns the built-in speed profiles. A presenter config
// may add or override entries, but "instant" is always defined.
func DefaultProfiles() map[string]SpeedProfile {
	return map[string]SpeedProfile{
		"slow":    {Floor: 40, Ceiling: 160},
		"normal":  {Floor: 15, Ceiling: 90},
		"fast":    {Floor: 3, Ceiling: 25},
		"instant": {Instant: true},
	}
}

// Typist performs character-by-character typing simulation. Delay and Rand
// are injectable so tests can run with zero wall-clock cost.
type Typist struct {
	Delay func(time.Duration)
	Rand  func(n int) int
}

// NewTypist returns a typist with real sleeping and math/rand pacing.
func NewTypist() *Typist {
	return &Typist{Delay: time.Sleep, Rand: rand.Intn}
}

// Type sends text through send, one character at a time under the given
// profile. The pause happens after each character; there is no cancellation
// beyond whatever interrupt the host provides.
func (t *Typist) Type(send func(string) error, text string, p SpeedProfile) error {
	if p.Instant {
		return send(text)
	}
	for _, r := range text {
		if err := send(string(r)); err != nil {
			return err
		}
		pause := time.Duration(p.Floor) * time.Millisecond
		if p.Ceiling > 0 {
			pause += time.Duration(t.Rand(p.Ceiling)) * time.Millisecond
		}
		if pause > 0 {
			t.Delay(pause)
		}
	}
	return nil
}
