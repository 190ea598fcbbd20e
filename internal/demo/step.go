package demo

import (
	"fmt"
	"strings"

	"github.com/alphapapa/demo-it/internal/macro"
)

type stepKind int

const (
	kindCallable stepKind = iota
	kindExpression
	kindKeySequence
	kindConfigOption
)

// Step is one unit of scripted demonstration action. It is a closed sum with
// four shapes: a zero-argument callable, a deferred expression evaluated when
// reached, a literal key sequence, and a configuration keyword. Steps are
// immutable once stored in a StepList.
type Step struct {
	kind    stepKind
	caption string
	call    func() error
	text    string // insert-text callable (typed through the typist)
	expr    func() (Step, error)
	keys    []macro.KeyPress
	opt     optionForm
}

type optionForm struct {
	keyword string
	value   string
}

// Do returns a callable step.
func Do(caption string, fn func() error) Step {
	return Step{kind: kindCallable, caption: caption, call: fn}
}

// Text returns a callable step that types the given text character by
// character, paced by the active speed profile.
func Text(text string) Step {
	caption := text
	if i := strings.IndexByte(caption, '\n'); i >= 0 {
		caption = caption[:i]
	}
	if len(caption) > 32 {
		caption = caption[:32] + "..."
	}
	return Step{kind: kindCallable, caption: fmt.Sprintf("type %q", caption), text: text}
}

// Defer returns an expression step: fn runs when the step is reached and
// yields the step that is actually dispatched.
func Defer(caption string, fn func() (Step, error)) Step {
	return Step{kind: kindExpression, caption: caption, expr: fn}
}

// Keys returns a literal key-sequence step.
func Keys(presses ...macro.KeyPress) Step {
	descs := make([]string, len(presses))
	for i, k := range presses {
		descs[i] = k.Describe()
	}
	return Step{kind: kindKeySequence, caption: "keys " + strings.Join(descs, " "), keys: presses}
}

// Option returns a configuration-keyword form. NewStepList validates the
// keyword; unrecognized keywords are rejected there, not here.
func Option(keyword, value string) Step {
	return Step{kind: kindConfigOption, caption: keyword + ": " + value, opt: optionForm{keyword, value}}
}

// Caption returns a short description of the step for diagnostics.
func (s Step) Caption() string {
	return s.caption
}

// StepList is the ordered script for one demonstration session, fixed at
// creation. Step numbering is 1-based at the API surface.
type StepList struct {
	steps []Step
}

// NewStepList classifies an ordered list of forms: recognized configuration
// keywords are consumed into the returned Preferences, everything else is
// appended as a step in order. An unrecognized keyword fails the whole
// construction.
func NewStepList(forms ...Step) (*StepList, Preferences, error) {
	prefs := DefaultPreferences()
	steps := make([]Step, 0, len(forms))
	for _, f := range forms {
		if f.kind == kindConfigOption {
			if err := applyOption(&prefs, f.opt); err != nil {
				return nil, prefs, err
			}
			continue
		}
		steps = append(steps, f)
	}
	return &StepList{steps: steps}, prefs, nil
}

// Len returns the number of steps.
func (l *StepList) Len() int {
	return len(l.steps)
}

// At returns the step at 1-based position n.
func (l *StepList) At(n int) (Step, bool) {
	if n < 1 || n > len(l.steps) {
		return Step{}, false
	}
	return l.steps[n-1], true
}

// Captions returns every step caption in order, for script checking.
func (l *StepList) Captions() []string {
	out := make([]string, len(l.steps))
	for i, s := range l.steps {
		out[i] = s.caption
	}
	return out
}
