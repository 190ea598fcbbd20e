// Package demo is the step sequencer for scripted demonstrations: it owns
// the ordered step list and cursor, executes steps on operator-triggered
// advances, and aborts-and-restores when a step fails.
package demo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alphapapa/demo-it/internal/checkpoint"
	"github.com/alphapapa/demo-it/internal/macro"
)

// ErrAlreadyRunning is returned by Start while a session is in progress.
// The running session is left untouched.
var ErrAlreadyRunning = errors.New("a demo is already running")

// ErrNoSteps is returned by Start when no step list has ever been given.
var ErrNoSteps = errors.New("no step list")

// StepError reports a failure while dispatching a step.
type StepError struct {
	Step    int
	Caption string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s) failed: %v", e.Step, e.Caption, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// RunMode is the sequencer's state: idle, or running under one of the two
// key-binding profiles.
type RunMode int

const (
	Idle RunMode = iota
	RunningSimple
	RunningAdvanced
)

func (m RunMode) String() string {
	switch m {
	case RunningSimple:
		return "simple"
	case RunningAdvanced:
		return "advanced"
	default:
		return "idle"
	}
}

// Prompter shows a message to the operator and returns once it has been
// acknowledged. The sequencer calls it before ending a session, both at the
// natural end of the script and after a dispatch failure.
type Prompter interface {
	Acknowledge(message string)
}

// Sequencer drives one demonstration session at a time. Mutating operations
// (Start, Advance, JumpTo, ReAdvance, InsertText, End, Disable) must be
// serialized by the host, one at a time; the read accessors are safe to call
// concurrently with a running operation, which the console does on every
// render while an operation runs in a command goroutine.
type Sequencer struct {
	stage    Stage
	store    *checkpoint.Store
	prompt   Prompter
	typist   *Typist
	profiles map[string]SpeedProfile

	mu      sync.Mutex // guards the session state below
	mode    RunMode
	current int // 1-based; 0 = before the first step
	steps   *StepList
	prefs   Preferences
	layout  string
	zoomed  bool // we turned full screen on and owe a toggle back
}

// NewSequencer wires a sequencer to its collaborators. A nil profiles map
// gets the built-in profiles.
func NewSequencer(stage Stage, store *checkpoint.Store, prompt Prompter, typist *Typist, profiles map[string]SpeedProfile) *Sequencer {
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	if typist == nil {
		typist = NewTypist()
	}
	return &Sequencer{
		stage:    stage,
		store:    store,
		prompt:   prompt,
		typist:   typist,
		profiles: profiles,
		prefs:    DefaultPreferences(),
	}
}

// Mode returns the current run mode.
func (s *Sequencer) Mode() RunMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Preferences returns the live session preferences.
func (s *Sequencer) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// StepCount returns the length of the current step list, 0 if none.
func (s *Sequencer) StepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.steps == nil {
		return 0
	}
	return s.steps.Len()
}

// CurrentStep reports the cursor position and the caption of the step there.
// ok is false when the cursor is before the first step or past the end.
func (s *Sequencer) CurrentStep() (n int, caption string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.steps == nil {
		return s.current, "", false
	}
	st, ok := s.steps.At(s.current)
	return s.current, st.Caption(), ok
}

// Start begins a session: snapshots the pane arrangement, resets the cursor,
// replaces the step list and preferences if a list is given, activates the
// key-binding mode, applies the startup display changes, then executes step
// one. Fails with ErrAlreadyRunning if a session is in progress, leaving it
// untouched.
func (s *Sequencer) Start(list *StepList, prefs Preferences) error {
	s.mu.Lock()
	if s.mode != Idle {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	if list == nil && s.steps == nil {
		s.mu.Unlock()
		return ErrNoSteps
	}
	s.mu.Unlock()

	layout, err := s.stage.SnapshotLayout()
	if err != nil {
		return fmt.Errorf("snapshot layout: %w", err)
	}

	s.mu.Lock()
	s.layout = layout
	s.current = 0
	if list != nil {
		s.steps = list
		s.prefs = prefs
	}
	s.activateLocked(s.prefs.Mode)
	s.mu.Unlock()

	if err := s.applyStartupDisplay(); err != nil {
		s.End()
		return err
	}

	s.Advance()
	return nil
}

func (s *Sequencer) activateLocked(m Mode) {
	if m == ModeAdvanced {
		s.mode = RunningAdvanced
	} else {
		s.mode = RunningSimple
	}
}

// applyStartupDisplay makes the presentation-mode display changes, recording
// overridden globals through the checkpoint store so End can put them back.
func (s *Sequencer) applyStartupDisplay() error {
	if err := s.store.CheckpointAndSet(checkpoint.Pair{Name: "status", Value: "off"}); err != nil {
		return fmt.Errorf("hide status line: %w", err)
	}
	prefs := s.Preferences()
	if prefs.Screen == FullScreen {
		if err := s.stage.SetFullScreen(true); err != nil {
			return fmt.Errorf("enter full screen: %w", err)
		}
		s.mu.Lock()
		s.zoomed = true
		s.mu.Unlock()
	}
	if prefs.Layout == MultiLayout {
		if err := s.stage.SplitPane(prefs.Orientation); err != nil {
			return fmt.Errorf("split pane: %w", err)
		}
	}
	return nil
}

// Advance moves the cursor forward by one and executes the step there.
// Past the last step it waits for one acknowledgement and ends the session.
// No-op while idle.
func (s *Sequencer) Advance() {
	s.mu.Lock()
	if s.mode == Idle {
		s.mu.Unlock()
		return
	}
	n := s.current + 1
	s.mu.Unlock()
	s.goTo(n)
}

// JumpTo sets the cursor to an explicit step number and executes the step
// there. Forward and backward jumps and re-runs are all allowed; a target
// past the end behaves like running off the end. No-op while idle.
func (s *Sequencer) JumpTo(n int) {
	s.mu.Lock()
	if s.mode == Idle {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.goTo(n)
}

func (s *Sequencer) goTo(n int) {
	s.mu.Lock()
	s.current = n
	st, ok := s.steps.At(n)
	s.mu.Unlock()
	if !ok {
		s.prompt.Acknowledge("demo complete")
		s.End()
		return
	}
	s.runStep(n, st)
}

// ReAdvance re-dispatches the step at the unchanged cursor position, the
// retry path after a manual fix. If there is no step there it reports
// completion and does nothing else.
func (s *Sequencer) ReAdvance() {
	s.mu.Lock()
	if s.mode == Idle {
		s.mu.Unlock()
		return
	}
	n := s.current
	st, ok := s.steps.At(n)
	s.mu.Unlock()
	if !ok {
		s.prompt.Acknowledge("no step to repeat")
		return
	}
	s.runStep(n, st)
}

// runStep dispatches one step. Any failure is shown to the operator with an
// acknowledgement prompt and then the session unconditionally ends; there is
// no partial continuation.
func (s *Sequencer) runStep(n int, st Step) {
	if err := s.dispatch(st); err != nil {
		serr := &StepError{Step: n, Caption: st.Caption(), Err: err}
		s.prompt.Acknowledge(serr.Error())
		s.End()
	}
}

func (s *Sequencer) dispatch(st Step) error {
	switch st.kind {
	case kindCallable:
		if st.call != nil {
			return st.call()
		}
		return s.typeText(st.text)
	case kindExpression:
		next, err := st.expr()
		if err != nil {
			return err
		}
		return s.dispatch(next)
	case kindKeySequence:
		return s.replay(st.keys)
	default: // kindConfigOption
		return s.applyLiveOption(st.opt)
	}
}

func (s *Sequencer) typeText(text string) error {
	speed := s.Preferences().Speed
	profile, ok := s.profiles[speed]
	if !ok {
		return fmt.Errorf("unknown speed profile %q", speed)
	}
	return s.typist.Type(s.stage.SendText, text, profile)
}

// InsertText types text into the stage under the active speed profile. This
// backs the insert-predefined-text operator command; it is not a step and
// does not move the cursor.
func (s *Sequencer) InsertText(text string) error {
	if s.Mode() == Idle {
		return errors.New("no demo running")
	}
	return s.typeText(text)
}

func (s *Sequencer) replay(keys []macro.KeyPress) error {
	for _, k := range keys {
		var err error
		if k.Name != "" {
			err = s.stage.SendKey(k.Name)
		} else {
			err = s.stage.SendText(string(k.Rune))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// applyLiveOption handles a ConfigOption step reached mid-run (for example
// produced by an expression step): the preference mutates immediately, and
// mode/screen changes take effect on the live session.
func (s *Sequencer) applyLiveOption(o optionForm) error {
	s.mu.Lock()
	if err := applyOption(&s.prefs, o); err != nil {
		s.mu.Unlock()
		return err
	}
	if o.keyword == "mode" {
		s.activateLocked(s.prefs.Mode)
	}
	fullScreen := s.prefs.Screen == FullScreen
	s.mu.Unlock()

	if o.keyword == "screen" {
		if err := s.stage.SetFullScreen(fullScreen); err != nil {
			return err
		}
		s.mu.Lock()
		s.zoomed = fullScreen
		s.mu.Unlock()
	}
	return nil
}

// End deactivates the key-binding mode, reverses the presentation-mode
// display changes, restores the snapshotted pane arrangement, and drains the
// checkpoint store. Safe to call when idle.
func (s *Sequencer) End() {
	s.mu.Lock()
	if s.mode == Idle {
		s.mu.Unlock()
		return
	}
	s.mode = Idle
	zoomed := s.zoomed
	s.zoomed = false
	layout := s.layout
	s.mu.Unlock()

	if zoomed {
		_ = s.stage.SetFullScreen(false)
	}
	_ = s.stage.RestoreLayout(layout)
	_ = s.store.RestoreAll()
}

// Disable deactivates the key-binding mode and drains the checkpoint store
// but leaves the pane arrangement as it stands, for stepping out of a demo
// without tearing the stage down. Safe to call when idle.
func (s *Sequencer) Disable() {
	s.mu.Lock()
	if s.mode == Idle {
		s.mu.Unlock()
		return
	}
	s.mode = Idle
	s.zoomed = false
	s.mu.Unlock()
	_ = s.store.RestoreAll()
}
