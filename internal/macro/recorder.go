package macro

import "errors"

// ErrRecordingActive is returned by Start while a capture is in progress.
// A live capture is never discarded implicitly; the operator has to commit
// or cancel it first.
var ErrRecordingActive = errors.New("a recording is already active")

// FinishEvent ends a capture. Commit keeps it, Cancel discards it.
type FinishEvent int

const (
	Commit FinishEvent = iota
	Cancel
)

// Recorder captures keystroke sequences and keeps finished captures on a
// most-recent-first list. It is a two-state machine: Idle until Start,
// Recording until Finish, which handles both the commit and cancel gestures.
type Recorder struct {
	recording bool
	current   []KeyPress
	macros    [][]KeyPress // most recent first
}

// NewRecorder returns an idle recorder with no stored macros.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins a new capture. Fails with ErrRecordingActive if one is
// already in progress.
func (r *Recorder) Start() error {
	if r.recording {
		return ErrRecordingActive
	}
	r.recording = true
	r.current = nil
	return nil
}

// IsRecording reports whether a capture is in progress.
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// Record appends a press to the live capture. Ignored while idle.
func (r *Recorder) Record(k KeyPress) {
	if r.recording {
		r.current = append(r.current, k)
	}
}

// Pending returns the number of presses captured so far, 0 while idle.
func (r *Recorder) Pending() int {
	return len(r.current)
}

// Finish ends the live capture. On Commit a non-empty capture is pushed onto
// the front of the macro list; on Cancel it is discarded. Ignored while idle,
// so a stray end-gesture after cancel is harmless.
func (r *Recorder) Finish(ev FinishEvent) {
	if !r.recording {
		return
	}
	r.recording = false
	if ev == Commit && len(r.current) > 0 {
		saved := make([]KeyPress, len(r.current))
		copy(saved, r.current)
		r.macros = append([][]KeyPress{saved}, r.macros...)
	}
	r.current = nil
}

// Macros returns the stored captures, most recent first.
func (r *Recorder) Macros() [][]KeyPress {
	out := make([][]KeyPress, len(r.macros))
	for i, m := range r.macros {
		c := make([]KeyPress, len(m))
		copy(c, m)
		out[i] = c
	}
	return out
}

// Clear empties the stored macro list. A live capture is unaffected.
func (r *Recorder) Clear() {
	r.macros = nil
}
