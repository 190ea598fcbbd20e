// Package ui is the operator console: a Bubble Tea model that turns operator
// gestures into sequencer calls and renders the script's progress. The demo
// itself plays in the tmux stage; this screen is for the presenter's eyes.
package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alphapapa/demo-it/internal/config"
	"github.com/alphapapa/demo-it/internal/demo"
	"github.com/alphapapa/demo-it/internal/macro"
	"github.com/alphapapa/demo-it/internal/tmux"
)

const flashDuration = 3 * time.Second

type ackRequestMsg struct{ message string }

type engineDoneMsg struct{ err error }

type flashClearMsg struct{}

// Console is the operator-facing model.
type Console struct {
	width  int
	height int

	scriptPath string
	stage      *tmux.Stage
	seq        *demo.Sequencer
	list       *demo.StepList
	prefs      demo.Preferences
	cfg        *config.Config

	recorder *macro.Recorder
	prompter *AckPrompter
	jump     *JumpDialog

	// Engine calls run in a command goroutine; one at a time.
	busy bool
	// Non-empty while the sequencer waits for an acknowledgement key.
	ackMsg string
	// The next key selects an entry from the predefined text table.
	pendingInsert bool

	flash    string
	flashErr bool
	quitting bool
}

// NewConsole wires the console to a loaded script and a running stage. The
// sequencer is attached afterwards with SetSequencer, since it has to be
// built with this console's prompter.
func NewConsole(scriptPath string, stage *tmux.Stage, list *demo.StepList, prefs demo.Preferences, cfg *config.Config) *Console {
	return &Console{
		scriptPath: scriptPath,
		stage:      stage,
		list:       list,
		prefs:      prefs,
		cfg:        cfg,
		recorder:   macro.NewRecorder(),
		prompter:   NewAckPrompter(),
		jump:       NewJumpDialog(),
	}
}

// Prompter returns the prompter the sequencer must be built with.
func (c *Console) Prompter() *AckPrompter {
	return c.prompter
}

// SetSequencer attaches the engine. Must be called before the program runs.
func (c *Console) SetSequencer(seq *demo.Sequencer) {
	c.seq = seq
}

func (c *Console) Init() tea.Cmd {
	return c.listenForAck()
}

// listenForAck waits for the next engine acknowledgement request.
func (c *Console) listenForAck() tea.Cmd {
	return func() tea.Msg {
		return ackRequestMsg{message: c.prompter.Next()}
	}
}

// engineCmd runs one sequencer call off the event loop.
func (c *Console) engineCmd(fn func() error) tea.Cmd {
	c.busy = true
	return func() tea.Msg {
		return engineDoneMsg{err: fn()}
	}
}

func (c *Console) setFlash(msg string, isErr bool) tea.Cmd {
	c.flash = msg
	c.flashErr = isErr
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashClearMsg{} })
}

func (c *Console) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		return c, nil

	case ackRequestMsg:
		c.ackMsg = msg.message
		return c, c.listenForAck()

	case engineDoneMsg:
		c.busy = false
		if msg.err != nil {
			return c, c.setFlash(msg.err.Error(), true)
		}
		return c, nil

	case flashClearMsg:
		c.flash = ""
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	// Anything else (cursor blink ticks) belongs to the visible dialog.
	if c.jump.IsVisible() {
		return c, c.jump.Forward(msg)
	}
	return c, nil
}

func (c *Console) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		c.quitting = true
		return c, tea.Quit
	}

	// One acknowledgement input resolves a pending prompt, nothing else.
	if c.ackMsg != "" {
		c.ackMsg = ""
		c.prompter.Release()
		return c, nil
	}

	if c.busy {
		return c, nil
	}

	if c.jump.IsVisible() {
		n, ok, cmd := c.jump.Update(msg)
		if ok {
			return c, c.engineCmd(func() error { c.seq.JumpTo(n); return nil })
		}
		return c, cmd
	}

	if c.pendingInsert {
		c.pendingInsert = false
		if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
			return c, c.setFlash("text insert: not a character key", true)
		}
		key := msg.Runes[0]
		text, ok := c.cfg.TextFor(key)
		if !ok {
			return c, c.setFlash(fmt.Sprintf("no text bound to %q", string(key)), true)
		}
		return c, c.engineCmd(func() error { return c.seq.InsertText(text) })
	}

	if c.recorder.IsRecording() {
		return c.handleRecordingKey(msg)
	}

	switch c.seq.Mode() {
	case demo.Idle:
		return c.handleIdleKey(msg)
	case demo.RunningSimple:
		return c.handleSimpleKey(msg)
	default:
		return c.handleAdvancedKey(msg)
	}
}

func (c *Console) handleRecordingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "R":
		c.recorder.Finish(macro.Commit)
		return c, c.setFlash("recording committed", false)
	case "ctrl+g":
		c.recorder.Finish(macro.Cancel)
		return c, c.setFlash("recording discarded", false)
	}
	for _, k := range keyPressesFromTea(msg) {
		c.recorder.Record(k)
	}
	return c, nil
}

func (c *Console) handleIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		c.quitting = true
		return c, tea.Quit
	case "enter", " ":
		return c, c.engineCmd(func() error { return c.seq.Start(c.list, c.prefs) })
	case "R":
		return c, c.startRecording()
	case "y":
		return c, c.yank()
	case "C":
		c.recorder.Clear()
		return c, c.setFlash("recordings cleared", false)
	}
	return c, nil
}

// Simple mode: a plain key advances; only q ends the demonstration.
func (c *Console) handleSimpleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		return c, c.engineCmd(func() error { c.seq.End(); return nil })
	}
	return c, c.engineCmd(func() error { c.seq.Advance(); return nil })
}

func (c *Console) handleAdvancedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "enter", "n", "right":
		return c, c.engineCmd(func() error { c.seq.Advance(); return nil })
	case "r":
		return c, c.engineCmd(func() error { c.seq.ReAdvance(); return nil })
	case "j":
		return c, c.jump.Show()
	case "s":
		n, caption, ok := c.seq.CurrentStep()
		if !ok {
			return c, c.setFlash(fmt.Sprintf("at step %d of %d (no step here)", n, c.seq.StepCount()), false)
		}
		return c, c.setFlash(fmt.Sprintf("step %d of %d: %s", n, c.seq.StepCount(), caption), false)
	case "t":
		c.pendingInsert = true
		return c, nil
	case "D":
		return c, c.engineCmd(func() error { c.seq.Disable(); return nil })
	case "q", "esc":
		return c, c.engineCmd(func() error { c.seq.End(); return nil })
	case "R":
		return c, c.startRecording()
	case "y":
		return c, c.yank()
	case "C":
		c.recorder.Clear()
		return c, c.setFlash("recordings cleared", false)
	}
	return c, nil
}

func (c *Console) startRecording() tea.Cmd {
	if err := c.recorder.Start(); err != nil {
		return c.setFlash(err.Error(), true)
	}
	return c.setFlash("recording... R commits, ctrl+g cancels", false)
}

// yank renders every recording, oldest first, and appends the block to a
// side file next to the script. The recordings are kept.
func (c *Console) yank() tea.Cmd {
	block := macro.Yank(c.recorder)
	if block == "" {
		return c.setFlash("nothing recorded", true)
	}
	path := c.scriptPath + ".recorded.yaml"
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return c.setFlash(fmt.Sprintf("yank: %v", err), true)
	}
	defer f.Close()
	if _, err := f.WriteString(block); err != nil {
		return c.setFlash(fmt.Sprintf("yank: %v", err), true)
	}
	return c.setFlash("recorded steps appended to "+path, false)
}
