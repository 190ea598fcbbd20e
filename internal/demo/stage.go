package demo

// Orientation selects the direction of a pane split.
type Orientation int

const (
	Vertical   Orientation = iota // panes side by side
	Horizontal                    // panes stacked
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// FileView describes a source file to show in a pane. A zero FirstLine means
// the whole file; Scale is a text-scale hint the backend may ignore.
type FileView struct {
	Path      string
	FirstLine int
	LastLine  int
	Scale     int
}

// ShellCommand describes an interactive shell action: optionally change
// directory, optionally run a command.
type ShellCommand struct {
	Dir     string
	Command string
}

// Stage is the display surface a demo plays on. All calls are synchronous
// and side-effecting; the sequencer owns no display state beyond the layout
// snapshot it takes at start.
type Stage interface {
	// SnapshotLayout captures the current pane arrangement as an opaque
	// token that RestoreLayout accepts.
	SnapshotLayout() (string, error)
	RestoreLayout(snapshot string) error

	SplitPane(o Orientation) error
	ShowFile(v FileView) error
	RunShell(cmd ShellCommand) error
	ShowTitle(path string) error
	SetFullScreen(on bool) error

	// SendText types literal text into the active pane.
	SendText(text string) error
	// SendKey sends one named key ("Enter", "C-c", "Up").
	SendKey(name string) error
}
