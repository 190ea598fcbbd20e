// Package tmux drives a tmux session as the demo's display surface. Every
// operation shells out to the tmux binary; nothing here keeps display state.
package tmux

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/alphapapa/demo-it/internal/demo"
)

// Debug flag - set via environment variable DEMOIT_DEBUG=1
var debugEnabled = os.Getenv("DEMOIT_DEBUG") == "1"

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[TMUX] "+format, args...)
	}
}

const SessionPrefix = "demoit_"

// Available checks that tmux is installed and accessible.
func Available() error {
	cmd := exec.Command("tmux", "-V")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("tmux not found or not working: %w (output: %s)", err, string(output))
	}
	return nil
}

// Stage is a dedicated tmux session the demonstration plays in. The operator
// console runs separately; the audience terminal attaches to this session.
type Stage struct {
	Name    string
	WorkDir string
}

// NewStage creates a stage with a unique session name.
func NewStage(name, workDir string) *Stage {
	return &Stage{
		Name:    SessionPrefix + sanitizeName(name) + "_" + generateShortID(),
		WorkDir: workDir,
	}
}

// sanitizeName converts a display name to a valid tmux session name.
func sanitizeName(name string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9-]+`)
	return re.ReplaceAllString(name, "-")
}

// generateShortID generates a short random ID for uniqueness.
func generateShortID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b)
}

func (s *Stage) run(args ...string) error {
	cmd := exec.Command("tmux", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("tmux %s: %w (output: %s)", args[0], err, string(output))
	}
	return nil
}

func (s *Stage) output(args ...string) (string, error) {
	out, err := exec.Command("tmux", args...).Output()
	if err != nil {
		return "", fmt.Errorf("tmux %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Start creates the detached session running an interactive shell in the
// stage's working directory.
func (s *Stage) Start() error {
	workDir := s.WorkDir
	if workDir == "" {
		workDir = os.Getenv("HOME")
	}
	if err := s.run("new-session", "-d", "-s", s.Name, "-c", workDir); err != nil {
		return fmt.Errorf("failed to create stage session: %w", err)
	}

	// Responsive keys during replay; generous scrollback for shell steps.
	_ = s.run("set-option", "-t", s.Name, "escape-time", "10")
	_ = s.run("set-option", "-t", s.Name, "history-limit", "50000")
	_ = s.run("set-option", "-t", s.Name, "window-style", "default")

	return nil
}

// Exists checks if the stage session exists.
func (s *Stage) Exists() bool {
	cmd := exec.Command("tmux", "has-session", "-t", s.Name)
	return cmd.Run() == nil
}

// Kill terminates the stage session.
func (s *Stage) Kill() error {
	return s.run("kill-session", "-t", s.Name)
}

// AttachCommand returns the shell command an audience terminal uses to show
// the stage.
func (s *Stage) AttachCommand() string {
	return "tmux attach -t " + s.Name
}

// SnapshotLayout captures the current pane arrangement.
func (s *Stage) SnapshotLayout() (string, error) {
	return s.output("display-message", "-p", "-t", s.Name, "#{window_layout}")
}

// RestoreLayout collapses the window back to the active pane and reapplies
// the snapshotted arrangement. The layout apply is best-effort: tmux rejects
// a layout string whose pane count no longer matches.
func (s *Stage) RestoreLayout(snapshot string) error {
	if err := s.run("kill-pane", "-a", "-t", s.Name); err != nil {
		debugLog("%s: kill extra panes: %v", s.Name, err)
	}
	if snapshot != "" {
		if err := s.run("select-layout", "-t", s.Name, snapshot); err != nil {
			debugLog("%s: reapply layout: %v", s.Name, err)
		}
	}
	return nil
}

// SplitPane splits the active pane in two.
func (s *Stage) SplitPane(o demo.Orientation) error {
	flag := "-h" // side by side
	if o == demo.Horizontal {
		flag = "-v" // stacked
	}
	return s.run("split-window", flag, "-t", s.Name, "-c", s.WorkDir)
}

// ShowFile opens a file in the active pane's pager, jumping to the first
// line of the range if one is given. The scale hint has no tmux rendering;
// it is logged and dropped.
func (s *Stage) ShowFile(v demo.FileView) error {
	if v.Scale != 0 {
		debugLog("%s: no text scaling for %s (scale %d ignored)", s.Name, v.Path, v.Scale)
	}
	pager := "less -N"
	if v.FirstLine > 0 {
		pager = fmt.Sprintf("less -N +%dg", v.FirstLine)
	}
	if err := s.SendText(fmt.Sprintf("%s -- %s", pager, shellQuote(v.Path))); err != nil {
		return err
	}
	return s.SendKey("Enter")
}

// RunShell optionally changes directory and runs a command in the active
// pane, which is assumed to hold an interactive shell.
func (s *Stage) RunShell(cmd demo.ShellCommand) error {
	if cmd.Dir != "" {
		if err := s.SendText("cd " + shellQuote(cmd.Dir)); err != nil {
			return err
		}
		if err := s.SendKey("Enter"); err != nil {
			return err
		}
	}
	if cmd.Command != "" {
		if err := s.SendText(cmd.Command); err != nil {
			return err
		}
		return s.SendKey("Enter")
	}
	return nil
}

// ShowTitle clears the active pane and prints a title file.
func (s *Stage) ShowTitle(path string) error {
	if err := s.SendText("clear && cat -- " + shellQuote(path)); err != nil {
		return err
	}
	return s.SendKey("Enter")
}

// SetFullScreen zooms or unzooms the active pane. resize-pane -Z is a
// toggle, so the current flag is checked first.
func (s *Stage) SetFullScreen(on bool) error {
	flag, err := s.output("display-message", "-p", "-t", s.Name, "#{window_zoomed_flag}")
	if err != nil {
		return err
	}
	zoomed := flag == "1"
	if zoomed == on {
		return nil
	}
	return s.run("resize-pane", "-Z", "-t", s.Name)
}

// SendText types literal text into the active pane. The -l flag keeps tmux
// from interpreting key names.
func (s *Stage) SendText(text string) error {
	return s.run("send-keys", "-l", "-t", s.Name, text)
}

// SendKey sends one named key to the active pane. Names follow tmux key
// syntax ("Enter", "C-c", "Up", "F5").
func (s *Stage) SendKey(name string) error {
	return s.run("send-keys", "-t", s.Name, name)
}

// shellQuote single-quotes an argument for the pane's shell.
func shellQuote(arg string) string {
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
