package tmux

import (
	"fmt"
	"os/exec"
	"strings"
)

// SessionOptions exposes the stage session's tmux options as the global
// settings surface the checkpoint store works against. Only options set at
// session scope count as bound; inherited global defaults read as unbound,
// so restoring them means unsetting the session-level override.
type SessionOptions struct {
	session string
}

// Options returns the settings surface for this stage.
func (s *Stage) Options() *SessionOptions {
	return &SessionOptions{session: s.Name}
}

// Lookup returns the session-scope value of an option, nil when the option
// is not set at session scope.
func (o *SessionOptions) Lookup(name string) (*string, error) {
	out, err := exec.Command("tmux", "show-options", "-t", o.session).Output()
	if err != nil {
		return nil, fmt.Errorf("tmux show-options: %w", err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, rest, _ := strings.Cut(line, " ")
		if key != name {
			continue
		}
		value := unquoteOption(rest)
		return &value, nil
	}
	return nil, nil
}

// Set sets an option at session scope.
func (o *SessionOptions) Set(name, value string) error {
	cmd := exec.Command("tmux", "set-option", "-t", o.session, name, value)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("tmux set-option %s: %w (output: %s)", name, err, string(output))
	}
	return nil
}

// Unset removes the session-scope override, falling back to the inherited
// default.
func (o *SessionOptions) Unset(name string) error {
	cmd := exec.Command("tmux", "set-option", "-t", o.session, "-u", name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("tmux set-option -u %s: %w (output: %s)", name, err, string(output))
	}
	return nil
}

// unquoteOption strips the double quotes tmux wraps around values containing
// spaces in show-options output.
func unquoteOption(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}
