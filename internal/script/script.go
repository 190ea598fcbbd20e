// Package script loads a demo script file: a YAML list of forms, each either
// a recognized configuration keyword or a step. Classification and keyword
// validation belong to the step-list constructor; the loader only maps YAML
// shapes onto step forms.
package script

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alphapapa/demo-it/internal/demo"
	"github.com/alphapapa/demo-it/internal/macro"
)

// step-shape keys; any other single-key scalar entry is treated as a
// configuration keyword and left for the constructor to validate.
var stepKeys = map[string]bool{
	"file":       true,
	"shell":      true,
	"type":       true,
	"keys":       true,
	"title":      true,
	"split":      true,
	"fullscreen": true,
}

// Load parses a script file into an ordered list of forms bound to the given
// stage. A nil stage is allowed for validation-only loading; dispatching such
// steps is the caller's mistake.
func Load(path string, stage demo.Stage) ([]demo.Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data, stage)
}

// Parse is Load for in-memory script text.
func Parse(data []byte, stage demo.Stage) ([]demo.Step, error) {
	var entries []map[string]yaml.Node
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	forms := make([]demo.Step, 0, len(entries))
	for i, entry := range entries {
		form, err := buildForm(entry, stage)
		if err != nil {
			return nil, fmt.Errorf("script entry %d: %w", i+1, err)
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func buildForm(entry map[string]yaml.Node, stage demo.Stage) (demo.Step, error) {
	var found []string
	for key := range entry {
		if stepKeys[key] {
			found = append(found, key)
		}
	}
	if len(found) > 1 {
		sort.Strings(found)
		return demo.Step{}, fmt.Errorf("entry mixes %s; one step shape per entry", strings.Join(found, " and "))
	}
	if len(found) == 1 {
		return buildStep(found[0], entry, stage)
	}

	// Not a step shape: a single scalar entry is a configuration keyword.
	if len(entry) != 1 {
		return demo.Step{}, fmt.Errorf("unrecognized step form with keys %v", keysOf(entry))
	}
	for key, node := range entry {
		var value string
		if err := node.Decode(&value); err != nil {
			return demo.Step{}, fmt.Errorf("keyword %q: %w", key, err)
		}
		return demo.Option(key, value), nil
	}
	return demo.Step{}, fmt.Errorf("empty step form")
}

func buildStep(key string, entry map[string]yaml.Node, stage demo.Stage) (demo.Step, error) {
	switch key {
	case "file":
		var path string
		if err := decodeField(entry, "file", &path); err != nil {
			return demo.Step{}, err
		}
		view := demo.FileView{Path: path}
		var lines string
		if err := decodeField(entry, "lines", &lines); err != nil {
			return demo.Step{}, err
		}
		if lines != "" {
			first, last, err := parseLineRange(lines)
			if err != nil {
				return demo.Step{}, err
			}
			view.FirstLine, view.LastLine = first, last
		}
		if err := decodeField(entry, "scale", &view.Scale); err != nil {
			return demo.Step{}, err
		}
		return demo.Do("show "+path, func() error { return stage.ShowFile(view) }), nil

	case "shell":
		var cmd demo.ShellCommand
		if err := decodeField(entry, "shell", &cmd.Command); err != nil {
			return demo.Step{}, err
		}
		if err := decodeField(entry, "dir", &cmd.Dir); err != nil {
			return demo.Step{}, err
		}
		caption := "shell"
		if cmd.Command != "" {
			caption = "run " + cmd.Command
		}
		return demo.Do(caption, func() error { return stage.RunShell(cmd) }), nil

	case "type":
		var text string
		if err := decodeField(entry, "type", &text); err != nil {
			return demo.Step{}, err
		}
		return demo.Text(text), nil

	case "keys":
		var descs []string
		if err := decodeField(entry, "keys", &descs); err != nil {
			return demo.Step{}, err
		}
		presses := make([]macro.KeyPress, 0, len(descs))
		for _, d := range descs {
			k, err := macro.ParseKey(d)
			if err != nil {
				return demo.Step{}, err
			}
			presses = append(presses, k)
		}
		return demo.Keys(presses...), nil

	case "title":
		var path string
		if err := decodeField(entry, "title", &path); err != nil {
			return demo.Step{}, err
		}
		return demo.Do("title "+path, func() error { return stage.ShowTitle(path) }), nil

	case "split":
		var dir string
		if err := decodeField(entry, "split", &dir); err != nil {
			return demo.Step{}, err
		}
		var o demo.Orientation
		switch dir {
		case "horizontal":
			o = demo.Horizontal
		case "vertical", "":
			o = demo.Vertical
		default:
			return demo.Step{}, fmt.Errorf("split: want horizontal or vertical, got %q", dir)
		}
		return demo.Do("split "+o.String(), func() error { return stage.SplitPane(o) }), nil

	default: // fullscreen
		var on bool
		if err := decodeField(entry, "fullscreen", &on); err != nil {
			return demo.Step{}, err
		}
		caption := "fullscreen off"
		if on {
			caption = "fullscreen on"
		}
		return demo.Do(caption, func() error { return stage.SetFullScreen(on) }), nil
	}
}

func decodeField(entry map[string]yaml.Node, key string, out interface{}) error {
	node, ok := entry[key]
	if !ok {
		return nil
	}
	if err := node.Decode(out); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// parseLineRange accepts "15" or "10-40".
func parseLineRange(s string) (first, last int, err error) {
	lo, hi, found := strings.Cut(s, "-")
	first, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("lines: %q is not a line range", s)
	}
	if !found {
		return first, first, nil
	}
	last, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("lines: %q is not a line range", s)
	}
	if last < first {
		return 0, 0, fmt.Errorf("lines: range %q is backwards", s)
	}
	return first, last, nil
}

func keysOf(entry map[string]yaml.Node) []string {
	out := make([]string, 0, len(entry))
	for k := range entry {
		out = append(out, k)
	}
	return out
}
