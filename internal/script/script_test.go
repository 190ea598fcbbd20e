package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphapapa/demo-it/internal/checkpoint"
	"github.com/alphapapa/demo-it/internal/demo"
)

// recordingStage captures which display calls the built steps make.
type recordingStage struct {
	calls []string
	files []demo.FileView
}

func (r *recordingStage) SnapshotLayout() (string, error) { return "", nil }
func (r *recordingStage) RestoreLayout(string) error      { return nil }

func (r *recordingStage) SplitPane(o demo.Orientation) error {
	r.calls = append(r.calls, "split:"+o.String())
	return nil
}

func (r *recordingStage) ShowFile(v demo.FileView) error {
	r.calls = append(r.calls, "file:"+v.Path)
	r.files = append(r.files, v)
	return nil
}

func (r *recordingStage) RunShell(cmd demo.ShellCommand) error {
	r.calls = append(r.calls, "shell:"+cmd.Dir+":"+cmd.Command)
	return nil
}

func (r *recordingStage) ShowTitle(path string) error {
	r.calls = append(r.calls, "title:"+path)
	return nil
}

func (r *recordingStage) SetFullScreen(on bool) error {
	if on {
		r.calls = append(r.calls, "fullscreen:on")
	} else {
		r.calls = append(r.calls, "fullscreen:off")
	}
	return nil
}

func (r *recordingStage) SendText(string) error { return nil }
func (r *recordingStage) SendKey(string) error  { return nil }

// scriptSettings is a throwaway checkpoint surface for running parsed steps.
type scriptSettings struct{ values map[string]string }

func newScriptSettings() *scriptSettings {
	return &scriptSettings{values: make(map[string]string)}
}

func (s *scriptSettings) Lookup(name string) (*string, error) {
	v, ok := s.values[name]
	if !ok {
		return nil, nil
	}
	return &v, nil
}
func (s *scriptSettings) Set(name, value string) error { s.values[name] = value; return nil }
func (s *scriptSettings) Unset(name string) error      { delete(s.values, name); return nil }

type silentPrompter struct{}

func (silentPrompter) Acknowledge(string) {}

func runAll(t *testing.T, forms []demo.Step) (*demo.StepList, demo.Preferences) {
	t.Helper()
	list, prefs, err := demo.NewStepList(forms...)
	require.NoError(t, err)
	return list, prefs
}

// executeAll drives every parsed step against its bound stage through a
// sequencer, so the step closures actually run.
func executeAll(t *testing.T, stage demo.Stage, list *demo.StepList, prefs demo.Preferences) {
	t.Helper()
	seq := demo.NewSequencer(stage, checkpoint.New(newScriptSettings()), silentPrompter{}, nil, nil)
	require.NoError(t, seq.Start(list, prefs))
	for seq.Mode() != demo.Idle {
		seq.Advance()
	}
}

func TestParseFullScript(t *testing.T) {
	stage := &recordingStage{}
	forms, err := Parse([]byte(`
- mode: advanced
- speed: fast
- title: intro.txt
- file: main.go
  lines: 10-40
  scale: 2
- shell: make test
  dir: ./sub
- type: "echo hi\n"
- keys: [C-c, Enter]
- split: horizontal
- fullscreen: true
`), stage)
	require.NoError(t, err)

	list, prefs := runAll(t, forms)
	assert.Equal(t, demo.ModeAdvanced, prefs.Mode)
	assert.Equal(t, "fast", prefs.Speed)
	assert.Equal(t, 7, list.Len())

	captions := list.Captions()
	assert.Equal(t, "title intro.txt", captions[0])
	assert.Equal(t, "show main.go", captions[1])
	assert.Equal(t, "run make test", captions[2])
	assert.Equal(t, `type "echo hi"`, captions[3])
	assert.Equal(t, "keys C-c Enter", captions[4])
	assert.Equal(t, "split horizontal", captions[5])
	assert.Equal(t, "fullscreen on", captions[6])
}

func TestFileStepFields(t *testing.T) {
	stage := &recordingStage{}
	forms, err := Parse([]byte(`
- file: main.go
  lines: 10-40
  scale: 2
- file: notes.md
  lines: "15"
- file: whole.go
`), stage)
	require.NoError(t, err)
	list, prefs := runAll(t, forms)
	executeAll(t, stage, list, prefs)

	require.Len(t, stage.files, 3)
	assert.Equal(t, demo.FileView{Path: "main.go", FirstLine: 10, LastLine: 40, Scale: 2}, stage.files[0])
	assert.Equal(t, demo.FileView{Path: "notes.md", FirstLine: 15, LastLine: 15}, stage.files[1])
	assert.Equal(t, demo.FileView{Path: "whole.go"}, stage.files[2])
}

func TestBadLineRange(t *testing.T) {
	tests := []string{
		"- file: a.go\n  lines: ten\n",
		"- file: a.go\n  lines: 40-10\n",
		"- file: a.go\n  lines: 10-x\n",
	}
	for _, src := range tests {
		_, err := Parse([]byte(src), &recordingStage{})
		if err == nil {
			t.Errorf("Parse(%q) should fail", src)
		}
	}
}

func TestUnrecognizedKeywordPassesThroughToConstructor(t *testing.T) {
	forms, err := Parse([]byte("- volume: 11\n"), &recordingStage{})
	require.NoError(t, err, "the loader does not validate keywords")

	_, _, err = demo.NewStepList(forms...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume")
}

func TestUnrecognizedMultiKeyFormRejected(t *testing.T) {
	_, err := Parse([]byte("- foo: 1\n  bar: 2\n"), &recordingStage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestMixedStepShapesRejected(t *testing.T) {
	_, err := Parse([]byte("- file: a.go\n  shell: ls\n"), &recordingStage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
	assert.Contains(t, err.Error(), "shell")
}

func TestBadSplitDirection(t *testing.T) {
	_, err := Parse([]byte("- split: diagonal\n"), &recordingStage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diagonal")
}

func TestBadKeyDescription(t *testing.T) {
	_, err := Parse([]byte(`- keys: ["", Enter]`), &recordingStage{})
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &recordingStage{})
	require.Error(t, err)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- type: \"ls\\n\"\n"), 0644))

	forms, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, `type "ls"`, forms[0].Caption())
}

func TestParseLineRange(t *testing.T) {
	tests := []struct {
		in          string
		first, last int
	}{
		{"15", 15, 15},
		{"10-40", 10, 40},
		{" 10 - 40 ", 10, 40},
	}
	for _, tt := range tests {
		first, last, err := parseLineRange(tt.in)
		if err != nil {
			t.Errorf("parseLineRange(%q) error: %v", tt.in, err)
			continue
		}
		if first != tt.first || last != tt.last {
			t.Errorf("parseLineRange(%q) = %d,%d, want %d,%d", tt.in, first, last, tt.first, tt.last)
		}
	}
}
