package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alphapapa/demo-it/internal/demo"
)

func (c *Console) View() string {
	if c.quitting {
		return ""
	}
	if c.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(c.headerView())
	b.WriteString("\n")
	b.WriteString(c.stepsView())
	b.WriteString("\n")

	if c.ackMsg != "" {
		b.WriteString(AckStyle.Render(c.ackMsg+"  (press any key)") + "\n")
	} else if c.jump.IsVisible() {
		b.WriteString(c.jump.View() + "\n")
	} else if c.pendingInsert {
		b.WriteString(InfoStyle.Render("insert text: press a table key") + "\n")
	}

	if c.flash != "" {
		style := SuccessStyle
		if c.flashErr {
			style = ErrorStyle
		}
		b.WriteString(style.Render(c.flash) + "\n")
	}

	b.WriteString(c.menuView())
	return b.String()
}

func (c *Console) headerView() string {
	title := TitleStyle.Render("demo-it")
	script := DimStyle.Render(runewidth.Truncate(c.scriptPath, 40, "..."))

	mode := DimStyle.Render("idle")
	switch c.seq.Mode() {
	case demo.RunningSimple:
		mode = SuccessStyle.Render("simple")
	case demo.RunningAdvanced:
		mode = SuccessStyle.Render("advanced")
	}

	parts := []string{title, script, mode}
	if c.recorder.IsRecording() {
		parts = append(parts, RecordingStyle.Render(fmt.Sprintf("● REC %d", c.recorder.Pending())))
	}
	attach := DimStyle.Render(c.stage.AttachCommand())
	parts = append(parts, attach)
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

// stepsView lists the script with the cursor highlighted. Long scripts
// scroll to keep the current step visible.
func (c *Console) stepsView() string {
	captions := c.list.Captions()
	current, _, _ := c.seq.CurrentStep()

	visible := c.height - 7
	if visible < 3 {
		visible = 3
	}
	start := 0
	if current > visible {
		start = current - visible
	}
	end := start + visible
	if end > len(captions) {
		end = len(captions)
	}

	running := c.seq.Mode() != demo.Idle
	var rows []string
	for i := start; i < end; i++ {
		rows = append(rows, stepRow(i+1, current, running, captions[i], c.width-12))
	}
	if len(rows) == 0 {
		rows = append(rows, DimStyle.Render("  (empty script)"))
	}
	return PanelStyle.Width(c.width - 2).Render(strings.Join(rows, "\n"))
}

// stepRow renders one script line. The cursor marker is prepended so it
// never eats into the step number.
func stepRow(n, current int, running bool, caption string, width int) string {
	line := fmt.Sprintf("%3d  %s", n, runewidth.Truncate(caption, width, "..."))
	switch {
	case running && n == current:
		return CurrentStepStyle.Render("▶ " + line)
	case running && n < current:
		return DoneStepStyle.Render("  " + line)
	default:
		return PendingStepStyle.Render("  " + line)
	}
}

func (c *Console) menuView() string {
	type item struct{ key, desc string }
	var items []item
	switch c.seq.Mode() {
	case demo.Idle:
		items = []item{{"enter", "start"}, {"R", "record"}, {"y", "yank"}, {"q", "quit"}}
	case demo.RunningSimple:
		items = []item{{"any key", "advance"}, {"q", "end"}}
	default:
		items = []item{
			{"space", "advance"}, {"j", "jump"}, {"r", "retry"}, {"s", "step"},
			{"t", "text"}, {"R", "record"}, {"D", "disable"}, {"q", "end"},
		}
	}

	sep := MenuSeparatorStyle.Render(" │ ")
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = MenuKeyStyle.Render(it.key) + " " + MenuDescStyle.Render(it.desc)
	}
	return strings.Join(parts, sep)
}
