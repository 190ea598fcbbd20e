package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// JumpDialog asks for a step number to jump to. There is no bounds check:
// jumping past the end of the script is how an operator fast-forwards a demo
// to its close.
type JumpDialog struct {
	input   textinput.Model
	visible bool
}

func NewJumpDialog() *JumpDialog {
	input := textinput.New()
	input.Placeholder = "step number"
	input.CharLimit = 5
	input.Width = 12
	return &JumpDialog{input: input}
}

// Show opens the dialog and returns the input's cursor blink command.
func (d *JumpDialog) Show() tea.Cmd {
	d.visible = true
	d.input.SetValue("")
	return d.input.Focus()
}

func (d *JumpDialog) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *JumpDialog) IsVisible() bool {
	return d.visible
}

// Update routes a key to the dialog. It returns the requested step number
// when the operator submits, ok=false otherwise; cmd carries the input's
// follow-up work (cursor blink) and must be returned to the program.
func (d *JumpDialog) Update(msg tea.KeyMsg) (step int, ok bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		d.Hide()
		return 0, false, nil
	case "enter":
		value := strings.TrimSpace(d.input.Value())
		d.Hide()
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return 0, false, nil
		}
		return n, true, nil
	}
	d.input, cmd = d.input.Update(msg)
	return 0, false, cmd
}

// Forward routes a non-key message (cursor blink ticks) to the input field.
func (d *JumpDialog) Forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd
}

func (d *JumpDialog) View() string {
	if !d.visible {
		return ""
	}
	prompt := DialogPromptStyle.Render("Jump to step")
	return DialogBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, prompt, d.input.View()))
}
