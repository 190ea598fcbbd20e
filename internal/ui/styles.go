package ui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night Color Palette
const (
	ColorBg      = lipgloss.Color("#1a1b26") // Dark background
	ColorSurface = lipgloss.Color("#24283b") // Surface background
	ColorBorder  = lipgloss.Color("#414868") // Border color
	ColorText    = lipgloss.Color("#c0caf5") // Primary text
	ColorAccent  = lipgloss.Color("#7aa2f7") // Accent blue
	ColorPurple  = lipgloss.Color("#bb9af7") // Purple
	ColorCyan    = lipgloss.Color("#7dcfff") // Cyan
	ColorGreen   = lipgloss.Color("#9ece6a") // Green
	ColorYellow  = lipgloss.Color("#e0af68") // Yellow
	ColorRed     = lipgloss.Color("#f7768e") // Red
	ColorComment = lipgloss.Color("#787fa0") // Comment gray
)

// Base Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorSurface).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorComment)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)
)

// Step list styles
var (
	CurrentStepStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorAccent).
				Bold(true)

	DoneStepStyle = lipgloss.NewStyle().
			Foreground(ColorComment)

	PendingStepStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Prompt and recording styles
var (
	AckStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorYellow).
			Foreground(ColorYellow).
			Padding(0, 1).
			Bold(true)

	RecordingStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)
)

// Menu Bar Styles
var (
	MenuKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	MenuDescStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MenuSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)
)

// Dialog styles
var (
	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)

	DialogPromptStyle = lipgloss.NewStyle().
				Foreground(ColorPurple).
				Bold(true)
)
