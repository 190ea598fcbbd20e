package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alphapapa/demo-it/internal/checkpoint"
	"github.com/alphapapa/demo-it/internal/config"
	"github.com/alphapapa/demo-it/internal/demo"
	"github.com/alphapapa/demo-it/internal/script"
	"github.com/alphapapa/demo-it/internal/tmux"
	"github.com/alphapapa/demo-it/internal/ui"
)

const Version = "0.1.0"

// init sets up color profile for consistent terminal colors across environments
func init() {
	initColorProfile()
}

// initColorProfile configures lipgloss color profile based on terminal
// capabilities, with a DEMOIT_COLOR override.
func initColorProfile() {
	switch strings.ToLower(os.Getenv("DEMOIT_COLOR")) {
	case "truecolor", "true", "24bit":
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	case "256", "ansi256":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return
	case "16", "ansi", "basic":
		lipgloss.SetColorProfile(termenv.ANSI)
		return
	case "none", "off", "ascii":
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	colorTerm := os.Getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	// ANSI256 works in SSH, basic terminals, and older emulators.
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printHelp()
		return
	}

	switch args[0] {
	case "version", "--version", "-v":
		fmt.Printf("demo-it v%s\n", Version)
		return
	case "help", "--help", "-h":
		printHelp()
		return
	case "check":
		handleCheck(args[1:])
		return
	case "play":
		args = args[1:]
	}

	if len(args) == 0 {
		fmt.Println("Error: script file is required")
		printHelp()
		os.Exit(1)
	}
	runPlay(args[0])
}

// handleCheck loads and classifies a script without running it.
func handleCheck(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: demo-it check <script.yaml>")
		os.Exit(1)
	}
	forms, err := script.Load(args[0], nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	list, prefs, err := demo.NewStepList(forms...)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ %s: %d steps\n", args[0], list.Len())
	fmt.Printf("  mode: %s  speed: %s\n", modeName(prefs.Mode), prefs.Speed)
	for i, caption := range list.Captions() {
		fmt.Printf("  %3d  %s\n", i+1, caption)
	}
}

func modeName(m demo.Mode) string {
	if m == demo.ModeAdvanced {
		return "advanced"
	}
	return "simple"
}

func runPlay(scriptPath string) {
	if err := tmux.Available(); err != nil {
		fmt.Println("Error: demo-it requires tmux")
		fmt.Printf("  %v\n", err)
		os.Exit(1)
	}

	setupDebugLog()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateText(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = os.Getenv("HOME")
	}

	name := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
	stage := tmux.NewStage(name, workDir)
	if err := stage.Start(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = stage.Kill() }()

	// Kill the stage on signals so a dead console doesn't strand a session.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		_ = stage.Kill()
		os.Exit(0)
	}()

	forms, err := script.Load(scriptPath, stage)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	list, prefs, err := demo.NewStepList(forms...)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	console := ui.NewConsole(scriptPath, stage, list, prefs, cfg)
	store := checkpoint.New(stage.Options())
	seq := demo.NewSequencer(stage, store, console.Prompter(), demo.NewTypist(), cfg.Profiles())
	console.SetSequencer(seq)

	fmt.Printf("Stage ready. Attach the audience terminal with:\n  %s\n", stage.AttachCommand())

	p := tea.NewProgram(console, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	// If the console was quit mid-session an engine goroutine may still be
	// running; the deferred Kill destroys the whole session, checkpointed
	// options included, so no restore pass is needed here.
}

// setupDebugLog sends debug logging to a file when DEMOIT_DEBUG is set,
// nowhere otherwise, so logging never interferes with the TUI.
func setupDebugLog() {
	if os.Getenv("DEMOIT_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return
	}
	dir, err := config.Dir()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(logFile)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.Printf("=== demo-it Debug Log Started ===")
}

func printHelp() {
	fmt.Printf("demo-it v%s\n", Version)
	fmt.Println("Scripted terminal demonstrations, one step per key press")
	fmt.Println()
	fmt.Println("Usage: demo-it [command] <script.yaml>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play <script>    Run a demo script (default command)")
	fmt.Println("  check <script>   Load and classify a script without running it")
	fmt.Println("  version          Show version")
	fmt.Println("  help             Show this help")
	fmt.Println()
	fmt.Println("The demo plays in a dedicated tmux session; attach a second")
	fmt.Println("terminal to it for the audience. The demo-it window is the")
	fmt.Println("operator console.")
	fmt.Println()
	fmt.Println("Script forms:")
	fmt.Println("  - mode: advanced         key-binding mode (simple|advanced)")
	fmt.Println("  - layout: multi          startup panes (single|multi)")
	fmt.Println("  - screen: full           startup screen (full|windowed)")
	fmt.Println("  - speed: fast            typing-speed profile")
	fmt.Println("  - orientation: vertical  pane-split orientation")
	fmt.Println("  - text-scale: 2          text-scale increment")
	fmt.Println("  - file: main.go          show a file (lines: 10-40, scale: 2)")
	fmt.Println("  - shell: make test       run a shell command (dir: ./sub)")
	fmt.Println("  - type: \"echo hi\\n\"      simulate live typing")
	fmt.Println("  - keys: [C-c, Enter]     replay literal keystrokes")
	fmt.Println("  - title: intro.txt       full-pane title display")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DEMOIT_DEBUG     Write debug log to ~/.demo-it/debug.log")
	fmt.Println("  DEMOIT_COLOR     Color mode: truecolor, 256, 16, none")
	fmt.Println()
	fmt.Println("Operator keys (advanced mode):")
	fmt.Println("  space/enter   Advance to the next step")
	fmt.Println("  j             Jump to step N")
	fmt.Println("  r             Re-run the current step")
	fmt.Println("  s             Show the current step without executing")
	fmt.Println("  t             Insert predefined text by key")
	fmt.Println("  R             Start/commit a keystroke recording")
	fmt.Println("  ctrl+g        Cancel a keystroke recording")
	fmt.Println("  y             Append recorded steps to <script>.recorded.yaml")
	fmt.Println("  D             Disable demonstration mode (leave panes)")
	fmt.Println("  q             End the demonstration")
}
