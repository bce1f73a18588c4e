// cmd/walkthrough/main.go
//
// This is the entry point for the Cadence walkthrough demo.
//
// Flow:
// 1. Load configuration (flags > environment > cadence.yaml > defaults)
// 2. Open the session logbook and pick the walkthrough script
// 3. Launch the TUI

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/cadencehq/walkthrough/internal/config"
	"github.com/cadencehq/walkthrough/internal/logbook"
	"github.com/cadencehq/walkthrough/internal/script"
	"github.com/cadencehq/walkthrough/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a cadence.yaml (defaults to ./cadence.yaml)")
	scriptPath := flag.String("script", "", "walkthrough script to play instead of the builtin tour")
	logPath := flag.String("log", "", "where to write the session log")
	autostart := flag.Bool("autostart", false, "skip the menu and start the tour immediately")
	flag.Parse()

	// .env is optional; it feeds the CADENCE_* variables config.Load reads.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags beat both the file and the environment, but only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "script":
			cfg.ScriptPath = *scriptPath
		case "log":
			cfg.LogPath = *logPath
		case "autostart":
			cfg.Autostart = *autostart
		}
	})

	book, err := logbook.New(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: session log unavailable: %v\n", err)
		book = nil
	}

	tour := script.Builtin()
	if cfg.ScriptPath != "" {
		loaded, warnings, err := script.LoadFile(cfg.ScriptPath)
		if err != nil {
			book.Warn("Falling back to the builtin tour: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: %v · using the builtin tour\n", err)
		} else {
			for _, w := range warnings {
				book.Warn("Script %s: %s", cfg.ScriptPath, w)
				fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
			}
			tour = loaded
		}
	}

	app, err := tui.NewApp(cfg, tour, book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building the dashboard: %v\n", err)
		os.Exit(1)
	}

	// Run blocks until the user quits
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
