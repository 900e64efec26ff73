// cheese plays, inspects and replays chess games from the command line.
// It is a debugging front end for the rules engine: moves are typed as
// coordinates or SAN, boards are drawn as text and positions can be
// saved and loaded as snapshot JSON.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/output"
	"github.com/lgbarn/cheese-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("cheese version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	manager := session.NewManager()

	if *replayMode {
		failed := replayInputs(cfg, manager, flag.Args())
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	game, err := newSessionGame(cfg, manager)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	repl := NewREPL(cfg, manager, game)
	if err := repl.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *saveSnapshot != "" {
		if err := saveSnapshotFile(*saveSnapshot, repl.Game()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Logf(config.Commentary, "snapshot written to %s", *saveSnapshot)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// newSessionGame creates the interactive game from -load, -fen or the
// standard position.
func newSessionGame(cfg *config.Config, manager *session.Manager) (*session.Game, error) {
	switch {
	case cfg.SnapshotFile != "":
		data, err := os.ReadFile(cfg.SnapshotFile)
		if err != nil {
			return nil, err
		}
		cfg.Logf(config.Commentary, "loaded snapshot from %s", cfg.SnapshotFile)
		return manager.Create(session.WithSnapshot(data))
	case cfg.StartFEN != "":
		return manager.Create(session.WithFEN(cfg.StartFEN))
	}
	return manager.Create()
}

// saveSnapshotFile writes the game's current position as indented JSON.
func saveSnapshotFile(path string, game *session.Game) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteSnapshot(file, game.Position(), true); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: the write error wins
		return err
	}
	return file.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: cheese [options]\n")
	fmt.Fprintf(os.Stderr, "       cheese -replay [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Play, inspect and replay chess games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	for _, c := range commandHelp {
		fmt.Fprintf(os.Stderr, "  %-22s %s\n", c[0], c[1])
	}
}
