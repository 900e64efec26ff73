// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/cheese-go/internal/config"
)

var (
	// Start position
	startFEN     = flag.String("fen", "", "Start from this FEN position")
	loadSnapshot = flag.String("load", "", "Start from a snapshot JSON file")
	saveSnapshot = flag.String("save", "", "Write the final snapshot to this file on exit")

	// Batch replay
	replayMode   = flag.Bool("replay", false, "Replay move script files (or stdin) instead of playing interactively")
	workers      = flag.Int("workers", 0, "Concurrent replays (0 = one per CPU)")
	plyLimit     = flag.Int("plylimit", 0, "Stop each replay after N plies (0 = no limit)")
	keepGoing    = flag.Bool("keepgoing", false, "Skip rejected moves instead of abandoning the script")
	failFast     = flag.Bool("failfast", false, "Stop the batch at the first script that fails")
	emitSnapshot = flag.Bool("snapshots", false, "Write the final snapshot of every replay")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress replays ending in an already seen position")
	duplicateCapacity  = flag.Int("dupcapacity", 0, "Maximum games remembered for -D (0 = unlimited)")

	// ECO classification
	ecoFile = flag.String("e", "", "ECO classification file (move scripts with ECO tags)")

	// Game selection
	tagFile         = flag.String("t", "", "Tag criteria file for selecting replays")
	tagCriterion    = flag.String("tag", "", "Single tag criterion, e.g. 'White = \"Morphy\"'")
	playerFilter    = flag.String("p", "", "Select by player name (either colour)")
	matchAny        = flag.Bool("any", false, "Select when any tag criterion matches")
	negateMatch     = flag.Bool("n", false, "Output replays that DON'T match the selection")
	minPly          = flag.Int("minply", 0, "Minimum ply count")
	maxPly          = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")
	checkmateFilter = flag.Bool("checkmate", false, "Only output replays ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output replays ending in stalemate")
	drawFilter      = flag.Bool("draw", false, "Only output replays ending in a material draw")
	materialMatch   = flag.String("z", "", "Material left at the end (e.g., 'QR:qrr')")
	exactMaterial   = flag.Bool("exactmaterial", false, "Material must match -z exactly")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	logFile      = flag.String("l", "", "Log file (default: stderr)")
	jsonOutput   = flag.Bool("J", false, "Output games and positions as JSON")
	lineLength   = flag.Int("w", 80, "Maximum line length of move lists (0 = no wrapping)")
	notationName = flag.String("notation", "san", "Move notation: san, figurine, coord")
	asciiBoard   = flag.Bool("ascii", false, "Draw the board with ASCII letters")
	showAttacked = flag.Bool("attacked", false, "Mark squares the side not on move attacks")
	noLabels     = flag.Bool("nolabels", false, "Omit file and rank labels around the board")
	noBoard      = flag.Bool("noboard", false, "Don't print the board after every move")
	noResults    = flag.Bool("noresults", false, "Don't output results")

	// Verbosity
	quiet   = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose = flag.Bool("v", false, "Running commentary on the log")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// notationStyles maps -notation values to styles.
var notationStyles = map[string]config.NotationStyle{
	"san":      config.SAN,
	"figurine": config.Figurine,
	"coord":    config.Coordinate,
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyReplayFlags(cfg)
	applyFilterFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.SnapshotFile = *loadSnapshot
	cfg.ECOFile = *ecoFile

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
}

// applyOutputFlags configures board and move list output.
func applyOutputFlags(cfg *config.Config) {
	if *asciiBoard {
		cfg.Output.Glyphs = config.ASCII
	}
	if style, ok := notationStyles[*notationName]; ok {
		cfg.Output.Notation = style
	} else {
		cfg.Output.Notation = config.NotationStyle(-1) // rejected by Validate
	}
	cfg.Output.ShowAttacked = *showAttacked
	cfg.Output.ShowLabels = !*noLabels
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.KeepResults = !*noResults
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyReplayFlags configures batch replay.
func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.Workers = *workers
	cfg.Replay.MaxPlies = *plyLimit
	cfg.Replay.StopOnError = !*keepGoing
	cfg.Replay.FailFast = *failFast
	cfg.Replay.EmitSnapshots = *emitSnapshot
	cfg.Replay.SuppressDuplicates = *suppressDuplicates
	cfg.Replay.DuplicateCapacity = *duplicateCapacity
}

// applyFilterFlags configures game selection.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.TagFile = *tagFile
	if *tagCriterion != "" {
		cfg.Filter.TagCriteria = []string{*tagCriterion}
	}
	if *playerFilter != "" {
		cfg.Filter.Players = []string{*playerFilter}
	}
	cfg.Filter.MatchAny = *matchAny
	cfg.Filter.Invert = *negateMatch
	cfg.Filter.MinPlies = *minPly
	cfg.Filter.MaxPlies = *maxPly
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.MatchDraw = *drawFilter
	cfg.Filter.Material = *materialMatch
	cfg.Filter.ExactMaterial = *exactMaterial
}
