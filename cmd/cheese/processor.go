package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/eco"
	"github.com/lgbarn/cheese-go/internal/hashing"
	"github.com/lgbarn/cheese-go/internal/matching"
	"github.com/lgbarn/cheese-go/internal/output"
	"github.com/lgbarn/cheese-go/internal/parser"
	"github.com/lgbarn/cheese-go/internal/session"
	"github.com/lgbarn/cheese-go/internal/worker"
)

// replayInputs replays every script in the named files, or stdin when no
// files are given, and writes the games to cfg.OutputFile. It returns the
// number of scripts that could not be read or replayed in full.
func replayInputs(cfg *config.Config, manager *session.Manager, files []string) int {
	var items []worker.WorkItem
	failed := 0

	filter, err := setupFilter(cfg)
	if err != nil {
		cfg.Logf(config.Summary, "Error in game selection: %v", err)
		return 1
	}
	classifier, err := loadECOClassifier(cfg)
	if err != nil {
		cfg.Logf(config.Summary, "Error loading ECO file %s: %v", cfg.ECOFile, err)
		return 1
	}
	appendItems := func(items []worker.WorkItem, scripts []*parser.Script, file string) []worker.WorkItem {
		for _, s := range scripts {
			if filter != nil && !filter.Inverted() && !filter.MatchTags(s.Tags) {
				continue
			}
			items = append(items, worker.WorkItem{Script: s, File: file, StartFEN: cfg.StartFEN})
		}
		return items
	}

	if len(files) == 0 {
		scripts, err := readScripts(os.Stdin, "stdin")
		if err != nil {
			cfg.Logf(config.Summary, "%v", err)
			failed++
		}
		items = appendItems(items, scripts, "stdin")
	}
	for _, filename := range files {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			cfg.Logf(config.Summary, "Error opening file %s: %v", filename, err)
			failed++
			continue
		}
		scripts, err := readScripts(file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			cfg.Logf(config.Summary, "%v", err)
			failed++
		}
		items = appendItems(items, scripts, filename)
	}

	replayer := worker.NewReplayer(manager, cfg.Replay)
	if classifier != nil {
		replayer.SetClassifier(classifier)
	}
	failed += replayItems(cfg, replayer, items, filter)
	return failed
}

// readScripts parses all scripts in r. Scripts before a parse error are
// returned with the error.
func readScripts(r io.Reader, name string) ([]*parser.Script, error) {
	return parser.NewParser(r, name).ParseAllScripts()
}

// loadECOClassifier returns nil when no ECO file is configured.
func loadECOClassifier(cfg *config.Config) (*eco.ECOClassifier, error) {
	if cfg.ECOFile == "" {
		return nil, nil
	}
	classifier := eco.NewECOClassifier()
	if err := classifier.LoadFromFile(cfg.ECOFile); err != nil {
		return nil, err
	}
	cfg.Logf(config.Commentary, "ECO file loaded: %d entries", classifier.EntriesLoaded())
	return classifier, nil
}

// setupFilter returns nil when no selection is configured.
func setupFilter(cfg *config.Config) (*matching.GameFilter, error) {
	if !cfg.Filter.Active() {
		return nil, nil
	}
	return matching.NewGameFilterFromConfig(cfg.Filter)
}

// replayItems runs the items on the worker pool and writes the selected
// results in input order. Results are consumed on this goroutine only, so
// the game writer and duplicate detector need no locking.
func replayItems(cfg *config.Config, replayer *worker.Replayer, items []worker.WorkItem, filter *matching.GameFilter) int {
	results := worker.Run(items, replayer.Process, cfg.Replay)

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	detector := setupDuplicateDetector(cfg)
	failed, selected := 0, 0
	for _, res := range results {
		if res.Error != nil {
			cfg.Logf(config.Summary, "%v", res.Error)
			failed++
		}
		if res.Skipped > 0 {
			cfg.Logf(config.Summary, "%s: %d move(s) skipped", res.File, res.Skipped)
		}
		if res.Game == nil {
			continue
		}
		if filter != nil && !filter.Match(res.Game.Tags, res.Game.Final, len(res.Game.Moves)) {
			continue
		}
		if detector != nil && detector.CheckAndAdd(hashing.Sign(res.Game.Final, len(res.Game.Moves))) {
			cfg.Logf(config.Commentary, "%s: duplicate of an earlier game", res.File)
			continue
		}

		selected++
		if err := writer.WriteGame(res.Game); err != nil {
			cfg.Logf(config.Summary, "Error writing game: %v", err)
		}
		if cfg.Replay.EmitSnapshots && !cfg.Output.JSONFormat {
			if err := output.WriteSnapshot(cfg.OutputFile, res.Game.Final, false); err != nil {
				cfg.Logf(config.Summary, "Error writing snapshot: %v", err)
			}
		}
		cfg.Logf(config.Commentary, "%s: %d ply, %s", res.File, len(res.Game.Moves), res.Game.Final.State())
	}
	if err := writer.Close(); err != nil {
		cfg.Logf(config.Summary, "Error writing games: %v", err)
	}

	cfg.Logf(config.Summary, "%s replayed, %d with errors.", plural(len(results), "game"), failed)
	if filter != nil {
		cfg.Logf(config.Summary, "%s selected.", plural(selected, "game"))
	}
	if detector != nil {
		cfg.Logf(config.Summary, "%s suppressed.", plural(detector.DuplicateCount(), "duplicate"))
	}
	return failed
}

// setupDuplicateDetector returns nil unless duplicates are suppressed.
// Results arrive in input order, so the first of a set of duplicates is
// the one kept.
func setupDuplicateDetector(cfg *config.Config) *hashing.DuplicateDetector {
	if !cfg.Replay.SuppressDuplicates {
		return nil
	}
	return hashing.NewDuplicateDetector(false, cfg.Replay.DuplicateCapacity)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
