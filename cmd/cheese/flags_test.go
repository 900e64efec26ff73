package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/errors"
)

// saveRestoreBool sets a bool flag pointer and returns the restore func.
// Usage: defer saveRestoreBool(asciiBoard, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Output.Glyphs != config.Unicode {
		t.Errorf("Glyphs = %d; want Unicode", cfg.Output.Glyphs)
	}
	if cfg.Output.Notation != config.SAN {
		t.Errorf("Notation = %d; want SAN", cfg.Output.Notation)
	}
	if !cfg.Output.ShowLabels || !cfg.Output.ShowBoard || !cfg.Output.KeepResults {
		t.Errorf("labels/board/results = %v/%v/%v; want all true",
			cfg.Output.ShowLabels, cfg.Output.ShowBoard, cfg.Output.KeepResults)
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d; want 80", cfg.Output.MaxLineLength)
	}
	if !cfg.Replay.StopOnError {
		t.Error("StopOnError = false; want true")
	}
	if cfg.Verbosity != config.Summary {
		t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, config.Summary)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(asciiBoard, true)()
	defer saveRestoreBool(showAttacked, true)()
	defer saveRestoreBool(noLabels, true)()
	defer saveRestoreBool(noBoard, true)()
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreInt(lineLength, 0)()
	defer saveRestoreString(notationName, "figurine")()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)

	if cfg.Output.Glyphs != config.ASCII {
		t.Errorf("Glyphs = %d; want ASCII", cfg.Output.Glyphs)
	}
	if cfg.Output.Notation != config.Figurine {
		t.Errorf("Notation = %d; want Figurine", cfg.Output.Notation)
	}
	if !cfg.Output.ShowAttacked || cfg.Output.ShowLabels || cfg.Output.ShowBoard || !cfg.Output.JSONFormat {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
	if cfg.Output.MaxLineLength != 0 {
		t.Errorf("MaxLineLength = %d; want 0", cfg.Output.MaxLineLength)
	}
}

func TestApplyOutputFlags_UnknownNotation(t *testing.T) {
	defer saveRestoreString(notationName, "descriptive")()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)

	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v; want ErrInvalidConfig", err)
	}
}

func TestApplyReplayFlags(t *testing.T) {
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreInt(plyLimit, 40)()
	defer saveRestoreBool(keepGoing, true)()
	defer saveRestoreBool(failFast, true)()
	defer saveRestoreBool(emitSnapshot, true)()
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreInt(duplicateCapacity, 500)()

	cfg := config.NewConfig()
	applyReplayFlags(cfg)

	want := config.ReplayConfig{
		Workers:            3,
		MaxPlies:           40,
		StopOnError:        false,
		FailFast:           true,
		EmitSnapshots:      true,
		SuppressDuplicates: true,
		DuplicateCapacity:  500,
	}
	if *cfg.Replay != want {
		t.Errorf("Replay = %+v; want %+v", *cfg.Replay, want)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, config.Summary},
		{"quiet", true, false, config.Silent},
		{"verbose", false, true, config.Commentary},
		{"quiet wins", true, true, config.Silent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()

			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_StartPosition(t *testing.T) {
	defer saveRestoreString(startFEN, "8/8/8/8/8/8/8/K6k w - - 0 1")()
	defer saveRestoreString(loadSnapshot, "game.json")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.StartFEN != "8/8/8/8/8/8/8/K6k w - - 0 1" || cfg.SnapshotFile != "game.json" {
		t.Errorf("StartFEN/SnapshotFile = %q/%q", cfg.StartFEN, cfg.SnapshotFile)
	}
}

func TestApplyFilterFlags(t *testing.T) {
	defer saveRestoreString(tagFile, "criteria.txt")()
	defer saveRestoreString(tagCriterion, `Result = "1-0"`)()
	defer saveRestoreString(playerFilter, "Morphy")()
	defer saveRestoreBool(negateMatch, true)()
	defer saveRestoreInt(minPly, 10)()
	defer saveRestoreInt(maxPly, 80)()
	defer saveRestoreBool(checkmateFilter, true)()
	defer saveRestoreString(materialMatch, "Q:")()

	cfg := config.NewConfig()
	applyFilterFlags(cfg)

	want := config.FilterConfig{
		TagCriteria:    []string{`Result = "1-0"`},
		TagFile:        "criteria.txt",
		Players:        []string{"Morphy"},
		MatchCheckmate: true,
		Material:       "Q:",
		MinPlies:       10,
		MaxPlies:       80,
		Invert:         true,
	}
	if diff := cmp.Diff(want, *cfg.Filter); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
