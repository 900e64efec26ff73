package matching

import (
	"bufio"
	"io"
	"os"

	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/engine"
)

// GameFilter combines tag, ply count and final position conditions. Tags
// can be tested before a script is replayed; the rest need the replay.
type GameFilter struct {
	Tags     *TagMatcher
	Material *MaterialMatcher
	States   []engine.State
	MinPlies int
	MaxPlies int
	invert   bool
}

// NewGameFilter creates a filter that accepts every game.
func NewGameFilter() *GameFilter {
	return &GameFilter{Tags: NewTagMatcher()}
}

// NewGameFilterFromConfig builds a filter from the configuration, reading
// the tag file if one is named.
func NewGameFilterFromConfig(cfg *config.FilterConfig) (*GameFilter, error) {
	f := NewGameFilter()
	f.Tags.SetMatchAll(!cfg.MatchAny)
	f.invert = cfg.Invert
	f.MinPlies, f.MaxPlies = cfg.MinPlies, cfg.MaxPlies

	for _, c := range cfg.TagCriteria {
		if err := f.Tags.ParseCriterion(c); err != nil {
			return nil, err
		}
	}
	if cfg.TagFile != "" {
		file, err := os.Open(cfg.TagFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, err
		}
		defer file.Close() //nolint:errcheck // read-only file
		if err := f.LoadTagCriteria(file); err != nil {
			return nil, err
		}
	}
	for _, name := range cfg.Players {
		f.Tags.AddPlayerCriterion(name)
	}

	if cfg.Material != "" {
		if err := f.SetMaterial(cfg.Material, cfg.ExactMaterial); err != nil {
			return nil, err
		}
	}
	if cfg.MatchCheckmate {
		f.States = append(f.States, engine.Checkmate)
	}
	if cfg.MatchStalemate {
		f.States = append(f.States, engine.Stalemate)
	}
	if cfg.MatchDraw {
		f.States = append(f.States, engine.Draw)
	}
	return f, nil
}

// SetInvert makes the filter select the games it would otherwise reject.
func (f *GameFilter) SetInvert(invert bool) {
	f.invert = invert
}

// LoadTagCriteria adds one criterion per line of r.
func (f *GameFilter) LoadTagCriteria(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := f.Tags.ParseCriterion(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// SetMaterial sets the material pattern.
func (f *GameFilter) SetMaterial(pattern string, exact bool) error {
	mm, err := NewMaterialMatcher(pattern, exact)
	if err != nil {
		return err
	}
	f.Material = mm
	return nil
}

// MatchTags applies only the tag criteria, ignoring inversion. A script
// failing it can be skipped without replaying, unless the filter is
// inverted.
func (f *GameFilter) MatchTags(tags map[string]string) bool {
	return f.Tags.Match(tags)
}

// Match reports whether a game with these tags, ending in final after
// plies moves, is selected.
func (f *GameFilter) Match(tags map[string]string, final *engine.Position, plies int) bool {
	return f.match(tags, final, plies) != f.invert
}

func (f *GameFilter) match(tags map[string]string, final *engine.Position, plies int) bool {
	if !f.Tags.Match(tags) {
		return false
	}
	if plies < f.MinPlies || (f.MaxPlies > 0 && plies > f.MaxPlies) {
		return false
	}
	if f.Material != nil && !f.Material.Match(final) {
		return false
	}
	if len(f.States) == 0 {
		return true
	}
	if final == nil {
		return false
	}
	for _, s := range f.States {
		if final.State() == s {
			return true
		}
	}
	return false
}

// Inverted reports whether the filter is inverted.
func (f *GameFilter) Inverted() bool {
	return f.invert
}
