package config

import (
	"fmt"

	"github.com/lgbarn/cheese-go/internal/errors"
)

// GlyphSet selects how pieces are drawn on the board.
type GlyphSet int

const (
	Unicode GlyphSet = iota // ♔ ♕ ... and ⊡ for empty squares
	ASCII                   // KQRBNP / kqrbnp and '.'
)

// NotationStyle selects how moves are written.
type NotationStyle int

const (
	SAN        NotationStyle = iota // Standard Algebraic Notation
	Figurine                        // SAN with piece glyphs instead of letters
	Coordinate                      // Long coordinate form (e2e4, a7a8q)
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	Glyphs   GlyphSet
	Notation NotationStyle

	// ShowAttacked marks squares the side not on move can capture on.
	ShowAttacked bool

	// ShowLabels adds file letters and rank digits around the board.
	ShowLabels bool

	// ShowBoard prints the board after every move in interactive mode.
	ShowBoard bool

	// JSONFormat emits snapshots instead of text boards.
	JSONFormat bool

	// MaxLineLength wraps move lists; 0 disables wrapping.
	MaxLineLength uint

	KeepMoveNumbers bool
	KeepResults     bool
	KeepChecks      bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs:          Unicode,
		Notation:        SAN,
		ShowLabels:      true,
		ShowBoard:       true,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.Glyphs != Unicode && o.Glyphs != ASCII {
		return fmt.Errorf("glyph set %d: %w", o.Glyphs, errors.ErrInvalidConfig)
	}
	if o.Notation < SAN || o.Notation > Coordinate {
		return fmt.Errorf("notation style %d: %w", o.Notation, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength != 0 && o.MaxLineLength < 10 {
		return fmt.Errorf("line length %d is too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
