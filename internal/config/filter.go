package config

import (
	"fmt"

	"github.com/lgbarn/cheese-go/internal/errors"
)

// FilterConfig holds settings for selecting replayed games.
type FilterConfig struct {
	// Tag criteria, one per entry or one per line of TagFile.
	TagCriteria []string
	TagFile     string
	Players     []string
	MatchAny    bool // OR the tag criteria instead of AND

	// Final position conditions
	MatchCheckmate bool
	MatchStalemate bool
	MatchDraw      bool
	Material       string
	ExactMaterial  bool

	// Move bounds, in plies; 0 means unbounded.
	MinPlies int
	MaxPlies int

	// Invert selects the games the other settings reject.
	Invert bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any filter is set.
func (f *FilterConfig) Active() bool {
	return len(f.TagCriteria) > 0 || f.TagFile != "" || len(f.Players) > 0 ||
		f.MatchCheckmate || f.MatchStalemate || f.MatchDraw || f.Material != "" ||
		f.MinPlies > 0 || f.MaxPlies > 0 || f.Invert
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.MinPlies < 0 || f.MaxPlies < 0 {
		return fmt.Errorf("negative ply bound: %w", errors.ErrInvalidConfig)
	}
	if f.MaxPlies > 0 && f.MinPlies > f.MaxPlies {
		return fmt.Errorf("lower ply bound (%d) > upper ply bound (%d): %w",
			f.MinPlies, f.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
