package config

import (
	"fmt"

	"github.com/lgbarn/cheese-go/internal/errors"
)

// ReplayConfig holds settings for batch replay of move scripts.
type ReplayConfig struct {
	// Workers is the number of concurrent replays; 0 means one per CPU.
	Workers int

	// BufferSize is the job queue depth; 0 means twice the worker count.
	BufferSize int

	// MaxPlies stops a replay after this many moves; 0 means no limit.
	MaxPlies int

	// StopOnError abandons a script at its first rejected move instead
	// of skipping the move.
	StopOnError bool

	// FailFast abandons the whole batch once a script fails.
	FailFast bool

	// EmitSnapshots writes the final snapshot of every replay.
	EmitSnapshots bool

	// SuppressDuplicates drops games ending in a position an earlier game
	// already reached.
	SuppressDuplicates bool

	// DuplicateCapacity bounds the number of remembered games; 0 means no
	// limit.
	DuplicateCapacity int
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{StopOnError: true}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("worker count %d: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 0 {
		return fmt.Errorf("buffer size %d: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	if r.MaxPlies < 0 {
		return fmt.Errorf("ply limit %d: %w", r.MaxPlies, errors.ErrInvalidConfig)
	}
	if r.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d: %w", r.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
