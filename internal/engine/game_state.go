package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lgbarn/cheese-go/internal/errors"
)

// State classifies a position for the side to move.
type State int

const (
	Ongoing State = iota
	Check
	Checkmate
	Stalemate
	Draw
)

var stateNames = [...]string{"ongoing", "check", "checkmate", "stalemate", "draw"}

// String returns the snapshot name of the state.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// IsTerminal returns true for checkmate, stalemate and draw.
func (s State) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// ParseState converts a state name to a State. Matching is case-insensitive.
func ParseState(name string) (State, bool) {
	name = cases.Lower(language.English).String(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return Ongoing, false
}

// MarshalText encodes the state as its snapshot name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	state, ok := ParseState(string(text))
	if !ok {
		return errors.Wrapf(errors.ErrInvalidSnapshot, "unknown state %q", text)
	}
	*s = state
	return nil
}
