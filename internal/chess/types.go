// Package chess provides core chess types and operations.
package chess

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lgbarn/cheese-go/internal/errors"
)

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the lower-case name used in snapshots ("white"/"black").
func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// ParseSide converts a side name to a Side. Matching is case-insensitive.
func ParseSide(name string) (Side, bool) {
	switch cases.Lower(language.English).String(strings.TrimSpace(name)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return White, false
}

// MarshalText encodes the side as its snapshot name.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a side name.
func (s *Side) UnmarshalText(text []byte) error {
	side, ok := ParseSide(string(text))
	if !ok {
		return errors.Wrapf(errors.ErrInvalidSnapshot, "unknown player %q", text)
	}
	*s = side
	return nil
}

// Kind represents a piece type. The zero value is an empty square.
type Kind int

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the capitalised kind name used in snapshots.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single upper-case SAN letter of a kind.
// Pawns and empty squares have no letter.
func (k Kind) Letter() string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// IsPromotionChoice reports whether a pawn may be promoted to this kind.
func (k Kind) IsPromotionChoice() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// ParseKind converts a kind name ("queen", "Queen", "QUEEN") or a SAN
// letter ("Q", "q") to a Kind.
func ParseKind(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	if len(name) == 1 {
		switch name {
		case "P", "p":
			return Pawn, true
		case "N", "n":
			return Knight, true
		case "B", "b":
			return Bishop, true
		case "R", "r":
			return Rook, true
		case "Q", "q":
			return Queen, true
		case "K", "k":
			return King, true
		}
		return Empty, false
	}
	// Casers keep state between calls, so each parse builds its own.
	title := cases.Title(language.English).String(name)
	for k := Pawn; k < NumKinds; k++ {
		if kindNames[k] == title {
			return k, true
		}
	}
	return Empty, false
}

// MarshalText encodes the kind as its snapshot name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name or letter.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return errors.Wrapf(errors.ErrInvalidSnapshot, "unknown piece type %q", text)
	}
	*k = kind
	return nil
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Boundary is a half-open integer interval [Min, Max).
type Boundary struct {
	Min int
	Max int
}

// Board is the boundary of a single board axis.
var Board = Boundary{Min: 0, Max: BoardSize}

// Accepts reports whether all values lie inside the boundary.
func (b Boundary) Accepts(values ...int) bool {
	for _, v := range values {
		if v < b.Min || v >= b.Max {
			return false
		}
	}
	return true
}
