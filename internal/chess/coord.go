package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/cheese-go/internal/errors"
)

// Coord is a board coordinate. (0,0) is a8 and (7,7) is h1:
// X grows towards the h-file, Y grows towards the first rank.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return Board.Accepts(c.X, c.Y)
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Vector) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// File returns the file letter ('a'-'h').
func (c Coord) File() byte {
	return byte('a' + c.X)
}

// Rank returns the rank digit ('1'-'8').
func (c Coord) Rank() byte {
	return byte('0' + BoardSize - c.Y)
}

// IsLight reports whether the square is a light square.
func (c Coord) IsLight() bool {
	return (c.X+c.Y)%2 == 0
}

// String returns the algebraic square name, e.g. "e4".
// Out-of-bounds coordinates are printed as "(x,y)".
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return string([]byte{c.File(), c.Rank()})
}

// ParseCoord translates an algebraic square ("a1".."h8") to a Coord:
// x = letter - 'a', y = 8 - digit.
func ParseCoord(square string) (Coord, error) {
	s := strings.ToLower(strings.TrimSpace(square))
	if len(s) != 2 {
		return Coord{}, errors.Wrapf(errors.ErrInvalidCoordinate, "%q", square)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coord{}, errors.Wrapf(errors.ErrInvalidCoordinate, "%q", square)
	}
	return Coord{X: int(file - 'a'), Y: BoardSize - int(rank-'0')}, nil
}

// MustCoord is like ParseCoord but panics on malformed input.
// It is intended for literals in tests and tables.
func MustCoord(square string) Coord {
	c, err := ParseCoord(square)
	if err != nil {
		panic(err)
	}
	return c
}

// Vector is a movement direction.
type Vector struct {
	DX int
	DY int
}

// Normalize reduces each component to -1, 0 or 1.
func (v Vector) Normalize() Vector {
	return Vector{DX: sign(v.DX), DY: sign(v.DY)}
}

// Delta returns the vector from a to b.
func Delta(a, b Coord) Vector {
	return Vector{DX: b.X - a.X, DY: b.Y - a.Y}
}

// ContainsCoord reports whether coords contains c.
func ContainsCoord(coords []Coord, c Coord) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
