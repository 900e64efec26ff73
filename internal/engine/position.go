// Package engine provides chess move validation and position bookkeeping.
//
// A Position owns its grid exclusively and is not safe for concurrent use;
// callers that need concurrent games hold one Position per game.
package engine

import (
	"github.com/lgbarn/cheese-go/internal/chess"
)

// Position is the aggregate game position: the grid, the side to move,
// the classified game state and the target of the last move.
type Position struct {
	grid    chess.Grid
	turn    chess.Side
	state   State
	last    chess.Coord
	hasLast bool
}

// NewPosition creates a position with the standard starting layout.
func NewPosition() *Position {
	return newPosition(chess.InitialGrid(), chess.White)
}

func newPosition(grid chess.Grid, turn chess.Side) *Position {
	p := &Position{grid: grid, turn: turn}
	p.update()
	return p
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Side {
	return p.turn
}

// State returns the current game state.
func (p *Position) State() State {
	return p.state
}

// Over reports whether the game has reached a terminal state.
func (p *Position) Over() bool {
	return p.state.IsTerminal()
}

// Last returns the target square of the last move, if any.
func (p *Position) Last() (chess.Coord, bool) {
	return p.last, p.hasLast
}

// Square returns a copy of the square at c.
func (p *Position) Square(c chess.Coord) (chess.Square, bool) {
	if !c.InBounds() {
		return chess.Square{}, false
	}
	return *p.grid.At(c), true
}

// Grid returns a copy of the grid.
func (p *Position) Grid() chess.Grid {
	return p.grid
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// PlayerPieces returns the pieces of a side in grid order (a8 to h1).
func (p *Position) PlayerPieces(side chess.Side) []chess.Square {
	coords := p.grid.Pieces(side)
	pieces := make([]chess.Square, 0, len(coords))
	for _, c := range coords {
		pieces = append(pieces, *p.grid.At(c))
	}
	return pieces
}

// AttackedSquares returns every square the side not on move can capture
// on, in grid order.
func (p *Position) AttackedSquares() []chess.Coord {
	var coords []chess.Coord
	for y := range p.grid {
		for x := range p.grid[y] {
			if p.grid[y][x].Attacked {
				coords = append(coords, chess.C(x, y))
			}
		}
	}
	return coords
}

// update recomputes the dynamic state of every square and classifies the
// position for the side to move.
func (p *Position) update() {
	p.grid.ClearDynamic()

	for _, c := range p.grid.Pieces(p.turn.Opposite()) {
		moves, _ := p.pieceOptions(c, true, false)
		p.grid.At(c).Options = chess.Options{Moves: moves, Others: []chess.CastleOption{}}
		for _, m := range moves {
			p.grid.At(m).Attacked = true
		}
	}

	inCheck := p.inCheck(p.turn)
	p.state = Ongoing
	if inCheck {
		p.state = Check
	}

	total := 0
	for _, c := range p.grid.Pieces(p.turn) {
		moves, castles := p.pieceOptions(c, false, true)
		p.grid.At(c).Options = chess.Options{Moves: moves, Others: castles}
		total += len(moves)
	}

	if total == 0 {
		if inCheck {
			p.state = Checkmate
		} else {
			p.state = Stalemate
		}
	}

	if HasInsufficientMaterial(&p.grid) {
		p.state = Draw
	}
}
