package engine

import (
	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/errors"
)

// Inspection describes a piece of the side to move and where it may go.
type Inspection struct {
	Piece  chess.Kind    `json:"type"`
	Player chess.Side    `json:"player"`
	Coord  chess.Coord   `json:"coord"`
	Moves  []chess.Coord `json:"moves"`
	Pinned bool          `json:"pinned"`
	Pinner *chess.Coord  `json:"pinner"`
}

// Inspect returns the legal destinations of the piece at c. Castling is
// not included. The position is not modified.
func (p *Position) Inspect(c chess.Coord) (Inspection, error) {
	if !c.InBounds() {
		return Inspection{}, inspectError(errors.ErrOutOfBounds, c)
	}
	sq := p.grid.At(c)
	if sq.IsEmpty() {
		return Inspection{}, inspectError(errors.ErrEmptySquare, c)
	}
	if sq.Side != p.turn {
		return Inspection{}, inspectError(errors.ErrNotOwned, c)
	}

	// pieceOptions re-marks pins on the opponent's pieces; run it on a
	// copy so inspection stays read-only.
	sim := *p
	moves, _ := sim.pieceOptions(c, false, false)

	in := Inspection{
		Piece:  sq.Kind,
		Player: sq.Side,
		Coord:  c,
		Moves:  moves,
		Pinned: sq.Pinned,
	}
	if pinner, ok := sq.PinnerCoord(); ok {
		in.Pinner = &pinner
	}
	return in, nil
}

// InspectAlgebraic is Inspect with an algebraic square name.
func (p *Position) InspectAlgebraic(square string) (Inspection, error) {
	c, err := chess.ParseCoord(square)
	if err != nil {
		return Inspection{}, err
	}
	return p.Inspect(c)
}

// LegalMoves returns every legal move of the side to move, castling
// included, keyed by source square in grid order.
func (p *Position) LegalMoves() []PieceMoves {
	var all []PieceMoves
	for _, sq := range p.PlayerPieces(p.turn) {
		if len(sq.Options.Moves) == 0 {
			continue
		}
		all = append(all, PieceMoves{From: sq.Coord, Kind: sq.Kind, To: sq.Options.Moves})
	}
	return all
}

// PieceMoves lists the destinations of one piece.
type PieceMoves struct {
	From chess.Coord
	Kind chess.Kind
	To   []chess.Coord
}

func inspectError(err error, c chess.Coord) error {
	return &errors.MoveError{Err: err, Op: "inspect", Source: c.String()}
}
