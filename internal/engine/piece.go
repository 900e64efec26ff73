package engine

import "github.com/lgbarn/cheese-go/internal/chess"

// pieceOptions computes the destinations of the piece at c.
//
// In attacking mode the result is the piece's capture coverage: pawn
// diagonals regardless of occupancy, and friendly squares the piece
// defends. King, pin and check restrictions apply only outside attacking
// mode. Sliders mark enemy pieces they pin as a side effect, which is why
// update recomputes every piece from scratch.
func (p *Position) pieceOptions(c chess.Coord, attacking, findCastling bool) ([]chess.Coord, []chess.CastleOption) {
	sq := p.grid.At(c)
	if sq.IsEmpty() {
		return []chess.Coord{}, []chess.CastleOption{}
	}

	var moves []chess.Coord
	if sq.Kind == chess.Pawn {
		moves = p.pawnOptions(sq, attacking)
	} else {
		moves = p.rayOptions(sq, attacking)
	}

	if !attacking {
		if sq.Kind == chess.King {
			moves = filterCoords(moves, func(m chess.Coord) bool {
				return !p.grid.At(m).Attacked
			})
		}
		if sq.Pinned {
			line := p.pinLine(sq)
			moves = filterCoords(moves, func(m chess.Coord) bool {
				return chess.ContainsCoord(line, m)
			})
		}
		if p.state == Check && sq.Side == p.turn {
			moves = p.evadeCheck(sq, moves)
		}
	}

	castles := []chess.CastleOption{}
	if findCastling && !attacking && p.state != Check && sq.Kind == chess.King && !sq.Moved {
		castles = p.castleOptions(sq)
		for _, co := range castles {
			moves = append(moves, co.KingDestination)
		}
	}

	return moves, castles
}

// filterCoords returns the coordinates for which keep returns true.
// The result is never nil.
func filterCoords(coords []chess.Coord, keep func(chess.Coord) bool) []chess.Coord {
	out := make([]chess.Coord, 0, len(coords))
	for _, c := range coords {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
