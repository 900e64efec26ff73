package engine

import "github.com/lgbarn/cheese-go/internal/chess"

// IsInCheck returns true if the side to move's king is attacked.
func IsInCheck(p *Position) bool {
	return p.inCheck(p.turn)
}

// inCheck reads the attacked flag of side's king. It is only meaningful
// for the side to move, whose opponent's coverage update has marked.
func (p *Position) inCheck(side chess.Side) bool {
	king, ok := p.grid.FindKing(side)
	return ok && p.grid.At(king).Attacked
}

// evadeCheck keeps the moves that leave the side to move out of check.
// Non-king moves are first narrowed to squares the opponent covers or
// occupies, since only a capture or a block can answer a check. Each
// survivor is then played on a copy of the grid.
func (p *Position) evadeCheck(sq *chess.Square, moves []chess.Coord) []chess.Coord {
	legal := []chess.Coord{}
	for _, m := range moves {
		if sq.Kind != chess.King && !p.threatened(m) {
			continue
		}
		if !p.exposesKing(sq.Coord, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// threatened reports whether c is covered by the opponent or holds one of
// the opponent's pieces.
func (p *Position) threatened(c chess.Coord) bool {
	sq := p.grid.At(c)
	return sq.Attacked || sq.IsEnemyOf(p.turn)
}

// exposesKing simulates from->to on a copy of the grid and reports whether
// the mover's king would be capturable afterwards.
func (p *Position) exposesKing(from, to chess.Coord) bool {
	side := p.grid.At(from).Side
	sim := Position{grid: p.grid, turn: side}
	sim.grid.Relocate(from, to)

	king, ok := sim.grid.FindKing(side)
	if !ok {
		return false
	}
	for _, c := range sim.grid.Pieces(side.Opposite()) {
		moves, _ := sim.pieceOptions(c, true, false)
		if chess.ContainsCoord(moves, king) {
			return true
		}
	}
	return false
}
