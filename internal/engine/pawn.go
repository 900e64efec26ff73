package engine

import "github.com/lgbarn/cheese-go/internal/chess"

// pawnOptions computes pawn destinations: the forward step onto an empty
// square, the double step from the start square, and diagonal captures.
// In attacking mode only the diagonals are returned, occupied or not.
func (p *Position) pawnOptions(sq *chess.Square, attacking bool) []chess.Coord {
	tmpl := chess.TemplateOf(chess.Pawn)
	moves := []chess.Coord{}

	if !attacking {
		forward := sq.Coord.Add(chess.Oriented(tmpl.Vectors[0], sq.Side))
		if forward.InBounds() && p.grid.At(forward).IsEmpty() {
			moves = append(moves, forward)

			double := sq.Coord.Add(chess.Oriented(tmpl.Special, sq.Side))
			if sq.Coord == sq.Start && double.InBounds() && p.grid.At(double).IsEmpty() {
				moves = append(moves, double)
			}
		}
	}

	for _, v := range tmpl.Attacks {
		to := sq.Coord.Add(chess.Oriented(v, sq.Side))
		if !to.InBounds() {
			continue
		}
		if attacking || p.grid.At(to).IsEnemyOf(sq.Side) {
			moves = append(moves, to)
		}
	}
	return moves
}

// isPromotionRank reports whether a pawn landing on c must promote.
func isPromotionRank(c chess.Coord) bool {
	return c.Y == 0 || c.Y == chess.BoardSize-1
}
