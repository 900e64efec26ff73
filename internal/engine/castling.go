package engine

import "github.com/lgbarn/cheese-go/internal/chess"

// castleOptions returns the castling moves available to an unmoved king.
// The corner rook must be unmoved and of the king's side, and every square
// strictly between king and rook must be empty and not attacked.
func (p *Position) castleOptions(king *chess.Square) []chess.CastleOption {
	options := []chess.CastleOption{}
	row := king.Coord.Y

	for _, step := range []int{-1, 1} {
		rookX := 0
		if step > 0 {
			rookX = chess.BoardSize - 1
		}
		rook := p.grid.At(chess.C(rookX, row))
		if rook.Kind != chess.Rook || rook.Side != king.Side || rook.Moved {
			continue
		}

		kingDest := chess.C(king.Coord.X+2*step, row)
		if !kingDest.InBounds() || abs(rookX-king.Coord.X) < 3 {
			continue
		}

		clear := true
		for x := king.Coord.X + step; x != rookX; x += step {
			between := p.grid.At(chess.C(x, row))
			if between.IsPiece() || between.Attacked {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}

		options = append(options, chess.CastleOption{
			Rook:            rook.Coord,
			RookDestination: chess.C(king.Coord.X+step, row),
			KingDestination: kingDest,
		})
	}
	return options
}

// findCastle returns the castling option whose king destination is dst.
func findCastle(options []chess.CastleOption, dst chess.Coord) (chess.CastleOption, bool) {
	for _, co := range options {
		if co.KingDestination == dst {
			return co, true
		}
	}
	return chess.CastleOption{}, false
}

// applyCastle relocates king and rook together and marks both as moved.
func (p *Position) applyCastle(king chess.Coord, co chess.CastleOption) {
	p.grid.Relocate(king, co.KingDestination)
	p.grid.Relocate(co.Rook, co.RookDestination)
	p.grid.At(co.KingDestination).Moved = true
	p.grid.At(co.RookDestination).Moved = true
}
