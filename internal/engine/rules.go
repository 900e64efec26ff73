package engine

import (
	"github.com/lgbarn/cheese-go/internal/chess"
)

// material summarises one side's non-king pieces for the draw rule.
type material struct {
	knights      int
	lightBishops int
	darkBishops  int
}

func (m material) minors() int {
	return m.knights + m.lightBishops + m.darkBishops
}

// bishopsOnly reports whether every minor piece is a bishop and all of
// them stand on one colour.
func (m material) bishopsOnly() bool {
	return m.knights == 0 && (m.lightBishops == 0 || m.darkBishops == 0)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+N vs K
// - K+B(s) vs K, all bishops on one colour
// - K+B(s) vs K+B(s), all bishops on one colour
func HasInsufficientMaterial(grid *chess.Grid) bool {
	var count [2]material

	for y := range grid {
		for x := range grid[y] {
			sq := &grid[y][x]
			m := &count[sq.Side]
			switch sq.Kind {
			case chess.Empty, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Knight:
				m.knights++
			case chess.Bishop:
				if sq.Coord.IsLight() {
					m.lightBishops++
				} else {
					m.darkBishops++
				}
			}
		}
	}

	white, black := count[chess.White], count[chess.Black]

	// K vs K
	if white.minors() == 0 && black.minors() == 0 {
		return true
	}

	// K+N vs K, K+B(s) vs K
	if black.minors() == 0 {
		return white.minors() == 1 || white.bishopsOnly()
	}
	if white.minors() == 0 {
		return black.minors() == 1 || black.bishopsOnly()
	}

	// Bishops of both sides on a single colour
	if white.bishopsOnly() && black.bishopsOnly() {
		light := white.lightBishops + black.lightBishops
		dark := white.darkBishops + black.darkBishops
		return light == 0 || dark == 0
	}

	return false
}
