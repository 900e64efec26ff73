package chess

// Grid is the 8x8 board, indexed grid[y][x]. It is a plain array so that
// assignment takes a full copy for move simulation.
type Grid [BoardSize][BoardSize]Square

// NewGrid creates a grid of empty squares.
func NewGrid() Grid {
	var g Grid
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			g[y][x] = NewEmpty(Coord{X: x, Y: y})
		}
	}
	return g
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialGrid sets up the standard chess starting position.
func InitialGrid() Grid {
	g := NewGrid()
	for x := 0; x < BoardSize; x++ {
		g.Place(NewPiece(backRank[x], Black, Coord{X: x, Y: HomeRank(Black)}))
		g.Place(NewPiece(Pawn, Black, Coord{X: x, Y: PawnRank(Black)}))
		g.Place(NewPiece(Pawn, White, Coord{X: x, Y: PawnRank(White)}))
		g.Place(NewPiece(backRank[x], White, Coord{X: x, Y: HomeRank(White)}))
	}
	return g
}

// At returns the square at c. c must be in bounds.
func (g *Grid) At(c Coord) *Square {
	return &g[c.Y][c.X]
}

// Place puts sq on the grid at sq.Coord, replacing what was there.
func (g *Grid) Place(sq Square) {
	g[sq.Coord.Y][sq.Coord.X] = sq
}

// Clear replaces the square at c with an empty square.
func (g *Grid) Clear(c Coord) {
	g[c.Y][c.X] = NewEmpty(c)
}

// Relocate moves the piece at from to to, transferring ownership of the
// piece and leaving from empty.
func (g *Grid) Relocate(from, to Coord) {
	sq := g[from.Y][from.X]
	sq.Coord = to
	g[to.Y][to.X] = sq
	g.Clear(from)
}

// ClearDynamic resets the per-turn state of every square.
func (g *Grid) ClearDynamic() {
	for y := range g {
		for x := range g[y] {
			g[y][x].ClearDynamic()
		}
	}
}

// Pieces returns the coordinates of a side's pieces in row-major order.
func (g *Grid) Pieces(side Side) []Coord {
	var coords []Coord
	for y := range g {
		for x := range g[y] {
			if g[y][x].IsFriendOf(side) {
				coords = append(coords, Coord{X: x, Y: y})
			}
		}
	}
	return coords
}

// FindKing returns the coordinate of a side's king.
func (g *Grid) FindKing(side Side) (Coord, bool) {
	for y := range g {
		for x := range g[y] {
			sq := &g[y][x]
			if sq.Kind == King && sq.Side == side {
				return sq.Coord, true
			}
		}
	}
	return Coord{}, false
}
