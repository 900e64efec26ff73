package chess

// CastleOption describes the rook relocation that accompanies a castling
// king move to KingDestination.
type CastleOption struct {
	Rook            Coord
	RookDestination Coord
	KingDestination Coord
}

// Options holds the cached destinations of a piece for the current turn.
type Options struct {
	Moves  []Coord
	Others []CastleOption
}

// Square is a single board cell: either Empty or a piece.
// Attacked is tracked for every cell; the remaining dynamic fields only
// carry meaning for pieces.
type Square struct {
	Kind  Kind
	Side  Side
	Coord Coord

	// Moved is tracked for rooks and kings.
	Moved bool
	// Start is the square a pawn may double-step from.
	Start Coord

	Attacked bool
	Pinned   bool
	Pinner   Coord
	Options  Options
}

// NewEmpty returns an empty square at c.
func NewEmpty(c Coord) Square {
	return Square{Kind: Empty, Coord: c}
}

// NewPiece returns a piece of the given kind and side at c.
// A pawn records c as its start square.
func NewPiece(kind Kind, side Side, c Coord) Square {
	sq := Square{Kind: kind, Side: side, Coord: c}
	if kind == Pawn {
		sq.Start = c
	}
	return sq
}

// IsEmpty reports whether the square holds no piece.
func (s *Square) IsEmpty() bool {
	return s.Kind == Empty
}

// IsPiece reports whether the square holds a piece.
func (s *Square) IsPiece() bool {
	return s.Kind != Empty
}

// IsEnemyOf reports whether the square holds a piece of the opposite side.
func (s *Square) IsEnemyOf(side Side) bool {
	return s.IsPiece() && s.Side != side
}

// IsFriendOf reports whether the square holds a piece of the same side.
func (s *Square) IsFriendOf(side Side) bool {
	return s.IsPiece() && s.Side == side
}

// PinnerCoord returns the pinning piece's coordinate, if any.
func (s *Square) PinnerCoord() (Coord, bool) {
	return s.Pinner, s.Pinned
}

// ClearDynamic resets the per-turn state.
func (s *Square) ClearDynamic() {
	s.Attacked = false
	s.Pinned = false
	s.Pinner = Coord{}
	s.Options = Options{}
}

// Glyph returns the Unicode chess symbol of the square.
func (s *Square) Glyph() string {
	if s.Kind == Empty {
		return "⊡"
	}
	white := [NumKinds]string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := [NumKinds]string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
	if s.Side == White {
		return white[s.Kind]
	}
	return black[s.Kind]
}

// ASCII returns a single-letter representation: upper case for White,
// lower case for Black and '.' for an empty square.
func (s *Square) ASCII() byte {
	if s.Kind == Empty {
		return '.'
	}
	letters := [NumKinds]byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	c := letters[s.Kind]
	if s.Side == Black {
		c += 'a' - 'A'
	}
	return c
}
