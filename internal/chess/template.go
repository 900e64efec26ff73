package chess

// Template is the immutable movement table of a piece kind.
// Vectors are written in Black's orientation (forward is +Y); Oriented
// negates the Y component for White.
type Template struct {
	Vectors []Vector
	// Sliding kinds repeat each vector until blocked.
	Sliding bool

	// Pawn-only vectors.
	Attacks []Vector
	Special Vector
}

var (
	orthogonal = []Vector{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonal   = []Vector{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
	allEight   = append(append([]Vector{}, orthogonal...), diagonal...)
)

var templates = [NumKinds]Template{
	Pawn: {
		Vectors: []Vector{{0, 1}},
		Attacks: []Vector{{-1, 1}, {1, 1}},
		Special: Vector{0, 2},
	},
	Knight: {
		Vectors: []Vector{{-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}},
	},
	Bishop: {Vectors: diagonal, Sliding: true},
	Rook:   {Vectors: orthogonal, Sliding: true},
	Queen:  {Vectors: allEight, Sliding: true},
	King:   {Vectors: allEight},
}

// TemplateOf returns the movement template of a kind.
func TemplateOf(k Kind) *Template {
	return &templates[k]
}

// Oriented returns v adjusted for side: White's Y component is negated.
func Oriented(v Vector, side Side) Vector {
	if side == White {
		return Vector{DX: v.DX, DY: -v.DY}
	}
	return v
}

// HomeRank returns the row holding a side's back rank.
func HomeRank(side Side) int {
	if side == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the row a side's pawns start on.
func PawnRank(side Side) int {
	if side == White {
		return BoardSize - 2
	}
	return 1
}
