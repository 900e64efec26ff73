package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/cheese-go/internal/chess"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.Turn() != chess.White {
			t.Errorf("Turn() = %v; want white", p.Turn())
		}
		if p.State() != Ongoing {
			t.Errorf("State() = %v; want ongoing", p.State())
		}
		if p.Over() {
			t.Error("Over() = true; want false")
		}
	})

	t.Run("grid coordinates", func(t *testing.T) {
		g := p.Grid()
		for y := 0; y < chess.BoardSize; y++ {
			for x := 0; x < chess.BoardSize; x++ {
				if got := g[y][x].Coord; got != chess.C(x, y) {
					t.Errorf("grid[%d][%d].Coord = %v", y, x, got)
				}
			}
		}
	})
}

func TestPlayerPieces_Symmetry(t *testing.T) {
	p := NewPosition()
	white := p.PlayerPieces(chess.White)
	black := p.PlayerPieces(chess.Black)

	if len(white) != 16 || len(black) != 16 {
		t.Fatalf("piece counts = %d white, %d black; want 16 each", len(white), len(black))
	}

	mirror := make(map[chess.Coord]chess.Kind)
	for _, sq := range black {
		mirror[chess.C(sq.Coord.X, chess.BoardSize-1-sq.Coord.Y)] = sq.Kind
	}
	for _, sq := range white {
		if sq.Side != chess.White {
			t.Errorf("%v listed as white", sq.Coord)
		}
		if mirror[sq.Coord] != sq.Kind {
			t.Errorf("%v: white %v, mirrored black %v", sq.Coord, sq.Kind, mirror[sq.Coord])
		}
	}
}

func TestInitialOptions(t *testing.T) {
	p := NewPosition()

	tests := []struct {
		square string
		want   []chess.Coord
	}{
		{"a2", []chess.Coord{{X: 0, Y: 5}, {X: 0, Y: 4}}},
		{"e2", []chess.Coord{{X: 4, Y: 5}, {X: 4, Y: 4}}},
		{"b1", []chess.Coord{{X: 0, Y: 5}, {X: 2, Y: 5}}},
		{"g1", []chess.Coord{{X: 5, Y: 5}, {X: 7, Y: 5}}},
		{"a1", []chess.Coord{}},
		{"d1", []chess.Coord{}},
		{"e1", []chess.Coord{}},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq, _ := p.Square(chess.MustCoord(tt.square))
			if diff := cmp.Diff(tt.want, sq.Options.Moves); diff != "" {
				t.Errorf("options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAttackedSquares_Initial(t *testing.T) {
	p := NewPosition()
	attacked := p.AttackedSquares()

	for x := 0; x < chess.BoardSize; x++ {
		if !chess.ContainsCoord(attacked, chess.C(x, 2)) {
			t.Errorf("%v not attacked by black pawns", chess.C(x, 2))
		}
	}
	for _, c := range attacked {
		if c.Y > 2 {
			t.Errorf("%v attacked in the initial position", c)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	p := NewPosition()
	c := p.Clone()

	play(t, c, "e2e4")

	if p.Turn() != chess.White {
		t.Error("moving the clone changed the original's turn")
	}
	if sq, _ := p.Square(chess.MustCoord("e2")); sq.Kind != chess.Pawn {
		t.Error("moving the clone changed the original's grid")
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Ongoing, "ongoing"},
		{Check, "check"},
		{Checkmate, "checkmate"},
		{Stalemate, "stalemate"},
		{Draw, "draw"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		in     string
		want   State
		wantOK bool
	}{
		{"ongoing", Ongoing, true},
		{"CHECKMATE", Checkmate, true},
		{" Stalemate ", Stalemate, true},
		{"draw", Draw, true},
		{"resigned", Ongoing, false},
	}
	for _, tt := range tests {
		got, ok := ParseState(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseState(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
