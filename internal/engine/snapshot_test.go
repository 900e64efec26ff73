package engine

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/errors"
)

func TestSnapshot_RoundTripInitial(t *testing.T) {
	first, err := MarshalSnapshot(NewPosition())
	if err != nil {
		t.Fatalf("MarshalSnapshot() error: %v", err)
	}

	p, err := UnmarshalSnapshot(first)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot() error: %v", err)
	}
	second, err := MarshalSnapshot(p)
	if err != nil {
		t.Fatalf("MarshalSnapshot() error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("round trip changed the snapshot:\nfirst  %s\nsecond %s", first, second)
	}
}

func TestSnapshot_RoundTripAfterMoves(t *testing.T) {
	p := NewPosition()
	play(t, p, "g1f3", "g8f6", "e2e3", "e7e6", "f1e2", "f8e7", "e1g1", "b8c6")

	want := ToSnapshot(p)
	restored, err := FromSnapshot(want)
	if err != nil {
		t.Fatalf("FromSnapshot() error: %v", err)
	}

	if diff := cmp.Diff(want, ToSnapshot(restored)); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if got, want := ToFEN(restored), ToFEN(p); got != want {
		t.Errorf("ToFEN() = %q, want %q", got, want)
	}
}

func TestSnapshot_Shape(t *testing.T) {
	p := mustFEN(t, "7k/Q7/6K1/8/8/8/8/8 w - - 0 1")
	data, err := MarshalSnapshot(p)
	if err != nil {
		t.Fatalf("MarshalSnapshot() error: %v", err)
	}

	var raw struct {
		State  string            `json:"state"`
		Player string            `json:"player"`
		Last   map[string]int    `json:"last"`
		Pieces []json.RawMessage `json:"pieces"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if raw.State != "ongoing" || raw.Player != "white" {
		t.Errorf("state/player = %q/%q, want ongoing/white", raw.State, raw.Player)
	}
	if len(raw.Last) != 0 {
		t.Errorf("last = %v, want {}", raw.Last)
	}
	if len(raw.Pieces) != 3 {
		t.Fatalf("%d pieces, want 3", len(raw.Pieces))
	}

	// White's queen comes first; black's king has no moves recorded as
	// an empty list, never null.
	for _, want := range []string{`"type":"Queen"`, `"player":"white"`, `"coord":{"x":0,"y":1}`, `"pinner":null`} {
		if !strings.Contains(string(raw.Pieces[0]), want) {
			t.Errorf("first piece %s lacks %s", raw.Pieces[0], want)
		}
	}
	if !strings.Contains(string(raw.Pieces[2]), `"others":[]`) {
		t.Errorf("black king %s lacks empty others", raw.Pieces[2])
	}
	if strings.Contains(string(data), `"moves":null`) || strings.Contains(string(data), `"others":null`) {
		t.Errorf("snapshot contains null lists: %s", data)
	}

	play(t, p, "a7f7")
	data, _ = MarshalSnapshot(p)
	if !strings.Contains(string(data), `"state":"stalemate"`) || !strings.Contains(string(data), `"last":{"x":5,"y":1}`) {
		t.Errorf("snapshot after stalemate = %s", data)
	}
}

func TestFromSnapshot_Recomputes(t *testing.T) {
	// The advisory fields say nonsense; they are recomputed.
	const input = `{
		"state": "checkmate",
		"player": "white",
		"last": {},
		"pieces": [
			{"type": "Pawn", "player": "white", "coord": {"x": 0, "y": 1},
			 "options": {"moves": [{"x": 3, "y": 3}], "others": []}, "pinned": true, "pinner": {"x": 1, "y": 1}},
			{"type": "King", "player": "white", "coord": {"x": 6, "y": 2}, "options": {"moves": [], "others": []}, "pinned": false, "pinner": null},
			{"type": "King", "player": "black", "coord": {"x": 7, "y": 0}, "options": {"moves": [], "others": []}, "pinned": false, "pinner": null}
		]
	}`

	p, err := UnmarshalSnapshot([]byte(input))
	if err != nil {
		t.Fatalf("UnmarshalSnapshot() error: %v", err)
	}
	if p.State() != Ongoing {
		t.Errorf("State() = %v, want ongoing", p.State())
	}
	pawn, _ := p.Square(chess.C(0, 1))
	if pawn.Pinned {
		t.Error("pawn still pinned after load")
	}
	if diff := cmp.Diff([]chess.Coord{chess.C(0, 0)}, pawn.Options.Moves); diff != "" {
		t.Errorf("pawn options mismatch (-want +got):\n%s", diff)
	}
	king, _ := p.Square(chess.C(6, 2))
	if !king.Moved {
		t.Error("king off its home square should count as moved")
	}
}

func TestFromSnapshot_MovedFlag(t *testing.T) {
	base := func(moved bool) Snapshot {
		return Snapshot{
			Player: chess.White,
			Pieces: []PieceRecord{
				{Type: chess.King, Player: chess.White, Coord: chess.MustCoord("e1"), Moved: moved},
				{Type: chess.Rook, Player: chess.White, Coord: chess.MustCoord("h1")},
				{Type: chess.King, Player: chess.Black, Coord: chess.MustCoord("e8")},
			},
		}
	}

	p, err := FromSnapshot(base(false))
	if err != nil {
		t.Fatalf("FromSnapshot() error: %v", err)
	}
	if ToFEN(p) != "4k3/8/8/8/8/8/8/4K2R w K - 0 1" {
		t.Errorf("ToFEN() = %q, want castling right K", ToFEN(p))
	}

	p, err = FromSnapshot(base(true))
	if err != nil {
		t.Fatalf("FromSnapshot() error: %v", err)
	}
	if ToFEN(p) != "4k3/8/8/8/8/8/8/4K2R w - - 0 1" {
		t.Errorf("ToFEN() = %q, want no castling rights", ToFEN(p))
	}
}

func TestFromSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"state":`},
		{"unknown type", `{"player":"white","pieces":[{"type":"Dragon","player":"white","coord":{"x":0,"y":0}}]}`},
		{"unknown player", `{"player":"red","pieces":[]}`},
		{"unknown state", `{"state":"won","player":"white","pieces":[]}`},
		{"off board", `{"player":"white","pieces":[
			{"type":"King","player":"white","coord":{"x":9,"y":0}},
			{"type":"King","player":"black","coord":{"x":0,"y":0}}]}`},
		{"duplicate square", `{"player":"white","pieces":[
			{"type":"King","player":"white","coord":{"x":4,"y":7}},
			{"type":"Rook","player":"white","coord":{"x":4,"y":7}},
			{"type":"King","player":"black","coord":{"x":4,"y":0}}]}`},
		{"missing king", `{"player":"white","pieces":[{"type":"King","player":"white","coord":{"x":4,"y":7}}]}`},
		{"half a coordinate", `{"player":"white","last":{"x":1},"pieces":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalSnapshot([]byte(tt.input))
			if !errors.Is(err, errors.ErrInvalidSnapshot) {
				t.Errorf("UnmarshalSnapshot() error = %v, want ErrInvalidSnapshot", err)
			}
		})
	}
}
