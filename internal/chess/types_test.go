package chess

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/lgbarn/cheese-go/internal/errors"
)

func TestSide(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.String() != "white" || Black.String() != "black" {
		t.Errorf("String() = %q, %q", White, Black)
	}
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		in     string
		want   Side
		wantOK bool
	}{
		{"white", White, true},
		{"Black", Black, true},
		{" WHITE ", White, true},
		{"w", White, true},
		{"b", Black, true},
		{"red", White, false},
		{"", White, false},
	}

	for _, tt := range tests {
		got, ok := ParseSide(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSide(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"Queen", Queen, true},
		{"queen", Queen, true},
		{"KNIGHT", Knight, true},
		{"Q", Queen, true},
		{"n", Knight, true},
		{"p", Pawn, true},
		{"Empty", Empty, false},
		{"X", Empty, false},
		{"Dragon", Empty, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParse_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if k, ok := ParseKind("queen"); !ok || k != Queen {
					t.Errorf("ParseKind(queen) = %v, %v", k, ok)
					return
				}
				if s, ok := ParseSide("Black"); !ok || s != Black {
					t.Errorf("ParseSide(Black) = %v, %v", s, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestKind_Properties(t *testing.T) {
	tests := []struct {
		kind      Kind
		name      string
		letter    string
		promotion bool
	}{
		{Empty, "Empty", "", false},
		{Pawn, "Pawn", "", false},
		{Knight, "Knight", "N", true},
		{Bishop, "Bishop", "B", true},
		{Rook, "Rook", "R", true},
		{Queen, "Queen", "Q", true},
		{King, "King", "K", false},
		{Kind(99), "Unknown", "", false},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("Kind(%d).String() = %q; want %q", tt.kind, got, tt.name)
		}
		if got := tt.kind.Letter(); got != tt.letter {
			t.Errorf("%s.Letter() = %q; want %q", tt.name, got, tt.letter)
		}
		if got := tt.kind.IsPromotionChoice(); got != tt.promotion {
			t.Errorf("%s.IsPromotionChoice() = %v; want %v", tt.name, got, tt.promotion)
		}
	}
}

func TestText_JSON(t *testing.T) {
	type record struct {
		Type   Kind `json:"type"`
		Player Side `json:"player"`
	}

	data, err := json.Marshal(record{Type: Bishop, Player: Black})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"type":"Bishop","player":"black"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var r record
	if err := json.Unmarshal([]byte(`{"type":"Knight","player":"white"}`), &r); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if r.Type != Knight || r.Player != White {
		t.Errorf("Unmarshal() = %+v", r)
	}

	err = json.Unmarshal([]byte(`{"type":"Wizard","player":"white"}`), &r)
	if !errors.Is(err, errors.ErrInvalidSnapshot) {
		t.Errorf("Unmarshal(bad type) error = %v; want ErrInvalidSnapshot", err)
	}
	err = json.Unmarshal([]byte(`{"type":"Pawn","player":"green"}`), &r)
	if !errors.Is(err, errors.ErrInvalidSnapshot) {
		t.Errorf("Unmarshal(bad player) error = %v; want ErrInvalidSnapshot", err)
	}
}
