package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/engine"
)

// Positions used across package tests.
const (
	// ScholarsMateFEN is reached after 1.e4 e5 2.Qh5 Nc6 3.Bc4 Nf6; white
	// mates with Qxf7.
	ScholarsMateFEN = "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 1"

	// StalemateFEN stalemates black after Qa7-f7.
	StalemateFEN = "7k/Q7/6K1/8/8/8/8/8 w - - 0 1"

	// PromotionFEN has a white pawn one step from promotion.
	PromotionFEN = "8/P6k/8/8/8/8/8/K7 w - - 0 1"

	// CastlingFEN has every castling right available.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
)

// MustPosition builds a position from a FEN string, or the initial position
// when fen is empty. It calls t.Fatal if the FEN is rejected.
func MustPosition(t testing.TB, fen string) *engine.Position {
	t.Helper()
	if fen == "" {
		return engine.NewPosition()
	}
	p, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return p
}

// MustSnapshot decodes snapshot JSON or calls t.Fatal.
func MustSnapshot(t testing.TB, data string) *engine.Position {
	t.Helper()
	p, err := engine.UnmarshalSnapshot([]byte(data))
	if err != nil {
		t.Fatalf("UnmarshalSnapshot() error: %v", err)
	}
	return p
}

// Play applies moves written in coordinate form ("e2e4", "a7a8q") and
// returns every result. It calls t.Fatal on the first rejected move.
func Play(t testing.TB, p *engine.Position, moves ...string) []engine.MoveResult {
	t.Helper()
	results := make([]engine.MoveResult, 0, len(moves))
	for _, m := range moves {
		m = strings.ReplaceAll(m, "-", "")
		if len(m) < 4 {
			t.Fatalf("malformed move %q", m)
		}
		promo := chess.Empty
		if len(m) > 4 {
			k, ok := chess.ParseKind(m[4:])
			if !ok {
				t.Fatalf("bad promotion in %q", m)
			}
			promo = k
		}
		result, err := p.MoveAlgebraic(m[:2], m[2:4], promo)
		if err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
		results = append(results, result)
	}
	return results
}
