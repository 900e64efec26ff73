package notation

import (
	"strings"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/errors"
)

// Move is a decoded move request.
type Move struct {
	From      chess.Coord
	To        chess.Coord
	Promotion chess.Kind
}

var promotionChoices = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Decode resolves a SAN move against the position by encoding every legal
// move and matching the text. Check marks and annotation glyphs are
// ignored, and "0-0" is accepted for "O-O".
func Decode(p *engine.Position, san string) (Move, error) {
	want := normalize(san)
	if want == "" {
		return Move{}, errors.Wrap(errors.ErrParseFailure, "empty move")
	}

	var found []Move
	for _, pm := range p.LegalMoves() {
		for _, to := range pm.To {
			promos := []chess.Kind{chess.Empty}
			if pm.Kind == chess.Pawn && (to.Y == 0 || to.Y == chess.BoardSize-1) {
				promos = promotionChoices
			}
			for _, promo := range promos {
				result, err := p.Clone().Move(pm.From, to, promo)
				if err != nil {
					continue
				}
				if normalize(SAN(result)) == want {
					found = append(found, Move{From: pm.From, To: to, Promotion: promo})
				}
			}
		}
	}

	switch len(found) {
	case 0:
		return Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q", san)
	case 1:
		return found[0], nil
	}
	return Move{}, errors.Wrapf(errors.ErrParseFailure, "%q is ambiguous", san)
}

// normalize strips check marks and annotations.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "+#!?")
	return strings.ReplaceAll(s, "0", "O")
}
