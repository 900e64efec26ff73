package parser

import (
	"strings"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/notation"
)

func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

func isSeparator(c byte) bool {
	return c == '-' || c == 'x' || c == 'X' || c == ':'
}

// DecodeCoordinate parses coordinate move text: "e2e4", "e2-e4", "e4xd5",
// "a7a8q" or "a7a8=Q". Trailing check and annotation marks are ignored.
// The second result is false when the text is not in coordinate form.
func DecodeCoordinate(text string) (notation.Move, bool) {
	s := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	if len(s) < 4 || !isCol(s[0]) || !isRank(s[1]) {
		return notation.Move{}, false
	}
	rest := s[2:]
	if isSeparator(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) < 2 || !isCol(rest[0]) || !isRank(rest[1]) {
		return notation.Move{}, false
	}

	m := notation.Move{
		From: chess.MustCoord(s[:2]),
		To:   chess.MustCoord(rest[:2]),
	}
	promo := strings.TrimPrefix(rest[2:], "=")
	switch len(promo) {
	case 0:
	case 1:
		kind, ok := chess.ParseKind(promo)
		if !ok {
			return notation.Move{}, false
		}
		m.Promotion = kind
	default:
		return notation.Move{}, false
	}
	return m, true
}

// DecodeMove resolves move text against the position. Coordinate forms
// are taken as written; anything else is decoded as SAN.
func DecodeMove(p *engine.Position, text string) (notation.Move, error) {
	if m, ok := DecodeCoordinate(text); ok {
		return m, nil
	}
	return notation.Decode(p, text)
}

// Apply decodes the move text and plays it on p. A promotion written
// without a piece yields the missing_promotion event, as Move does.
func Apply(p *engine.Position, text string) (engine.MoveResult, error) {
	m, err := DecodeMove(p, text)
	if err != nil {
		return engine.MoveResult{}, err
	}
	return p.Move(m.From, m.To, m.Promotion)
}
