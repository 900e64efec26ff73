package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/errors"
)

// MaterialMatcher matches positions by the pieces left on the board.
// Patterns list white pieces, a colon, then black pieces: "QR:qrr" means
// white has at least a queen and a rook and black a queen and two rooks.
// Kings are implied.
type MaterialMatcher struct {
	pattern    string
	exactMatch bool
	counts     [2][chess.NumKinds]int
}

// NewMaterialMatcher parses a pattern. With exact set the counts must be
// equal rather than minimums.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}

	white, black, ok := strings.Cut(pattern, ":")
	if !ok {
		return nil, fmt.Errorf("material pattern %q lacks ':': %w", pattern, errors.ErrInvalidConfig)
	}
	for side, part := range []string{white, black} {
		for _, r := range strings.ToUpper(part) {
			kind, ok := chess.ParseKind(string(r))
			if !ok || kind == chess.King {
				return nil, fmt.Errorf("material pattern %q: bad piece %q: %w", pattern, r, errors.ErrInvalidConfig)
			}
			mm.counts[side][kind]++
		}
	}
	return mm, nil
}

// Match reports whether the position carries the pattern's material.
func (mm *MaterialMatcher) Match(p *engine.Position) bool {
	if p == nil {
		return false
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		var have [chess.NumKinds]int
		for _, sq := range p.PlayerPieces(side) {
			have[sq.Kind]++
		}
		for kind := chess.Pawn; kind < chess.King; kind++ {
			want := mm.counts[side][kind]
			if have[kind] < want || (mm.exactMatch && have[kind] != want) {
				return false
			}
		}
	}
	return true
}

// String returns the pattern.
func (mm *MaterialMatcher) String() string {
	return mm.pattern
}
