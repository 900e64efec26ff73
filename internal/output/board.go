package output

import (
	"io"
	"strings"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/engine"
)

// Overlay glyphs.
const (
	MarkUnicode     = "⛝"
	MarkASCII       = "x"
	AttackedOverlay = "%"
)

// RenderBoard writes the grid one rank per line, a8 first. Squares in
// marks are drawn with the mark glyph; with ShowAttacked the squares the
// side not on move covers are drawn as "%".
func RenderBoard(w io.Writer, p *engine.Position, opts *config.OutputConfig, marks []chess.Coord) error {
	_, err := io.WriteString(w, BoardString(p, opts, marks))
	return err
}

// BoardString is RenderBoard into a string.
func BoardString(p *engine.Position, opts *config.OutputConfig, marks []chess.Coord) string {
	var attacked []chess.Coord
	if opts.ShowAttacked {
		attacked = p.AttackedSquares()
	}
	mark := MarkUnicode
	if opts.Glyphs == config.ASCII {
		mark = MarkASCII
	}

	grid := p.Grid()
	var sb strings.Builder
	for y := 0; y < chess.BoardSize; y++ {
		cells := make([]string, 0, chess.BoardSize+1)
		if opts.ShowLabels {
			cells = append(cells, string(chess.C(0, y).Rank()))
		}
		for x := 0; x < chess.BoardSize; x++ {
			c := chess.C(x, y)
			switch {
			case chess.ContainsCoord(marks, c):
				cells = append(cells, mark)
			case chess.ContainsCoord(attacked, c):
				cells = append(cells, AttackedOverlay)
			default:
				cells = append(cells, squareGlyph(grid.At(c), opts.Glyphs))
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	if opts.ShowLabels {
		sb.WriteString("  a b c d e f g h\n")
	}
	return sb.String()
}

func squareGlyph(sq *chess.Square, glyphs config.GlyphSet) string {
	if glyphs == config.ASCII {
		return string(sq.ASCII())
	}
	return sq.Glyph()
}
