package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// castleRight ties a FEN castling letter to the rook it concerns.
type castleRight struct {
	letter byte
	side   chess.Side
	rookX  int
}

var castleRights = []castleRight{
	{'K', chess.White, chess.BoardSize - 1},
	{'Q', chess.White, 0},
	{'k', chess.Black, chess.BoardSize - 1},
	{'q', chess.Black, 0},
}

// NewPositionFromFEN creates a position from a FEN string. Only the
// placement, side to move and castling fields are used: en passant and the
// move clocks have no counterpart in a Position.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	grid := chess.NewGrid()
	if err := parsePiecePositions(&grid, parts[0]); err != nil {
		return nil, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	parseCastlingRights(&grid, parts)

	var kings [2]int
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, c := range grid.Pieces(side) {
			if grid.At(c).Kind == chess.King {
				kings[side]++
			}
		}
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return nil, fmt.Errorf("need one king per side, got %d white and %d black: %w",
			kings[chess.White], kings[chess.Black], errors.ErrInvalidFEN)
	}

	return newPosition(grid, turn), nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(grid *chess.Grid, positions string) error {
	x, y := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			y++
			x = 0
		case c >= '1' && c <= '8':
			x += int(c - '0')
		default:
			kind := ConvertFENCharToKind(byte(c))
			if kind == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			at := chess.C(x, y)
			if !at.InBounds() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			side := chess.White
			if unicode.IsLower(c) {
				side = chess.Black
			}

			sq := chess.NewPiece(kind, side, at)
			if kind == chess.Pawn {
				sq.Start = chess.C(x, chess.PawnRank(side))
			}
			grid.Place(sq)
			x++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Side, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights turns the castling field into moved flags: a rook
// whose right is absent counts as moved, and so does a king with no
// rights left or standing off its home square.
func parseCastlingRights(grid *chess.Grid, parts []string) {
	field := "-"
	if len(parts) >= 3 {
		field = parts[2]
	}

	for y := range grid {
		for x := range grid[y] {
			sq := &grid[y][x]
			switch sq.Kind {
			case chess.Rook:
				sq.Moved = true
			case chess.King:
				sq.Moved = sq.Coord != chess.C(4, chess.HomeRank(sq.Side))
			}
		}
	}

	var kept [2]bool
	for _, r := range castleRights {
		if !strings.ContainsRune(field, rune(r.letter)) {
			continue
		}
		rook := grid.At(chess.C(r.rookX, chess.HomeRank(r.side)))
		if rook.Kind == chess.Rook && rook.Side == r.side {
			rook.Moved = false
			kept[r.side] = true
		}
	}

	for _, side := range []chess.Side{chess.White, chess.Black} {
		if king, ok := grid.FindKing(side); ok && !kept[side] {
			grid.At(king).Moved = true
		}
	}
}

// ToFEN converts a position to a FEN string. Castling rights are derived
// from the moved flags; en passant is always "-" and the clocks "0 1".
func ToFEN(p *Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.grid)
	sb.WriteByte(' ')
	writeSideToMove(&sb, p.turn)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &p.grid)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, grid *chess.Grid) {
	for y := 0; y < chess.BoardSize; y++ {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			sq := grid.At(chess.C(x, y))
			if sq.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(sq.ASCII())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, turn chess.Side) {
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, grid *chess.Grid) {
	hasCastling := false
	for _, r := range castleRights {
		king := grid.At(chess.C(4, chess.HomeRank(r.side)))
		rook := grid.At(chess.C(r.rookX, chess.HomeRank(r.side)))
		if king.Kind != chess.King || king.Side != r.side || king.Moved {
			continue
		}
		if rook.Kind != chess.Rook || rook.Side != r.side || rook.Moved {
			continue
		}
		sb.WriteByte(r.letter)
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
