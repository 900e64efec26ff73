// Package notation writes and reads moves in algebraic notation. It works
// from engine.MoveResult events alone: the event type picks the move shape
// and the event extra carries the disambiguation hint.
package notation

import (
	"strings"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/engine"
)

// Castling tokens.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"
)

// Encode writes a move in the given style. A move that was not completed
// (a pawn on the last rank without a promotion choice) encodes as "".
func Encode(r engine.MoveResult, style config.NotationStyle) string {
	switch style {
	case config.Figurine:
		return Figurine(r)
	case config.Coordinate:
		return Coordinate(r)
	default:
		return SAN(r)
	}
}

// SAN writes a move in Standard Algebraic Notation, e.g. "Nbd7", "exd5",
// "e8=Q+", "O-O-O#".
func SAN(r engine.MoveResult) string {
	return algebraic(r, letter)
}

// Figurine writes SAN with piece glyphs in place of letters, e.g. "♘f3".
func Figurine(r engine.MoveResult) string {
	return algebraic(r, glyph)
}

// Coordinate writes a move as source and target squares plus a lower-case
// promotion letter, e.g. "e2e4", "a7a8q". Castling is written as the
// king's move.
func Coordinate(r engine.MoveResult) string {
	if !r.Completed() {
		return ""
	}
	s := r.Source.String() + r.Target.String()
	if k, ok := promotion(r); ok {
		s += strings.ToLower(k.Letter())
	}
	return s
}

func letter(k chess.Kind, _ chess.Side) string {
	return k.Letter()
}

func glyph(k chess.Kind, side chess.Side) string {
	sq := chess.NewPiece(k, side, chess.Coord{})
	return sq.Glyph()
}

func algebraic(r engine.MoveResult, name func(chess.Kind, chess.Side) string) string {
	if !r.Completed() {
		return ""
	}

	var sb strings.Builder
	if r.Event.Type == engine.EventCastle {
		if r.Event.Extra == engine.ExtraQueenside {
			sb.WriteString(QueensideCastle)
		} else {
			sb.WriteString(KingsideCastle)
		}
		sb.WriteString(Suffix(r.State))
		return sb.String()
	}

	if r.Piece == chess.Pawn {
		if r.Captured != chess.Empty {
			sb.WriteByte(r.Source.File())
		}
	} else {
		sb.WriteString(name(r.Piece, r.Player))
		sb.WriteString(disambiguation(r))
	}
	if r.Captured != chess.Empty {
		sb.WriteByte('x')
	}
	sb.WriteString(r.Target.String())
	if k, ok := promotion(r); ok {
		sb.WriteByte('=')
		sb.WriteString(name(k, r.Player))
	}
	sb.WriteString(Suffix(r.State))
	return sb.String()
}

// disambiguation turns the uniqueness hint into the source file, rank, or
// both.
func disambiguation(r engine.MoveResult) string {
	rest, ok := strings.CutPrefix(r.Event.Extra, engine.ExtraMultiple)
	if !ok {
		return ""
	}
	var s []byte
	if strings.Contains(rest, engine.ExtraRow) {
		s = append(s, r.Source.File())
	}
	if strings.Contains(rest, engine.ExtraRank) {
		s = append(s, r.Source.Rank())
	}
	return string(s)
}

func promotion(r engine.MoveResult) (chess.Kind, bool) {
	if r.Event.Type != engine.EventPromotion {
		return chess.Empty, false
	}
	return chess.ParseKind(r.Event.Extra)
}

// Suffix returns "#" for checkmate, "+" for check and "" otherwise.
func Suffix(state engine.State) string {
	switch state {
	case engine.Checkmate:
		return "#"
	case engine.Check:
		return "+"
	}
	return ""
}

// Result tokens.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	DrawResult = "1/2-1/2"
	Unfinished = "*"
)

// ResultToken returns the game result after r: the mover wins on
// checkmate, stalemate and draw are drawn, anything else is unfinished.
func ResultToken(r engine.MoveResult) string {
	switch r.State {
	case engine.Checkmate:
		if r.Player == chess.White {
			return WhiteWins
		}
		return BlackWins
	case engine.Stalemate, engine.Draw:
		return DrawResult
	}
	return Unfinished
}
