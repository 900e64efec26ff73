package engine

import (
	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/errors"
)

// EventType tags what a move did, for notation and UIs.
type EventType string

const (
	EventMove             EventType = "move"
	EventCaptures         EventType = "captures"
	EventCastle           EventType = "castle"
	EventPromotion        EventType = "promotion"
	EventMissingPromotion EventType = "missing_promotion_target"
)

// Event extras.
const (
	ExtraKingside  = "kingside"
	ExtraQueenside = "queenside"
	ExtraUnique    = "unique"
	ExtraMultiple  = "multiple"
	// Disambiguation suffixes: "_row" means the source file tells the
	// movers apart, "_rank" means the source rank is also needed.
	ExtraRow  = "_row"
	ExtraRank = "_rank"
)

// Event describes a completed (or suspended) move.
type Event struct {
	Type  EventType `json:"type"`
	Extra string    `json:"extra,omitempty"`
}

// MoveResult is returned by Move.
type MoveResult struct {
	State  State       `json:"state"`
	Source chess.Coord `json:"source_coord"`
	Target chess.Coord `json:"target_coord"`
	Event  Event       `json:"event"`

	// Piece and Player describe the mover before promotion.
	Piece  chess.Kind `json:"piece"`
	Player chess.Side `json:"player"`
	// Captured is the kind taken on the target square, Empty if none.
	Captured chess.Kind `json:"captured,omitempty"`
}

// Completed reports whether the move was executed. A pawn move to the last
// rank without a promotion choice is not.
func (r MoveResult) Completed() bool {
	return r.Event.Type != EventMissingPromotion
}

// Move plays src->dst for the side to move. promotion is consulted only
// when a pawn reaches the last rank; chess.Empty means no choice was made,
// which yields an EventMissingPromotion result and leaves the position
// untouched.
func (p *Position) Move(src, dst chess.Coord, promotion chess.Kind) (MoveResult, error) {
	if !src.InBounds() || !dst.InBounds() {
		return MoveResult{}, moveError(errors.ErrOutOfBounds, src, dst)
	}
	if src == dst {
		return MoveResult{}, moveError(errors.ErrSameCoordinate, src, dst)
	}

	mover := *p.grid.At(src)
	if mover.IsEmpty() {
		return MoveResult{}, moveError(errors.ErrEmptySquare, src, dst)
	}
	if mover.Side != p.turn {
		return MoveResult{}, moveError(errors.ErrNotOwned, src, dst)
	}

	moves, castles := p.pieceOptions(src, false, true)
	if !chess.ContainsCoord(moves, dst) {
		return MoveResult{}, moveError(errors.ErrIllegalMove, src, dst)
	}

	result := MoveResult{
		Source: src,
		Target: dst,
		Piece:  mover.Kind,
		Player: mover.Side,
	}
	target := p.grid.At(dst)
	if target.IsEnemyOf(mover.Side) {
		result.Captured = target.Kind
	}

	if co, ok := findCastle(castles, dst); ok && mover.Kind == chess.King {
		p.applyCastle(src, co)
		result.Event = Event{Type: EventCastle, Extra: ExtraKingside}
		if dst.X < chess.BoardSize/2 {
			result.Event.Extra = ExtraQueenside
		}
	} else if mover.Kind == chess.Pawn && isPromotionRank(dst) {
		if promotion == chess.Empty {
			result.State = p.state
			result.Event = Event{Type: EventMissingPromotion}
			return result, nil
		}
		if !promotion.IsPromotionChoice() {
			return MoveResult{}, moveError(errors.Wrapf(errors.ErrInvalidPromotionChoice, "%s", promotion), src, dst)
		}
		p.grid.Place(chess.NewPiece(promotion, mover.Side, dst))
		p.grid.Clear(src)
		result.Event = Event{Type: EventPromotion, Extra: promotion.String()}
	} else {
		result.Event = Event{Type: EventMove, Extra: p.uniqueness(&mover, dst)}
		if result.Captured != chess.Empty {
			result.Event.Type = EventCaptures
		}
		p.grid.Relocate(src, dst)
		if mover.Kind == chess.Rook || mover.Kind == chess.King {
			p.grid.At(dst).Moved = true
		}
	}

	p.turn = p.turn.Opposite()
	p.last, p.hasLast = dst, true
	p.update()

	result.State = p.state
	return result, nil
}

// MoveAlgebraic is Move with algebraic square names ("e2", "e4").
func (p *Position) MoveAlgebraic(src, dst string, promotion chess.Kind) (MoveResult, error) {
	from, err := chess.ParseCoord(src)
	if err != nil {
		return MoveResult{}, err
	}
	to, err := chess.ParseCoord(dst)
	if err != nil {
		return MoveResult{}, err
	}
	return p.Move(from, to, promotion)
}

// uniqueness reports whether another piece of the mover's kind and side
// could also reach dst, using the options cached by the last update.
func (p *Position) uniqueness(mover *chess.Square, dst chess.Coord) string {
	var rivals []chess.Coord
	for _, c := range p.grid.Pieces(mover.Side) {
		sq := p.grid.At(c)
		if c == mover.Coord || sq.Kind != mover.Kind {
			continue
		}
		if chess.ContainsCoord(sq.Options.Moves, dst) {
			rivals = append(rivals, c)
		}
	}
	if len(rivals) == 0 {
		return ExtraUnique
	}

	sharesFile, sharesRank := false, false
	for _, r := range rivals {
		if r.X == mover.Coord.X {
			sharesFile = true
		}
		if r.Y == mover.Coord.Y {
			sharesRank = true
		}
	}

	switch {
	case !sharesFile:
		return ExtraMultiple + ExtraRow
	case !sharesRank:
		return ExtraMultiple + ExtraRank
	default:
		return ExtraMultiple + ExtraRow + ExtraRank
	}
}

func moveError(err error, src, dst chess.Coord) error {
	return &errors.MoveError{Err: err, Op: "move", Source: src.String(), Target: dst.String()}
}
