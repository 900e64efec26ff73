package engine

import (
	"bytes"
	"encoding/json"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/errors"
)

// Snapshot is the serialisable form of a Position.
type Snapshot struct {
	State  State         `json:"state"`
	Player chess.Side    `json:"player"`
	Last   OptionalCoord `json:"last"`
	Pieces []PieceRecord `json:"pieces"`
}

// PieceRecord is one piece in a Snapshot. Options, Pinned and Pinner are
// advisory on import; they are recomputed.
type PieceRecord struct {
	Type    chess.Kind    `json:"type"`
	Player  chess.Side    `json:"player"`
	Coord   chess.Coord   `json:"coord"`
	Options OptionsRecord `json:"options"`
	Pinned  bool          `json:"pinned"`
	Pinner  *chess.Coord  `json:"pinner"`
	Moved   bool          `json:"moved,omitempty"`
}

// OptionsRecord holds a piece's cached destinations.
type OptionsRecord struct {
	Moves  []chess.Coord  `json:"moves"`
	Others []CastleRecord `json:"others"`
}

// CastleRecord is a castling option.
type CastleRecord struct {
	RookCoord       chess.Coord `json:"rook_coord"`
	RookDestination chess.Coord `json:"rook_destination"`
	KingDestination chess.Coord `json:"king_destination"`
}

// OptionalCoord is a coordinate that encodes as {} when unset.
type OptionalCoord struct {
	Coord chess.Coord
	Valid bool
}

// MarshalJSON implements json.Marshaler.
func (o OptionalCoord) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("{}"), nil
	}
	return json.Marshal(o.Coord)
}

// UnmarshalJSON implements json.Unmarshaler. Both {} and null mean unset.
func (o *OptionalCoord) UnmarshalJSON(data []byte) error {
	*o = OptionalCoord{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw struct {
		X *int `json:"x"`
		Y *int `json:"y"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(errors.ErrInvalidSnapshot, err.Error())
	}
	switch {
	case raw.X == nil && raw.Y == nil:
		return nil
	case raw.X == nil || raw.Y == nil:
		return errors.Wrap(errors.ErrInvalidSnapshot, "last move needs both x and y")
	}
	*o = OptionalCoord{Coord: chess.C(*raw.X, *raw.Y), Valid: true}
	return nil
}

// ToSnapshot captures the position. White's pieces come first, then
// Black's, each in grid order.
func ToSnapshot(p *Position) Snapshot {
	s := Snapshot{
		State:  p.state,
		Player: p.turn,
		Last:   OptionalCoord{Coord: p.last, Valid: p.hasLast},
		Pieces: []PieceRecord{},
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, sq := range p.PlayerPieces(side) {
			s.Pieces = append(s.Pieces, pieceRecord(&sq))
		}
	}
	return s
}

func pieceRecord(sq *chess.Square) PieceRecord {
	rec := PieceRecord{
		Type:   sq.Kind,
		Player: sq.Side,
		Coord:  sq.Coord,
		Options: OptionsRecord{
			Moves:  append([]chess.Coord{}, sq.Options.Moves...),
			Others: make([]CastleRecord, 0, len(sq.Options.Others)),
		},
		Pinned: sq.Pinned,
		Moved:  sq.Moved,
	}
	for _, co := range sq.Options.Others {
		rec.Options.Others = append(rec.Options.Others, CastleRecord{
			RookCoord:       co.Rook,
			RookDestination: co.RookDestination,
			KingDestination: co.KingDestination,
		})
	}
	if pinner, ok := sq.PinnerCoord(); ok {
		rec.Pinner = &pinner
	}
	return rec
}

// FromSnapshot rebuilds a position. Only occupancy, side to move, the last
// move and the moved flags are taken from s; everything else is recomputed.
// Kings and rooks off their home squares count as moved, and pawns may
// double-step only from their home rank.
func FromSnapshot(s Snapshot) (*Position, error) {
	grid := chess.NewGrid()
	var kings [2]int

	for i, rec := range s.Pieces {
		if !rec.Coord.InBounds() {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "piece %d: coordinate %s out of bounds", i, rec.Coord)
		}
		if rec.Type <= chess.Empty || rec.Type >= chess.NumKinds {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "piece %d: missing type", i)
		}
		if rec.Player != chess.White && rec.Player != chess.Black {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "piece %d: unknown player", i)
		}
		if grid.At(rec.Coord).IsPiece() {
			return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "piece %d: square %s occupied twice", i, rec.Coord)
		}

		sq := chess.NewPiece(rec.Type, rec.Player, rec.Coord)
		switch rec.Type {
		case chess.Pawn:
			sq.Start = chess.C(rec.Coord.X, chess.PawnRank(rec.Player))
		case chess.King:
			kings[rec.Player]++
			sq.Moved = rec.Moved || rec.Coord != chess.C(4, chess.HomeRank(rec.Player))
		case chess.Rook:
			home := rec.Coord.Y == chess.HomeRank(rec.Player) &&
				(rec.Coord.X == 0 || rec.Coord.X == chess.BoardSize-1)
			sq.Moved = rec.Moved || !home
		}
		grid.Place(sq)
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "need one king per side, got %d white and %d black",
			kings[chess.White], kings[chess.Black])
	}
	if s.Last.Valid && !s.Last.Coord.InBounds() {
		return nil, errors.Wrapf(errors.ErrInvalidSnapshot, "last move %s out of bounds", s.Last.Coord)
	}

	p := &Position{grid: grid, turn: s.Player, last: s.Last.Coord, hasLast: s.Last.Valid}
	p.update()
	return p, nil
}

// MarshalSnapshot encodes the position as snapshot JSON.
func MarshalSnapshot(p *Position) ([]byte, error) {
	return json.Marshal(ToSnapshot(p))
}

// UnmarshalSnapshot decodes snapshot JSON into a new position.
func UnmarshalSnapshot(data []byte) (*Position, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		if errors.Is(err, errors.ErrInvalidSnapshot) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrInvalidSnapshot, err.Error())
	}
	return FromSnapshot(s)
}
