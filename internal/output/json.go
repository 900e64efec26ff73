package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/notation"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string            `json:"id,omitempty"`
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves"`
	Result     string            `json:"result"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN,omitempty"`
	Final      *engine.Snapshot  `json:"final,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int          `json:"moveNumber"`
	Color      string       `json:"color"` // "white" or "black"
	SAN        string       `json:"san"`
	UCI        string       `json:"uci"`
	Piece      string       `json:"piece"`
	Captured   string       `json:"captured,omitempty"`
	Event      engine.Event `json:"event"`
	State      string       `json:"state"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a single game in JSON format.
func OutputGameJSON(w io.Writer, game *Game, cfg *config.Config) error {
	return encodeIndented(w, GameToJSON(game, cfg))
}

// OutputGamesJSON writes several games as one JSON document.
func OutputGamesJSON(w io.Writer, games []*Game, cfg *config.Config) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, game := range games {
		jsonGames[i] = GameToJSON(game, cfg)
	}
	return encodeIndented(w, &JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game to JSON form. The final snapshot is included
// when the configuration asks for snapshots.
func GameToJSON(game *Game, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		ID:         game.ID,
		Tags:       completeTags(game),
		Moves:      make([]JSONMove, 0, len(game.Moves)),
		Result:     game.Result(),
		InitialFEN: game.StartFEN,
	}

	for _, e := range game.Recorder(config.SAN).Entries() {
		jg.Moves = append(jg.Moves, convertMove(e))
	}
	jg.PlyCount = len(jg.Moves)

	if game.Final != nil {
		jg.FinalFEN = engine.ToFEN(game.Final)
		if cfg.Replay.EmitSnapshots || cfg.Output.JSONFormat {
			snap := engine.ToSnapshot(game.Final)
			jg.Final = &snap
		}
	}
	return jg
}

func convertMove(e notation.Entry) JSONMove {
	jm := JSONMove{
		MoveNumber: e.Number,
		Color:      e.Side.String(),
		SAN:        e.Text,
		UCI:        notation.Coordinate(e.Result),
		Piece:      e.Result.Piece.String(),
		Event:      e.Result.Event,
		State:      e.Result.State.String(),
	}
	if e.Result.Captured != chess.Empty {
		jm.Captured = e.Result.Captured.String()
	}
	return jm
}

// WriteSnapshot writes the position snapshot, indented when indent is true.
func WriteSnapshot(w io.Writer, p *engine.Position, indent bool) error {
	snap := engine.ToSnapshot(p)
	if indent {
		return encodeIndented(w, snap)
	}
	return json.NewEncoder(w).Encode(snap)
}

func encodeIndented(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
