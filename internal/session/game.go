// Package session keeps independent games in memory. Each game owns its
// own position and history and serializes access with its own mutex, so
// different games can be played from different goroutines.
package session

import (
	"sync"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/errors"
	"github.com/lgbarn/cheese-go/internal/output"
	"github.com/lgbarn/cheese-go/internal/parser"
)

// Game is one game in progress.
type Game struct {
	ID       string
	StartFEN string // empty for the standard starting position

	mu       sync.Mutex
	tags     map[string]string
	position *engine.Position
	history  []engine.MoveResult
	previous []*engine.Position // position before each recorded move
}

func newGame(id string, p *engine.Position, startFEN string, tags map[string]string) *Game {
	g := &Game{
		ID:       id,
		StartFEN: startFEN,
		tags:     make(map[string]string, len(tags)),
		position: p,
	}
	for k, v := range tags {
		g.tags[k] = v
	}
	return g
}

// Move plays src->dst. Moves after the game has ended are refused with
// ErrGameOver. A missing promotion choice is returned as the result
// event and nothing is recorded.
func (g *Game) Move(src, dst chess.Coord, promotion chess.Kind) (engine.MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkOpen(src.String(), dst.String()); err != nil {
		return engine.MoveResult{}, err
	}
	before := g.position.Clone()
	res, err := g.position.Move(src, dst, promotion)
	if err != nil {
		return res, err
	}
	g.record(before, res)
	return res, nil
}

// MoveText plays a move written as "e2e4", "e2-e4", "a7a8=Q" or SAN.
func (g *Game) MoveText(text string) (engine.MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkOpen(text, ""); err != nil {
		return engine.MoveResult{}, err
	}
	before := g.position.Clone()
	res, err := parser.Apply(g.position, text)
	if err != nil {
		return res, err
	}
	g.record(before, res)
	return res, nil
}

func (g *Game) checkOpen(src, dst string) error {
	if !g.position.Over() {
		return nil
	}
	return &errors.MoveError{
		Err:    errors.Wrapf(errors.ErrGameOver, "%s", g.position.State()),
		Op:     "move",
		Source: src,
		Target: dst,
		Game:   g.ID,
		Ply:    len(g.history) + 1,
	}
}

func (g *Game) record(before *engine.Position, res engine.MoveResult) {
	if !res.Completed() {
		return
	}
	g.history = append(g.history, res)
	g.previous = append(g.previous, before)
}

// Undo takes back the last recorded move. It reports false when there
// is nothing to take back.
func (g *Game) Undo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.previous)
	if n == 0 {
		return false
	}
	g.position = g.previous[n-1]
	g.previous = g.previous[:n-1]
	g.history = g.history[:n-1]
	return true
}

// Inspect returns the legal destinations of the piece on c.
func (g *Game) Inspect(c chess.Coord) (engine.Inspection, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position.Inspect(c)
}

// Position returns a copy of the current position.
func (g *Game) Position() *engine.Position {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position.Clone()
}

// State returns the current game state.
func (g *Game) State() engine.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position.State()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Side {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position.Turn()
}

// History returns a copy of the recorded moves.
func (g *Game) History() []engine.MoveResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]engine.MoveResult(nil), g.history...)
}

// Positions returns copies of the position after each recorded move.
func (g *Game) Positions() []*engine.Position {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]*engine.Position, 0, len(g.previous))
	for i := 1; i < len(g.previous); i++ {
		out = append(out, g.previous[i].Clone())
	}
	if len(g.previous) > 0 {
		out = append(out, g.position.Clone())
	}
	return out
}

// Snapshot returns the current position in snapshot form.
func (g *Game) Snapshot() engine.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.ToSnapshot(g.position)
}

// FEN returns the current position as FEN.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.ToFEN(g.position)
}

// SetTag sets a tag written with the exported game.
func (g *Game) SetTag(name, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tags[name] = value
}

// Export returns the game ready for output.
func (g *Game) Export() *output.Game {
	g.mu.Lock()
	defer g.mu.Unlock()

	tags := make(map[string]string, len(g.tags))
	for k, v := range g.tags {
		tags[k] = v
	}
	return &output.Game{
		ID:       g.ID,
		Tags:     tags,
		StartFEN: g.StartFEN,
		Moves:    append([]engine.MoveResult(nil), g.history...),
		Final:    g.position.Clone(),
	}
}
