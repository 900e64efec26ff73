package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/errors"
)

// Manager is a registry of games keyed by id.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{games: make(map[string]*Game)}
}

// GameOption configures a new game.
type GameOption func(*gameSpec)

type gameSpec struct {
	id       string
	fen      string
	snapshot []byte
	tags     map[string]string
}

// WithID uses a caller-chosen id instead of a fresh UUID.
func WithID(id string) GameOption {
	return func(s *gameSpec) {
		s.id = id
	}
}

// WithFEN starts the game from a FEN position.
func WithFEN(fen string) GameOption {
	return func(s *gameSpec) {
		s.fen = fen
	}
}

// WithSnapshot starts the game from snapshot JSON.
func WithSnapshot(data []byte) GameOption {
	return func(s *gameSpec) {
		s.snapshot = data
	}
}

// WithTags sets the tags written with the exported game.
func WithTags(tags map[string]string) GameOption {
	return func(s *gameSpec) {
		s.tags = tags
	}
}

// Create starts a new game and registers it. Without options the game
// starts from the standard position under a fresh UUID.
func (m *Manager) Create(opts ...GameOption) (*Game, error) {
	spec := gameSpec{}
	for _, opt := range opts {
		opt(&spec)
	}

	p, startFEN, err := spec.position()
	if err != nil {
		return nil, err
	}
	if spec.id == "" {
		spec.id = uuid.New().String()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.games[spec.id]; exists {
		return nil, errors.Wrapf(errors.ErrGameExists, "%q", spec.id)
	}
	g := newGame(spec.id, p, startFEN, spec.tags)
	m.games[spec.id] = g
	return g, nil
}

func (s *gameSpec) position() (*engine.Position, string, error) {
	switch {
	case s.snapshot != nil:
		p, err := engine.UnmarshalSnapshot(s.snapshot)
		if err != nil {
			return nil, "", err
		}
		return p, startFEN(p), nil
	case s.fen != "":
		p, err := engine.NewPositionFromFEN(s.fen)
		if err != nil {
			return nil, "", err
		}
		return p, startFEN(p), nil
	}
	return engine.NewPosition(), "", nil
}

// startFEN is the FEN to record for a custom start, empty when the
// position is the standard one.
func startFEN(p *engine.Position) string {
	fen := engine.ToFEN(p)
	if fen == engine.InitialFEN {
		return ""
	}
	return fen
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownGame, "%q", id)
	}
	return g, nil
}

// Remove drops a game from the registry.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(errors.ErrUnknownGame, "%q", id)
	}
	delete(m.games, id)
	return nil
}

// IDs returns the registered ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
