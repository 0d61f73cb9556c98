// internal/store/memory.go
//
// In-memory implementation of the round registry.
// Rounds are ephemeral by design (no persistence across restarts), so the
// map-backed store is the production implementation, not just a test double.
//
// Characteristics:
//   - Stores *game.Round objects keyed by round ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors are returned for missing round IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/tmarinova/phrasematch/internal/game"
)

// ErrNotFound is returned when no round exists for an id.
var ErrNotFound = errors.New("round not found")

// Store defines the registry interface for active rounds.
type Store interface {
	// Save registers or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get retrieves a round by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Delete removes a round. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds map
	rounds map[string]*game.Round // keyed by Round.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

// Save adds or updates the round in the map.
func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID()] = r
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

// Delete removes the round from the map.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}
