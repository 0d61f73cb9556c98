// internal/history/snapshot.go
//
// Fail-soft read wrapper used by the game engine. A round seed must never
// crash on a broken store: retrieval failure degrades to an empty snapshot,
// which the pair selector then reports as insufficient data.

package history

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Snapshotter reads recent history without ever failing the caller.
type Snapshotter struct {
	store Store
}

// NewSnapshotter wraps a Store.
func NewSnapshotter(store Store) *Snapshotter {
	return &Snapshotter{store: store}
}

// Snapshot returns up to n recent records. On store failure it logs a
// warning and returns an empty slice.
func (s *Snapshotter) Snapshot(ctx context.Context, n int) []TranslationRecord {
	recs, err := s.store.Recent(ctx, n)
	if err != nil {
		log.Warn().Err(err).Int("limit", n).Msg("history snapshot failed; treating as empty")
		return []TranslationRecord{}
	}
	return recs
}
