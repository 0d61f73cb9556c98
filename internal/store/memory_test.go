package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarinova/phrasematch/internal/game"
)

func testRound(t *testing.T) *game.Round {
	t.Helper()
	pairs := []game.Pair{
		{PairID: 0, Input: "a", Output: "x"},
		{PairID: 1, Input: "b", Output: "y"},
		{PairID: 2, Input: "c", Output: "z"},
	}
	r := game.NewRound(pairs, game.DefaultConfig())
	t.Cleanup(r.Stop)
	return r
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	r := testRound(t)

	require.NoError(t, s.Save(ctx, r))

	got, err := s.Get(ctx, r.ID())
	require.NoError(t, err)
	assert.Same(t, r, got)

	require.NoError(t, s.Delete(ctx, r.ID()))
	_, err = s.Get(ctx, r.ID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DeleteMissingIsNoop(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Delete(context.Background(), "nope"))
}
