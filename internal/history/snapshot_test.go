package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubStore lets tests force Recent to succeed or fail.
type stubStore struct {
	Store
	recs []TranslationRecord
	err  error
}

func (s *stubStore) Recent(ctx context.Context, n int) ([]TranslationRecord, error) {
	return s.recs, s.err
}

func TestSnapshotter_PassesThroughRecords(t *testing.T) {
	recs := []TranslationRecord{{ID: 1, Input: "hello", Output: "hallo"}}
	s := NewSnapshotter(&stubStore{recs: recs})

	got := s.Snapshot(context.Background(), 50)
	assert.Equal(t, recs, got)
}

func TestSnapshotter_DegradesFailureToEmptySnapshot(t *testing.T) {
	s := NewSnapshotter(&stubStore{err: errors.New("connection refused")})

	got := s.Snapshot(context.Background(), 50)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
