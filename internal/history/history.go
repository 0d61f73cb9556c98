// internal/history/history.go
//
// Translation history domain types and the Store interface.
// Implementations may be backed by SQLite (this package), Postgres, etc.

package history

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no stored record.
var ErrNotFound = errors.New("history: record not found")

// DefaultRecentLimit is the snapshot size used when the caller does not ask
// for a specific limit.
const DefaultRecentLimit = 50

// TranslationRecord is one stored translation.
// Immutable once stored except via Clear.
type TranslationRecord struct {
	ID        int64     `json:"id"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	LangIn    string    `json:"langIn"`
	LangOut   string    `json:"langOut"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store defines the persistence interface for translation history.
type Store interface {
	// Save persists a record. If a record with the same input and language
	// pair already exists, the existing record's id is returned and no new
	// row is inserted.
	Save(ctx context.Context, rec TranslationRecord) (int64, error)

	// Recent returns up to n records, most recent first.
	// n <= 0 falls back to DefaultRecentLimit.
	Recent(ctx context.Context, n int) ([]TranslationRecord, error)

	// Clear deletes all stored records.
	Clear(ctx context.Context) error

	// FindByInput returns the most recent record whose input matches text
	// exactly, or ErrNotFound.
	FindByInput(ctx context.Context, text string) (*TranslationRecord, error)

	// Search returns records whose input or output contains q
	// (case-insensitive), most recent first.
	Search(ctx context.Context, q string) ([]TranslationRecord, error)
}
