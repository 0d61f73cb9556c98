// internal/history/sqlite.go
//
// SQLite-backed implementation of the history Store.
// Works against any database/sql handle using SQLite placeholder syntax;
// the translations table is created by the sql/ migrations.

package history

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore implements Store over a *sql.DB.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore constructs a Store backed by db.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts a record unless an identical input + language pair is already
// stored, in which case the existing id is returned.
func (s *SQLiteStore) Save(ctx context.Context, rec TranslationRecord) (int64, error) {
	var existing int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM translations WHERE input=? AND lang_in=? AND lang_out=? LIMIT 1`,
		rec.Input, rec.LangIn, rec.LangOut,
	).Scan(&existing)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("check duplicate: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO translations (input, output, lang_in, lang_out) VALUES (?,?,?,?)`,
		rec.Input, rec.Output, rec.LangIn, rec.LangOut,
	)
	if err != nil {
		return 0, fmt.Errorf("insert translation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Recent returns up to n records, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, n int) ([]TranslationRecord, error) {
	if n <= 0 {
		n = DefaultRecentLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, output, lang_in, lang_out, created_at
		 FROM translations ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Clear deletes every stored record.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM translations`)
	return err
}

// FindByInput returns the most recent record matching text exactly.
func (s *SQLiteStore) FindByInput(ctx context.Context, text string) (*TranslationRecord, error) {
	var rec TranslationRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, input, output, lang_in, lang_out, created_at
		 FROM translations WHERE input=? ORDER BY id DESC LIMIT 1`, text,
	).Scan(&rec.ID, &rec.Input, &rec.Output, &rec.LangIn, &rec.LangOut, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Search returns records whose input or output contains q, newest first.
// Matching is case-insensitive (SQLite LIKE default for ASCII).
func (s *SQLiteStore) Search(ctx context.Context, q string) ([]TranslationRecord, error) {
	like := "%" + q + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, output, lang_in, lang_out, created_at
		 FROM translations WHERE input LIKE ? OR output LIKE ?
		 ORDER BY id DESC`, like, like,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// scanRecords drains a record result set.
func scanRecords(rows *sql.Rows) ([]TranslationRecord, error) {
	out := []TranslationRecord{}
	for rows.Next() {
		var rec TranslationRecord
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Output, &rec.LangIn, &rec.LangOut, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
