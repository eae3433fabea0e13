package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/DailyRoutines/isptranslator"
)

// ErrDuplicate is returned by Put when a row for the key already exists.
// Concurrent misses for the same key are expected to be rare because of the
// read-before-write discipline, and a rejected second write is a non-fatal,
// loggable condition, not a request failure.
var ErrDuplicate = errors.New("store: entry already exists")

// SQLiteStore is a SQLite-backed persistent store. Entries are immortal once
// written: the lookup path never updates or deletes them.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) the database at path and ensures
// the schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS translations (
		cache_key TEXT PRIMARY KEY,
		translated_text TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Get performs a point lookup by cache key. Returns (nil, nil) when no entry
// exists.
func (s *SQLiteStore) Get(ctx context.Context, key string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT cache_key, translated_text, created_at FROM translations WHERE cache_key = ?`, key)

	var entry Entry
	err := row.Scan(&entry.CacheKey, &entry.TranslatedText, &entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Put inserts a new row for the key. A uniqueness violation from a
// concurrent write for the same key maps to ErrDuplicate.
func (s *SQLiteStore) Put(ctx context.Context, key, text string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translations (cache_key, translated_text, created_at) VALUES (?, ?, ?)`,
		key, text, time.Now().UTC())
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Health pings the database.
func (s *SQLiteStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Verify SQLiteStore implements Store
var _ isptranslator.Store = (*SQLiteStore)(nil)
