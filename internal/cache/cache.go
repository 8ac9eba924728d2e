// Package cache stores fetched landing pages in a local SQLite database so
// repeated harvest runs do not re-walk the whole document repository.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a URL-keyed page cache.
type Store struct {
	db *sql.DB
}

// Open opens or creates a cache database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS pages (
			url TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached body for a URL, and whether one was present.
func (s *Store) Get(url string) (string, bool, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM pages WHERE url = ?`, url).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cached page: %w", err)
	}
	return body, true, nil
}

// Put stores or replaces the cached body for a URL.
func (s *Store) Put(url, body string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO pages (url, body, fetched_at) VALUES (?, ?, ?)`,
		url, body, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("caching page: %w", err)
	}
	return nil
}

// Purge removes every cached page.
func (s *Store) Purge() error {
	if _, err := s.db.Exec(`DELETE FROM pages`); err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}
	return nil
}

// Count returns the number of cached pages.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM pages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cached pages: %w", err)
	}
	return n, nil
}
