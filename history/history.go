// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/history.go
// Summary: SQLite-backed record of detected links.
//
// The engine itself stays stateless; the tools feed detected links here so
// "recently seen addresses" survives across runs.

package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    detected_at INTEGER NOT NULL,     -- UnixNano
    row INTEGER NOT NULL,
    scheme TEXT NOT NULL,
    url TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_links_detected_at ON links(detected_at);
CREATE INDEX IF NOT EXISTS idx_links_scheme ON links(scheme);
`

// Entry is one recorded link.
type Entry struct {
	DetectedAt time.Time
	Row        int
	Scheme     string
	URL        string
}

// Store is a SQLite-backed link history.
type Store struct {
	db *sql.DB
}

// Open opens the history database at path, creating the file and its
// directory as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record stores one entry. A zero DetectedAt is filled with the current time;
// an empty Scheme is derived from the URL.
func (s *Store) Record(e Entry) error {
	if e.DetectedAt.IsZero() {
		e.DetectedAt = time.Now()
	}
	if e.Scheme == "" {
		e.Scheme = SchemeOf(e.URL)
	}
	_, err := s.db.Exec(
		`INSERT INTO links (detected_at, row, scheme, url) VALUES (?, ?, ?, ?)`,
		e.DetectedAt.UnixNano(), e.Row, e.Scheme, e.URL)
	if err != nil {
		return fmt.Errorf("failed to record link: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	return s.query(
		`SELECT detected_at, row, scheme, url FROM links
		 ORDER BY detected_at DESC LIMIT ?`, limit)
}

// ByScheme returns up to limit entries for one scheme, newest first.
func (s *Store) ByScheme(scheme string, limit int) ([]Entry, error) {
	return s.query(
		`SELECT detected_at, row, scheme, url FROM links
		 WHERE scheme = ? ORDER BY detected_at DESC LIMIT ?`, scheme, limit)
}

func (s *Store) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ns int64
		if err := rows.Scan(&ns, &e.Row, &e.Scheme, &e.URL); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		e.DetectedAt = time.Unix(0, ns)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SchemeOf returns the scheme keyword of a URL, or "" when it has none.
func SchemeOf(url string) string {
	i := strings.IndexByte(url, ':')
	if i <= 0 {
		return ""
	}
	return url[:i]
}
