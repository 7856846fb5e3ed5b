// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists parsed bookmarks in a local SQLite database so a
// large Pocket export can be inspected before (or after) conversion. The
// catalog is a side index only; conversion itself never touches it.
package catalog

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pocketport/internal/pocket"
	"github.com/pdiddy/pocketport/pkg/types"
)

// Store manages the catalog SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one cataloged bookmark.
type Entry struct {
	URL        string
	Title      string
	Tags       string
	AddedAt    int64
	HasDate    bool
	ImportedAt string
}

// Open opens or creates the catalog database named by cfg and ensures the
// schema exists.
func Open(cfg types.CatalogConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS bookmarks (
		url TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		added_at INTEGER,
		tags TEXT,
		imported_at TEXT NOT NULL
	)`)
	return err
}

// LoadResult holds the outcome of loading one Pocket export into the catalog.
type LoadResult struct {
	Stored        int
	Skipped       int
	BadTimestamps int
}

// Load drains a Pocket reader into the catalog, upserting every row with a
// URL. Rows without a URL and rows with a malformed time_added produce the
// same warnings on w that a conversion would.
func (s *Store) Load(r *pocket.Reader, w io.Writer) (LoadResult, error) {
	var result LoadResult
	for {
		b, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, err
		}

		if b.URL == "" {
			fmt.Fprintf(w, "warning: skipping row %d due to missing URL (title: %q)\n", b.Row, b.Title)
			result.Skipped++
			continue
		}

		ts, hasDate := pocket.ParseAddedAt(b.AddedAt)
		if b.AddedAt != "" && !hasDate {
			fmt.Fprintf(w, "warning: invalid time_added %q for %q; storing no date\n", b.AddedAt, b.Title)
			result.BadTimestamps++
		}

		if err := s.Put(b, ts, hasDate); err != nil {
			return result, err
		}
		result.Stored++
	}
	return result, nil
}

// Put upserts one bookmark. Reloading the same export updates titles and
// tags in place rather than duplicating rows. addedAt carries the parsed
// time_added value; pass hasDate false to store NULL.
func (s *Store) Put(b types.Bookmark, addedAt int64, hasDate bool) error {
	var added sql.NullInt64
	if hasDate {
		added = sql.NullInt64{Int64: addedAt, Valid: true}
	}

	_, err := s.db.Exec(`INSERT INTO bookmarks (url, title, added_at, tags, imported_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			added_at = excluded.added_at,
			tags = excluded.tags,
			imported_at = excluded.imported_at`,
		b.URL, b.Title, added, b.Tags, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing bookmark %s: %w", b.URL, err)
	}
	return nil
}

// List returns cataloged bookmarks, most recently imported first. A limit
// of 0 or less returns everything.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT url, title, added_at, tags, imported_at
		FROM bookmarks ORDER BY imported_at DESC, rowid DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var added sql.NullInt64
		if err := rows.Scan(&e.URL, &e.Title, &added, &e.Tags, &e.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		if added.Valid {
			e.AddedAt = added.Int64
			e.HasDate = true
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of cataloged bookmarks.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM bookmarks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting bookmarks: %w", err)
	}
	return n, nil
}
