// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of CSV files the fetcher has saved.
// The ledger is optional; the fetcher writes it only when a database path
// is configured.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/estat-fetcher/pkg/types"
)

const defaultListLimit = 20

// savedAtLayout is fixed-width so saved_at sorts chronologically as text.
const savedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path and creates the
// schema if it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS downloads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			target_key TEXT NOT NULL,
			stats_data_id TEXT NOT NULL,
			path TEXT NOT NULL,
			rows INTEGER NOT NULL,
			saved_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_target_key ON downloads(target_key)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends a download to the ledger. A zero SavedAt is replaced with
// the current time.
func (s *Store) Record(ctx context.Context, rec types.DownloadRecord) error {
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO downloads (target_key, stats_data_id, path, rows, saved_at) VALUES (?, ?, ?, ?, ?)`,
		rec.TargetKey, rec.StatsDataID, rec.Path, rec.Rows, rec.SavedAt.UTC().Format(savedAtLayout),
	)
	if err != nil {
		return fmt.Errorf("recording download of %s: %w", rec.StatsDataID, err)
	}
	return nil
}

// Filter narrows a List query.
type Filter struct {
	// TargetKey restricts results to one target when non-empty.
	TargetKey string

	// Limit caps the number of records (default 20).
	Limit int
}

// List returns recorded downloads, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]types.DownloadRecord, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT target_key, stats_data_id, path, rows, saved_at FROM downloads`
	var args []any
	if f.TargetKey != "" {
		query += ` WHERE target_key = ?`
		args = append(args, f.TargetKey)
	}
	query += ` ORDER BY saved_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying downloads: %w", err)
	}
	defer rows.Close()

	var records []types.DownloadRecord
	for rows.Next() {
		var (
			rec     types.DownloadRecord
			savedAt string
		)
		if err := rows.Scan(&rec.TargetKey, &rec.StatsDataID, &rec.Path, &rec.Rows, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning download row: %w", err)
		}
		t, err := time.Parse(savedAtLayout, savedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing saved_at %q: %w", savedAt, err)
		}
		rec.SavedAt = t
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Latest returns the most recent download for targetKey. The boolean is
// false when the target has never been saved.
func (s *Store) Latest(ctx context.Context, targetKey string) (types.DownloadRecord, bool, error) {
	records, err := s.List(ctx, Filter{TargetKey: targetKey, Limit: 1})
	if err != nil {
		return types.DownloadRecord{}, false, err
	}
	if len(records) == 0 {
		return types.DownloadRecord{}, false, nil
	}
	return records[0], true, nil
}

// ErrDisabled is returned by OpenConfigured when no history path is set.
var ErrDisabled = errors.New("download history is disabled (set history.path)")

// OpenConfigured opens the store named by cfg, or returns ErrDisabled.
func OpenConfigured(cfg types.HistoryConfig) (*Store, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}
	return Open(cfg.Path)
}
