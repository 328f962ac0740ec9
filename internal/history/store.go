// Package history records past directive invocations in a SQLite database.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/camcl/cellcheck/internal/filelock"
)

//go:embed schema.sql
var schemaSQL string

// Record is a single directive invocation.
type Record struct {
	ID         string    `json:"id"`
	Directive  string    `json:"directive"`
	Options    string    `json:"options"`
	CellBytes  int       `json:"cell_bytes"`
	Status     int       `json:"status"`
	Message    string    `json:"message,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store manages the SQLite database of invocation records.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the history database at dbPath and
// initializes its schema. Use ":memory:" for an in-memory database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so subsequent operations wait on locks.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a new invocation record. A fresh ID and timestamp are
// assigned when absent; the stored record is returned.
func (s *Store) Record(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invocations (id, directive, options, cell_bytes, status, message, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Directive, rec.Options, rec.CellBytes, rec.Status, rec.Message, rec.DurationMS, rec.CreatedAt,
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert invocation: %w", err)
	}
	return rec, nil
}

// List returns the most recent records, newest first.
// limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, directive, options, cell_bytes, status, message, duration_ms, created_at
		FROM invocations
		ORDER BY created_at DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invocations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Directive, &rec.Options, &rec.CellBytes,
			&rec.Status, &rec.Message, &rec.DurationMS, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all records and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM invocations")
	if err != nil {
		return 0, fmt.Errorf("clear invocations: %w", err)
	}
	return res.RowsAffected()
}

// Prune removes records older than keepDays days.
// keepDays <= 0 disables pruning.
func (s *Store) Prune(ctx context.Context, keepDays int) (int64, error) {
	if keepDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -keepDays)
	res, err := s.db.ExecContext(ctx, "DELETE FROM invocations WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune invocations: %w", err)
	}
	return res.RowsAffected()
}

// ExportJSON writes all records to path as indented JSON. The write is
// atomic and guarded by a file lock so concurrent exporters don't
// interleave.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	records, err := s.List(ctx, 0)
	if err != nil {
		return err
	}
	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal invocations: %w", err)
	}

	return filelock.WithLock(path, func() error {
		return filelock.AtomicWrite(path, data, 0644)
	})
}
