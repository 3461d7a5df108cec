// File: store.go
// Title: Check History Store
// Description: SQLite persistence for TUPL check runs and their semantic
//              diagnostics.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-04
// Modified: 2026-10-14
//
// Change History:
// - 2025-12-04 v0.1.0: SQLite log and metric store
// - 2026-10-14 v0.2.0: Runs and diagnostics of TUPL checks

package history

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/tuplang/foundation/core/error"
	"github.com/msto63/tuplang/foundation/utils/filex"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Store persists check runs
type Store interface {
	Record(ctx context.Context, run *Run) error
	Recent(ctx context.Context, limit int) ([]*Run, error)
	Get(ctx context.Context, id string) (*Run, error)
	Stats(ctx context.Context) (map[Status]int64, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/tupl-history.db",
	}
}

// Open creates or opens the history database at cfg.Path
func Open(cfg Config) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg = DefaultConfig()
	}

	dsn := cfg.Path + "?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on"
	if cfg.Path == MemoryPath {
		dsn = "file::memory:?_foreign_keys=on"
	} else if err := filex.EnsureParentDir(cfg.Path, 0o755); err != nil {
		return nil, dbError(err, "failed to create history directory", "history.Open")
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, dbError(err, "failed to open database", "history.Open")
	}
	if cfg.Path == MemoryPath {
		// Every connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "history.Open")
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		path TEXT NOT NULL,
		source_hash TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT,
		duration_ns INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS diagnostics (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		rule TEXT NOT NULL,
		name TEXT NOT NULL,
		message TEXT NOT NULL,
		line INTEGER NOT NULL,
		col INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_path ON runs(path);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores run and its diagnostics in one transaction. An empty ID
// or timestamp is filled in.
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now()
	}
	run.Timestamp = run.Timestamp.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err, "failed to begin transaction", "history.Record")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, timestamp, path, source_hash, status, error, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Timestamp, run.Path, run.SourceHash, string(run.Status), nullString(run.Error), int64(run.Duration))
	if err != nil {
		return dbError(err, "failed to insert run", "history.Record")
	}

	if len(run.Diagnostics) > 0 {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO diagnostics (run_id, seq, rule, name, message, line, col)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return dbError(err, "failed to prepare statement", "history.Record")
		}
		defer stmt.Close()

		for i, d := range run.Diagnostics {
			if _, err := stmt.ExecContext(ctx, run.ID, i, d.Rule, d.Name, d.Message, d.Line, d.Column); err != nil {
				return dbError(err, "failed to insert diagnostic", "history.Record")
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return dbError(err, "failed to commit transaction", "history.Record")
	}
	return nil
}

// Recent returns up to limit runs, newest first, without their diagnostic
// lists. A limit <= 0 returns all runs.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT r.id, r.timestamp, r.path, r.source_hash, r.status, r.error, r.duration_ns,
			(SELECT COUNT(*) FROM diagnostics d WHERE d.run_id = r.id)
		FROM runs r
		ORDER BY r.timestamp DESC, r.rowid DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query runs", "history.Recent")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows, true)
		if err != nil {
			return nil, dbError(err, "failed to scan run", "history.Recent")
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read runs", "history.Recent")
	}

	return runs, nil
}

// Get returns the run with the given ID including its diagnostics
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, path, source_hash, status, error, duration_ns
		FROM runs WHERE id = ?
	`, id)
	run, err := scanRun(row, false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mdwerror.Newf("run %s not found", id).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("history.Get").
			WithDetail("id", id)
	}
	if err != nil {
		return nil, dbError(err, "failed to load run", "history.Get")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT rule, name, message, line, col
		FROM diagnostics WHERE run_id = ? ORDER BY seq
	`, id)
	if err != nil {
		return nil, dbError(err, "failed to query diagnostics", "history.Get")
	}
	defer rows.Close()

	for rows.Next() {
		var d Diagnostic
		if err := rows.Scan(&d.Rule, &d.Name, &d.Message, &d.Line, &d.Column); err != nil {
			return nil, dbError(err, "failed to scan diagnostic", "history.Get")
		}
		run.Diagnostics = append(run.Diagnostics, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read diagnostics", "history.Get")
	}
	run.DiagnosticCount = len(run.Diagnostics)

	return run, nil
}

// Stats returns the number of runs per status
func (s *SQLiteStore) Stats(ctx context.Context) (map[Status]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM runs GROUP BY status`)
	if err != nil {
		return nil, dbError(err, "failed to query statistics", "history.Stats")
	}
	defer rows.Close()

	stats := make(map[Status]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, dbError(err, "failed to scan statistics", "history.Stats")
		}
		stats[Status(status)] = count
	}
	return stats, rows.Err()
}

// Prune removes runs older than the specified duration
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, dbError(err, "failed to prune runs", "history.Prune")
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner, withCount bool) (*Run, error) {
	var run Run
	var status string
	var errText sql.NullString
	var durationNS int64

	dest := []interface{}{&run.ID, &run.Timestamp, &run.Path, &run.SourceHash, &status, &errText, &durationNS}
	if withCount {
		dest = append(dest, &run.DiagnosticCount)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	run.Status = Status(status)
	run.Duration = time.Duration(durationNS)
	if errText.Valid {
		run.Error = errText.String
	}
	return &run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func dbError(err error, message, operation string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(operation)
}

var _ Store = (*SQLiteStore)(nil)
