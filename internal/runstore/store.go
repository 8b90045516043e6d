package runstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"pigmatch/internal/config"
	"pigmatch/internal/report"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users then need to delete or migrate their runs database.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrRunNotFound indicates the requested run ID has no row.
var ErrRunNotFound = errors.New("run not found")

// RunSummary is the persisted header of one evaluation run.
type RunSummary struct {
	ID           string
	CreatedAt    time.Time
	YearA        string
	YearB        string
	Window       float64
	Matched      int
	UnmatchedA   int
	UnmatchedB   int
	Coverage     float64
	Plausibility float64
	Stability    float64
}

// MatchRow is one persisted accepted match.
type MatchRow struct {
	AID        int64
	BID        int64
	PosDelta   float64
	ClockDelta *float64
	Cost       float64
}

// Store manages run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the runs database and verifies its schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.Database.Path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// RecordEvaluation persists one evaluation: the run header plus every
// accepted match, in a single transaction.
func (s *Store) RecordEvaluation(ctx context.Context, eval *report.Evaluation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, created_at, year_a, year_b, window,
            matched, unmatched_a, unmatched_b,
            coverage, plausibility, stability
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		eval.RunID,
		eval.StartedAt.UTC().Format(time.RFC3339Nano),
		eval.YearA,
		eval.YearB,
		eval.Base.Config.Window,
		eval.KPIs.Matched,
		eval.KPIs.UnmatchedA,
		eval.KPIs.UnmatchedB,
		eval.KPIs.Coverage,
		eval.KPIs.Plausibility,
		eval.KPIs.Stability,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_matches (run_id, anomaly_id_a, anomaly_id_b, pos_delta, clock_delta, cost)
         VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare match insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range eval.Base.Matches {
		var clock any
		if m.ClockDelta != nil {
			clock = *m.ClockDelta
		}
		if _, err := stmt.ExecContext(ctx, eval.RunID, m.AID, m.BID, m.PosDelta, clock, m.Cost); err != nil {
			return fmt.Errorf("insert match %d->%d: %w", m.AID, m.BID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// ListRuns returns run summaries ordered newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, year_a, year_b, window,
                matched, unmatched_a, unmatched_b,
                coverage, plausibility, stability
         FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// GetRun returns one run summary by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*RunSummary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, year_a, year_b, window,
                matched, unmatched_a, unmatched_b,
                coverage, plausibility, stability
         FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Matches returns the persisted matches of one run, ordered by A-id.
func (s *Store) Matches(ctx context.Context, runID string) ([]MatchRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT anomaly_id_a, anomaly_id_b, pos_delta, clock_delta, cost
         FROM run_matches WHERE run_id = ? ORDER BY anomaly_id_a`, runID)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var out []MatchRow
	for rows.Next() {
		var m MatchRow
		var clock sql.NullFloat64
		if err := rows.Scan(&m.AID, &m.BID, &m.PosDelta, &clock, &m.Cost); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		if clock.Valid {
			v := clock.Float64
			m.ClockDelta = &v
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunSummary, error) {
	var run RunSummary
	var created string
	err := row.Scan(
		&run.ID, &created, &run.YearA, &run.YearB, &run.Window,
		&run.Matched, &run.UnmatchedA, &run.UnmatchedB,
		&run.Coverage, &run.Plausibility, &run.Stability,
	)
	if err != nil {
		return RunSummary{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return RunSummary{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	run.CreatedAt = ts
	return run, nil
}
