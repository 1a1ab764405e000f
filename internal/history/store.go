// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists batch strip runs in a SQLite database so
// past runs and their per-file outcomes can be listed and exported.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcript-engine/internal/batch"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

const dbFile = "history.db"

// File outcome statuses stored per run.
const (
	StatusStripped = "stripped"
	StatusFailed   = "failed"
)

// Store manages the batch run history SQLite database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// Run is one recorded batch strip invocation.
type Run struct {
	ID        int64     `json:"id" yaml:"id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	InputDir  string    `json:"input_dir" yaml:"input_dir"`
	OutputDir string    `json:"output_dir" yaml:"output_dir"`
	Processed int       `json:"processed" yaml:"processed"`
	Failed    int       `json:"failed" yaml:"failed"`
	Skipped   int       `json:"skipped" yaml:"skipped"`
}

// FileOutcome is the recorded result for one file of a run.
type FileOutcome struct {
	RunID  int64  `json:"run_id" yaml:"run_id"`
	File   string `json:"file" yaml:"file"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewStore opens or creates the history database at
// cfg.HistoryDir/history.db, creating the schema if needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = 20
	}

	s := &Store{db: db, maxRuns: maxRuns}

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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			input_dir TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			processed INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			skipped INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_files (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			file TEXT NOT NULL,
			output TEXT,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun stores one batch result with its per-file outcomes and
// returns the new run ID.
func (s *Store) RecordRun(ctx context.Context, inputDir, outputDir string, result batch.Result) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	startedAt := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, input_dir, output_dir, processed, failed, skipped)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		startedAt, inputDir, outputDir,
		len(result.Processed), len(result.Failed), len(result.Skipped),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_files (run_id, file, output, status, error) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range result.Processed {
		if _, err := stmt.ExecContext(ctx, runID, f.Input, f.Output, StatusStripped, ""); err != nil {
			return 0, fmt.Errorf("inserting file outcome %s: %w", f.Input, err)
		}
	}
	for _, f := range result.Failed {
		if _, err := stmt.ExecContext(ctx, runID, f.File, "", StatusFailed, f.Error); err != nil {
			return 0, fmt.Errorf("inserting file outcome %s: %w", f.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first. A limit of 0
// uses the store's configured maximum.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxRuns
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, input_dir, output_dir, processed, failed, skipped
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &startedAt, &r.InputDir, &r.OutputDir,
			&r.Processed, &r.Failed, &r.Skipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunFiles returns the per-file outcomes of a run in insertion order.
func (s *Store) RunFiles(ctx context.Context, runID int64) ([]FileOutcome, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, file, output, status, error FROM run_files
		 WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run files: %w", err)
	}
	defer rows.Close()

	var files []FileOutcome
	for rows.Next() {
		var f FileOutcome
		if err := rows.Scan(&f.RunID, &f.File, &f.Output, &f.Status, &f.Error); err != nil {
			return nil, fmt.Errorf("scanning file outcome: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// export is the serialized shape of a history export.
type export struct {
	Runs  []Run         `json:"runs" yaml:"runs"`
	Files []FileOutcome `json:"files" yaml:"files"`
}

// Export writes all recorded runs and file outcomes to w in the given
// format ("yaml" or "json").
func (s *Store) Export(ctx context.Context, w io.Writer, format string) error {
	runs, err := s.listAllRuns(ctx)
	if err != nil {
		return err
	}

	var files []FileOutcome
	for _, r := range runs {
		fs, err := s.RunFiles(ctx, r.ID)
		if err != nil {
			return err
		}
		files = append(files, fs...)
	}

	out := export{Runs: runs, Files: files}

	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(out)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

func (s *Store) listAllRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, input_dir, output_dir, processed, failed, skipped
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &startedAt, &r.InputDir, &r.OutputDir,
			&r.Processed, &r.Failed, &r.Skipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
