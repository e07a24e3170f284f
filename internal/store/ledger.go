// Package store persists a run's generated mutants to SQLite: one table,
// prepared statements, a transaction per batch.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mutagenyx/mutagenyx/internal/generate"
)

// Ledger records every mutant a run produced, so `mutagenyx history` can
// answer "what mutants did seed N produce for file F" without re-running
// generation.
type Ledger struct {
	db *sql.DB
}

// Open creates (or reuses) the ledger database at dbPath.
func Open(dbPath string) (*Ledger, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS mutants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_at INTEGER NOT NULL,
		input_file TEXT NOT NULL,
		algorithm TEXT NOT NULL,
		seed INTEGER NOT NULL,
		mutant_index INTEGER NOT NULL,
		comment TEXT NOT NULL,
		output_path TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_mutants_input_file ON mutants(input_file);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Ledger) Close() error { return l.db.Close() }

// Record inserts one FileResult's mutants as a single transaction, so a
// partially failed batch never leaves a run half-recorded.
func (l *Ledger) Record(runAt time.Time, result generate.FileResult) error {
	if len(result.Mutants) == 0 {
		return nil
	}
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO mutants (run_at, input_file, algorithm, seed, mutant_index, comment, output_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, m := range result.Mutants {
		if _, err := stmt.Exec(runAt.Unix(), m.InputFile, m.Algorithm, m.Seed, m.Index, m.Comment, m.OutputPath); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert mutant record: %w", err)
		}
	}
	return tx.Commit()
}

// Record describes one row read back from the ledger.
type Record struct {
	RunAt      time.Time
	InputFile  string
	Algorithm  string
	Seed       int64
	Index      int
	Comment    string
	OutputPath string
}

// History returns every recorded mutant for inputFile, most recent run
// first. An empty inputFile returns the whole ledger.
func (l *Ledger) History(inputFile string) ([]Record, error) {
	query := `SELECT run_at, input_file, algorithm, seed, mutant_index, comment, output_path FROM mutants`
	args := []any{}
	if inputFile != "" {
		query += ` WHERE input_file = ?`
		args = append(args, inputFile)
	}
	query += ` ORDER BY run_at DESC, mutant_index ASC`

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mutant history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var runAt int64
		if err := rows.Scan(&runAt, &r.InputFile, &r.Algorithm, &r.Seed, &r.Index, &r.Comment, &r.OutputPath); err != nil {
			return nil, fmt.Errorf("scan mutant history row: %w", err)
		}
		r.RunAt = time.Unix(runAt, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}
