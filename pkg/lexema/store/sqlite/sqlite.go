// Package sqlite provides a SQLite-backed store.Store so archived
// runs survive process restarts.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tundralab/lexema/pkg/lexema/internalerr"
	"github.com/tundralab/lexema/pkg/lexema/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and
// initializes the schema.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	label TEXT,
	input_path TEXT,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_docs (
	run_id TEXT NOT NULL,
	doc_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	tokens INTEGER NOT NULL,
	distinct_terms INTEGER NOT NULL,
	hapax_terms INTEGER NOT NULL,
	ttr REAL NOT NULL,
	hapax_ratio REAL NOT NULL,
	PRIMARY KEY(run_id, doc_id),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS run_terms (
	run_id TEXT NOT NULL,
	term TEXT NOT NULL,
	doc_id TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(run_id, term, doc_id),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run and its per-document rows.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("save run: empty run ID")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO runs (id, label, input_path, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	label=excluded.label,
	input_path=excluded.input_path,
	created_at=excluded.created_at;
`

	_, err = tx.ExecContext(
		ctx,
		stmt,
		r.ID,
		r.Label,
		r.InputPath,
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	if err := replaceRunDocs(ctx, tx, r.ID, r.Docs); err != nil {
		return err
	}
	if err := replaceRunTerms(ctx, tx, r.ID, r.TermCounts); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceRunDocs(ctx context.Context, tx *sql.Tx, runID string, docs []store.DocStats) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM run_docs WHERE run_id=?`, runID); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO run_docs (run_id, doc_id, position, tokens, distinct_terms, hapax_terms, ttr, hapax_ratio)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, d := range docs {
		if d.DocID == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, runID, d.DocID, i, d.Tokens, d.Distinct, d.Hapaxes, d.TTR, d.HapaxRatio); err != nil {
			return err
		}
	}
	return nil
}

func replaceRunTerms(ctx context.Context, tx *sql.Tx, runID string, counts []store.TermDocCount) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM run_terms WHERE run_id=?`, runID); err != nil {
		return err
	}
	if len(counts) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_terms (run_id, term, doc_id, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, tc := range counts {
		if tc.Term == "" || tc.Count == 0 {
			continue
		}
		if _, err := stmt.ExecContext(ctx, runID, tc.Term, tc.DocID, tc.Count); err != nil {
			return err
		}
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	var (
		r         store.Run
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, label, input_path, created_at FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Label, &r.InputPath, &createdAt)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}

	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return store.Run{}, false, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}

	if r.Docs, err = s.loadRunDocs(ctx, id); err != nil {
		return store.Run{}, false, err
	}
	if r.TermCounts, err = s.loadRunTerms(ctx, id); err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

func (s *sqliteStore) loadRunDocs(ctx context.Context, runID string) ([]store.DocStats, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT doc_id, tokens, distinct_terms, hapax_terms, ttr, hapax_ratio
FROM run_docs
WHERE run_id = ?
ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []store.DocStats
	for rows.Next() {
		var d store.DocStats
		if err := rows.Scan(&d.DocID, &d.Tokens, &d.Distinct, &d.Hapaxes, &d.TTR, &d.HapaxRatio); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (s *sqliteStore) loadRunTerms(ctx context.Context, runID string) ([]store.TermDocCount, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT term, doc_id, count
FROM run_terms
WHERE run_id = ?
ORDER BY term, doc_id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []store.TermDocCount
	for rows.Next() {
		var tc store.TermDocCount
		if err := rows.Scan(&tc.Term, &tc.DocID, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

// ListRuns returns run summaries, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context) ([]store.RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT r.id, r.label, r.input_path, r.created_at,
	(SELECT COUNT(*) FROM run_docs d WHERE d.run_id = r.id),
	(SELECT COUNT(DISTINCT t.term) FROM run_terms t WHERE t.run_id = r.id)
FROM runs r
ORDER BY r.created_at DESC, r.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []store.RunSummary
	for rows.Next() {
		var (
			sum       store.RunSummary
			createdAt string
		)
		if err := rows.Scan(&sum.ID, &sum.Label, &sum.InputPath, &createdAt, &sum.Docs, &sum.Terms); err != nil {
			return nil, err
		}
		if sum.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// TopTerms returns the run's highest combined term counts.
func (s *sqliteStore) TopTerms(ctx context.Context, runID string, limit int) ([]store.TermCount, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %q: %w", runID, internalerr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT term, SUM(count) AS total
FROM run_terms
WHERE run_id = ?
GROUP BY term
ORDER BY total DESC, term ASC
LIMIT ?`, runID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []store.TermCount
	for rows.Next() {
		var tc store.TermCount
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}
