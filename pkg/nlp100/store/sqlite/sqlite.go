package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
	"github.com/cognicore/nlp100/pkg/nlp100/store"
)

// MemoryDSN keeps the database in process memory.
const MemoryDSN = "file::memory:"

type sqliteStore struct {
	db  *sql.DB
	ids *store.IDs
}

// OpenSQLite opens (or creates) the database at dsn. An empty dsn uses MemoryDSN.
func OpenSQLite(ctx context.Context, dsn string) (store.Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// An in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteStore{db: db, ids: store.NewIDs()}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	label TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS term_counts (
	run_id TEXT NOT NULL,
	term TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(run_id, term),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_term_counts_run_count ON term_counts(run_id, count DESC);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStore) NewRun(ctx context.Context, label string) (store.Run, error) {
	now := time.Now().UTC()
	run := store.Run{ID: s.ids.Next(now), Label: label, CreatedAt: now}
	_, err := s.db.ExecContext(ctx, `INSERT INTO runs (id, label, created_at) VALUES (?, ?, ?)`,
		run.ID, run.Label, now.Format(time.RFC3339Nano))
	if err != nil {
		return store.Run{}, err
	}
	return run, nil
}

func (s *sqliteStore) Runs(ctx context.Context) ([]store.Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, label, created_at FROM runs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		var created string
		if err := rows.Scan(&r.ID, &r.Label, &created); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("%w: run %s created_at: %v", internalerr.ErrParse, r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// AddCounts upserts all counts in one transaction.
func (s *sqliteStore) AddCounts(ctx context.Context, runID string, counts map[string]int64) error {
	if err := s.requireRun(ctx, runID); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO term_counts (run_id, term, count) VALUES (?, ?, ?)
ON CONFLICT(run_id, term) DO UPDATE SET count=count+excluded.count;
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for term, n := range counts {
		if _, err := stmt.ExecContext(ctx, runID, term, n); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) Count(ctx context.Context, runID, term string) (int64, error) {
	if err := s.requireRun(ctx, runID); err != nil {
		return 0, err
	}
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT count FROM term_counts WHERE run_id=? AND term=?`, runID, term).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

func (s *sqliteStore) Top(ctx context.Context, runID string, k int) ([]store.TermCount, error) {
	if err := s.requireRun(ctx, runID); err != nil {
		return nil, err
	}
	limit := k
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT term, count FROM term_counts
WHERE run_id = ?
ORDER BY count DESC, term ASC
LIMIT ?;
`, runID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.TermCount
	for rows.Next() {
		var tc store.TermCount
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (s *sqliteStore) requireRun(ctx context.Context, runID string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id=?`, runID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: run %s", internalerr.ErrNotFound, runID)
	}
	return err
}
