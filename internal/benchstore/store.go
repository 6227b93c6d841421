// Package benchstore persists benchmark rows to sqlite so runs can be
// re-exported and compared later without re-generating anything.
package benchstore

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"cattalk-v0/internal/bench"
)

type DB struct{ *sql.DB }

func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{DB: db}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			suite TEXT NOT NULL,
			models TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS rows (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			model TEXT NOT NULL,
			case_key TEXT NOT NULL,
			user_text TEXT NOT NULL,
			response TEXT NOT NULL,
			control_json TEXT NOT NULL,
			plan_json TEXT NOT NULL,
			cat_total INTEGER NOT NULL,
			cat_raw INTEGER NOT NULL,
			tag_score INTEGER NOT NULL,
			tag_compliance REAL NOT NULL,
			tag_violation_rate REAL NOT NULL,
			combined REAL NOT NULL,
			detail_json TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rows_run ON rows(run_id);`,
		`CREATE INDEX IF NOT EXISTS idx_rows_model ON rows(model);`,
		`CREATE INDEX IF NOT EXISTS idx_rows_case ON rows(case_key);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// BeginRun records a new benchmark run and returns its id.
func (db *DB) BeginRun(suite string, models []string) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO runs(started_at, suite, models) VALUES(?,?,?)`,
		time.Now().Format(time.RFC3339), suite, strings.Join(models, ","),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RunWriter binds a run id so the runner can use the plain Store
// interface.
type RunWriter struct {
	db    *DB
	runID int64
}

func (db *DB) Writer(runID int64) *RunWriter {
	return &RunWriter{db: db, runID: runID}
}

var _ bench.Store = (*RunWriter)(nil)

func (w *RunWriter) SaveRow(r bench.Row) error {
	controlJSON, _ := json.Marshal(r.Control)
	planJSON, _ := json.Marshal(r.Plan)
	detailJSON, _ := json.Marshal(r)

	_, err := w.db.Exec(`INSERT INTO rows(
			run_id, created_at, model, case_key, user_text, response,
			control_json, plan_json, cat_total, cat_raw, tag_score,
			tag_compliance, tag_violation_rate, combined, detail_json, error
		) VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		w.runID, r.CreatedAt.Format(time.RFC3339), r.Model, r.CaseKey,
		r.UserText, r.Response, string(controlJSON), string(planJSON),
		r.Cat.Total, r.Cat.Raw, r.Tag.TagScore,
		r.Tag.RequiredCompliance, r.Tag.ForbiddenViolationRate,
		r.Combined, string(detailJSON), r.Err,
	)
	return err
}

// RowsForRun loads the full detail rows of a run, in insertion order.
func (db *DB) RowsForRun(runID int64) ([]bench.Row, error) {
	rows, err := db.Query(`SELECT detail_json FROM rows WHERE run_id=? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bench.Row
	for rows.Next() {
		var detail string
		if err := rows.Scan(&detail); err != nil {
			return nil, err
		}
		var r bench.Row
		if err := json.Unmarshal([]byte(detail), &r); err != nil {
			// a malformed historical row must not abort the batch
			continue
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestRunID returns the most recent run id, or 0 when none exist.
func (db *DB) LatestRunID() (int64, error) {
	var id sql.NullInt64
	err := db.QueryRow(`SELECT MAX(id) FROM runs`).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id.Int64, nil
}
