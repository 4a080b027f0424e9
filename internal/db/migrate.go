package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillRunCounts(db); err != nil {
		return fmt.Errorf("backfilling batch run counts: %w", err)
	}
	return nil
}

// migrateBackfillRunCounts fills processed/skipped for runs recorded before
// those columns existed.
func migrateBackfillRunCounts(db *sql.DB) error {
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `
		UPDATE batch_runs SET
			processed = (SELECT COUNT(DISTINCT student_id) FROM eligible_courses e WHERE e.run_id = batch_runs.id),
			skipped   = (SELECT COUNT(*) FROM batch_skips s WHERE s.run_id = batch_runs.id)
		WHERE processed < 0`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS course_records (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id     TEXT NOT NULL,
		semester       INTEGER NOT NULL,
		course_id      TEXT NOT NULL,
		grade          TEXT NOT NULL DEFAULT '',
		credits        REAL NOT NULL DEFAULT 0,
		student_level  INTEGER NOT NULL DEFAULT 0
		               CHECK(student_level BETWEEN 0 AND 4),
		major          TEXT NOT NULL,
		college        TEXT NOT NULL DEFAULT '',
		program        TEXT NOT NULL DEFAULT '',
		passed_credits REAL NOT NULL DEFAULT 0,
		gpa            REAL NOT NULL DEFAULT 0,
		admit_term     INTEGER NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT '',
		imported_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_course_records_student ON course_records(student_id, semester)`,
	`CREATE INDEX IF NOT EXISTS idx_course_records_major ON course_records(major)`,

	`CREATE TABLE IF NOT EXISTS batch_runs (
		id           TEXT PRIMARY KEY,
		started_at   TEXT NOT NULL,
		finished_at  TEXT,
		students     INTEGER NOT NULL DEFAULT 0,
		workers      INTEGER NOT NULL DEFAULT 1,
		coreq_passes INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS eligible_courses (
		run_id     TEXT NOT NULL REFERENCES batch_runs(id) ON DELETE CASCADE,
		student_id TEXT NOT NULL,
		major      TEXT NOT NULL,
		semester   INTEGER NOT NULL,
		course_id  TEXT NOT NULL,
		source     TEXT NOT NULL CHECK(source IN ('eligible','corequisite')),
		PRIMARY KEY (run_id, student_id, course_id)
	)`,

	`CREATE TABLE IF NOT EXISTS recommendations (
		run_id                 TEXT NOT NULL REFERENCES batch_runs(id) ON DELETE CASCADE,
		student_id             TEXT NOT NULL,
		major                  TEXT NOT NULL,
		semester               INTEGER NOT NULL,
		variant                TEXT NOT NULL CHECK(variant IN ('course_score','final_score')),
		rank                   INTEGER NOT NULL CHECK(rank > 0),
		course_id              TEXT NOT NULL,
		area_of_study          TEXT NOT NULL DEFAULT '',
		course_level           INTEGER NOT NULL DEFAULT 0,
		course_score           INTEGER NOT NULL DEFAULT 0,
		remaining_weight_score REAL NOT NULL DEFAULT 0,
		final_score            REAL NOT NULL DEFAULT 0,
		future_courses         TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, student_id, variant, rank)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_recommendations_student ON recommendations(student_id)`,

	`CREATE TABLE IF NOT EXISTS batch_skips (
		run_id     TEXT NOT NULL REFERENCES batch_runs(id) ON DELETE CASCADE,
		student_id TEXT NOT NULL,
		major      TEXT NOT NULL DEFAULT '',
		code       TEXT NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, student_id)
	)`,

	// Run counters and the config directory were added after the first
	// release; -1 marks rows that need backfilling.
	`ALTER TABLE batch_runs ADD COLUMN processed INTEGER NOT NULL DEFAULT -1`,
	`ALTER TABLE batch_runs ADD COLUMN skipped INTEGER NOT NULL DEFAULT -1`,
	`ALTER TABLE batch_runs ADD COLUMN config_dir TEXT NOT NULL DEFAULT ''`,
}
