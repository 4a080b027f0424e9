package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pathway/internal/db"
	"github.com/alexanderramin/pathway/internal/domain"
)

// SQLiteBatchRunRepo implements BatchRunRepo using a SQLite database.
type SQLiteBatchRunRepo struct {
	db db.DBTX
}

// NewSQLiteBatchRunRepo creates a new SQLiteBatchRunRepo.
func NewSQLiteBatchRunRepo(conn db.DBTX) *SQLiteBatchRunRepo {
	return &SQLiteBatchRunRepo{db: conn}
}

const runColumns = `id, started_at, finished_at, students, processed, skipped, workers, coreq_passes, config_dir`

func (r *SQLiteBatchRunRepo) Create(ctx context.Context, run *domain.BatchRun) error {
	query := `INSERT INTO batch_runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(run.FinishedAt, time.RFC3339),
		run.Students,
		run.Processed,
		run.Skipped,
		run.Workers,
		run.CoreqPasses,
		run.ConfigDir,
	)
	if err != nil {
		return fmt.Errorf("inserting batch run: %w", err)
	}
	return nil
}

func (r *SQLiteBatchRunRepo) Finish(ctx context.Context, run *domain.BatchRun) error {
	query := `UPDATE batch_runs SET finished_at = ?, processed = ?, skipped = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(run.FinishedAt, time.RFC3339),
		run.Processed,
		run.Skipped,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("finishing batch run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finishing batch run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("batch run %s: %w", run.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteBatchRunRepo) GetByID(ctx context.Context, id string) (*domain.BatchRun, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM batch_runs WHERE id = ?`, id)
	return r.scanRun(row)
}

func (r *SQLiteBatchRunRepo) Latest(ctx context.Context) (*domain.BatchRun, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM batch_runs ORDER BY started_at DESC, rowid DESC LIMIT 1`)
	return r.scanRun(row)
}

func (r *SQLiteBatchRunRepo) List(ctx context.Context, limit int) ([]*domain.BatchRun, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+runColumns+` FROM batch_runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing batch runs: %w", err)
	}
	defer rows.Close()

	var out []*domain.BatchRun
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (r *SQLiteBatchRunRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM batch_runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting batch run: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteBatchRunRepo) scanRun(s scanner) (*domain.BatchRun, error) {
	var run domain.BatchRun
	var startedAt string
	var finishedAt sql.NullString
	err := s.Scan(
		&run.ID,
		&startedAt,
		&finishedAt,
		&run.Students,
		&run.Processed,
		&run.Skipped,
		&run.Workers,
		&run.CoreqPasses,
		&run.ConfigDir,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("batch run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning batch run: %w", err)
	}
	run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	run.FinishedAt = parseNullableTime(finishedAt, time.RFC3339)
	return &run, nil
}
