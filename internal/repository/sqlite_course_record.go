package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathway/internal/db"
	"github.com/alexanderramin/pathway/internal/domain"
)

// SQLiteCourseRecordRepo implements CourseRecordRepo using a SQLite database.
type SQLiteCourseRecordRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRecordRepo creates a new SQLiteCourseRecordRepo.
func NewSQLiteCourseRecordRepo(conn db.DBTX) *SQLiteCourseRecordRepo {
	return &SQLiteCourseRecordRepo{db: conn}
}

const recordColumns = `student_id, semester, course_id, grade, credits, student_level,
	major, college, program, passed_credits, gpa, admit_term, status`

func (r *SQLiteCourseRecordRepo) InsertBatch(ctx context.Context, records []domain.CourseRecord) (int, error) {
	query := `INSERT INTO course_records (` + recordColumns + `, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC().Format(time.RFC3339)
	for i, rec := range records {
		_, err := r.db.ExecContext(ctx, query,
			rec.StudentID,
			rec.Semester,
			rec.CourseID,
			rec.Grade,
			rec.Credits,
			int(rec.StudentLevel),
			rec.Major,
			rec.College,
			rec.Program,
			rec.PassedCredits,
			rec.GPA,
			rec.AdmitTerm,
			rec.Status,
			now,
		)
		if err != nil {
			return i, fmt.Errorf("inserting course record %d (%s %s): %w", i, rec.StudentID, rec.CourseID, err)
		}
	}
	return len(records), nil
}

// List returns matching records in insertion order within each student,
// students ascending. The major filter selects students with any record
// under that major and returns their full history.
func (r *SQLiteCourseRecordRepo) List(ctx context.Context, filter RecordFilter) ([]domain.CourseRecord, error) {
	var where []string
	var args []any
	if filter.Major != "" {
		where = append(where, "student_id IN (SELECT student_id FROM course_records WHERE major = ?)")
		args = append(args, filter.Major)
	}
	if filter.StudentID != "" {
		where = append(where, "student_id = ?")
		args = append(args, filter.StudentID)
	}
	query := `SELECT ` + recordColumns + ` FROM course_records`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY student_id, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing course records: %w", err)
	}
	defer rows.Close()

	var out []domain.CourseRecord
	for rows.Next() {
		var rec domain.CourseRecord
		var level int
		if err := rows.Scan(
			&rec.StudentID,
			&rec.Semester,
			&rec.CourseID,
			&rec.Grade,
			&rec.Credits,
			&level,
			&rec.Major,
			&rec.College,
			&rec.Program,
			&rec.PassedCredits,
			&rec.GPA,
			&rec.AdmitTerm,
			&rec.Status,
		); err != nil {
			return nil, fmt.Errorf("scanning course record: %w", err)
		}
		rec.StudentLevel = domain.StudentLevel(level)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteCourseRecordRepo) CountStudents(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT student_id) FROM course_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting students: %w", err)
	}
	return n, nil
}

func (r *SQLiteCourseRecordRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM course_records`); err != nil {
		return fmt.Errorf("deleting course records: %w", err)
	}
	return nil
}
