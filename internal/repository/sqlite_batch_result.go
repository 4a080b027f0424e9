package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathway/internal/db"
	"github.com/alexanderramin/pathway/internal/domain"
)

// SQLiteBatchResultRepo implements BatchResultRepo using a SQLite database.
type SQLiteBatchResultRepo struct {
	db db.DBTX
}

// NewSQLiteBatchResultRepo creates a new SQLiteBatchResultRepo.
func NewSQLiteBatchResultRepo(conn db.DBTX) *SQLiteBatchResultRepo {
	return &SQLiteBatchResultRepo{db: conn}
}

func (r *SQLiteBatchResultRepo) InsertEligible(ctx context.Context, rows []domain.EligibleCourse) error {
	query := `INSERT INTO eligible_courses (run_id, student_id, major, semester, course_id, source)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, e := range rows {
		if _, err := r.db.ExecContext(ctx, query, e.RunID, e.StudentID, e.Major, e.Semester, e.CourseID, string(e.Source)); err != nil {
			return fmt.Errorf("inserting eligible course %s for %s: %w", e.CourseID, e.StudentID, err)
		}
	}
	return nil
}

func (r *SQLiteBatchResultRepo) InsertRecommendations(ctx context.Context, runID, major string, recs []domain.Recommendation) error {
	query := `INSERT INTO recommendations (run_id, student_id, major, semester, variant, rank, course_id,
		area_of_study, course_level, course_score, remaining_weight_score, final_score, future_courses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, rec := range recs {
		_, err := r.db.ExecContext(ctx, query,
			runID,
			rec.StudentID,
			major,
			rec.Semester,
			string(rec.Variant),
			rec.Rank,
			rec.Row.CourseID,
			rec.Row.AreaOfStudy,
			rec.Row.CourseLevel,
			rec.Row.CourseScore,
			rec.Row.RemainingWeightScore,
			rec.Row.FinalScore,
			joinCourses(rec.Row.FutureEligibleCourses),
		)
		if err != nil {
			return fmt.Errorf("inserting %s recommendation %d for %s: %w", rec.Variant, rec.Rank, rec.StudentID, err)
		}
	}
	return nil
}

func (r *SQLiteBatchResultRepo) InsertSkip(ctx context.Context, skip domain.BatchSkip) error {
	query := `INSERT INTO batch_skips (run_id, student_id, major, code, message) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, skip.RunID, skip.StudentID, skip.Major, skip.Code, skip.Message); err != nil {
		return fmt.Errorf("inserting skip for %s: %w", skip.StudentID, err)
	}
	return nil
}

func (r *SQLiteBatchResultRepo) ListEligible(ctx context.Context, runID, studentID string) ([]domain.EligibleCourse, error) {
	query := `SELECT run_id, student_id, major, semester, course_id, source
		FROM eligible_courses WHERE run_id = ? AND student_id = ? ORDER BY course_id`
	rows, err := r.db.QueryContext(ctx, query, runID, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing eligible courses: %w", err)
	}
	defer rows.Close()

	var out []domain.EligibleCourse
	for rows.Next() {
		var e domain.EligibleCourse
		var source string
		if err := rows.Scan(&e.RunID, &e.StudentID, &e.Major, &e.Semester, &e.CourseID, &source); err != nil {
			return nil, fmt.Errorf("scanning eligible course: %w", err)
		}
		e.Source = domain.EligibleSource(source)
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListRecommendations returns a student's stored recommendations, course
// score variant first, each in rank order.
func (r *SQLiteBatchResultRepo) ListRecommendations(ctx context.Context, runID, studentID string) ([]domain.StoredRecommendation, error) {
	query := `SELECT run_id, student_id, major, semester, variant, rank, course_id, area_of_study,
		course_level, course_score, remaining_weight_score, final_score, future_courses
		FROM recommendations WHERE run_id = ? AND student_id = ?
		ORDER BY variant, rank`
	rows, err := r.db.QueryContext(ctx, query, runID, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	defer rows.Close()

	var out []domain.StoredRecommendation
	for rows.Next() {
		var s domain.StoredRecommendation
		var variant, future string
		if err := rows.Scan(
			&s.RunID,
			&s.StudentID,
			&s.Major,
			&s.Semester,
			&variant,
			&s.Rank,
			&s.Row.CourseID,
			&s.Row.AreaOfStudy,
			&s.Row.CourseLevel,
			&s.Row.CourseScore,
			&s.Row.RemainingWeightScore,
			&s.Row.FinalScore,
			&future,
		); err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}
		s.Variant = domain.RankingVariant(variant)
		s.Row.StudentID = s.StudentID
		s.Row.Semester = s.Semester
		s.Row.FutureEligibleCourses = splitCourses(future)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteBatchResultRepo) ListSkips(ctx context.Context, runID string) ([]domain.BatchSkip, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT run_id, student_id, major, code, message
		FROM batch_skips WHERE run_id = ? ORDER BY student_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing skips: %w", err)
	}
	defer rows.Close()

	var out []domain.BatchSkip
	for rows.Next() {
		var s domain.BatchSkip
		if err := rows.Scan(&s.RunID, &s.StudentID, &s.Major, &s.Code, &s.Message); err != nil {
			return nil, fmt.Errorf("scanning skip: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
