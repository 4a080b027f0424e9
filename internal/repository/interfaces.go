package repository

import (
	"context"

	"github.com/alexanderramin/pathway/internal/domain"
)

// RecordFilter narrows a record listing. Zero values match everything.
// Major matches students, never single rows.
type RecordFilter struct {
	Major     string
	StudentID string
}

type CourseRecordRepo interface {
	InsertBatch(ctx context.Context, records []domain.CourseRecord) (int, error)
	List(ctx context.Context, filter RecordFilter) ([]domain.CourseRecord, error)
	CountStudents(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type BatchRunRepo interface {
	Create(ctx context.Context, run *domain.BatchRun) error
	Finish(ctx context.Context, run *domain.BatchRun) error
	GetByID(ctx context.Context, id string) (*domain.BatchRun, error)
	Latest(ctx context.Context) (*domain.BatchRun, error)
	List(ctx context.Context, limit int) ([]*domain.BatchRun, error)
	Delete(ctx context.Context, id string) error
}

type BatchResultRepo interface {
	InsertEligible(ctx context.Context, rows []domain.EligibleCourse) error
	InsertRecommendations(ctx context.Context, runID, major string, recs []domain.Recommendation) error
	InsertSkip(ctx context.Context, skip domain.BatchSkip) error
	ListEligible(ctx context.Context, runID, studentID string) ([]domain.EligibleCourse, error)
	ListRecommendations(ctx context.Context, runID, studentID string) ([]domain.StoredRecommendation, error)
	ListSkips(ctx context.Context, runID string) ([]domain.BatchSkip, error)
}
