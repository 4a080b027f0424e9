package service

import (
	"context"

	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/engine"
	"github.com/alexanderramin/pathway/internal/importer"
)

type ImportService interface {
	ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error)
	ImportRecords(ctx context.Context, recs []importer.RecordImport, replace bool) (*ImportResult, error)
}

type RunService interface {
	Run(ctx context.Context, req RunRequest) (*RunResult, error)
}

type QueryService interface {
	Runs(ctx context.Context, limit int) ([]*domain.BatchRun, error)
	ResolveRun(ctx context.Context, runID string) (*domain.BatchRun, error)
	Eligible(ctx context.Context, runID, studentID string) ([]domain.EligibleCourse, error)
	Recommendations(ctx context.Context, runID, studentID string) ([]domain.StoredRecommendation, error)
	Skips(ctx context.Context, runID string) ([]domain.BatchSkip, error)
}

// ImportResult summarizes one import.
type ImportResult struct {
	Read     int
	Imported int
	Students int
	Rejected []error
}

// RunRequest selects the students of a batch run. Major restricts the run
// to records stored under that major; MajorOverride routes every selected
// student to one major regardless of their records.
type RunRequest struct {
	Major         string
	StudentID     string
	MajorOverride string
}

// RunResult is the persisted run together with the in-memory batch.
type RunResult struct {
	Run   *domain.BatchRun
	Batch *engine.Batch
}
