package service

import (
	"context"

	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/repository"
)

type queryService struct {
	runs    repository.BatchRunRepo
	results repository.BatchResultRepo
}

func NewQueryService(runs repository.BatchRunRepo, results repository.BatchResultRepo) QueryService {
	return &queryService{runs: runs, results: results}
}

func (s *queryService) Runs(ctx context.Context, limit int) ([]*domain.BatchRun, error) {
	return s.runs.List(ctx, limit)
}

// ResolveRun returns the named run, or the latest one when runID is empty.
func (s *queryService) ResolveRun(ctx context.Context, runID string) (*domain.BatchRun, error) {
	if runID == "" {
		return s.runs.Latest(ctx)
	}
	return s.runs.GetByID(ctx, runID)
}

func (s *queryService) Eligible(ctx context.Context, runID, studentID string) ([]domain.EligibleCourse, error) {
	return s.results.ListEligible(ctx, runID, studentID)
}

func (s *queryService) Recommendations(ctx context.Context, runID, studentID string) ([]domain.StoredRecommendation, error) {
	return s.results.ListRecommendations(ctx, runID, studentID)
}

func (s *queryService) Skips(ctx context.Context, runID string) ([]domain.BatchSkip, error) {
	return s.results.ListSkips(ctx, runID)
}
