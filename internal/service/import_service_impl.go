package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pathway/internal/db"
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/importer"
	"github.com/alexanderramin/pathway/internal/repository"
)

type importService struct {
	records  repository.CourseRecordRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(records repository.CourseRecordRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		records:  records,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string, replace bool) (*ImportResult, error) {
	recs, err := importer.LoadRecords(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportRecords(ctx, recs, replace)
}

// ImportRecords stores every valid row in one transaction. Invalid rows are
// reported in the result and never fail the import.
func (s *importService) ImportRecords(ctx context.Context, recs []importer.RecordImport, replace bool) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"read": len(recs), "replace": replace}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      UseCaseImport,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	converted, rejected := importer.Convert(recs)
	fields["rejected"] = len(rejected)

	var imported int
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteCourseRecordRepo(tx)
		if replace {
			if err := txRecords.DeleteAll(ctx); err != nil {
				return err
			}
		}
		n, err := txRecords.InsertBatch(ctx, converted)
		if err != nil {
			return err
		}
		imported = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storing records: %w", err)
	}
	fields["imported"] = imported

	return &ImportResult{
		Read:     len(recs),
		Imported: imported,
		Students: countStudents(converted),
		Rejected: rejected,
	}, nil
}

func countStudents(records []domain.CourseRecord) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.StudentID] = struct{}{}
	}
	return len(seen)
}
