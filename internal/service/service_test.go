package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/repository"
	"github.com/alexanderramin/pathway/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingUseCaseObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingUseCaseObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func iemSet(t *testing.T) *catalog.Set {
	t.Helper()
	return catalog.NewSet(testutil.NewTestMajor(t, testutil.IEMConfig))
}

func iemRecords(studentID string) []domain.CourseRecord {
	major := testutil.WithMajor("IEM")
	return []domain.CourseRecord{
		testutil.NewTestRecord(studentID, 202310, "MATH100", major, testutil.WithPassedCredits(6)),
		testutil.NewTestRecord(studentID, 202310, "ENGL101", major, testutil.WithPassedCredits(6)),
		testutil.NewTestRecord(studentID, 202320, "IEM105", major, testutil.WithPassedCredits(9)),
	}
}

func seedRecords(t *testing.T, repo repository.CourseRecordRepo, records ...[]domain.CourseRecord) {
	t.Helper()
	for _, batch := range records {
		_, err := repo.InsertBatch(context.Background(), batch)
		require.NoError(t, err)
	}
}
