package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (o *recordingObserver) Observe(_ context.Context, e Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) count(name string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, e := range o.events {
		if e.Name == name {
			n++
		}
	}
	return n
}

func batchRecords() []domain.CourseRecord {
	var records []domain.CourseRecord
	records = append(records, iemRecords("S3")...)
	records = append(records, iemRecords("S1")...)
	records = append(records, testutil.NewTestRecord("S2", 202310, "ART100", testutil.WithMajor("XYZ")))
	return records
}

func TestGroupStudents(t *testing.T) {
	records := []domain.CourseRecord{
		testutil.NewTestRecord("B", 202320, "C2", testutil.WithMajor("mis")),
		testutil.NewTestRecord("A", 202310, "C1", testutil.WithMajor("ACC")),
		testutil.NewTestRecord("B", 202310, "C1", testutil.WithMajor("ACC")),
	}

	students := GroupStudents(records, "")
	require.Len(t, students, 2)
	assert.Equal(t, "A", students[0].ID)
	assert.Equal(t, "ACC", students[0].Major)
	assert.Equal(t, "B", students[1].ID)
	assert.Equal(t, "MIS", students[1].Major, "latest record decides the major")
	assert.Len(t, students[1].Records, 2)

	overridden := GroupStudents(records, "fin")
	assert.Equal(t, "FIN", overridden[0].Major)
	assert.Equal(t, "FIN", overridden[1].Major)
	assert.Equal(t, "MIS", overridden[1].DeclaredMajor)
}

func TestDispatcher_UnknownMajorIsSkipped(t *testing.T) {
	set := catalog.NewSet(testutil.NewTestMajor(t, testutil.IEMConfig))
	obs := &recordingObserver{}
	d := NewDispatcher(set, DefaultOptions(), WithWorkers(2), WithObserver(obs))

	batch, err := d.Run(context.Background(), GroupStudents(batchRecords(), ""))
	require.NoError(t, err)

	require.Len(t, batch.Results, 2)
	assert.Equal(t, "S1", batch.Results[0].StudentID)
	assert.Equal(t, "S3", batch.Results[1].StudentID)

	require.Len(t, batch.Skips, 1)
	skip := batch.Skips[0]
	assert.Equal(t, SkipUnknownMajor, skip.Code)
	assert.Equal(t, "S2", skip.StudentID)
	assert.ErrorIs(t, skip, catalog.ErrUnknownMajor)

	assert.Equal(t, 3, obs.count(EventStudent))
	assert.Equal(t, 1, obs.count(EventBatch))
}

func TestDispatcher_PanicIsIsolated(t *testing.T) {
	broken := &catalog.MajorConfig{Major: "ACC", TopN: 5}
	set := catalog.NewSet(testutil.NewTestMajor(t, testutil.IEMConfig), broken)
	d := NewDispatcher(set, DefaultOptions())

	records := append(iemRecords("S1"), testutil.NewTestRecord("S2", 202310, "ACC101", testutil.WithMajor("ACC")))
	batch, err := d.Run(context.Background(), GroupStudents(records, ""))
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.Equal(t, "S1", batch.Results[0].StudentID)
	require.Len(t, batch.Skips, 1)
	assert.Equal(t, SkipPanic, batch.Skips[0].Code)

	var skipErr *SkipError
	assert.True(t, errors.As(error(batch.Skips[0]), &skipErr))
}

func TestDispatcher_DeterministicAcrossWorkerCounts(t *testing.T) {
	set := catalog.NewSet(testutil.NewTestMajor(t, testutil.IEMConfig))
	students := GroupStudents(batchRecords(), "")

	serial, err := NewDispatcher(set, DefaultOptions(), WithWorkers(1)).Run(context.Background(), students)
	require.NoError(t, err)
	parallel, err := NewDispatcher(set, DefaultOptions(), WithWorkers(8)).Run(context.Background(), students)
	require.NoError(t, err)

	assert.Equal(t, serial.RecommendedCourses(), parallel.RecommendedCourses())
	assert.Equal(t, serial.ComprehensiveEligibleCourses(), parallel.ComprehensiveEligibleCourses())
}

func TestDispatcher_CanceledContext(t *testing.T) {
	set := catalog.NewSet(testutil.NewTestMajor(t, testutil.IEMConfig))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := NewDispatcher(set, DefaultOptions()).Run(ctx, GroupStudents(batchRecords(), ""))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, batch)
	assert.Empty(t, batch.Results)
	for _, s := range batch.Skips {
		assert.Equal(t, SkipCanceled, s.Code)
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	set := catalog.NewSet(testutil.NewTestMajor(t, testutil.IEMConfig))
	d := NewDispatcher(set, DefaultOptions(), WithObserver(NewLogObserver(&buf, slog.LevelDebug)))

	_, err := d.Run(context.Background(), GroupStudents(batchRecords(), ""))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "engine_event")
	assert.Contains(t, out, "event=batch")
	assert.Contains(t, out, "UNKNOWN_MAJOR")
	assert.Contains(t, out, "student=S1")
}

func TestNewLogObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopObserver{}, NewLogObserver(nil, slog.LevelInfo))
}
