package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/db"
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/engine"
	"github.com/alexanderramin/pathway/internal/repository"
)

// ErrNoStudents is returned when a run selects no stored records.
var ErrNoStudents = errors.New("no student records to process")

// RunSettings are the engine settings recorded with every run.
type RunSettings struct {
	Options   engine.Options
	Workers   int
	ConfigDir string
	Observer  engine.Observer
}

type runService struct {
	records  repository.CourseRecordRepo
	configs  *catalog.Set
	settings RunSettings
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRunService(
	records repository.CourseRecordRepo,
	configs *catalog.Set,
	settings RunSettings,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) RunService {
	return &runService{
		records:  records,
		configs:  configs,
		settings: settings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Run processes the selected students and persists the run with its
// eligible courses, recommendations and skips in one transaction. An
// interrupted batch is still persisted with what finished.
func (s *runService) Run(ctx context.Context, req RunRequest) (result *RunResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	if req.Major != "" {
		fields["major"] = req.Major
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      UseCaseRun,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	major := strings.ToUpper(strings.TrimSpace(req.Major))
	records, err := s.records.List(ctx, repository.RecordFilter{
		Major:     major,
		StudentID: req.StudentID,
	})
	if err != nil {
		return nil, err
	}
	students := declaredIn(engine.GroupStudents(records, req.MajorOverride), major)
	if len(students) == 0 {
		return nil, ErrNoStudents
	}
	fields["students"] = len(students)

	dispatcher := engine.NewDispatcher(s.configs, s.settings.Options,
		engine.WithWorkers(s.settings.Workers),
		engine.WithObserver(s.settings.Observer),
	)
	batch, runErr := dispatcher.Run(ctx, students)

	finishedAt := time.Now().UTC()
	run := &domain.BatchRun{
		ID:          uuid.New().String(),
		StartedAt:   startedAt,
		FinishedAt:  &finishedAt,
		Students:    len(students),
		Processed:   len(batch.Results),
		Skipped:     len(batch.Skips),
		Workers:     s.settings.Workers,
		CoreqPasses: coreqPasses(s.settings.Options),
		ConfigDir:   s.settings.ConfigDir,
	}
	fields["run_id"] = run.ID
	fields["processed"] = run.Processed
	fields["skipped"] = run.Skipped

	// The caller's context may already be canceled; the partial batch is
	// still written.
	persistCtx := context.WithoutCancel(ctx)
	if err := s.persist(persistCtx, run, batch); err != nil {
		return nil, fmt.Errorf("persisting run: %w", err)
	}
	return &RunResult{Run: run, Batch: batch}, runErr
}

func (s *runService) persist(ctx context.Context, run *domain.BatchRun, batch *engine.Batch) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRuns := repository.NewSQLiteBatchRunRepo(tx)
		txResults := repository.NewSQLiteBatchResultRepo(tx)

		if err := txRuns.Create(ctx, run); err != nil {
			return err
		}
		for _, res := range batch.Results {
			if err := txResults.InsertEligible(ctx, eligibleRows(run.ID, res)); err != nil {
				return err
			}
			recs := make([]domain.Recommendation, 0, len(res.ByCourseScore)+len(res.ByFinalScore))
			recs = append(recs, res.ByCourseScore...)
			recs = append(recs, res.ByFinalScore...)
			if err := txResults.InsertRecommendations(ctx, run.ID, res.Major, recs); err != nil {
				return err
			}
		}
		for _, skip := range batch.Skips {
			if err := txResults.InsertSkip(ctx, domain.BatchSkip{
				RunID:     run.ID,
				StudentID: skip.StudentID,
				Major:     skip.Major,
				Code:      string(skip.Code),
				Message:   skip.Err.Error(),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// eligibleRows lists the final eligible courses of a student. Courses the
// evaluator did not produce were added by a bundle.
func eligibleRows(runID string, res *engine.StudentResult) []domain.EligibleCourse {
	ids := res.Latest.EligibleCO.Sorted()
	out := make([]domain.EligibleCourse, 0, len(ids))
	for _, id := range ids {
		source := domain.SourceEligible
		if !res.Latest.Eligible.Contains(id) {
			source = domain.SourceCorequisite
		}
		out = append(out, domain.EligibleCourse{
			RunID:     runID,
			StudentID: res.StudentID,
			Major:     res.Major,
			Semester:  res.Latest.Semester,
			CourseID:  id,
			Source:    source,
		})
	}
	return out
}

// coreqPasses is the pass count recorded for a run; zero means the
// combiner ran to a fixed point.
func coreqPasses(opts engine.Options) int {
	if opts.Combiner.FixedPoint {
		return 0
	}
	if opts.Combiner.Passes < 1 {
		return 1
	}
	return opts.Combiner.Passes
}

// declaredIn keeps students whose latest record is under major. Students
// who left the major still have earlier rows under it and are dropped here.
func declaredIn(students []engine.Student, major string) []engine.Student {
	if major == "" {
		return students
	}
	out := students[:0]
	for _, st := range students {
		if st.DeclaredMajor == major {
			out = append(out, st)
		}
	}
	return out
}
