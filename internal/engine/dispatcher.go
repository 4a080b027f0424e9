package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/history"
)

// Student is one student's records together with the major they are
// routed to.
type Student struct {
	ID    string
	Major string
	// DeclaredMajor is the major on the latest record, before any override.
	DeclaredMajor string
	Records       []domain.CourseRecord
}

// GroupStudents splits records per student, in ascending student order.
// The declared major is the one on the student's latest record, unless
// majorOverride is set.
func GroupStudents(records []domain.CourseRecord, majorOverride string) []Student {
	byID := make(map[string]*Student)
	latest := make(map[string]domain.CourseRecord)
	for _, r := range records {
		s, ok := byID[r.StudentID]
		if !ok {
			s = &Student{ID: r.StudentID}
			byID[r.StudentID] = s
		}
		s.Records = append(s.Records, r)
		if cur, seen := latest[r.StudentID]; !seen || r.Semester >= cur.Semester {
			latest[r.StudentID] = r
		}
	}

	out := make([]Student, 0, len(byID))
	for id, s := range byID {
		s.DeclaredMajor = strings.ToUpper(strings.TrimSpace(latest[id].Major))
		s.Major = s.DeclaredMajor
		if majorOverride != "" {
			s.Major = strings.ToUpper(strings.TrimSpace(majorOverride))
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Dispatcher routes students to the engine of their major and runs them
// on a bounded worker group.
type Dispatcher struct {
	configs  *catalog.Set
	engines  map[string]*Engine
	workers  int
	observer Observer
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithWorkers bounds the number of students processed at once.
func WithWorkers(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithObserver sets the event observer.
func WithObserver(o Observer) DispatcherOption {
	return func(d *Dispatcher) {
		d.observer = observerOrNoop(o)
	}
}

// NewDispatcher builds one engine per configured major.
func NewDispatcher(configs *catalog.Set, opts Options, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		configs:  configs,
		engines:  make(map[string]*Engine, configs.Len()),
		workers:  runtime.GOMAXPROCS(0),
		observer: NoopObserver{},
	}
	for _, m := range configs.Majors() {
		cfg, err := configs.Get(m)
		if err != nil {
			continue
		}
		d.engines[m] = New(cfg, opts)
	}
	for _, o := range options {
		o(d)
	}
	return d
}

// Engine returns the engine registered for major.
func (d *Dispatcher) Engine(major string) (*Engine, error) {
	if _, err := d.configs.Get(major); err != nil {
		return nil, err
	}
	return d.engines[strings.ToUpper(strings.TrimSpace(major))], nil
}

// Run processes every student. Per-student failures become skips and never
// fail the batch; the returned error is only set when ctx is canceled, in
// which case the batch holds whatever finished.
func (d *Dispatcher) Run(ctx context.Context, students []Student) (*Batch, error) {
	start := time.Now()
	results := make([]*StudentResult, len(students))
	skips := make([]*SkipError, len(students))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, s := range students {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				skips[i] = &SkipError{Code: SkipCanceled, StudentID: s.ID, Major: s.Major, Err: err}
				return nil
			}
			results[i], skips[i] = d.processStudent(gctx, s)
			return nil
		})
	}
	_ = g.Wait()

	batch := newBatch(d.configs, results, skips)
	err := ctx.Err()
	d.observer.Observe(ctx, Event{
		Name:      EventBatch,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"students":  len(students),
			"processed": len(batch.Results),
			"skipped":   len(batch.Skips),
			"workers":   d.workers,
		},
	})
	if err != nil {
		return batch, fmt.Errorf("batch interrupted: %w", err)
	}
	return batch, nil
}

func (d *Dispatcher) processStudent(ctx context.Context, s Student) (res *StudentResult, skip *SkipError) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = nil
			skip = &SkipError{Code: SkipPanic, StudentID: s.ID, Major: s.Major, Err: fmt.Errorf("panic: %v", r)}
		}
		event := Event{
			Name:      EventStudent,
			StudentID: s.ID,
			Major:     s.Major,
			Duration:  time.Since(start),
			Success:   skip == nil,
			StartedAt: start,
		}
		if skip != nil {
			event.Err = skip
		} else {
			event.Fields = map[string]any{
				"eligible":    res.Latest.EligibleCO.Len(),
				"recommended": len(res.ByFinalScore),
			}
		}
		d.observer.Observe(ctx, event)
	}()

	eng, err := d.Engine(s.Major)
	if err != nil {
		return nil, &SkipError{Code: SkipUnknownMajor, StudentID: s.ID, Major: s.Major, Err: err}
	}
	res, err = eng.Process(s.ID, s.Records)
	if err != nil {
		code := SkipFailed
		if errors.Is(err, history.ErrNoRecords) {
			code = SkipNoRecords
		}
		return nil, &SkipError{Code: code, StudentID: s.ID, Major: s.Major, Err: err}
	}
	return res, nil
}
