// Package engine runs the per-major recommendation pipeline and dispatches
// a batch of students across majors.
package engine

import (
	"fmt"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/corequisite"
	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/history"
	"github.com/alexanderramin/pathway/internal/lookahead"
	"github.com/alexanderramin/pathway/internal/progress"
	"github.com/alexanderramin/pathway/internal/ranker"
)

// Options are the engine-wide defaults. A major's own configuration may
// override the combiner setting.
type Options struct {
	Combiner            corequisite.Options
	Remediation         []history.RemediationRule
	NonCompletingGrades []string
	Weights             ranker.Weights
}

// DefaultOptions returns a single-pass combiner, the fixed remediation
// ladder and the default score blend.
func DefaultOptions() Options {
	return Options{
		Combiner:    corequisite.Options{Passes: 1},
		Remediation: history.RemediationLadder,
		Weights:     ranker.DefaultWeights(),
	}
}

// StudentResult is everything computed for one student in one major.
type StudentResult struct {
	StudentID string
	Major     string

	Walk     *history.Walk
	Snapshot domain.StudentSnapshot

	// Latest is the eligibility of the latest semester with EligibleCO and
	// Combinations populated.
	Latest domain.EligibilityResult

	Progress progress.Report

	// Rows holds one scored row per final eligible course with catalog
	// metadata, in ascending course order.
	Rows []domain.RecommendationRow

	ByCourseScore []domain.Recommendation
	ByFinalScore  []domain.Recommendation
}

// Engine runs the pipeline for one major. It holds no per-student state
// and is safe for concurrent use.
type Engine struct {
	cfg      *catalog.MajorConfig
	walker   *history.Walker
	scorer   *lookahead.Scorer
	combiner corequisite.Options
	opts     Options
}

// New creates the engine of one major.
func New(cfg *catalog.MajorConfig, opts Options) *Engine {
	combiner := opts.Combiner
	if cfg.Combiner != nil {
		combiner = *cfg.Combiner
	}
	return &Engine{
		cfg:      cfg,
		walker:   history.NewWalker(cfg.Evaluator, opts.NonCompletingGrades),
		scorer:   lookahead.NewScorer(cfg.Evaluator),
		combiner: combiner,
		opts:     opts,
	}
}

// Major returns the configuration the engine runs.
func (e *Engine) Major() *catalog.MajorConfig { return e.cfg }

// Process runs the walker, combiner, remediation cascade, progress
// aggregator, lookahead scorer and ranker for one student.
func (e *Engine) Process(studentID string, records []domain.CourseRecord) (*StudentResult, error) {
	walk, err := e.walker.Walk(records, e.cfg.Major)
	if err != nil {
		return nil, fmt.Errorf("walking history of %s: %w", studentID, err)
	}
	latest, ok := walk.Latest()
	if !ok {
		return nil, fmt.Errorf("walking history of %s: %w", studentID, history.ErrNoRecords)
	}
	snap := latest.Snapshot

	combined := corequisite.Combine(e.cfg.Bundles, snap.Completed, latest.Result.Eligible, e.combiner)
	final := history.ApplyRemediation(e.opts.Remediation, walk.Taken, combined.Eligible)

	result := latest.Result
	result.EligibleCO = final
	result.Combinations = combined.Combinations

	report := progress.Compute(studentID, snap.Completed, e.cfg)

	var rows []domain.RecommendationRow
	for _, s := range e.scorer.ScoreAll(&snap, final, combined.Eligible) {
		meta, ok := e.cfg.Meta(s.CourseID)
		if !ok {
			continue
		}
		rows = append(rows, domain.RecommendationRow{
			StudentID:             studentID,
			Semester:              snap.Semester,
			CourseID:              s.CourseID,
			AreaOfStudy:           meta.AreaOfStudy,
			CourseOfStudy:         meta.CourseOfStudy,
			CourseLevel:           meta.CourseLevel,
			FutureEligibleCourses: s.Future,
			CourseScore:           s.Value(),
			RemainingWeightScore:  report.WeightScore(meta.AreaOfStudy),
		})
	}
	rows = ranker.Score(rows, e.opts.Weights)
	byCourse, byFinal := ranker.Rank(rows, e.cfg.TopN)

	return &StudentResult{
		StudentID:     studentID,
		Major:         e.cfg.Major,
		Walk:          walk,
		Snapshot:      snap,
		Latest:        result,
		Progress:      report,
		Rows:          rows,
		ByCourseScore: byCourse,
		ByFinalScore:  byFinal,
	}, nil
}
