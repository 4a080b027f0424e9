package engine

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Event captures one unit of engine work: a whole batch or a single
// student.
type Event struct {
	Name      string
	StudentID string
	Major     string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// Event names.
const (
	EventBatch   = "batch"
	EventStudent = "student"
)

// Observer receives engine events. Implementations must be safe for
// concurrent use; student events arrive from worker goroutines.
type Observer interface {
	Observe(ctx context.Context, event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes engine events to w as slog text records.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logObserver) Observe(ctx context.Context, event Event) {
	attrs := make([]any, 0, 10+len(event.Fields)*2)
	attrs = append(attrs,
		"event", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	if event.StudentID != "" {
		attrs = append(attrs, "student", event.StudentID)
	}
	if event.Major != "" {
		attrs = append(attrs, "major", event.Major)
	}
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "engine_event", attrs...)
		return
	}
	if event.Name == EventStudent {
		o.logger.DebugContext(ctx, "engine_event", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "engine_event", attrs...)
}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return NoopObserver{}
	}
	return o
}
