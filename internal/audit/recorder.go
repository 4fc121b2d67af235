package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Recorder accepts events from domain services and hands them to the worker
// through a buffered channel. Emitting never blocks the request path; if the
// buffer is full the event is dropped and counted in the log.
type Recorder struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewRecorder(buffer int, logger *slog.Logger) *Recorder {
	if buffer <= 0 {
		buffer = 256
	}
	return &Recorder{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Emit enqueues an event, stamping id and timestamp when absent.
func (r *Recorder) Emit(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case r.inbox <- event:
	default:
		r.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"action", event.Action,
			"subject_id", event.SubjectID,
		)
	}
}

// Inbox exposes the event channel for the worker.
func (r *Recorder) Inbox() <-chan Event {
	return r.inbox
}
