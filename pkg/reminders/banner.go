package reminders

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/remindkit/pkg/logger"
	"github.com/dmitrymomot/remindkit/pkg/metrics"
)

// Acknowledger marks a task's reminder as seen on the server.
type Acknowledger interface {
	AcknowledgeReminder(ctx context.Context, taskID int64) error
}

// AcknowledgerFunc adapts a function to Acknowledger.
type AcknowledgerFunc func(ctx context.Context, taskID int64) error

func (f AcknowledgerFunc) AcknowledgeReminder(ctx context.Context, taskID int64) error {
	return f(ctx, taskID)
}

// Banner handles dismissing reminders. The reminder list itself is owned by
// the caller, which is told about successful dismissals through onDismiss
// and onDismissAll and removes the items itself.
type Banner struct {
	api          Acknowledger
	onDismiss    func(taskID int64)
	onDismissAll func()

	logger     *slog.Logger
	metrics    metrics.Recorder
	actionPath string
	now        func() time.Time
}

// NewBanner creates a banner. Nil callbacks are ignored.
func NewBanner(api Acknowledger, onDismiss func(taskID int64), onDismissAll func(), opts ...Option) *Banner {
	b := &Banner{
		api:          api,
		onDismiss:    onDismiss,
		onDismissAll: onDismissAll,
		logger:       slog.Default(),
		metrics:      metrics.Nop{},
		actionPath:   DefaultActionPath,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.onDismiss == nil {
		b.onDismiss = func(int64) {}
	}
	if b.onDismissAll == nil {
		b.onDismissAll = func() {}
	}
	b.logger = b.logger.With(logger.Component("reminders"))
	return b
}

// Dismiss acknowledges one reminder and, on success, calls onDismiss.
// On failure the error is logged and returned and the item is left alone.
func (b *Banner) Dismiss(ctx context.Context, taskID int64) error {
	if err := b.api.AcknowledgeReminder(ctx, taskID); err != nil {
		b.logger.LogAttrs(ctx, slog.LevelError, "failed to acknowledge reminder",
			logger.TaskID(taskID),
			logger.Error(err),
		)
		b.metrics.RecordAcknowledge(metrics.OutcomeFailure)
		return err
	}

	b.metrics.RecordAcknowledge(metrics.OutcomeSuccess)
	b.onDismiss(taskID)
	return nil
}

// DismissAll acknowledges every task concurrently and waits for all calls
// to finish. onDismissAll is called only if every acknowledgement
// succeeded. Partial failures are not rolled back: the tasks that were
// acknowledged stay acknowledged on the server while the list is kept.
func (b *Banner) DismissAll(ctx context.Context, tasks []Task) error {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			if err := b.api.AcknowledgeReminder(ctx, id); err != nil {
				b.metrics.RecordAcknowledge(metrics.OutcomeFailure)
				b.logger.LogAttrs(ctx, slog.LevelDebug, "acknowledgement failed during dismiss all",
					logger.TaskID(id),
					logger.Error(err),
				)
				return err
			}
			b.metrics.RecordAcknowledge(metrics.OutcomeSuccess)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		b.logger.LogAttrs(ctx, slog.LevelError, "failed to acknowledge reminders",
			logger.TaskIDs(ids...),
			logger.Error(err),
		)
		b.metrics.RecordDismissAll(metrics.OutcomeFailure)
		return err
	}

	b.metrics.RecordDismissAll(metrics.OutcomeSuccess)
	b.onDismissAll()
	return nil
}

// Now returns the banner's current time, used when rendering deadlines.
func (b *Banner) Now() time.Time {
	return b.now()
}
