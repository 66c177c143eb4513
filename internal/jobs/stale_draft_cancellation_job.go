package jobs

import (
	"context"
	"log/slog"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// CancelStaleDraftsHandler is the use case run by StaleDraftCancellationJob.
type CancelStaleDraftsHandler interface {
	Handle(ctx context.Context, cmd commands.CancelStaleDraftsCommand) (int, error)
}

// StaleDraftCancellationJob cancels draft orders older than a TTL on a cron schedule.
type StaleDraftCancellationJob struct {
	handler  CancelStaleDraftsHandler
	schedule string
	ttl      time.Duration
	cron     *cron.Cron
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewStaleDraftCancellationJob creates the job. schedule is a six-field cron
// expression (seconds first), e.g. "0 */5 * * * *".
func NewStaleDraftCancellationJob(
	handler CancelStaleDraftsHandler,
	schedule string,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *StaleDraftCancellationJob {
	return &StaleDraftCancellationJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		metrics:  m,
		logger:   logger.With("component", "stale_draft_cancellation_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *StaleDraftCancellationJob) Start() error {
	if _, err := commands.NewCancelStaleDraftsCommand(j.ttl); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale draft cancellation job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// RunOnce performs a single sweep. Failures are logged, never returned, so a
// bad run does not stop the schedule.
func (j *StaleDraftCancellationJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewCancelStaleDraftsCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale draft cancellation job misconfigured", "error", err)
		return
	}

	canceled, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.metrics.StaleDraftRuns.WithLabelValues(metrics.ResultFailed).Inc()
		j.logger.ErrorContext(ctx, "Stale draft cancellation job failed", "error", err)
		return
	}

	j.metrics.StaleDraftRuns.WithLabelValues(metrics.ResultOK).Inc()
	j.metrics.StaleDraftsCanceled.Add(float64(canceled))

	if canceled > 0 {
		j.logger.InfoContext(ctx, "Stale drafts canceled", "count", canceled)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *StaleDraftCancellationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale draft cancellation job stopped")
}
