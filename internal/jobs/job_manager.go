package jobs

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"sales/internal/pkg/metrics"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager starts and stops the scheduled jobs of the application.
type JobManager struct {
	jobs    []namedJob
	started []Job
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager wires the stale draft cancellation job.
func NewJobManager(
	cancelStaleDraftsHandler CancelStaleDraftsHandler,
	schedule string,
	draftTTL time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	return NewJobManagerFor(map[string]Job{
		"stale draft cancellation": NewStaleDraftCancellationJob(cancelStaleDraftsHandler, schedule, draftTTL, m, logger),
	})
}

// NewJobManagerFor manages arbitrary jobs, started in name order.
func NewJobManagerFor(jobs map[string]Job) *JobManager {
	jm := &JobManager{}
	for _, name := range slices.Sorted(maps.Keys(jobs)) {
		jm.jobs = append(jm.jobs, namedJob{name: name, job: jobs[name]})
	}
	return jm
}

// StartAll starts every job. When one fails, the jobs already started are
// stopped again and the error is returned.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		jm.started = append(jm.started, nj.job)
	}

	return nil
}

// StopAll stops the started jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
