package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/jobs"
	"sales/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCancelStaleDraftsHandler struct{ mock.Mock }

func (m *MockCancelStaleDraftsHandler) Handle(ctx context.Context, cmd commands.CancelStaleDraftsCommand) (int, error) {
	args := m.Called(ctx, cmd.OlderThan())
	return args.Int(0), args.Error(1)
}

type recordingJob struct {
	name     string
	startErr error
	events   *[]string
}

func (j recordingJob) Start() error {
	*j.events = append(*j.events, "start "+j.name)
	return j.startErr
}

func (j recordingJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func newMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func TestStaleDraftCancellationJob_RunOnce(t *testing.T) {
	t.Run("passes the ttl and logs the count", func(t *testing.T) {
		// Given
		ctx := t.Context()
		handler := new(MockCancelStaleDraftsHandler)
		handler.On("Handle", ctx, 24*time.Hour).Return(3, nil).Once()
		logger, buf := bufferLogger()
		m := newMetrics()
		job := jobs.NewStaleDraftCancellationJob(handler, "0 */5 * * * *", 24*time.Hour, m, logger)

		// When
		job.RunOnce(ctx)

		// Then
		handler.AssertExpectations(t)
		assert.Contains(t, buf.String(), "Stale drafts canceled")
		assert.Contains(t, buf.String(), "count=3")
		assert.InDelta(t, 3, testutil.ToFloat64(m.StaleDraftsCanceled), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.StaleDraftRuns.WithLabelValues(metrics.ResultOK)), 0)
	})

	t.Run("nothing canceled stays quiet", func(t *testing.T) {
		ctx := t.Context()
		handler := new(MockCancelStaleDraftsHandler)
		handler.On("Handle", ctx, time.Hour).Return(0, nil).Once()
		logger, buf := bufferLogger()

		jobs.NewStaleDraftCancellationJob(handler, "* * * * * *", time.Hour, newMetrics(), logger).RunOnce(ctx)

		handler.AssertExpectations(t)
		assert.Empty(t, buf.String())
	})

	t.Run("handler error is logged", func(t *testing.T) {
		ctx := t.Context()
		handler := new(MockCancelStaleDraftsHandler)
		handler.On("Handle", ctx, time.Hour).Return(0, errors.New("db down")).Once()
		logger, buf := bufferLogger()
		m := newMetrics()

		jobs.NewStaleDraftCancellationJob(handler, "* * * * * *", time.Hour, m, logger).RunOnce(ctx)

		assert.Contains(t, buf.String(), "Stale draft cancellation job failed")
		assert.Contains(t, buf.String(), "db down")
		assert.InDelta(t, 1, testutil.ToFloat64(m.StaleDraftRuns.WithLabelValues(metrics.ResultFailed)), 0)
		assert.Zero(t, testutil.ToFloat64(m.StaleDraftsCanceled))
	})

	t.Run("non-positive ttl never reaches the handler", func(t *testing.T) {
		handler := new(MockCancelStaleDraftsHandler)
		logger, buf := bufferLogger()

		jobs.NewStaleDraftCancellationJob(handler, "* * * * * *", 0, newMetrics(), logger).RunOnce(t.Context())

		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		assert.Contains(t, buf.String(), "misconfigured")
	})
}

func TestStaleDraftCancellationJob_Start(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		logger, _ := bufferLogger()
		job := jobs.NewStaleDraftCancellationJob(new(MockCancelStaleDraftsHandler), "every five minutes", time.Hour, newMetrics(), logger)

		require.Error(t, job.Start())
	})

	t.Run("invalid ttl", func(t *testing.T) {
		logger, _ := bufferLogger()
		job := jobs.NewStaleDraftCancellationJob(new(MockCancelStaleDraftsHandler), "0 */5 * * * *", -time.Minute, newMetrics(), logger)

		require.Error(t, job.Start())
	})

	t.Run("start and stop", func(t *testing.T) {
		logger, buf := bufferLogger()
		job := jobs.NewStaleDraftCancellationJob(new(MockCancelStaleDraftsHandler), "0 0 3 * * *", time.Hour, newMetrics(), logger)

		require.NoError(t, job.Start())
		job.Stop()

		assert.Contains(t, buf.String(), "Stale draft cancellation job started")
		assert.Contains(t, buf.String(), "Stale draft cancellation job stopped")
	})
}

func TestJobManager(t *testing.T) {
	t.Run("starts in name order and stops in reverse", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManagerFor(map[string]jobs.Job{
			"b": recordingJob{name: "b", events: &events},
			"a": recordingJob{name: "a", events: &events},
		})

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
	})

	t.Run("failed start stops the started jobs", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManagerFor(map[string]jobs.Job{
			"a": recordingJob{name: "a", events: &events},
			"b": recordingJob{name: "b", events: &events, startErr: errors.New("boom")},
		})

		err := jm.StartAll()

		require.EqualError(t, err, "failed to start b job: boom")
		assert.Equal(t, []string{"start a", "start b", "stop a"}, events)
	})

	t.Run("wires the stale draft job", func(t *testing.T) {
		logger, _ := bufferLogger()
		jm := jobs.NewJobManager(new(MockCancelStaleDraftsHandler), "bad", time.Hour, newMetrics(), logger)

		require.ErrorContains(t, jm.StartAll(), "failed to start stale draft cancellation job")
	})
}
