// Package jobs provides scheduled background tasks for the sales service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(cancelStaleDraftsHandler, "0 */5 * * * *", 24*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleDraftCancellationJob cancels draft orders that were created longer ago
// than the configured TTL. Overlapping runs are skipped.
package jobs
