// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping around the order backlog.
//
// # Available Jobs
//
// 1. BacklogMonitorJob - Runs every 15 seconds to publish per-status order counts as gauges
// 2. OverdueOrdersJob - Runs every minute to flag orders stuck out for delivery past a threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderStatsHandler, pendingOrdersHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log query failures and keep running on their schedule
// - Failed job starts will stop any already running jobs
package jobs
