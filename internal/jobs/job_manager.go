package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"robodelivery/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	backlogMonitorJob *BacklogMonitorJob
	overdueOrdersJob  *OverdueOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	orderStatsHandler queries.GetOrderStatsQueryHandler,
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	overdueThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		backlogMonitorJob: NewBacklogMonitorJob(orderStatsHandler, logger),
		overdueOrdersJob:  NewOverdueOrdersJob(pendingOrdersHandler, overdueThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.backlogMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start backlog monitor job: %w", err)
	}

	if err := jm.overdueOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.backlogMonitorJob.Stop()
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
	jm.backlogMonitorJob.Stop()
}
