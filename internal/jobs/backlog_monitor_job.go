package jobs

import (
	"context"
	"log/slog"

	"robodelivery/internal/core/application/usecases/queries"
	"robodelivery/internal/core/domain/model/order"
	"robodelivery/internal/pkg/observability"

	"github.com/robfig/cron/v3"
)

// BacklogMonitorJob periodically counts orders per status and publishes the
// counts as gauges. Runs every 15 seconds to keep the metrics fresh without
// hammering the database.
type BacklogMonitorJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogMonitorJob creates a new job for monitoring the order backlog.
// Uses GetOrderStatsQueryHandler to sample order counts per status.
func NewBacklogMonitorJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *BacklogMonitorJob {
	return &BacklogMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "backlog_monitor_job"),
	}
}

// Start begins the backlog monitor job to run every 15 seconds.
func (j *BacklogMonitorJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderStatsQuery()

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog monitor job failed", "error", err)
			return
		}

		observability.OrdersByStatus.WithLabelValues(order.AwaitingShipment.String()).Set(float64(stats.AwaitingShipment))
		observability.OrdersByStatus.WithLabelValues(order.OutForDelivery.String()).Set(float64(stats.OutForDelivery))
		observability.OrdersByStatus.WithLabelValues(order.Delivered.String()).Set(float64(stats.Delivered))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog monitor job started (running every 15 seconds)")
	return nil
}

// Stop stops the backlog monitor job.
func (j *BacklogMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog monitor job stopped")
}
