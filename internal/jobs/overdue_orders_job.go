package jobs

import (
	"context"
	"log/slog"
	"time"

	"robodelivery/internal/core/application/usecases/queries"
	"robodelivery/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueThreshold is how long an order may stay out for delivery
// before the watchdog flags it as overdue.
const DefaultOverdueThreshold = 30 * time.Minute

// OverdueOrdersJob watches for orders that have been out for delivery longer
// than a threshold and logs a warning for each. Runs every minute; a robot
// that never reports back otherwise leaves its orders stuck silently.
type OverdueOrdersJob struct {
	handler   queries.GetPendingOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueOrdersJob creates a new job for flagging overdue deliveries.
// A non-positive threshold falls back to DefaultOverdueThreshold.
func NewOverdueOrdersJob(
	handler queries.GetPendingOrdersQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *OverdueOrdersJob {
	if threshold <= 0 {
		threshold = DefaultOverdueThreshold
	}

	return &OverdueOrdersJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue orders job to run every minute.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingOrdersQuery()

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
			return
		}

		cutoff := time.Now().Add(-j.threshold)
		for _, o := range orders {
			if o.Status != order.OutForDelivery.String() {
				continue
			}
			if o.CreatedAt.After(cutoff) {
				continue
			}

			j.logger.WarnContext(ctx, "Order overdue for delivery",
				"order_id", o.ID.String(),
				"created_at", o.CreatedAt,
				"threshold", j.threshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every minute)")
	return nil
}

// Stop stops the overdue orders job.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
