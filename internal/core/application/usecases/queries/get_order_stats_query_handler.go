package queries

import (
	"context"

	"robodelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler retrieves order counts per status from the database.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query to count orders grouped by status.
// Statuses with no orders report zero.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	var stats GetOrderStatsQueryResponse
	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		switch order.Status(status) {
		case order.AwaitingShipment:
			stats.AwaitingShipment = count
		case order.OutForDelivery:
			stats.OutForDelivery = count
		case order.Delivered:
			stats.Delivered = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return stats, nil
}
