package queries

import (
	"context"
	"time"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves orders pending delivery from the database.
// Filters out delivered orders to provide active workload visibility.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending orders.
// Returns orders in awaiting-shipment or out-for-delivery status, excluding
// delivered ones. Results are sorted by order ID for consistent output.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			weight,
			value,
			status,
			created_at
		FROM orders
		WHERE status != ?
		ORDER BY id
	`, order.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetPendingOrdersQueryResponse
		var id, productID uuid.UUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&productID,
			&orderResp.Quantity,
			&orderResp.Weight,
			&orderResp.Value,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ProductID = prodID

		orderResp.Status = order.Status(status).String()
		orderResp.CreatedAt = createdAt
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
