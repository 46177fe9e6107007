package queries

import (
	"errors"

	"robodelivery/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery retrieves order counts grouped by status.
// Feeds the backlog monitor and the operational metrics.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query to retrieve order status counts.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse represents order counts per lifecycle status.
type GetOrderStatsQueryResponse struct {
	AwaitingShipment int
	OutForDelivery   int
	Delivered        int
}
