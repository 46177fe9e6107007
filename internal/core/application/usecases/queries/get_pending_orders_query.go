// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain aggregates and read projection data
// straight from the database.
package queries

import (
	"errors"
	"time"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves all orders not yet delivered.
// Returns orders in awaiting-shipment or out-for-delivery status for
// monitoring and fleet management.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	handler := NewGetPendingOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders pending delivery\n", len(orders))
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query to retrieve pending orders.
// This is a parameterless query that fetches all non-delivered orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOrdersQueryIsNotConstructed if validation fails.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse represents pending order information.
// Contains the data needed for delivery tracking and capacity planning.
type GetPendingOrdersQueryResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	Weight    int
	Value     int
	Status    string
	CreatedAt time.Time
}
