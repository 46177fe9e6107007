// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is the single source of truth for order state; planning and status
// transitions go through its conditional update, never through direct
// table access.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate
	// unconditionally. The order must exist and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAwaitingShipment retrieves the orders eligible for the next
	// delivery plan, i.e. all orders in AwaitingShipment status.
	GetAllAwaitingShipment(ctx context.Context) ([]*order.Order, error)

	// UpdateIfStatus persists the aggregate only if the stored row still
	// carries the expected status — a compare-and-swap on the status
	// column. Returns false (and no error) when the row was concurrently
	// moved past the expected status; this is how double allocation of an
	// order between concurrent plans is prevented.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) (bool, error)
}
