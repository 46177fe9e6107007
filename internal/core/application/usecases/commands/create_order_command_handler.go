package commands

import (
	"context"

	"robodelivery/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Looks up the ordered product, derives the order's shipping weight and
// value from the product's unit weight and price, and persists the order in
// awaiting-shipment status. Placement only ever creates rows, so it never
// contends with planning or status transitions on existing orders.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning the order and product repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Returns an object-not-found error if the product does not exist; the
// order is persisted or rolled back atomically.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		item.ID(),
		cmd.Quantity(),
		item.Weight()*cmd.Quantity(),
		item.Price()*cmd.Quantity(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
