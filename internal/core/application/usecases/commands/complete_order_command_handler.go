package commands

import (
	"context"
	"errors"

	"robodelivery/internal/core/domain/model/order"
	"robodelivery/internal/pkg/errs"
)

// CompleteOrderCommandHandler applies the delivered transition to a single
// order. The order must currently be out-for-delivery; anything else — an
// unknown order ID, an order still awaiting shipment, or an order already
// delivered — fails with an error unwrapping to errs.ErrInvalidTransition
// and leaves state unchanged. Completing the same order twice therefore
// yields success once and an invalid-transition error on the second call;
// there is no silent no-op.
//
// The commit is a conditional update on one row: the delivered status and
// the arrival timestamp are written only if the row is still
// out-for-delivery, so a concurrent duplicate report cannot overwrite the
// first arrival time.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivered-status
// reports. Requires an OrderUoWFactory for transactional access to orders.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewInvalidTransitionErrorWithCause(
			order.Unknown.String(), order.Delivered.String(), err)
	}
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	committed, err := orderRepo.UpdateIfStatus(ctx, aggregate, order.OutForDelivery)
	if err != nil {
		return err
	}
	if !committed {
		// The row moved on between the read and the write; treat it the
		// same as reading a non-completable status.
		return errs.NewInvalidTransitionError(order.Delivered.String(), order.Delivered.String())
	}

	return uow.Commit(ctx)
}
