package commands

import (
	"context"
	"time"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/order"
	"robodelivery/internal/core/domain/services"
)

// DeliveryPlan is the result of a plan request: exactly the orders whose
// transition to out-for-delivery was committed, with their weight and value
// totals. Conflicts counts orders that were selected by the planner but
// lost the conditional update to a concurrent plan request and were dropped
// from the result.
type DeliveryPlan struct {
	RobotID     string
	TotalWeight int
	TotalValue  int
	Orders      []PlannedOrder
	Conflicts   int
}

// PlannedOrder carries the fields the robot client needs for routing a
// single committed order.
type PlannedOrder struct {
	OrderID   kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	Weight    int
	Value     int
	CreatedAt time.Time
}

// RequestPlanCommandHandler orchestrates delivery planning: it snapshots
// the eligible orders, runs the DeliveryPlanner over the snapshot, and
// commits the chosen orders to out-for-delivery within one transaction.
//
// The commit is a per-order compare-and-swap on the awaiting-shipment
// status. An order that lost the race to a concurrent plan request is
// dropped from the result silently and not retried within this call — the
// returned plan reflects only successfully committed orders, so two
// concurrent plan requests never return overlapping order sets. No lock is
// held across the planning computation itself.
//
// A caller timeout after commit is not a rollback: once an order is marked
// out-for-delivery the robot has been dispatched, and partial completion is
// the intended failure mode.
type RequestPlanCommandHandler struct {
	uowFactory OrderUoWFactory
	planner    services.DeliveryPlanner
}

// NewRequestPlanCommandHandler creates a handler for delivery planning.
// Requires an OrderUoWFactory for transactional access to orders.
func NewRequestPlanCommandHandler(uowFactory OrderUoWFactory) RequestPlanCommandHandler {
	return RequestPlanCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewDeliveryPlanner(),
	}
}

// Handle processes the plan request.
// An empty pool of eligible orders, or a capacity too small for any of
// them, yields a successful empty plan, not an error.
func (h RequestPlanCommandHandler) Handle(ctx context.Context, cmd RequestPlanCommand) (DeliveryPlan, error) {
	if err := cmd.Validate(); err != nil {
		return DeliveryPlan{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeliveryPlan{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	eligible, err := orderRepo.GetAllAwaitingShipment(ctx)
	if err != nil {
		return DeliveryPlan{}, err
	}

	candidates := make([]services.Candidate, 0, len(eligible))
	for _, o := range eligible {
		candidates = append(candidates, services.Candidate{
			OrderID: o.ID(),
			Weight:  o.Weight(),
			Value:   o.Value(),
		})
	}

	selection, err := h.planner.Plan(cmd.Capacity(), candidates)
	if err != nil {
		return DeliveryPlan{}, err
	}

	plan := DeliveryPlan{
		RobotID: cmd.RobotID(),
		Orders:  make([]PlannedOrder, 0, len(selection.OrderIDs)),
	}

	for _, selected := range eligible {
		if !selection.Contains(selected.ID()) {
			continue
		}
		if err = selected.Dispatch(); err != nil {
			return DeliveryPlan{}, err
		}

		committed, casErr := orderRepo.UpdateIfStatus(ctx, selected, order.AwaitingShipment)
		if casErr != nil {
			return DeliveryPlan{}, casErr
		}
		if !committed {
			// Lost the race to a concurrent plan request; drop the order
			// from this plan.
			plan.Conflicts++
			continue
		}

		plan.Orders = append(plan.Orders, PlannedOrder{
			OrderID:   selected.ID(),
			ProductID: selected.ProductID(),
			Quantity:  selected.Quantity(),
			Weight:    selected.Weight(),
			Value:     selected.Value(),
			CreatedAt: selected.CreatedAt(),
		})
		plan.TotalWeight += selected.Weight()
		plan.TotalValue += selected.Value()
	}

	if err = uow.Commit(ctx); err != nil {
		return DeliveryPlan{}, err
	}

	return plan, nil
}
