package order

import (
	"errors"
	"fmt"
	"time"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order moving through the delivery lifecycle.
// It is the aggregate root mutated only by the planning and completion
// workflows.
//
// Order maintains these invariants:
//   - Valid unique identifier and product reference
//   - Quantity, weight, and value are positive
//   - Status transitions only move forward:
//     AwaitingShipment -> OutForDelivery -> Delivered
//   - The arrival timestamp is set exactly once, at the Delivered transition
//
// The struct uses private fields to keep invariants enforceable; instances
// are created through NewOrder (placement) or RestoreOrder (persistence).
type Order struct {
	// id is the unique identifier for the order, immutable after creation
	id kernel.UUID

	// productID references the ordered product
	productID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// weight is the total shipping weight, product weight times quantity;
	// the size dimension for delivery planning
	weight int

	// value is the total order value, product price times quantity;
	// the value dimension for delivery planning
	value int

	// status is the current lifecycle state
	status Status

	// createdAt is the placement time, immutable
	createdAt time.Time

	// arrivedAt is nil until the order is delivered
	arrivedAt *time.Time

	// isConstructed ensures the order came from a constructor
	isConstructed bool
}

// NewOrder creates an order in AwaitingShipment status with the placement
// time stamped to now. Weight and value are derived by the caller from the
// product's unit weight and price.
//
// Returns a validation error if the identifiers are invalid or any of
// quantity, weight, value is not positive.
func NewOrder(id, productID kernel.UUID, quantity, weight, value int) (*Order, error) {
	o := &Order{
		status:        AwaitingShipment,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setWeight(weight),
		o.setValue(value),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persisted state. Unlike NewOrder
// it accepts any valid status, but rejects inconsistent combinations such
// as a delivered order without an arrival time.
func RestoreOrder(
	id, productID kernel.UUID,
	quantity, weight, value int,
	status Status,
	createdAt time.Time,
	arrivedAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		arrivedAt:     arrivedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setWeight(weight),
		o.setValue(value),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveArrival(arrivedAt != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductID returns the identifier of the ordered product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Weight returns the total shipping weight of the order.
func (o *Order) Weight() int {
	return o.weight
}

// Value returns the total value of the order.
func (o *Order) Value() int {
	return o.value
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ArrivedAt returns the delivery time, or nil while the order has not been
// delivered.
func (o *Order) ArrivedAt() *time.Time {
	if o.arrivedAt == nil {
		return nil
	}
	t := *o.arrivedAt
	return &t
}

// Dispatch marks the order as committed into a delivery plan, moving it
// from AwaitingShipment to OutForDelivery.
//
// Returns an error unwrapping to errs.ErrInvalidTransition if the order is
// not awaiting shipment — an order never appears in two plans.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered and stamps the arrival time.
//
// The order must be OutForDelivery; completing it twice yields success once
// and an error unwrapping to errs.ErrInvalidTransition on the second call.
// The arrival timestamp is set exactly once.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.arrivedAt = &now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setValue(value int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%d is not greater than 0", value))
	}
	o.value = value
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
