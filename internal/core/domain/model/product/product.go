package product

import (
	"errors"
	"fmt"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a catalog entry. Orders reference a product and derive
// their shipping weight and value from the product's unit weight and price.
//
// Product maintains these invariants:
//   - Valid unique identifier
//   - Non-empty name
//   - Price and weight are positive
//
// Instances are immutable after construction.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the display name of the product
	name string

	// price is the unit price (must be positive)
	price int

	// weight is the unit shipping weight (must be positive)
	weight int

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// NewProduct creates a catalog entry with validation. Returns a validation
// error if the identifier is invalid, the name is empty, or price/weight
// are not positive.
func NewProduct(id kernel.UUID, name string, price, weight int) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through
// NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name of the product.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price of the product.
func (p *Product) Price() int {
	return p.price
}

// Weight returns the unit shipping weight of the product.
func (p *Product) Weight() int {
	return p.weight
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}
