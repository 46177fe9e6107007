package commands

import (
	"errors"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/pkg/errs"
	"robodelivery/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand represents a request to register a product in the
// catalog. Orders placed afterwards derive their shipping weight and value
// from the product's unit weight and price.
//
// Example:
//
//	cmd, err := NewCreateProductCommand("Grain 25kg", 20, 30)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     int
	weight    int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Automatically generates a unique ID for the product.
// Validates that the name is not empty and price and weight are positive.
func NewCreateProductCommand(name string, price, weight int) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(kernel.NewUUID()),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setWeight(weight),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the generated identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c CreateProductCommand) Price() int {
	return c.price
}

// Weight returns the unit shipping weight.
func (c CreateProductCommand) Weight() int {
	return c.weight
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	c.weight = weight
	return nil
}
