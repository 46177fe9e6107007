package commands

import (
	"context"

	"robodelivery/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for catalog
// registration. Creates and persists new product aggregates; the catalog
// must be populated before orders referencing its products can be placed.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
// Requires a ProductUoWFactory for transactional persistence operations.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Creates a new product aggregate and persists it within a transaction.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Weight())
	if err != nil {
		return err
	}

	if err = productRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
