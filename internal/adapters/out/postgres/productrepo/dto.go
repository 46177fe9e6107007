// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product catalog, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog entries.
type ProductDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Price  int       `gorm:"type:int;not null"`
	Weight int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:     product.ID().Bytes(),
		Name:   product.Name(),
		Price:  product.Price(),
		Weight: product.Weight(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Products are immutable, so reconstruction goes through NewProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Name, dto.Price, dto.Weight)
}
