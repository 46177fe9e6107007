// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with an index on
// status for efficient planning and monitoring queries.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int       `gorm:"type:int;not null"`
	Weight    int       `gorm:"type:int;not null"`
	Value     int       `gorm:"type:int;not null"`
	Status    int       `gorm:"type:int;not null;index"`
	CreatedAt time.Time
	ArrivedAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional arrival timestamp.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:        order.ID().Bytes(),
		ProductID: order.ProductID().Bytes(),
		Quantity:  order.Quantity(),
		Weight:    order.Weight(),
		Value:     order.Value(),
		Status:    int(order.Status()),
		CreatedAt: order.CreatedAt(),
		ArrivedAt: order.ArrivedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and arrival time using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, productID,
		dto.Quantity, dto.Weight, dto.Value,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.ArrivedAt,
	)
}
