// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dairyops/internal/domain/entity"
)

// OrderRepository reads the order collection. Orders are written by the
// storefront, not by this service, so only snapshot reads are exposed.
type OrderRepository interface {
	// ListOrders retrieves the full current order collection.
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
