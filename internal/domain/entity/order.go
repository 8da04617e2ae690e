// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfilment state of a single delivery order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a single milk delivery order as recorded by the storefront.
// Orders are read-only to this service; the customer projection is derived
// from them, keyed by phone number.
type Order struct {
	ID           uuid.UUID   `json:"id"`            // The unique identifier for the order.
	CustomerName string      `json:"customer_name"` // The name entered on the order form.
	Phone        string      `json:"phone"`         // The customer phone number, used as the join key.
	Address      string      `json:"address"`       // The delivery address entered on the order form.
	MapLink      string      `json:"map_link"`      // Optional link to the delivery location on a map.
	OrderDate    time.Time   `json:"order_date"`    // The date the order was placed.
	TotalAmount  float64     `json:"total_amount"`  // The order total.
	Status       OrderStatus `json:"status"`        // pending, completed or cancelled.
	CreatedAt    time.Time   `json:"created_at"`    // Timestamp of when the record was created.
	UpdatedAt    time.Time   `json:"updated_at"`    // Timestamp of the last modification.
}
