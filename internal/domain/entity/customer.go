package entity

import "time"

// CustomerStatus marks whether a customer has ordered recently.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// CustomerLocation is an optional geographic location for a customer,
// sourced from an order map link or a profile default address.
type CustomerLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	MapLink   string  `json:"map_link"`
}

// Customer is the derived, customer-centric projection of the order and
// profile collections. It is never persisted; it is recomputed wholesale
// from fresh snapshots on every aggregation pass. Exactly one Customer
// exists per distinct phone number appearing in the order collection.
type Customer struct {
	Phone             string            `json:"phone"`               // Identity key.
	Name              string            `json:"name"`                // Name from the first order seen for this phone.
	Address           string            `json:"address"`             // Delivery address, possibly overlaid from the profile.
	Email             string            `json:"email"`               // Contact email, overlaid from the profile when present.
	TotalOrders       int               `json:"total_orders"`        // Count of all orders regardless of status.
	TotalSpent        float64           `json:"total_spent"`         // Sum of completed order amounts only.
	AverageOrderValue float64           `json:"average_order_value"` // TotalSpent / TotalOrders, zero when there are no orders.
	FirstOrderDate    time.Time         `json:"first_order_date"`    // Earliest order date; treated as the join date.
	LastOrderDate     time.Time         `json:"last_order_date"`     // Most recent order date.
	Status            CustomerStatus    `json:"status"`              // active when the last order falls within the active window.
	Location          *CustomerLocation `json:"location,omitempty"`  // Optional geographic location.
}
