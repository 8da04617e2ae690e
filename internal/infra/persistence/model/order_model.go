// Package model holds the GORM-specific structs mapping entities to tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table. Orders are
// written by the storefront; this service only reads them.
type OrderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerName string    `gorm:"not null"`
	Phone        string    `gorm:"not null;index"`
	Address      string    `gorm:"not null"`
	MapLink      string
	OrderDate    time.Time `gorm:"not null;index"`
	TotalAmount  float64   `gorm:"type:decimal(10,2);not null"`
	Status       string    `gorm:"not null;default:'pending'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
