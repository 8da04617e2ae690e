package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions'
// table. DeliveryDays is stored as a JSON array via the GORM serializer.
type SubscriptionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerName  string    `gorm:"not null"`
	Phone         string    `gorm:"not null;index"`
	Address       string    `gorm:"not null"`
	MapLink       string
	Quantity      float64  `gorm:"type:decimal(10,2);not null"`
	PricePerLiter float64  `gorm:"type:decimal(10,2);not null"`
	TotalAmount   float64  `gorm:"type:decimal(10,2);not null"`
	Frequency     string   `gorm:"not null"`
	DeliveryDays  []string `gorm:"serializer:json"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       *time.Time
	Status        string `gorm:"not null;default:'active';index"`
	PaymentType   string `gorm:"not null"`
	PaymentStatus string `gorm:"not null;default:'pending';index"`
	AutoRenew     bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
