package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the activity state of a recurring order.
// All transitions between statuses are permitted; a cancelled subscription
// can be reactivated. SetStatus on the service is the single seam where a
// stricter policy would be enforced if that ever changes.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// PaymentStatus tracks the billing outcome of a subscription. It is an
// independent axis from SubscriptionStatus; changing one never touches the
// other.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentType distinguishes how a subscription is billed.
type PaymentType string

const (
	PaymentTypeOnline  PaymentType = "online"
	PaymentTypeOffline PaymentType = "offline"
)

// SubscriptionFrequency is the recurrence cadence of a subscription. It
// constrains which delivery-day sets are valid: daily forces the full week.
type SubscriptionFrequency string

const (
	FrequencyDaily   SubscriptionFrequency = "daily"
	FrequencyWeekly  SubscriptionFrequency = "weekly"
	FrequencyMonthly SubscriptionFrequency = "monthly"
)

// WeekDays is the canonical full week, in delivery-day order. Daily
// subscriptions always carry exactly this set.
var WeekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Subscription is a recurring milk delivery order.
// TotalAmount is derived: it always equals Quantity * PricePerLiter at the
// moment of the last write.
type Subscription struct {
	ID            uuid.UUID             `json:"id"`                 // The unique identifier, assigned by persistence.
	CustomerName  string                `json:"customer_name"`      // The subscriber's name.
	Phone         string                `json:"phone"`              // The subscriber's phone number.
	Address       string                `json:"address"`            // The delivery address.
	MapLink       string                `json:"map_link"`           // Optional link to the delivery location on a map.
	Quantity      float64               `json:"quantity"`           // Liters per delivery, always > 0.
	PricePerLiter float64               `json:"price_per_liter"`    // Unit price, always > 0.
	TotalAmount   float64               `json:"total_amount"`       // Derived: Quantity * PricePerLiter.
	Frequency     SubscriptionFrequency `json:"frequency"`          // daily, weekly or monthly.
	DeliveryDays  []string              `json:"delivery_days"`      // Full week for daily, chosen subset otherwise.
	StartDate     time.Time             `json:"start_date"`         // First delivery date.
	EndDate       *time.Time            `json:"end_date,omitempty"` // Optional; never before StartDate.
	Status        SubscriptionStatus    `json:"status"`             // Activity state.
	PaymentType   PaymentType           `json:"payment_type"`       // online or offline billing.
	PaymentStatus PaymentStatus         `json:"payment_status"`     // Billing outcome axis.
	AutoRenew     bool                  `json:"auto_renew"`         // Whether the subscription renews past EndDate.
	CreatedAt     time.Time             `json:"created_at"`         // Timestamp of when the record was created.
	UpdatedAt     time.Time             `json:"updated_at"`         // Timestamp of the last modification.
}

// SubscriptionStats is the dashboard summary over a subscription snapshot.
// Revenue counts active subscriptions only; paused and cancelled ones do
// not contribute even if they were active before.
type SubscriptionStats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	Paused         int     `json:"paused"`
	Cancelled      int     `json:"cancelled"`
	Paid           int     `json:"paid"`
	PaymentPending int     `json:"payment_pending"`
	Overdue        int     `json:"overdue"`
	Revenue        float64 `json:"revenue"`
}

// ValidSubscriptionStatus reports whether s is one of the known statuses.
func ValidSubscriptionStatus(s SubscriptionStatus) bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusPaused, SubscriptionStatusCancelled:
		return true
	}

	return false
}

// ValidPaymentStatus reports whether s is one of the known payment statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusOverdue, PaymentStatusFailed:
		return true
	}

	return false
}

// ValidPaymentType reports whether t is one of the known payment types.
func ValidPaymentType(t PaymentType) bool {
	return t == PaymentTypeOnline || t == PaymentTypeOffline
}

// ValidFrequency reports whether f is one of the known frequencies.
func ValidFrequency(f SubscriptionFrequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}

	return false
}

// ValidDeliveryDay reports whether day names a day of the week.
func ValidDeliveryDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}

	return false
}
