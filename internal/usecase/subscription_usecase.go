package usecase

import (
	"context"
	"time"

	"dairyops/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSubscriptionInput carries raw form input for a new subscription.
// Quantity and PricePerLiter arrive as strings because they come straight
// from form fields; the service parses and validates them.
type CreateSubscriptionInput struct {
	CustomerName  string     `json:"customer_name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	MapLink       string     `json:"map_link"`
	Quantity      string     `json:"quantity"`
	PricePerLiter string     `json:"price_per_liter"`
	Frequency     string     `json:"frequency"`
	DeliveryDays  []string   `json:"delivery_days"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Status        string     `json:"status"`
	PaymentType   string     `json:"payment_type"`
	PaymentStatus string     `json:"payment_status"`
	AutoRenew     bool       `json:"auto_renew"`
}

// UpdateSubscriptionInput carries a partial update; nil fields are left
// untouched. Derived fields are recomputed by the service when one of
// their factors changes.
type UpdateSubscriptionInput struct {
	CustomerName  *string    `json:"customer_name"`
	Phone         *string    `json:"phone"`
	Address       *string    `json:"address"`
	MapLink       *string    `json:"map_link"`
	Quantity      *string    `json:"quantity"`
	PricePerLiter *string    `json:"price_per_liter"`
	Frequency     *string    `json:"frequency"`
	DeliveryDays  []string   `json:"delivery_days"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	PaymentType   *string    `json:"payment_type"`
	AutoRenew     *bool      `json:"auto_renew"`
}

// SubscriptionUsecase owns all business rules around recurring orders:
// validated construction, derived fields, the two status axes and the
// dashboard summary.
type SubscriptionUsecase interface {
	// CreateSubscription validates input, derives the total amount and
	// delivery days, and persists the new subscription.
	CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*entity.Subscription, error)

	// UpdateSubscription merges partial fields onto the stored record,
	// re-deriving total amount and delivery days as needed.
	UpdateSubscription(ctx context.Context, id uuid.UUID, input UpdateSubscriptionInput) (*entity.Subscription, error)

	// SetStatus transitions the activity status. Every transition among
	// the known statuses is permitted.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error

	// SetPaymentStatus transitions the payment status axis, independent of
	// the activity status.
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// DeleteSubscription removes a subscription. The caller is responsible
	// for having confirmed operator intent.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error

	// GetSubscription retrieves a single subscription.
	GetSubscription(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// ListSubscriptions retrieves the full subscription collection.
	ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error)

	// Stats summarizes subscriptions created within the named period.
	Stats(ctx context.Context, period string) (*entity.SubscriptionStats, error)
}
