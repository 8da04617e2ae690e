package repository

import (
	"context"

	"dairyops/internal/domain/entity"
	"dairyops/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for subscription-related
// database operations. Writes must fail loudly; a targeted update or delete
// that matches no row returns ErrSubscriptionNotFound rather than
// silently doing nothing.
type SubscriptionRepository interface {
	// CreateSubscription persists a new subscription and fills in the
	// generated identifier and timestamps on the passed entity.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// ListSubscriptions retrieves the full current subscription collection.
	ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error)

	// UpdateSubscription saves the mutable fields of an existing
	// subscription. Last write wins; no optimistic-concurrency check.
	UpdateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// UpdateSubscriptionStatus updates only the activity status.
	UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error

	// UpdatePaymentStatus updates only the payment status axis.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// DeleteSubscription removes a subscription by its ID.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error
}
