package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "dairyops/internal/delivery/context"
	"dairyops/internal/domain/entity"
	domainerrors "dairyops/internal/domain/errors"
	"dairyops/internal/domain/repository"
	"dairyops/internal/usecase"
	"dairyops/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription lifecycle service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateSubscription validates the form input, derives total amount and
// delivery days, and persists the new subscription. Validation failures
// never reach the repository.
func (s *subscriptionService) CreateSubscription(ctx context.Context, input usecase.CreateSubscriptionInput) (*entity.Subscription, error) {
	subscription, err := buildSubscription(input)
	if err != nil {
		return nil, err
	}

	if err := s.subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
		s.log(ctx).Error("Failed to create subscription", slog.Any("error", err), slog.String("phone", subscription.Phone))

		return nil, errors.Wrap(err, "failed to create subscription")
	}

	s.log(ctx).Info("Created subscription",
		slog.Any("subscription_id", subscription.ID), slog.String("frequency", string(subscription.Frequency)))

	return subscription, nil
}

// UpdateSubscription merges the partial input onto the stored record.
// Total amount is recomputed whenever quantity or price changes, and
// delivery days are re-derived when the frequency moves to or from daily.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, id uuid.UUID, input usecase.UpdateSubscriptionInput) (*entity.Subscription, error) {
	existing, err := s.findSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	var reasons []string

	if input.CustomerName != nil {
		updated.CustomerName = strings.TrimSpace(*input.CustomerName)
	}
	if input.Phone != nil {
		updated.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		updated.Address = strings.TrimSpace(*input.Address)
	}
	if input.MapLink != nil {
		updated.MapLink = strings.TrimSpace(*input.MapLink)
	}
	if input.Quantity != nil {
		updated.Quantity = parsePositive(*input.Quantity, "quantity", &reasons)
	}
	if input.PricePerLiter != nil {
		updated.PricePerLiter = parsePositive(*input.PricePerLiter, "price per liter", &reasons)
	}
	if input.Frequency != nil {
		updated.Frequency = entity.SubscriptionFrequency(*input.Frequency)
	}
	if input.DeliveryDays != nil {
		updated.DeliveryDays = input.DeliveryDays
	}
	if input.StartDate != nil {
		updated.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		updated.EndDate = input.EndDate
	}
	if input.PaymentType != nil {
		updated.PaymentType = entity.PaymentType(*input.PaymentType)
	}
	if input.AutoRenew != nil {
		updated.AutoRenew = *input.AutoRenew
	}

	deriveSubscription(&updated)
	validateSubscription(&updated, &reasons)
	if len(reasons) > 0 {
		return nil, domainerrors.ErrSubscriptionInvalid.WithDetails(strings.Join(reasons, "; "))
	}

	if err := s.subscriptionRepo.UpdateSubscription(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}
		s.log(ctx).Error("Failed to update subscription", slog.Any("error", err), slog.Any("subscription_id", id))

		return nil, errors.Wrap(err, "failed to update subscription")
	}

	s.log(ctx).Info("Updated subscription", slog.Any("subscription_id", id))

	return &updated, nil
}

// SetStatus transitions the activity status. Every transition among the
// known statuses is deliberately permitted, including cancelled back to
// active; this method is the single seam where a guarded policy would go.
func (s *subscriptionService) SetStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	if !entity.ValidSubscriptionStatus(status) {
		return domainerrors.ErrSubscriptionInvalid.WithDetails("unknown status: " + string(status))
	}

	if err := s.subscriptionRepo.UpdateSubscriptionStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to update subscription status")
	}

	s.log(ctx).Info("Updated subscription status",
		slog.Any("subscription_id", id), slog.String("status", string(status)))

	return nil
}

// SetPaymentStatus transitions the payment axis, independent of the
// activity status; all transitions are permitted here as well.
func (s *subscriptionService) SetPaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	if !entity.ValidPaymentStatus(status) {
		return domainerrors.ErrSubscriptionInvalid.WithDetails("unknown payment status: " + string(status))
	}

	if err := s.subscriptionRepo.UpdatePaymentStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to update payment status")
	}

	s.log(ctx).Info("Updated payment status",
		slog.Any("subscription_id", id), slog.String("payment_status", string(status)))

	return nil
}

// DeleteSubscription removes a subscription. Confirmation of operator
// intent is the caller's responsibility.
func (s *subscriptionService) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	if err := s.subscriptionRepo.DeleteSubscription(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to delete subscription")
	}

	s.log(ctx).Info("Deleted subscription", slog.Any("subscription_id", id))

	return nil
}

// GetSubscription retrieves a single subscription.
func (s *subscriptionService) GetSubscription(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	return s.findSubscription(ctx, id)
}

// ListSubscriptions retrieves the full subscription collection.
func (s *subscriptionService) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.ListSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

// Stats summarizes subscriptions created within the named period.
func (s *subscriptionService) Stats(ctx context.Context, period string) (*entity.SubscriptionStats, error) {
	subscriptions, err := s.subscriptionRepo.ListSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	now := s.now()
	inPeriod := make([]*entity.Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		if util.InPeriodAt(subscription.CreatedAt, now, period) {
			inPeriod = append(inPeriod, subscription)
		}
	}

	stats := summarizeSubscriptions(inPeriod)

	return &stats, nil
}

func (s *subscriptionService) findSubscription(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return subscription, nil
}

// buildSubscription validates raw form input and constructs a fully derived
// subscription entity. It returns an AppError listing every reason when
// the input is invalid.
func buildSubscription(input usecase.CreateSubscriptionInput) (*entity.Subscription, error) {
	var reasons []string

	subscription := &entity.Subscription{
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Phone:         strings.TrimSpace(input.Phone),
		Address:       strings.TrimSpace(input.Address),
		MapLink:       strings.TrimSpace(input.MapLink),
		Quantity:      parsePositive(input.Quantity, "quantity", &reasons),
		PricePerLiter: parsePositive(input.PricePerLiter, "price per liter", &reasons),
		Frequency:     entity.SubscriptionFrequency(input.Frequency),
		DeliveryDays:  input.DeliveryDays,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Status:        entity.SubscriptionStatus(input.Status),
		PaymentType:   entity.PaymentType(input.PaymentType),
		PaymentStatus: entity.PaymentStatus(input.PaymentStatus),
		AutoRenew:     input.AutoRenew,
	}

	// Operator-chosen initial states, with the documented defaults.
	if input.Status == "" {
		subscription.Status = entity.SubscriptionStatusActive
	}
	if input.PaymentStatus == "" {
		subscription.PaymentStatus = entity.PaymentStatusPending
	}
	if input.PaymentType == "" {
		subscription.PaymentType = entity.PaymentTypeOffline
	}

	deriveSubscription(subscription)
	validateSubscription(subscription, &reasons)
	if len(reasons) > 0 {
		return nil, domainerrors.ErrSubscriptionInvalid.WithDetails(strings.Join(reasons, "; "))
	}

	return subscription, nil
}

// deriveSubscription recomputes the derived fields: the total amount always
// equals quantity times unit price, and a daily frequency forces the full
// week of delivery days regardless of what the caller passed.
func deriveSubscription(subscription *entity.Subscription) {
	subscription.TotalAmount = subscription.Quantity * subscription.PricePerLiter

	if subscription.Frequency == entity.FrequencyDaily {
		subscription.DeliveryDays = append([]string(nil), entity.WeekDays...)
	}
}

func validateSubscription(subscription *entity.Subscription, reasons *[]string) {
	if subscription.CustomerName == "" {
		*reasons = append(*reasons, "customer name is required")
	}
	if subscription.Phone == "" {
		*reasons = append(*reasons, "phone is required")
	}
	if subscription.Address == "" {
		*reasons = append(*reasons, "address is required")
	}
	if subscription.StartDate.IsZero() {
		*reasons = append(*reasons, "start date is required")
	}
	if subscription.EndDate != nil && subscription.EndDate.Before(subscription.StartDate) {
		*reasons = append(*reasons, "end date must not be before start date")
	}
	if !entity.ValidFrequency(subscription.Frequency) {
		*reasons = append(*reasons, "frequency must be daily, weekly or monthly")
	}
	if !entity.ValidSubscriptionStatus(subscription.Status) {
		*reasons = append(*reasons, "unknown status: "+string(subscription.Status))
	}
	if !entity.ValidPaymentType(subscription.PaymentType) {
		*reasons = append(*reasons, "payment type must be online or offline")
	}
	if !entity.ValidPaymentStatus(subscription.PaymentStatus) {
		*reasons = append(*reasons, "unknown payment status: "+string(subscription.PaymentStatus))
	}

	if subscription.Frequency == entity.FrequencyWeekly || subscription.Frequency == entity.FrequencyMonthly {
		if len(subscription.DeliveryDays) == 0 {
			*reasons = append(*reasons, "at least one delivery day is required")
		}
		for _, day := range subscription.DeliveryDays {
			if !entity.ValidDeliveryDay(day) {
				*reasons = append(*reasons, "unknown delivery day: "+day)
			}
		}
	}
}

// parsePositive parses a form numeric field, recording a reason when the
// value is malformed or not strictly positive.
func parsePositive(raw, field string, reasons *[]string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*reasons = append(*reasons, field+" must be a number")

		return 0
	}
	if value <= 0 {
		*reasons = append(*reasons, field+" must be greater than zero")

		return 0
	}

	return value
}

// summarizeSubscriptions computes the dashboard summary over a snapshot.
// Revenue counts subscriptions with status active only.
func summarizeSubscriptions(subscriptions []*entity.Subscription) entity.SubscriptionStats {
	var stats entity.SubscriptionStats

	for _, subscription := range subscriptions {
		stats.Total++

		switch subscription.Status {
		case entity.SubscriptionStatusActive:
			stats.Active++
			stats.Revenue += subscription.TotalAmount
		case entity.SubscriptionStatusPaused:
			stats.Paused++
		case entity.SubscriptionStatusCancelled:
			stats.Cancelled++
		}

		switch subscription.PaymentStatus {
		case entity.PaymentStatusPaid:
			stats.Paid++
		case entity.PaymentStatusPending:
			stats.PaymentPending++
		case entity.PaymentStatusOverdue:
			stats.Overdue++
		}
	}

	return stats
}
