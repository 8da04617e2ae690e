package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "dairyops/internal/delivery/context"
	"dairyops/internal/domain/entity"
	domainerrors "dairyops/internal/domain/errors"
	"dairyops/internal/domain/repository"
	"dairyops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSubscriptionService(repo *mockSubscriptionRepository) *subscriptionService {
	return &subscriptionService{
		subscriptionRepo: repo,
		logger:           slog.New(slog.DiscardHandler),
		now:              func() time.Time { return testNow },
	}
}

func validCreateInput() usecase.CreateSubscriptionInput {
	return usecase.CreateSubscriptionInput{
		CustomerName:  "Asha",
		Phone:         "555",
		Address:       "12 Dairy Lane",
		Quantity:      "2",
		PricePerLiter: "50",
		Frequency:     "daily",
		StartDate:     day(2024, 2, 1),
	}
}

func TestSubscriptionService_CreateSubscription(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	ctx := context.Background()
	repo.On("CreateSubscription", ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	subscription, err := service.CreateSubscription(ctx, validCreateInput())
	require.NoError(t, err)

	assert.InDelta(t, 100.0, subscription.TotalAmount, 1e-9)
	assert.Equal(t, entity.WeekDays, subscription.DeliveryDays)
	assert.Equal(t, entity.SubscriptionStatusActive, subscription.Status)
	assert.Equal(t, entity.PaymentStatusPending, subscription.PaymentStatus)
	assert.Equal(t, entity.PaymentTypeOffline, subscription.PaymentType)
	repo.AssertExpectations(t)
}

func TestSubscriptionService_CreateSubscription_DailyOverridesDeliveryDays(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	ctx := context.Background()
	repo.On("CreateSubscription", ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	input := validCreateInput()
	input.DeliveryDays = []string{"monday", "thursday"}

	subscription, err := service.CreateSubscription(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.WeekDays, subscription.DeliveryDays)
}

func TestSubscriptionService_CreateSubscription_ValidationNeverReachesRepo(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreateSubscriptionInput)
	}{
		{"missing customer name", func(in *usecase.CreateSubscriptionInput) { in.CustomerName = "  " }},
		{"missing phone", func(in *usecase.CreateSubscriptionInput) { in.Phone = "" }},
		{"missing address", func(in *usecase.CreateSubscriptionInput) { in.Address = "" }},
		{"missing start date", func(in *usecase.CreateSubscriptionInput) { in.StartDate = time.Time{} }},
		{"malformed quantity", func(in *usecase.CreateSubscriptionInput) { in.Quantity = "two" }},
		{"zero quantity", func(in *usecase.CreateSubscriptionInput) { in.Quantity = "0" }},
		{"negative price", func(in *usecase.CreateSubscriptionInput) { in.PricePerLiter = "-5" }},
		{"unknown frequency", func(in *usecase.CreateSubscriptionInput) { in.Frequency = "fortnightly" }},
		{"unknown status", func(in *usecase.CreateSubscriptionInput) { in.Status = "dormant" }},
		{"unknown payment type", func(in *usecase.CreateSubscriptionInput) { in.PaymentType = "barter" }},
		{"weekly without delivery days", func(in *usecase.CreateSubscriptionInput) {
			in.Frequency = "weekly"
			in.DeliveryDays = nil
		}},
		{"weekly with unknown delivery day", func(in *usecase.CreateSubscriptionInput) {
			in.Frequency = "weekly"
			in.DeliveryDays = []string{"funday"}
		}},
		{"end date before start date", func(in *usecase.CreateSubscriptionInput) {
			end := in.StartDate.AddDate(0, 0, -1)
			in.EndDate = &end
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockSubscriptionRepository)
			service := newTestSubscriptionService(repo)

			input := validCreateInput()
			tt.mutate(&input)

			subscription, err := service.CreateSubscription(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, subscription)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "SUBSCRIPTION_INVALID", appErr.ErrorCode())
			repo.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
		})
	}
}

func TestSubscriptionService_UpdateSubscription_RecomputesTotalAmount(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	id := uuid.New()
	existing := &entity.Subscription{
		ID:            id,
		CustomerName:  "Asha",
		Phone:         "555",
		Address:       "12 Dairy Lane",
		Quantity:      2,
		PricePerLiter: 50,
		TotalAmount:   100,
		Frequency:     entity.FrequencyDaily,
		DeliveryDays:  append([]string(nil), entity.WeekDays...),
		StartDate:     day(2024, 2, 1),
		Status:        entity.SubscriptionStatusActive,
		PaymentType:   entity.PaymentTypeOffline,
		PaymentStatus: entity.PaymentStatusPending,
	}

	ctx := context.Background()
	repo.On("FindSubscriptionByID", ctx, id).Return(existing, nil)
	repo.On("UpdateSubscription", ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	quantity := "3"
	updated, err := service.UpdateSubscription(ctx, id, usecase.UpdateSubscriptionInput{Quantity: &quantity})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, updated.Quantity, 1e-9)
	assert.InDelta(t, 150.0, updated.TotalAmount, 1e-9)
	// The stored record is untouched until persistence succeeds.
	assert.InDelta(t, 100.0, existing.TotalAmount, 1e-9)
}

func TestSubscriptionService_UpdateSubscription_FrequencyToDailyForcesFullWeek(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	id := uuid.New()
	existing := &entity.Subscription{
		ID:            id,
		CustomerName:  "Asha",
		Phone:         "555",
		Address:       "12 Dairy Lane",
		Quantity:      2,
		PricePerLiter: 50,
		TotalAmount:   100,
		Frequency:     entity.FrequencyWeekly,
		DeliveryDays:  []string{"monday", "thursday"},
		StartDate:     day(2024, 2, 1),
		Status:        entity.SubscriptionStatusActive,
		PaymentType:   entity.PaymentTypeOffline,
		PaymentStatus: entity.PaymentStatusPending,
	}

	ctx := context.Background()
	repo.On("FindSubscriptionByID", ctx, id).Return(existing, nil)
	repo.On("UpdateSubscription", ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	frequency := "daily"
	updated, err := service.UpdateSubscription(ctx, id, usecase.UpdateSubscriptionInput{Frequency: &frequency})
	require.NoError(t, err)
	assert.Equal(t, entity.WeekDays, updated.DeliveryDays)
}

func TestSubscriptionService_UpdateSubscription_ReturnsPersistedTimestamp(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	id := uuid.New()
	staleUpdatedAt := day(2024, 1, 1)
	existing := &entity.Subscription{
		ID:            id,
		CustomerName:  "Asha",
		Phone:         "555",
		Address:       "12 Dairy Lane",
		Quantity:      2,
		PricePerLiter: 50,
		TotalAmount:   100,
		Frequency:     entity.FrequencyDaily,
		DeliveryDays:  append([]string(nil), entity.WeekDays...),
		StartDate:     day(2024, 2, 1),
		Status:        entity.SubscriptionStatusActive,
		PaymentType:   entity.PaymentTypeOffline,
		PaymentStatus: entity.PaymentStatusPending,
		UpdatedAt:     staleUpdatedAt,
	}

	ctx := context.Background()
	repo.On("FindSubscriptionByID", ctx, id).Return(existing, nil)
	repo.On("UpdateSubscription", ctx, mock.AnythingOfType("*entity.Subscription")).
		Run(func(args mock.Arguments) {
			// Persistence stamps the write time onto the entity.
			args.Get(1).(*entity.Subscription).UpdatedAt = testNow
		}).
		Return(nil)

	quantity := "3"
	updated, err := service.UpdateSubscription(ctx, id, usecase.UpdateSubscriptionInput{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, testNow, updated.UpdatedAt)
	assert.NotEqual(t, staleUpdatedAt, updated.UpdatedAt)
}

func TestSubscriptionService_UsesRequestScopedLogger(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	var fallbackBuf bytes.Buffer
	service.logger = slog.New(slog.NewTextHandler(&fallbackBuf, nil))

	var requestBuf bytes.Buffer
	requestLogger := slog.New(slog.NewTextHandler(&requestBuf, nil))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	id := uuid.New()
	repo.On("UpdateSubscriptionStatus", ctx, id, entity.SubscriptionStatusPaused).Return(nil)

	require.NoError(t, service.SetStatus(ctx, id, entity.SubscriptionStatusPaused))
	assert.Contains(t, requestBuf.String(), "Updated subscription status")
	assert.Empty(t, fallbackBuf.String())
}

func TestSubscriptionService_UpdateSubscription_NotFound(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	id := uuid.New()
	ctx := context.Background()
	repo.On("FindSubscriptionByID", ctx, id).Return(nil, repository.ErrSubscriptionNotFound)

	updated, err := service.UpdateSubscription(ctx, id, usecase.UpdateSubscriptionInput{})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_SetStatus(t *testing.T) {
	statuses := []entity.SubscriptionStatus{
		entity.SubscriptionStatusActive,
		entity.SubscriptionStatusPaused,
		entity.SubscriptionStatusCancelled,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			repo := new(mockSubscriptionRepository)
			service := newTestSubscriptionService(repo)

			id := uuid.New()
			ctx := context.Background()
			repo.On("UpdateSubscriptionStatus", ctx, id, status).Return(nil)

			require.NoError(t, service.SetStatus(ctx, id, status))
			repo.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_SetStatus_InvalidValue(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	err := service.SetStatus(context.Background(), uuid.New(), entity.SubscriptionStatus("dormant"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUBSCRIPTION_INVALID", appErr.ErrorCode())
	repo.AssertNotCalled(t, "UpdateSubscriptionStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_SetStatus_NotFound(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	id := uuid.New()
	ctx := context.Background()
	repo.On("UpdateSubscriptionStatus", ctx, id, entity.SubscriptionStatusPaused).
		Return(repository.ErrSubscriptionNotFound)

	err := service.SetStatus(ctx, id, entity.SubscriptionStatusPaused)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_SetPaymentStatus(t *testing.T) {
	statuses := []entity.PaymentStatus{
		entity.PaymentStatusPaid,
		entity.PaymentStatusPending,
		entity.PaymentStatusOverdue,
		entity.PaymentStatusFailed,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			repo := new(mockSubscriptionRepository)
			service := newTestSubscriptionService(repo)

			id := uuid.New()
			ctx := context.Background()
			repo.On("UpdatePaymentStatus", ctx, id, status).Return(nil)

			require.NoError(t, service.SetPaymentStatus(ctx, id, status))
			repo.AssertNotCalled(t, "UpdateSubscriptionStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubscriptionService_SetPaymentStatus_InvalidValue(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	err := service.SetPaymentStatus(context.Background(), uuid.New(), entity.PaymentStatus("refunded"))
	require.Error(t, err)
	repo.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_DeleteSubscription(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	id := uuid.New()
	ctx := context.Background()
	repo.On("DeleteSubscription", ctx, id).Return(nil)

	require.NoError(t, service.DeleteSubscription(ctx, id))
	repo.AssertExpectations(t)
}

func TestSubscriptionService_DeleteSubscription_RepositoryError(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	id := uuid.New()
	ctx := context.Background()
	repo.On("DeleteSubscription", ctx, id).Return(errors.New("db down"))

	err := service.DeleteSubscription(ctx, id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_Stats_FiltersByCreationPeriod(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	service := newTestSubscriptionService(repo)

	ctx := context.Background()
	repo.On("ListSubscriptions", ctx).Return([]*entity.Subscription{
		{Status: entity.SubscriptionStatusActive, PaymentStatus: entity.PaymentStatusPaid, TotalAmount: 100, CreatedAt: testNow.AddDate(0, 0, -2)},
		{Status: entity.SubscriptionStatusPaused, PaymentStatus: entity.PaymentStatusPending, TotalAmount: 200, CreatedAt: testNow.AddDate(0, 0, -3)},
		{Status: entity.SubscriptionStatusActive, PaymentStatus: entity.PaymentStatusOverdue, TotalAmount: 300, CreatedAt: testNow.AddDate(0, 0, -60)},
	}, nil)

	stats, err := service.Stats(ctx, "last7days")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Paused)
	assert.Equal(t, 0, stats.Cancelled)
	assert.Equal(t, 1, stats.Paid)
	assert.Equal(t, 1, stats.PaymentPending)
	assert.InDelta(t, 100.0, stats.Revenue, 1e-9)
}

func TestSummarizeSubscriptions_RevenueCountsActiveOnly(t *testing.T) {
	stats := summarizeSubscriptions([]*entity.Subscription{
		{Status: entity.SubscriptionStatusActive, PaymentStatus: entity.PaymentStatusPaid, TotalAmount: 100},
		{Status: entity.SubscriptionStatusPaused, PaymentStatus: entity.PaymentStatusPaid, TotalAmount: 200},
		{Status: entity.SubscriptionStatusCancelled, PaymentStatus: entity.PaymentStatusOverdue, TotalAmount: 300},
	})

	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 100.0, stats.Revenue, 1e-9)
	assert.Equal(t, 2, stats.Paid)
	assert.Equal(t, 1, stats.Overdue)
}
