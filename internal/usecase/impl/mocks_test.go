package impl

import (
	"context"

	"dairyops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) ListProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	args := m.Called(ctx)
	if profiles, ok := args.Get(0).([]*entity.UserProfile); ok {
		return profiles, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	args := m.Called(ctx, subscription)

	return args.Error(0)
}

func (m *mockSubscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, id)
	if subscription, ok := args.Get(0).(*entity.Subscription); ok {
		return subscription, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	args := m.Called(ctx)
	if subscriptions, ok := args.Get(0).([]*entity.Subscription); ok {
		return subscriptions, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSubscriptionRepository) UpdateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	args := m.Called(ctx, subscription)

	return args.Error(0)
}

func (m *mockSubscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *mockSubscriptionRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *mockSubscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
