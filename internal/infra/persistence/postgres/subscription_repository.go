package postgres

import (
	"context"

	"dairyops/internal/domain/entity"
	domainerrors "dairyops/internal/domain/errors"
	"dairyops/internal/domain/repository"
	"dairyops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a new subscription.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	// Update the entity with generated values
	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// ListSubscriptions retrieves the full current subscription collection.
func (repo *subscriptionRepository) ListSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// UpdateSubscription saves the mutable fields of an existing subscription.
// Last write wins; there is no optimistic-concurrency check.
func (repo *subscriptionRepository) UpdateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	// Select with zero values included so cleared fields are written; the
	// delivery_days JSON serializer only applies to struct updates.
	result := repo.db.WithContext(ctx).
		Model(subscriptionM).
		Where("id = ?", subscription.ID).
		Select("customer_name", "phone", "address", "map_link", "quantity",
			"price_per_liter", "total_amount", "frequency", "delivery_days",
			"start_date", "end_date", "payment_type", "auto_renew").
		Updates(subscriptionM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	// GORM stamped updated_at on the model during the write.
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// UpdateSubscriptionStatus updates only the activity status.
func (repo *subscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// UpdatePaymentStatus updates only the payment status axis.
func (repo *subscriptionRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscription removes a subscription by its ID.
func (repo *subscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:            data.ID,
		CustomerName:  data.CustomerName,
		Phone:         data.Phone,
		Address:       data.Address,
		MapLink:       data.MapLink,
		Quantity:      data.Quantity,
		PricePerLiter: data.PricePerLiter,
		TotalAmount:   data.TotalAmount,
		Frequency:     entity.SubscriptionFrequency(data.Frequency),
		DeliveryDays:  data.DeliveryDays,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Status:        entity.SubscriptionStatus(data.Status),
		PaymentType:   entity.PaymentType(data.PaymentType),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		AutoRenew:     data.AutoRenew,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:            data.ID,
		CustomerName:  data.CustomerName,
		Phone:         data.Phone,
		Address:       data.Address,
		MapLink:       data.MapLink,
		Quantity:      data.Quantity,
		PricePerLiter: data.PricePerLiter,
		TotalAmount:   data.TotalAmount,
		Frequency:     string(data.Frequency),
		DeliveryDays:  data.DeliveryDays,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Status:        string(data.Status),
		PaymentType:   string(data.PaymentType),
		PaymentStatus: string(data.PaymentStatus),
		AutoRenew:     data.AutoRenew,
	}
}
