package postgres

import (
	"context"

	"dairyops/internal/domain/entity"
	"dairyops/internal/domain/repository"
	"dairyops/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// ListProfiles retrieves all user profiles with their saved addresses.
// Addresses preserve insertion order so the first-address fallback for the
// default flag stays stable.
func (repo *profileRepository) ListProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	var profileModels []*model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("profile_addresses.created_at ASC")
		}).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM UserProfileModel to a domain UserProfile entity.
func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	addresses := make([]entity.ProfileAddress, 0, len(data.Addresses))
	for _, addrM := range data.Addresses {
		addresses = append(addresses, entity.ProfileAddress{
			ID:          addrM.ID,
			ProfileID:   addrM.ProfileID,
			FullAddress: addrM.FullAddress,
			Latitude:    addrM.Latitude,
			Longitude:   addrM.Longitude,
			MapLink:     addrM.MapLink,
			IsDefault:   addrM.IsDefault,
			CreatedAt:   addrM.CreatedAt,
			UpdatedAt:   addrM.UpdatedAt,
		})
	}

	return &entity.UserProfile{
		ID:               data.ID,
		Phone:            data.Phone,
		Email:            data.Email,
		LiveLocationLink: data.LiveLocationLink,
		Addresses:        addresses,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
