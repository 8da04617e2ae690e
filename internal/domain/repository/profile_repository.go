package repository

import (
	"context"

	"dairyops/internal/domain/entity"
)

// ProfileRepository reads the user-profile collection, read-only to this
// service. Profiles overlay contact details onto derived customers.
type ProfileRepository interface {
	// ListProfiles retrieves all user profiles with their saved addresses.
	ListProfiles(ctx context.Context) ([]*entity.UserProfile, error)
}
