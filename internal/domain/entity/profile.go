package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the self-service account record a customer maintains in the
// storefront app. It is read-only to this service and only overlays contact
// details onto customers derived from orders; a profile whose phone never
// appears on an order is ignored.
type UserProfile struct {
	ID               uuid.UUID        `json:"id"`                 // The unique identifier for the profile.
	Phone            string           `json:"phone"`              // The phone number, used as the join key.
	Email            string           `json:"email"`              // The contact email address.
	LiveLocationLink string           `json:"live_location_link"` // Optional link to a live shared location.
	Addresses        []ProfileAddress `json:"addresses"`          // Saved delivery addresses, at most one default.
	CreatedAt        time.Time        `json:"created_at"`         // Timestamp of when the record was created.
	UpdatedAt        time.Time        `json:"updated_at"`         // Timestamp of the last modification.
}

// ProfileAddress is a saved delivery address on a user profile.
type ProfileAddress struct {
	ID          uuid.UUID `json:"id"`           // The unique identifier for the address.
	ProfileID   uuid.UUID `json:"profile_id"`   // The profile that owns this address.
	FullAddress string    `json:"full_address"` // The full, human-readable street address.
	Latitude    float64   `json:"latitude"`     // The geographic latitude.
	Longitude   float64   `json:"longitude"`    // The geographic longitude.
	MapLink     string    `json:"map_link"`     // Optional link to the address on a map.
	IsDefault   bool      `json:"is_default"`   // Indicates if this is the default delivery address.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this address was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// DefaultAddress returns the address flagged as default, falling back to the
// first saved address. The boolean is false when the profile has no
// addresses at all.
func (p *UserProfile) DefaultAddress() (ProfileAddress, bool) {
	if len(p.Addresses) == 0 {
		return ProfileAddress{}, false
	}

	for _, addr := range p.Addresses {
		if addr.IsDefault {
			return addr, true
		}
	}

	return p.Addresses[0], true
}
