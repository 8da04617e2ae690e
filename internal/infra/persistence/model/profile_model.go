package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel is the GORM-specific struct for the 'user_profiles'
// table, maintained by the storefront app and read-only here.
type UserProfileModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Phone            string    `gorm:"not null;uniqueIndex"`
	Email            string
	LiveLocationLink string
	Addresses        []ProfileAddressModel `gorm:"foreignKey:ProfileID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// ProfileAddressModel is the GORM-specific struct for the
// 'profile_addresses' table. At most one address per profile carries the
// default flag.
type ProfileAddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FullAddress string    `gorm:"not null"`
	Latitude    float64   `gorm:"type:decimal(10,7)"`
	Longitude   float64   `gorm:"type:decimal(10,7)"`
	MapLink     string
	IsDefault   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileAddressModel) TableName() string {
	return "profile_addresses"
}
