package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderProfileModel mirrors the 'provider_profiles' table. The composite
// unique index on (owner_identity_id, type) is what closes the find-or-create
// race: concurrent first submissions collide on it and converge on one row.
type ProviderProfileModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerIdentityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profiles_owner_type"`
	Type            string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_profiles_owner_type"`
	Name            string    `gorm:"type:varchar(150)"`
	ContactEmail    string    `gorm:"type:varchar(255)"`
	Phone           string    `gorm:"type:varchar(30)"`
	Description     string    `gorm:"type:text"`
	ImageURL        string    `gorm:"type:text"`

	// Denormalized mirror of the owner's approval status for public queries.
	IsApproved bool `gorm:"not null;default:false;index"`

	RegistrationStep int `gorm:"not null;default:1"`

	RatingAverage float64 `gorm:"not null;default:0"`
	RatingCount   int     `gorm:"not null;default:0"`

	Active    bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderProfileModel) TableName() string {
	return "provider_profiles"
}
