package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Ownership is polymorphic: exactly one of ProfileID / IdentityID is set.
type AddressModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID   *uuid.UUID `gorm:"type:uuid;index:idx_addresses_on_profile"`
	IdentityID  *uuid.UUID `gorm:"type:uuid;index:idx_addresses_on_identity"`
	Country     string     `gorm:"type:varchar(100)"`
	City        string     `gorm:"type:varchar(120)"`
	Postcode    string     `gorm:"type:varchar(20)"`
	FullAddress string     `gorm:"type:text;not null"`
	Active      bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
