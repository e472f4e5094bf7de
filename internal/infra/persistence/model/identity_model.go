// Package model holds the GORM-specific structs mirroring the database
// schema, kept apart from the pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type IdentityModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName       string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(30);not null;index"`
	RequestingRole  string    `gorm:"type:varchar(30)"`
	ApprovalStatus  string    `gorm:"type:varchar(20);not null;index"`
	ApprovalMessage string    `gorm:"type:text"`

	// RegistrationStep only moves forward; AdvanceStep clamps with GREATEST.
	RegistrationStep int `gorm:"not null;default:0"`

	Active    bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
