// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType distinguishes the two kinds of public listings.
type ProviderType string

const (
	// ProviderTypeSalon is a salon listing owned by an owner account.
	ProviderTypeSalon ProviderType = "salon"
	// ProviderTypeBeautyProfessional is an independent professional listing.
	ProviderTypeBeautyProfessional ProviderType = "beauty_professional"
)

// String returns the string representation of the ProviderType.
func (t ProviderType) String() string {
	return string(t)
}

// IsValid checks if the ProviderType is a valid value.
func (t ProviderType) IsValid() bool {
	switch t {
	case ProviderTypeSalon, ProviderTypeBeautyProfessional:
		return true
	default:
		return false
	}
}

// ProviderProfile is the aggregate root for a sellable listing (a salon or an
// independent professional). At most one active profile exists per
// (owner identity, type) pair.
type ProviderProfile struct {
	ID              uuid.UUID
	OwnerIdentityID uuid.UUID
	Type            ProviderType
	Name            string
	ContactEmail    string
	Phone           string
	Description     string
	ImageURL        string

	// IsApproved is a denormalized projection of the owning identity's
	// approval status, kept so public listing queries never join identities.
	IsApproved bool

	RegistrationStep int

	// Rating aggregates are maintained by the review subsystem; read-only here.
	RatingAverage float64
	RatingCount   int

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Child collections, loaded on demand. Each is wholly replaced on its
	// registration step, never merged.
	Services       []*ServiceOffering
	Portfolios     []*Portfolio
	Certifications []*Certification
	SocialLinks    []*SocialLink
	FAQs           []*FAQ
	OperatingHours []*OperatingHour
}

// Owner returns the OwnerRef scoping this profile's child collections.
func (p *ProviderProfile) Owner() OwnerRef {
	return OwnByProfile(p.ID)
}
