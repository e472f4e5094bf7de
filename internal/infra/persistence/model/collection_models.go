package model

import (
	"time"

	"github.com/google/uuid"
)

// The replace-all child collections all share the same dual ownership
// columns: exactly one of ProfileID / IdentityID is set per row. These rows
// are physically deleted and reinserted on each step submission, so unlike
// the aggregate tables they carry no soft-delete flag.

// ServiceOfferingModel mirrors the 'service_offerings' table.
type ServiceOfferingModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID       *uuid.UUID `gorm:"type:uuid;index:idx_services_on_profile"`
	IdentityID      *uuid.UUID `gorm:"type:uuid;index:idx_services_on_identity"`
	Name            string     `gorm:"type:varchar(150);not null"`
	DurationMinutes int        `gorm:"not null;default:0"`
	Price           float64    `gorm:"type:decimal(10,2);not null;default:0"`
	DiscountedPrice float64    `gorm:"type:decimal(10,2);not null;default:0"`
	Description     string     `gorm:"type:text"`
	ImageURL        string     `gorm:"type:text"`
	Position        int        `gorm:"not null;default:0"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceOfferingModel) TableName() string {
	return "service_offerings"
}

// PortfolioModel mirrors the 'portfolios' table.
type PortfolioModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID  *uuid.UUID `gorm:"type:uuid;index:idx_portfolios_on_profile"`
	IdentityID *uuid.UUID `gorm:"type:uuid;index:idx_portfolios_on_identity"`
	AlbumName  string     `gorm:"type:varchar(150);not null"`
	Position   int        `gorm:"not null;default:0"`
	CreatedAt  time.Time

	Images []PortfolioImageModel `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PortfolioModel) TableName() string {
	return "portfolios"
}

// PortfolioImageModel mirrors the 'portfolio_images' table.
type PortfolioImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL    string    `gorm:"type:text;not null"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PortfolioImageModel) TableName() string {
	return "portfolio_images"
}

// CertificationModel mirrors the 'certifications' table.
type CertificationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID     *uuid.UUID `gorm:"type:uuid;index:idx_certifications_on_profile"`
	IdentityID    *uuid.UUID `gorm:"type:uuid;index:idx_certifications_on_identity"`
	Title         string     `gorm:"type:varchar(200);not null"`
	IssuedAt      *time.Time
	CredentialID  string `gorm:"type:varchar(150)"`
	CredentialURL string `gorm:"type:text"`
	Position      int    `gorm:"not null;default:0"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CertificationModel) TableName() string {
	return "certifications"
}

// SocialLinkModel mirrors the 'social_links' table.
type SocialLinkModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID  *uuid.UUID `gorm:"type:uuid;index:idx_social_links_on_profile"`
	IdentityID *uuid.UUID `gorm:"type:uuid;index:idx_social_links_on_identity"`
	Platform   string     `gorm:"type:varchar(30);not null"`
	URL        string     `gorm:"type:text;not null"`
	Position   int        `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialLinkModel) TableName() string {
	return "social_links"
}

// FAQModel mirrors the 'faqs' table.
type FAQModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID  *uuid.UUID `gorm:"type:uuid;index:idx_faqs_on_profile"`
	IdentityID *uuid.UUID `gorm:"type:uuid;index:idx_faqs_on_identity"`
	Question   string     `gorm:"type:text;not null"`
	Answer     string     `gorm:"type:text"`
	Position   int        `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FAQModel) TableName() string {
	return "faqs"
}

// OperatingHourModel mirrors the 'operating_hours' table.
type OperatingHourModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID  *uuid.UUID `gorm:"type:uuid;index:idx_operating_hours_on_profile"`
	IdentityID *uuid.UUID `gorm:"type:uuid;index:idx_operating_hours_on_identity"`
	Weekday    int        `gorm:"not null"`
	OpensAt    string     `gorm:"type:varchar(5)"`
	ClosesAt   string     `gorm:"type:varchar(5)"`
	Closed     bool       `gorm:"not null;default:false"`
	Position   int        `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OperatingHourModel) TableName() string {
	return "operating_hours"
}
