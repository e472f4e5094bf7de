package usecase

import (
	"context"
	"time"

	"lumea/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProfileStepInput is the payload of the first onboarding step: the listing's
// basic details plus its address.
type ProfileStepInput struct {
	IdentityID   uuid.UUID
	Name         string
	ContactEmail string
	Phone        string
	Description  string
	ImageURL     string
	Address      *AddressInput
}

// PortfolioAlbumInput is one album of the portfolio step.
type PortfolioAlbumInput struct {
	AlbumName string
	ImageURLs []string
}

// PortfolioStepInput is the payload of the portfolio step. ProfileID is
// optional; when supplied it must belong to the calling identity.
type PortfolioStepInput struct {
	IdentityID uuid.UUID
	ProfileID  *uuid.UUID
	Albums     []PortfolioAlbumInput
}

// ServiceInput is one offering of the services step.
type ServiceInput struct {
	Name            string
	DurationMinutes int
	Price           float64
	DiscountedPrice float64
	Description     string
	ImageURL        string
}

// ServicesStepInput is the payload of the services step.
type ServicesStepInput struct {
	IdentityID uuid.UUID
	ProfileID  *uuid.UUID
	Services   []ServiceInput
}

// OperatingHourInput is one weekday entry of the salon hours step.
type OperatingHourInput struct {
	Weekday  int
	OpensAt  string
	ClosesAt string
	Closed   bool
}

// HoursStepInput is the payload of the salon operating hours step.
type HoursStepInput struct {
	IdentityID uuid.UUID
	ProfileID  *uuid.UUID
	Hours      []OperatingHourInput
}

// FAQInput is one question/answer pair.
type FAQInput struct {
	Question string
	Answer   string
}

// SocialLinkInput is one social link entry.
type SocialLinkInput struct {
	Platform string
	URL      string
}

// CertificationInput is one credential entry of the professional final step.
type CertificationInput struct {
	Title         string
	IssuedAt      *time.Time
	CredentialID  string
	CredentialURL string
}

// ProfessionalFinalStepInput is the payload of the professional submit step:
// faqs, social links and certifications, after which the application enters
// review.
type ProfessionalFinalStepInput struct {
	IdentityID     uuid.UUID
	ProfileID      *uuid.UUID
	FAQs           []FAQInput
	SocialLinks    []SocialLinkInput
	Certifications []CertificationInput
}

// FAQStepInput is the payload of the salon FAQ step.
type FAQStepInput struct {
	IdentityID  uuid.UUID
	ProfileID   *uuid.UUID
	FAQs        []FAQInput
	SocialLinks []SocialLinkInput
}

// FinalizeStepInput is the payload of the salon finalize step.
type FinalizeStepInput struct {
	IdentityID uuid.UUID
	ProfileID  *uuid.UUID
}

// --- Output DTOs ---

// StepOutput reports the state after a step submission. Completed is true
// once the terminal step has run and the application entered review.
type StepOutput struct {
	Profile          *entity.ProviderProfile
	RegistrationStep int
	Completed        bool
}

// RegistrationUsecase defines the multi-step onboarding pipeline. Every
// handler shares one contract: all writes happen in a single transaction,
// replays are idempotent, out-of-order submissions are tolerated, and the
// step counter only moves forward.
type RegistrationUsecase interface {
	// Independent professional sequence (steps 1-4).
	SubmitProfessionalProfile(ctx context.Context, input *ProfileStepInput) (*StepOutput, error)
	SubmitProfessionalPortfolio(ctx context.Context, input *PortfolioStepInput) (*StepOutput, error)
	SubmitProfessionalServices(ctx context.Context, input *ServicesStepInput) (*StepOutput, error)
	SubmitProfessionalFinal(ctx context.Context, input *ProfessionalFinalStepInput) (*StepOutput, error)

	// Salon owner sequence (steps 1-6).
	SubmitSalonProfile(ctx context.Context, input *ProfileStepInput) (*StepOutput, error)
	SubmitSalonPortfolio(ctx context.Context, input *PortfolioStepInput) (*StepOutput, error)
	SubmitSalonServices(ctx context.Context, input *ServicesStepInput) (*StepOutput, error)
	SubmitSalonHours(ctx context.Context, input *HoursStepInput) (*StepOutput, error)
	SubmitSalonFAQs(ctx context.Context, input *FAQStepInput) (*StepOutput, error)
	SubmitSalonFinalize(ctx context.Context, input *FinalizeStepInput) (*StepOutput, error)
}
