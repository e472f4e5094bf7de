package usecase

import (
	"context"

	"lumea/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListListingsInput pages through approved public listings. Type is optional;
// empty means both kinds.
type ListListingsInput struct {
	Type    entity.ProviderType
	Page    int
	PerPage int
}

// UploadImageInput carries raw image bytes uploaded ahead of a registration
// step.
type UploadImageInput struct {
	Data        []byte
	ContentType string
}

// --- Output DTOs ---

// UploadImageOutput returns the public URL of the stored image.
type UploadImageOutput struct {
	URL string
}

// ListingUsecase defines the public read side: approved listings, full
// profile pages and share codes.
type ListingUsecase interface {
	// ListApproved returns approved, active profiles, newest-best first.
	ListApproved(ctx context.Context, input *ListListingsInput) ([]*entity.ProviderProfile, error)

	// GetPublicProfile returns one approved profile with its child
	// collections loaded.
	GetPublicProfile(ctx context.Context, profileID uuid.UUID) (*entity.ProviderProfile, error)

	// GenerateShareQR renders the PNG share code for an approved listing.
	GenerateShareQR(ctx context.Context, profileID uuid.UUID) ([]byte, error)

	// UploadImage stores image bytes and returns their public URL. Uploads
	// happen before step transactions, so a failed step may orphan a file.
	UploadImage(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error)
}
