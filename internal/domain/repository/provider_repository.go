// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lumea/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a provider profile is not found.
var ErrProfileNotFound = errors.New("provider profile not found")

// ProfileUpdate carries partial profile fields. Empty strings mean "keep the
// existing value": a step that submits a subset of fields never nulls out
// previously-set ones.
type ProfileUpdate struct {
	Name         string
	ContactEmail string
	Phone        string
	Description  string
	ImageURL     string
}

// ProviderRepository defines persistence for the provider profile aggregate
// root.
type ProviderRepository interface {
	// FindByID retrieves a profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProviderProfile, error)

	// FindActiveByOwner returns the active profile for (identity, type), or
	// ErrProfileNotFound.
	FindActiveByOwner(ctx context.Context, identityID uuid.UUID, profileType entity.ProviderType) (*entity.ProviderProfile, error)

	// FindOrCreate returns the active profile for (identity, type), creating
	// a placeholder row when none exists. Backed by a unique constraint on
	// the composite key plus insert-on-conflict, so two concurrent first
	// submissions converge on the same row. This is the idempotency primitive
	// that makes later registration steps safe to retry.
	FindOrCreate(ctx context.Context, identityID uuid.UUID, profileType entity.ProviderType) (*entity.ProviderProfile, error)

	// UpdateFields applies the non-empty fields of update to the profile.
	UpdateFields(ctx context.Context, profileID uuid.UUID, update ProfileUpdate) error

	// AdvanceStep sets registration_step = max(current, step) on the profile.
	AdvanceStep(ctx context.Context, profileID uuid.UUID, step int) error

	// SetApprovalProjection flips the denormalized is_approved mirror read by
	// public listing queries.
	SetApprovalProjection(ctx context.Context, profileID uuid.UUID, approved bool) error

	// FindActiveByIdentity returns all active profiles owned by the identity.
	FindActiveByIdentity(ctx context.Context, identityID uuid.UUID) ([]*entity.ProviderProfile, error)

	// DeactivateByIdentity soft-deletes every profile owned by the identity.
	DeactivateByIdentity(ctx context.Context, identityID uuid.UUID) error

	// ListApproved returns approved, active profiles for the public reader.
	ListApproved(ctx context.Context, profileType entity.ProviderType, limit, offset int) ([]*entity.ProviderProfile, error)
}
