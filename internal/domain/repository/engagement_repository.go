// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// EngagementRepository covers the favorites and reviews this core only
// touches through the deactivation cascade, keeping public aggregates
// consistent when an identity is soft-deleted.
type EngagementRepository interface {
	// DeactivateFavoritesByIdentity soft-deletes all favorites created by the identity.
	DeactivateFavoritesByIdentity(ctx context.Context, identityID uuid.UUID) error

	// DeactivateReviewsByIdentity soft-deletes all reviews written by the identity.
	DeactivateReviewsByIdentity(ctx context.Context, identityID uuid.UUID) error
}
