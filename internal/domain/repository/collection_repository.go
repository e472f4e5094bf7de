// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lumea/internal/domain/entity"
)

// CollectionRepository persists the replace-all child collections of a
// listing. Every Replace* call shares one contract: resolve the existing rows
// for the owner (by profile id or identity id, whichever the OwnerRef
// carries), cascade-delete nested children, delete the rows, then insert the
// valid subset of items in submission order. Items failing their minimal
// validation are skipped, not fatal; a failure elsewhere rolls back the whole
// call through the surrounding transaction.
type CollectionRepository interface {
	// ReassignOwner moves every collection row owned by `from` under `to`.
	// Steps submitted before the profile step attach their rows to the bare
	// identity; the profile step calls this so those rows follow the profile
	// key from then on.
	ReassignOwner(ctx context.Context, from, to entity.OwnerRef) error

	ReplaceServices(ctx context.Context, owner entity.OwnerRef, items []*entity.ServiceOffering) error
	FindServicesByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.ServiceOffering, error)

	ReplacePortfolios(ctx context.Context, owner entity.OwnerRef, items []*entity.Portfolio) error
	FindPortfoliosByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Portfolio, error)

	ReplaceCertifications(ctx context.Context, owner entity.OwnerRef, items []*entity.Certification) error
	FindCertificationsByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Certification, error)

	ReplaceSocialLinks(ctx context.Context, owner entity.OwnerRef, items []*entity.SocialLink) error
	FindSocialLinksByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.SocialLink, error)

	ReplaceFAQs(ctx context.Context, owner entity.OwnerRef, items []*entity.FAQ) error
	FindFAQsByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.FAQ, error)

	ReplaceOperatingHours(ctx context.Context, owner entity.OwnerRef, items []*entity.OperatingHour) error
	FindOperatingHoursByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.OperatingHour, error)
}
