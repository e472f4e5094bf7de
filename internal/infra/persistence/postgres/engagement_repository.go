package postgres

import (
	"context"

	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// engagementRepository implements the domain.EngagementRepository interface
// using GORM. Only the deactivation cascade lives here; creating favorites
// and reviews belongs to the engagement subsystem.
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(db *gorm.DB) repository.EngagementRepository {
	return &engagementRepository{db: db}
}

// DeactivateFavoritesByIdentity soft-deletes all favorites created by the identity.
func (repo *engagementRepository) DeactivateFavoritesByIdentity(ctx context.Context, identityID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("identity_id = ? AND active", identityID).
		Update("active", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate favorites")
	}

	return nil
}

// DeactivateReviewsByIdentity soft-deletes all reviews written by the identity.
func (repo *engagementRepository) DeactivateReviewsByIdentity(ctx context.Context, identityID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("identity_id = ? AND active", identityID).
		Update("active", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate reviews")
	}

	return nil
}
