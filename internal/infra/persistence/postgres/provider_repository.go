package postgres

import (
	"context"

	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// providerRepository implements the domain.ProviderRepository interface using GORM.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// FindByID retrieves a profile by its unique ID.
func (repo *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProviderProfile, error) {
	var m model.ProviderProfileModel
	if err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&m), nil
}

// FindActiveByOwner returns the active profile for (identity, type).
func (repo *providerRepository) FindActiveByOwner(ctx context.Context, identityID uuid.UUID, profileType entity.ProviderType) (*entity.ProviderProfile, error) {
	var m model.ProviderProfileModel
	err := repo.db.WithContext(ctx).
		Where("owner_identity_id = ? AND type = ? AND active", identityID, profileType.String()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by owner")
	}

	return toProfileDomain(&m), nil
}

// FindOrCreate returns the active profile for (identity, type), creating a
// placeholder row when none exists. The insert uses ON CONFLICT DO NOTHING
// against the (owner_identity_id, type) unique index, then re-fetches, so two
// concurrent first submissions converge on the same row.
func (repo *providerRepository) FindOrCreate(ctx context.Context, identityID uuid.UUID, profileType entity.ProviderType) (*entity.ProviderProfile, error) {
	placeholder := model.ProviderProfileModel{
		OwnerIdentityID:  identityID,
		Type:             profileType.String(),
		RegistrationStep: 1,
		Active:           true,
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_identity_id"}, {Name: "type"}},
			DoNothing: true,
		}).
		Create(&placeholder).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create profile placeholder")
	}

	var m model.ProviderProfileModel
	err = repo.db.WithContext(ctx).
		Where("owner_identity_id = ? AND type = ?", identityID, profileType.String()).
		First(&m).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch profile after create")
	}

	// A deactivated row still occupies the unique key. A fresh registration
	// cycle reactivates it and resets the listing to a blank slate.
	if !m.Active {
		updates := map[string]any{
			"active":            true,
			"is_approved":       false,
			"registration_step": 1,
		}
		err = repo.db.WithContext(ctx).
			Model(&model.ProviderProfileModel{}).
			Where("id = ?", m.ID).
			Updates(updates).Error
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reactivate profile")
		}
		m.Active = true
		m.IsApproved = false
		m.RegistrationStep = 1
	}

	return toProfileDomain(&m), nil
}

// UpdateFields applies the non-empty fields of update to the profile.
func (repo *providerRepository) UpdateFields(ctx context.Context, profileID uuid.UUID, update repository.ProfileUpdate) error {
	updates := map[string]any{}
	if update.Name != "" {
		updates["name"] = update.Name
	}
	if update.ContactEmail != "" {
		updates["contact_email"] = update.ContactEmail
	}
	if update.Phone != "" {
		updates["phone"] = update.Phone
	}
	if update.Description != "" {
		updates["description"] = update.Description
	}
	if update.ImageURL != "" {
		updates["image_url"] = update.ImageURL
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProviderProfileModel{}).
		Where("id = ?", profileID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile fields")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// AdvanceStep clamps the profile's step counter so it never moves backwards.
func (repo *providerRepository) AdvanceStep(ctx context.Context, profileID uuid.UUID, step int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProviderProfileModel{}).
		Where("id = ?", profileID).
		Update("registration_step", gorm.Expr("GREATEST(registration_step, ?)", step))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to advance profile step")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// SetApprovalProjection flips the denormalized is_approved mirror.
func (repo *providerRepository) SetApprovalProjection(ctx context.Context, profileID uuid.UUID, approved bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProviderProfileModel{}).
		Where("id = ?", profileID).
		Update("is_approved", approved)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set approval projection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// FindActiveByIdentity returns all active profiles owned by the identity.
func (repo *providerRepository) FindActiveByIdentity(ctx context.Context, identityID uuid.UUID) ([]*entity.ProviderProfile, error) {
	var ms []model.ProviderProfileModel
	err := repo.db.WithContext(ctx).
		Where("owner_identity_id = ? AND active", identityID).
		Order("created_at").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by identity")
	}

	profiles := make([]*entity.ProviderProfile, 0, len(ms))
	for i := range ms {
		profiles = append(profiles, toProfileDomain(&ms[i]))
	}

	return profiles, nil
}

// DeactivateByIdentity soft-deletes every profile owned by the identity.
func (repo *providerRepository) DeactivateByIdentity(ctx context.Context, identityID uuid.UUID) error {
	updates := map[string]any{
		"active":      false,
		"is_approved": false,
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ProviderProfileModel{}).
		Where("owner_identity_id = ?", identityID).
		Updates(updates).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate profiles")
	}

	return nil
}

// ListApproved returns approved, active profiles for the public reader.
func (repo *providerRepository) ListApproved(ctx context.Context, profileType entity.ProviderType, limit, offset int) ([]*entity.ProviderProfile, error) {
	query := repo.db.WithContext(ctx).
		Where("is_approved AND active")
	if profileType != "" {
		query = query.Where("type = ?", profileType.String())
	}

	var ms []model.ProviderProfileModel
	err := query.
		Order("rating_average DESC, created_at").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved profiles")
	}

	profiles := make([]*entity.ProviderProfile, 0, len(ms))
	for i := range ms {
		profiles = append(profiles, toProfileDomain(&ms[i]))
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProviderProfileModel to a domain ProviderProfile entity.
// Child collections are loaded separately by the collection repository.
func toProfileDomain(data *model.ProviderProfileModel) *entity.ProviderProfile {
	if data == nil {
		return nil
	}

	return &entity.ProviderProfile{
		ID:               data.ID,
		OwnerIdentityID:  data.OwnerIdentityID,
		Type:             entity.ProviderType(data.Type),
		Name:             data.Name,
		ContactEmail:     data.ContactEmail,
		Phone:            data.Phone,
		Description:      data.Description,
		ImageURL:         data.ImageURL,
		IsApproved:       data.IsApproved,
		RegistrationStep: data.RegistrationStep,
		RatingAverage:    data.RatingAverage,
		RatingCount:      data.RatingCount,
		Active:           data.Active,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
