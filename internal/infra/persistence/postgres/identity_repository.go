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
)

// identityRepository implements the domain.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByID retrieves a single identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var m model.IdentityModel
	if err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by id")
	}

	return toIdentityDomain(&m), nil
}

// FindByEmail retrieves a single identity by canonical email.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var m model.IdentityModel
	if err := repo.db.WithContext(ctx).First(&m, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	return toIdentityDomain(&m), nil
}

// Create persists a new identity.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	m := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.ID = m.ID
	identity.CreatedAt = m.CreatedAt
	identity.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing identity.
func (repo *identityRepository) Update(ctx context.Context, identity *entity.Identity) error {
	m := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update identity")
	}

	identity.UpdatedAt = m.UpdatedAt

	return nil
}

// AdvanceStep clamps the step counter in the database so retried and
// out-of-order submissions can never move it backwards.
func (repo *identityRepository) AdvanceStep(ctx context.Context, id uuid.UUID, step int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Update("registration_step", gorm.Expr("GREATEST(registration_step, ?)", step))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to advance registration step")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// SetApproval updates approval status, message, and optionally the effective role.
func (repo *identityRepository) SetApproval(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus, message string, role entity.Role) error {
	updates := map[string]any{
		"approval_status":  status.String(),
		"approval_message": message,
	}
	if role != "" {
		updates["role"] = role.String()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set approval status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// Deactivate soft-deletes the identity.
func (repo *identityRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// ListPendingApproval returns active identities awaiting administrator review.
func (repo *identityRepository) ListPendingApproval(ctx context.Context) ([]*entity.Identity, error) {
	var ms []model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("approval_status = ? AND active", entity.ApprovalPending.String()).
		Order("created_at").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending identities")
	}

	identities := make([]*entity.Identity, 0, len(ms))
	for i := range ms {
		identities = append(identities, toIdentityDomain(&ms[i]))
	}

	return identities, nil
}

// --- Mapper Functions ---

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		Role:             entity.Role(data.Role),
		RequestingRole:   entity.Role(data.RequestingRole),
		ApprovalStatus:   entity.ApprovalStatus(data.ApprovalStatus),
		ApprovalMessage:  data.ApprovalMessage,
		RegistrationStep: data.RegistrationStep,
		Active:           data.Active,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromIdentityDomain converts a domain Identity entity to a GORM IdentityModel for persistence.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		Role:             data.Role.String(),
		RequestingRole:   data.RequestingRole.String(),
		ApprovalStatus:   data.ApprovalStatus.String(),
		ApprovalMessage:  data.ApprovalMessage,
		RegistrationStep: data.RegistrationStep,
		Active:           data.Active,
	}
}
