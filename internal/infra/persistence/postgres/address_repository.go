package postgres

import (
	"context"

	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Append always inserts a new address row for the owner.
func (repo *addressRepository) Append(ctx context.Context, address *entity.Address) error {
	m := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("address owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = m.ID
	address.CreatedAt = m.CreatedAt
	address.UpdatedAt = m.UpdatedAt

	return nil
}

// FindActiveByOwner returns the single active address for the owner.
func (repo *addressRepository) FindActiveByOwner(ctx context.Context, owner entity.OwnerRef) (*entity.Address, error) {
	var m model.AddressModel
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Where("active").
		Order("updated_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find active address")
	}

	return toAddressDomain(&m), nil
}

// UpsertActive updates the owner's active address in place, inserting it when
// absent. The caller wraps this in a transaction together with the rest of
// the step handler.
func (repo *addressRepository) UpsertActive(ctx context.Context, address *entity.Address) error {
	var existing model.AddressModel
	err := ownerScope(repo.db.WithContext(ctx), address.Owner).
		Where("active").
		Order("updated_at DESC").
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repo.Append(ctx, address)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to look up active address")
	}

	updates := map[string]any{
		"country":      address.Country,
		"city":         address.City,
		"postcode":     address.Postcode,
		"full_address": address.FullAddress,
	}
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", existing.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update active address")
	}

	address.ID = existing.ID
	address.CreatedAt = existing.CreatedAt

	return nil
}

// DeactivateByOwner soft-deletes every address of the owner.
func (repo *addressRepository) DeactivateByOwner(ctx context.Context, owner entity.OwnerRef) error {
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Model(&model.AddressModel{}).
		Where("active").
		Update("active", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate addresses")
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:          data.ID,
		Owner:       ownerFromColumns(data.ProfileID, data.IdentityID),
		Country:     data.Country,
		City:        data.City,
		Postcode:    data.Postcode,
		FullAddress: data.FullAddress,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel for persistence.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	profileID, identityID := ownerColumns(data.Owner)

	return &model.AddressModel{
		ID:          data.ID,
		ProfileID:   profileID,
		IdentityID:  identityID,
		Country:     data.Country,
		City:        data.City,
		Postcode:    data.Postcode,
		FullAddress: data.FullAddress,
		Active:      true,
	}
}
