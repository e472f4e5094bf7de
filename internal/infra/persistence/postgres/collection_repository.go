package postgres

import (
	"context"
	"time"

	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collectionRepository implements the domain.CollectionRepository interface
// using GORM. Every Replace* method follows the same shape: delete the
// owner's existing rows through ownerScope, then insert the valid subset of
// the submitted items in submission order. Callers run it inside a
// transaction, so a failed insert rolls the delete back too.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

// ReassignOwner rewrites the ownership columns of every collection row owned
// by `from` so they belong to `to`. Runs inside the profile step's
// transaction, right after the profile row materializes.
func (repo *collectionRepository) ReassignOwner(ctx context.Context, from, to entity.OwnerRef) error {
	profileID, identityID := ownerColumns(to)
	update := map[string]any{
		"profile_id":  profileID,
		"identity_id": identityID,
	}

	tables := []any{
		&model.ServiceOfferingModel{},
		&model.PortfolioModel{},
		&model.CertificationModel{},
		&model.SocialLinkModel{},
		&model.FAQModel{},
		&model.OperatingHourModel{},
	}
	for _, table := range tables {
		err := ownerScope(repo.db.WithContext(ctx).Model(table), from).
			Updates(update).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to reassign collection owner")
		}
	}

	return nil
}

// ReplaceServices swaps the owner's service offerings for the submitted set.
func (repo *collectionRepository) ReplaceServices(ctx context.Context, owner entity.OwnerRef, items []*entity.ServiceOffering) error {
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Delete(&model.ServiceOfferingModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete service offerings")
	}

	profileID, identityID := ownerColumns(owner)
	ms := make([]model.ServiceOfferingModel, 0, len(items))
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		ms = append(ms, model.ServiceOfferingModel{
			ProfileID:       profileID,
			IdentityID:      identityID,
			Name:            item.Name,
			DurationMinutes: item.DurationMinutes,
			Price:           item.Price,
			DiscountedPrice: item.DiscountedPrice,
			Description:     item.Description,
			ImageURL:        item.ImageURL,
			Position:        len(ms),
		})
	}
	if len(ms) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert service offerings")
	}

	return nil
}

// FindServicesByOwner returns the owner's service offerings in position order.
func (repo *collectionRepository) FindServicesByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.ServiceOffering, error) {
	var ms []model.ServiceOfferingModel
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Order("position").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service offerings")
	}

	items := make([]*entity.ServiceOffering, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entity.ServiceOffering{
			ID:              m.ID,
			Owner:           ownerFromColumns(m.ProfileID, m.IdentityID),
			Name:            m.Name,
			DurationMinutes: m.DurationMinutes,
			Price:           m.Price,
			DiscountedPrice: m.DiscountedPrice,
			Description:     m.Description,
			ImageURL:        m.ImageURL,
			Position:        m.Position,
		})
	}

	return items, nil
}

// ReplacePortfolios swaps the owner's portfolio albums for the submitted set,
// cascading to the images of the removed albums.
func (repo *collectionRepository) ReplacePortfolios(ctx context.Context, owner entity.OwnerRef, items []*entity.Portfolio) error {
	var existingIDs []uuid.UUID
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Model(&model.PortfolioModel{}).
		Pluck("id", &existingIDs).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to list existing portfolios")
	}

	if len(existingIDs) > 0 {
		err = repo.db.WithContext(ctx).
			Where("portfolio_id IN ?", existingIDs).
			Delete(&model.PortfolioImageModel{}).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete portfolio images")
		}

		err = repo.db.WithContext(ctx).
			Where("id IN ?", existingIDs).
			Delete(&model.PortfolioModel{}).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete portfolios")
		}
	}

	profileID, identityID := ownerColumns(owner)
	position := 0
	for _, item := range items {
		if !item.Valid() {
			continue
		}

		m := model.PortfolioModel{
			ProfileID:  profileID,
			IdentityID: identityID,
			AlbumName:  item.AlbumName,
			Position:   position,
		}
		position++

		for i, img := range item.Images {
			if img.ImageURL == "" {
				continue
			}
			m.Images = append(m.Images, model.PortfolioImageModel{
				ImageURL: img.ImageURL,
				Position: i,
			})
		}

		if err := repo.db.WithContext(ctx).Create(&m).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to insert portfolio")
		}
	}

	return nil
}

// FindPortfoliosByOwner returns the owner's portfolio albums with their
// images, both in position order.
func (repo *collectionRepository) FindPortfoliosByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Portfolio, error) {
	var ms []model.PortfolioModel
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("position").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find portfolios")
	}

	items := make([]*entity.Portfolio, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		p := &entity.Portfolio{
			ID:        m.ID,
			Owner:     ownerFromColumns(m.ProfileID, m.IdentityID),
			AlbumName: m.AlbumName,
			Position:  m.Position,
		}
		for j := range m.Images {
			img := &m.Images[j]
			p.Images = append(p.Images, &entity.PortfolioImage{
				ID:          img.ID,
				PortfolioID: img.PortfolioID,
				ImageURL:    img.ImageURL,
				Position:    img.Position,
			})
		}
		items = append(items, p)
	}

	return items, nil
}

// ReplaceCertifications swaps the owner's certifications for the submitted set.
func (repo *collectionRepository) ReplaceCertifications(ctx context.Context, owner entity.OwnerRef, items []*entity.Certification) error {
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Delete(&model.CertificationModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete certifications")
	}

	profileID, identityID := ownerColumns(owner)
	ms := make([]model.CertificationModel, 0, len(items))
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		ms = append(ms, model.CertificationModel{
			ProfileID:     profileID,
			IdentityID:    identityID,
			Title:         item.Title,
			IssuedAt:      item.IssuedAt,
			CredentialID:  item.CredentialID,
			CredentialURL: item.CredentialURL,
			Position:      len(ms),
		})
	}
	if len(ms) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert certifications")
	}

	return nil
}

// FindCertificationsByOwner returns the owner's certifications in position order.
func (repo *collectionRepository) FindCertificationsByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Certification, error) {
	var ms []model.CertificationModel
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Order("position").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find certifications")
	}

	items := make([]*entity.Certification, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entity.Certification{
			ID:            m.ID,
			Owner:         ownerFromColumns(m.ProfileID, m.IdentityID),
			Title:         m.Title,
			IssuedAt:      m.IssuedAt,
			CredentialID:  m.CredentialID,
			CredentialURL: m.CredentialURL,
			Position:      m.Position,
		})
	}

	return items, nil
}

// ReplaceSocialLinks swaps the owner's social links for the submitted set.
func (repo *collectionRepository) ReplaceSocialLinks(ctx context.Context, owner entity.OwnerRef, items []*entity.SocialLink) error {
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Delete(&model.SocialLinkModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete social links")
	}

	profileID, identityID := ownerColumns(owner)
	ms := make([]model.SocialLinkModel, 0, len(items))
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		ms = append(ms, model.SocialLinkModel{
			ProfileID:  profileID,
			IdentityID: identityID,
			Platform:   item.Platform.String(),
			URL:        item.URL,
			Position:   len(ms),
		})
	}
	if len(ms) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert social links")
	}

	return nil
}

// FindSocialLinksByOwner returns the owner's social links in position order.
func (repo *collectionRepository) FindSocialLinksByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.SocialLink, error) {
	var ms []model.SocialLinkModel
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Order("position").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find social links")
	}

	items := make([]*entity.SocialLink, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entity.SocialLink{
			ID:       m.ID,
			Owner:    ownerFromColumns(m.ProfileID, m.IdentityID),
			Platform: entity.SocialPlatform(m.Platform),
			URL:      m.URL,
			Position: m.Position,
		})
	}

	return items, nil
}

// ReplaceFAQs swaps the owner's FAQ entries for the submitted set.
func (repo *collectionRepository) ReplaceFAQs(ctx context.Context, owner entity.OwnerRef, items []*entity.FAQ) error {
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Delete(&model.FAQModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete faqs")
	}

	profileID, identityID := ownerColumns(owner)
	ms := make([]model.FAQModel, 0, len(items))
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		ms = append(ms, model.FAQModel{
			ProfileID:  profileID,
			IdentityID: identityID,
			Question:   item.Question,
			Answer:     item.Answer,
			Position:   len(ms),
		})
	}
	if len(ms) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert faqs")
	}

	return nil
}

// FindFAQsByOwner returns the owner's FAQ entries in position order.
func (repo *collectionRepository) FindFAQsByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.FAQ, error) {
	var ms []model.FAQModel
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Order("position").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find faqs")
	}

	items := make([]*entity.FAQ, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entity.FAQ{
			ID:       m.ID,
			Owner:    ownerFromColumns(m.ProfileID, m.IdentityID),
			Question: m.Question,
			Answer:   m.Answer,
			Position: m.Position,
		})
	}

	return items, nil
}

// ReplaceOperatingHours swaps the owner's weekly schedule for the submitted set.
func (repo *collectionRepository) ReplaceOperatingHours(ctx context.Context, owner entity.OwnerRef, items []*entity.OperatingHour) error {
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Delete(&model.OperatingHourModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete operating hours")
	}

	profileID, identityID := ownerColumns(owner)
	ms := make([]model.OperatingHourModel, 0, len(items))
	for _, item := range items {
		if !item.Valid() {
			continue
		}
		ms = append(ms, model.OperatingHourModel{
			ProfileID:  profileID,
			IdentityID: identityID,
			Weekday:    int(item.Weekday),
			OpensAt:    item.OpensAt,
			ClosesAt:   item.ClosesAt,
			Closed:     item.Closed,
			Position:   len(ms),
		})
	}
	if len(ms) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Create(&ms).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert operating hours")
	}

	return nil
}

// FindOperatingHoursByOwner returns the owner's weekly schedule in position order.
func (repo *collectionRepository) FindOperatingHoursByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.OperatingHour, error) {
	var ms []model.OperatingHourModel
	err := ownerScope(repo.db.WithContext(ctx), owner).
		Order("position").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find operating hours")
	}

	items := make([]*entity.OperatingHour, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entity.OperatingHour{
			ID:       m.ID,
			Owner:    ownerFromColumns(m.ProfileID, m.IdentityID),
			Weekday:  time.Weekday(m.Weekday),
			OpensAt:  m.OpensAt,
			ClosesAt: m.ClosesAt,
			Closed:   m.Closed,
			Position: m.Position,
		})
	}

	return items, nil
}
