package impl

import (
	"context"
	"log/slog"

	deliverycontext "lumea/internal/delivery/context"
	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/domain/service"
	"lumea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListingPageSize = 20
	maxListingPageSize     = 100

	maxUploadBytes = 10 << 20 // 10 MiB
)

// allowedImageTypes is the upload content-type whitelist.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// listingService implements the ListingUsecase interface: the public read
// side plus the image upload that feeds registration steps.
type listingService struct {
	txManager    repository.TransactionManager
	imageStorage service.ImageStorage
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ImageStorage service.ImageStorage
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:    params.TxManager,
		imageStorage: params.ImageStorage,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListApproved returns approved, active profiles for the public directory.
func (srv *listingService) ListApproved(ctx context.Context, input *usecase.ListListingsInput) ([]*entity.ProviderProfile, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown listing type")
	}

	perPage := input.PerPage
	if perPage <= 0 {
		perPage = defaultListingPageSize
	}
	if perPage > maxListingPageSize {
		perPage = maxListingPageSize
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	var profiles []*entity.ProviderProfile
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.ProviderRepo().ListApproved(ctx, input.Type, perPage, (page-1)*perPage)
		if err != nil {
			return errors.Wrap(err, "failed to list approved profiles")
		}
		profiles = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

// GetPublicProfile returns one approved profile with child collections
// loaded. Unapproved and inactive profiles are indistinguishable from absent
// ones.
func (srv *listingService) GetPublicProfile(ctx context.Context, profileID uuid.UUID) (*entity.ProviderProfile, error) {
	var profile *entity.ProviderProfile
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.ProviderRepo().FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("listing not found")
			}

			return errors.Wrap(err, "failed to load profile")
		}
		if !found.Active || !found.IsApproved {
			return domainerrors.ErrNotFound.WrapMessage("listing not found")
		}

		if err := srv.loadCollections(ctx, factory.CollectionRepo(), found); err != nil {
			return err
		}

		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (srv *listingService) loadCollections(ctx context.Context, collectionRepo repository.CollectionRepository, profile *entity.ProviderProfile) error {
	owner := profile.Owner()

	var err error
	if profile.Services, err = collectionRepo.FindServicesByOwner(ctx, owner); err != nil {
		return errors.Wrap(err, "failed to load services")
	}
	if profile.Portfolios, err = collectionRepo.FindPortfoliosByOwner(ctx, owner); err != nil {
		return errors.Wrap(err, "failed to load portfolios")
	}
	if profile.Certifications, err = collectionRepo.FindCertificationsByOwner(ctx, owner); err != nil {
		return errors.Wrap(err, "failed to load certifications")
	}
	if profile.SocialLinks, err = collectionRepo.FindSocialLinksByOwner(ctx, owner); err != nil {
		return errors.Wrap(err, "failed to load social links")
	}
	if profile.FAQs, err = collectionRepo.FindFAQsByOwner(ctx, owner); err != nil {
		return errors.Wrap(err, "failed to load faqs")
	}
	if profile.OperatingHours, err = collectionRepo.FindOperatingHoursByOwner(ctx, owner); err != nil {
		return errors.Wrap(err, "failed to load operating hours")
	}

	return nil
}

// GenerateShareQR renders the PNG share code for an approved listing.
func (srv *listingService) GenerateShareQR(ctx context.Context, profileID uuid.UUID) ([]byte, error) {
	// Reuse the public read so unapproved listings cannot be shared.
	if _, err := srv.GetPublicProfile(ctx, profileID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateListingQR(profileID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate share QR", slog.Any("profileID", profileID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return png, nil
}

// UploadImage stores image bytes and returns their public URL. It runs before
// any step transaction, so a later rollback may leave the file orphaned; that
// is accepted.
func (srv *listingService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	if len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image data is empty")
	}
	if len(input.Data) > maxUploadBytes {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image exceeds the maximum allowed size")
	}
	if !allowedImageTypes[input.ContentType] {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unsupported image content type")
	}

	url, err := srv.imageStorage.Store(ctx, input.Data, input.ContentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store image", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Debug("Image stored", slog.String("url", url))

	return &usecase.UploadImageOutput{URL: url}, nil
}
