package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lumea/internal/delivery/context"
	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface. Every
// step handler runs as one transaction: resolve the owner, replace the step's
// data, advance the step counter, and on the terminal step hand the
// application over to review.
type registrationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// RegistrationServiceParams holds dependencies for registrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// stepRequest is the shared contract of all collection steps: which sequence
// it belongs to, which step number it advances to, and the write to run with
// the resolved owner.
type stepRequest struct {
	IdentityID  uuid.UUID
	ProfileID   *uuid.UUID
	ProfileType entity.ProviderType
	Step        int
	Apply       func(factory repository.RepositoryFactory, owner entity.OwnerRef) error
}

// SubmitProfessionalProfile handles step 1 of the professional sequence: the
// listing's basic details plus its address. It is the step that materializes
// the profile row via find-or-create.
func (srv *registrationService) SubmitProfessionalProfile(ctx context.Context, input *usecase.ProfileStepInput) (*usecase.StepOutput, error) {
	return srv.executeProfileStep(ctx, input, entity.ProviderTypeBeautyProfessional, entity.ProfessionalStepProfile)
}

// SubmitProfessionalPortfolio handles step 2 of the professional sequence.
func (srv *registrationService) SubmitProfessionalPortfolio(ctx context.Context, input *usecase.PortfolioStepInput) (*usecase.StepOutput, error) {
	return srv.executeStep(ctx, &stepRequest{
		IdentityID:  input.IdentityID,
		ProfileID:   input.ProfileID,
		ProfileType: entity.ProviderTypeBeautyProfessional,
		Step:        entity.ProfessionalStepPortfolio,
		Apply: func(factory repository.RepositoryFactory, owner entity.OwnerRef) error {
			return factory.CollectionRepo().ReplacePortfolios(ctx, owner, toPortfolioEntities(owner, input.Albums))
		},
	})
}

// SubmitProfessionalServices handles step 3 of the professional sequence.
func (srv *registrationService) SubmitProfessionalServices(ctx context.Context, input *usecase.ServicesStepInput) (*usecase.StepOutput, error) {
	return srv.executeStep(ctx, &stepRequest{
		IdentityID:  input.IdentityID,
		ProfileID:   input.ProfileID,
		ProfileType: entity.ProviderTypeBeautyProfessional,
		Step:        entity.ProfessionalStepServices,
		Apply: func(factory repository.RepositoryFactory, owner entity.OwnerRef) error {
			return factory.CollectionRepo().ReplaceServices(ctx, owner, toServiceEntities(owner, input.Services))
		},
	})
}

// SubmitProfessionalFinal handles the terminal professional step: faqs,
// social links and certifications, then the application enters review.
func (srv *registrationService) SubmitProfessionalFinal(ctx context.Context, input *usecase.ProfessionalFinalStepInput) (*usecase.StepOutput, error) {
	return srv.executeStep(ctx, &stepRequest{
		IdentityID:  input.IdentityID,
		ProfileID:   input.ProfileID,
		ProfileType: entity.ProviderTypeBeautyProfessional,
		Step:        entity.ProfessionalStepSubmit,
		Apply: func(factory repository.RepositoryFactory, owner entity.OwnerRef) error {
			collectionRepo := factory.CollectionRepo()
			if err := collectionRepo.ReplaceFAQs(ctx, owner, toFAQEntities(owner, input.FAQs)); err != nil {
				return err
			}
			if err := collectionRepo.ReplaceSocialLinks(ctx, owner, toSocialLinkEntities(owner, input.SocialLinks)); err != nil {
				return err
			}

			return collectionRepo.ReplaceCertifications(ctx, owner, toCertificationEntities(owner, input.Certifications))
		},
	})
}

// SubmitSalonProfile handles step 1 of the salon sequence.
func (srv *registrationService) SubmitSalonProfile(ctx context.Context, input *usecase.ProfileStepInput) (*usecase.StepOutput, error) {
	return srv.executeProfileStep(ctx, input, entity.ProviderTypeSalon, entity.SalonStepProfile)
}

// SubmitSalonPortfolio handles step 2 of the salon sequence.
func (srv *registrationService) SubmitSalonPortfolio(ctx context.Context, input *usecase.PortfolioStepInput) (*usecase.StepOutput, error) {
	return srv.executeStep(ctx, &stepRequest{
		IdentityID:  input.IdentityID,
		ProfileID:   input.ProfileID,
		ProfileType: entity.ProviderTypeSalon,
		Step:        entity.SalonStepPortfolio,
		Apply: func(factory repository.RepositoryFactory, owner entity.OwnerRef) error {
			return factory.CollectionRepo().ReplacePortfolios(ctx, owner, toPortfolioEntities(owner, input.Albums))
		},
	})
}

// SubmitSalonServices handles step 3 of the salon sequence.
func (srv *registrationService) SubmitSalonServices(ctx context.Context, input *usecase.ServicesStepInput) (*usecase.StepOutput, error) {
	return srv.executeStep(ctx, &stepRequest{
		IdentityID:  input.IdentityID,
		ProfileID:   input.ProfileID,
		ProfileType: entity.ProviderTypeSalon,
		Step:        entity.SalonStepServices,
		Apply: func(factory repository.RepositoryFactory, owner entity.OwnerRef) error {
			return factory.CollectionRepo().ReplaceServices(ctx, owner, toServiceEntities(owner, input.Services))
		},
	})
}

// SubmitSalonHours handles step 4 of the salon sequence, the weekly schedule.
func (srv *registrationService) SubmitSalonHours(ctx context.Context, input *usecase.HoursStepInput) (*usecase.StepOutput, error) {
	return srv.executeStep(ctx, &stepRequest{
		IdentityID:  input.IdentityID,
		ProfileID:   input.ProfileID,
		ProfileType: entity.ProviderTypeSalon,
		Step:        entity.SalonStepHours,
		Apply: func(factory repository.RepositoryFactory, owner entity.OwnerRef) error {
			return factory.CollectionRepo().ReplaceOperatingHours(ctx, owner, toOperatingHourEntities(owner, input.Hours))
		},
	})
}

// SubmitSalonFAQs handles step 5 of the salon sequence.
func (srv *registrationService) SubmitSalonFAQs(ctx context.Context, input *usecase.FAQStepInput) (*usecase.StepOutput, error) {
	return srv.executeStep(ctx, &stepRequest{
		IdentityID:  input.IdentityID,
		ProfileID:   input.ProfileID,
		ProfileType: entity.ProviderTypeSalon,
		Step:        entity.SalonStepFAQs,
		Apply: func(factory repository.RepositoryFactory, owner entity.OwnerRef) error {
			collectionRepo := factory.CollectionRepo()
			if err := collectionRepo.ReplaceFAQs(ctx, owner, toFAQEntities(owner, input.FAQs)); err != nil {
				return err
			}

			return collectionRepo.ReplaceSocialLinks(ctx, owner, toSocialLinkEntities(owner, input.SocialLinks))
		},
	})
}

// SubmitSalonFinalize handles the terminal salon step. It writes nothing
// itself, it only closes the sequence and hands the application to review.
func (srv *registrationService) SubmitSalonFinalize(ctx context.Context, input *usecase.FinalizeStepInput) (*usecase.StepOutput, error) {
	return srv.executeStep(ctx, &stepRequest{
		IdentityID:  input.IdentityID,
		ProfileID:   input.ProfileID,
		ProfileType: entity.ProviderTypeSalon,
		Step:        entity.SalonStepFinalize,
		Apply: func(repository.RepositoryFactory, entity.OwnerRef) error {
			return nil
		},
	})
}

// executeProfileStep runs the first step of either sequence: materialize the
// profile row, coalesce the submitted fields into it, and upsert the listing
// address.
func (srv *registrationService) executeProfileStep(ctx context.Context, input *usecase.ProfileStepInput, profileType entity.ProviderType, step int) (*usecase.StepOutput, error) {
	srv.log(ctx).Info("Submitting profile step",
		slog.Any("identityID", input.IdentityID),
		slog.String("type", profileType.String()))

	var output *usecase.StepOutput
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identity, err := srv.loadActiveIdentity(ctx, factory, input.IdentityID)
		if err != nil {
			return err
		}

		providerRepo := factory.ProviderRepo()
		profile, err := providerRepo.FindOrCreate(ctx, identity.ID, profileType)
		if err != nil {
			return errors.Wrap(err, "failed to find or create profile")
		}

		// Steps submitted before this one attached their rows to the bare
		// identity. Move them under the profile so profile-scoped reads and
		// replace-all deletes keep seeing them.
		err = factory.CollectionRepo().ReassignOwner(ctx, entity.OwnByIdentity(identity.ID), profile.Owner())
		if err != nil {
			return errors.Wrap(err, "failed to reassign early step rows")
		}

		err = providerRepo.UpdateFields(ctx, profile.ID, repository.ProfileUpdate{
			Name:         input.Name,
			ContactEmail: input.ContactEmail,
			Phone:        input.Phone,
			Description:  input.Description,
			ImageURL:     input.ImageURL,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update profile fields")
		}

		if input.Address != nil {
			address := &entity.Address{
				Owner:       profile.Owner(),
				Country:     input.Address.Country,
				City:        input.Address.City,
				Postcode:    input.Address.Postcode,
				FullAddress: input.Address.FullAddress,
			}
			if err := factory.AddressRepo().UpsertActive(ctx, address); err != nil {
				return errors.Wrap(err, "failed to upsert listing address")
			}
		}

		output, err = srv.closeStep(ctx, factory, identity, profile, profileType, step)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Profile step failed", slog.Any("identityID", input.IdentityID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// executeStep runs a collection step end to end inside one transaction.
func (srv *registrationService) executeStep(ctx context.Context, req *stepRequest) (*usecase.StepOutput, error) {
	srv.log(ctx).Info("Submitting registration step",
		slog.Any("identityID", req.IdentityID),
		slog.String("type", req.ProfileType.String()),
		slog.Int("step", req.Step))

	var output *usecase.StepOutput
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identity, err := srv.loadActiveIdentity(ctx, factory, req.IdentityID)
		if err != nil {
			return err
		}

		owner, profile, err := srv.resolveOwner(ctx, factory, req)
		if err != nil {
			return err
		}

		if err := req.Apply(factory, owner); err != nil {
			return errors.Wrap(err, "failed to apply registration step")
		}

		output, err = srv.closeStep(ctx, factory, identity, profile, req.ProfileType, req.Step)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Registration step failed",
			slog.Any("identityID", req.IdentityID),
			slog.Int("step", req.Step),
			slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

func (srv *registrationService) loadActiveIdentity(ctx context.Context, factory repository.RepositoryFactory, identityID uuid.UUID) (*entity.Identity, error) {
	identity, err := factory.IdentityRepo().FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("identity not found")
		}

		return nil, errors.Wrap(err, "failed to load identity")
	}
	if !identity.Active {
		return nil, domainerrors.ErrNotFound.WrapMessage("identity not found")
	}

	return identity, nil
}

// resolveOwner picks the ownership key for a step's writes: a payload-supplied
// profile id after an ownership check, an existing active profile, or the bare
// identity when no profile row exists yet. Ownership failures surface as
// NotFound so callers cannot probe which profile ids exist.
func (srv *registrationService) resolveOwner(ctx context.Context, factory repository.RepositoryFactory, req *stepRequest) (entity.OwnerRef, *entity.ProviderProfile, error) {
	providerRepo := factory.ProviderRepo()

	if req.ProfileID != nil {
		profile, err := providerRepo.FindByID(ctx, *req.ProfileID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return entity.OwnerRef{}, nil, domainerrors.ErrNotFound.WrapMessage("profile not found")
			}

			return entity.OwnerRef{}, nil, errors.Wrap(err, "failed to load profile")
		}
		if !profile.Active || profile.OwnerIdentityID != req.IdentityID || profile.Type != req.ProfileType {
			return entity.OwnerRef{}, nil, domainerrors.ErrNotFound.WrapMessage("profile not found")
		}

		return profile.Owner(), profile, nil
	}

	profile, err := providerRepo.FindActiveByOwner(ctx, req.IdentityID, req.ProfileType)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// No profile row yet: rows attach directly to the identity and are
			// re-scoped when the profile step eventually runs.
			return entity.OwnByIdentity(req.IdentityID), nil, nil
		}

		return entity.OwnerRef{}, nil, errors.Wrap(err, "failed to resolve step owner")
	}

	return profile.Owner(), profile, nil
}

// closeStep advances the counters and, on the terminal step, flips the
// identity to pending review. The flip keys off the pre-advance counter so
// replaying the terminal step never re-enters the review queue.
func (srv *registrationService) closeStep(
	ctx context.Context,
	factory repository.RepositoryFactory,
	identity *entity.Identity,
	profile *entity.ProviderProfile,
	profileType entity.ProviderType,
	step int,
) (*usecase.StepOutput, error) {
	identityRepo := factory.IdentityRepo()

	if err := identityRepo.AdvanceStep(ctx, identity.ID, step); err != nil {
		return nil, errors.Wrap(err, "failed to advance identity step")
	}
	if profile != nil {
		if err := factory.ProviderRepo().AdvanceStep(ctx, profile.ID, step); err != nil {
			return nil, errors.Wrap(err, "failed to advance profile step")
		}
	}

	finalStep := entity.FinalStep(profileType)
	completed := step == finalStep
	firstCompletion := completed && identity.RegistrationStep < finalStep

	if firstCompletion {
		err := identityRepo.SetApproval(ctx, identity.ID, entity.ApprovalPending, "", "")
		if err != nil {
			return nil, errors.Wrap(err, "failed to submit application for review")
		}
		srv.log(ctx).Info("Application submitted for review",
			slog.Any("identityID", identity.ID),
			slog.String("type", profileType.String()))
	}

	reachedStep := identity.RegistrationStep
	if step > reachedStep {
		reachedStep = step
	}

	return &usecase.StepOutput{
		Profile:          profile,
		RegistrationStep: reachedStep,
		Completed:        completed,
	}, nil
}

// --- DTO to entity conversion ---

func toPortfolioEntities(owner entity.OwnerRef, albums []usecase.PortfolioAlbumInput) []*entity.Portfolio {
	items := make([]*entity.Portfolio, 0, len(albums))
	for _, album := range albums {
		p := &entity.Portfolio{Owner: owner, AlbumName: album.AlbumName}
		for i, url := range album.ImageURLs {
			p.Images = append(p.Images, &entity.PortfolioImage{ImageURL: url, Position: i})
		}
		items = append(items, p)
	}

	return items
}

func toServiceEntities(owner entity.OwnerRef, services []usecase.ServiceInput) []*entity.ServiceOffering {
	items := make([]*entity.ServiceOffering, 0, len(services))
	for _, s := range services {
		items = append(items, &entity.ServiceOffering{
			Owner:           owner,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			DiscountedPrice: s.DiscountedPrice,
			Description:     s.Description,
			ImageURL:        s.ImageURL,
		})
	}

	return items
}

func toOperatingHourEntities(owner entity.OwnerRef, hours []usecase.OperatingHourInput) []*entity.OperatingHour {
	items := make([]*entity.OperatingHour, 0, len(hours))
	for _, h := range hours {
		items = append(items, &entity.OperatingHour{
			Owner:    owner,
			Weekday:  time.Weekday(h.Weekday),
			OpensAt:  h.OpensAt,
			ClosesAt: h.ClosesAt,
			Closed:   h.Closed,
		})
	}

	return items
}

func toFAQEntities(owner entity.OwnerRef, faqs []usecase.FAQInput) []*entity.FAQ {
	items := make([]*entity.FAQ, 0, len(faqs))
	for _, f := range faqs {
		items = append(items, &entity.FAQ{Owner: owner, Question: f.Question, Answer: f.Answer})
	}

	return items
}

func toSocialLinkEntities(owner entity.OwnerRef, links []usecase.SocialLinkInput) []*entity.SocialLink {
	items := make([]*entity.SocialLink, 0, len(links))
	for _, l := range links {
		items = append(items, &entity.SocialLink{
			Owner:    owner,
			Platform: entity.SocialPlatform(l.Platform),
			URL:      l.URL,
		})
	}

	return items
}

func toCertificationEntities(owner entity.OwnerRef, certs []usecase.CertificationInput) []*entity.Certification {
	items := make([]*entity.Certification, 0, len(certs))
	for _, c := range certs {
		items = append(items, &entity.Certification{
			Owner:         owner,
			Title:         c.Title,
			IssuedAt:      c.IssuedAt,
			CredentialID:  c.CredentialID,
			CredentialURL: c.CredentialURL,
		})
	}

	return items
}
