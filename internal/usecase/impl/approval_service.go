package impl

import (
	"context"
	"log/slog"

	deliverycontext "lumea/internal/delivery/context"
	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// approvalService implements the ApprovalUsecase interface. Each transition
// is one transaction so the identity state, the listing projection and the
// engagement cascades never diverge.
type approvalService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ApprovalServiceParams holds dependencies for approvalService, injected by Fx.
type ApprovalServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewApprovalService is the constructor for approvalService.
func NewApprovalService(params ApprovalServiceParams) usecase.ApprovalUsecase {
	return &approvalService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Approve grants a provider application: approved status, effective role, and
// the listing projection flipped in the same transaction.
func (srv *approvalService) Approve(ctx context.Context, input *usecase.ApproveInput) error {
	srv.log(ctx).Info("Approving application", slog.Any("identityID", input.IdentityID))

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identityRepo := factory.IdentityRepo()

		identity, err := srv.loadReviewableIdentity(ctx, identityRepo, input.IdentityID)
		if err != nil {
			return err
		}

		granted := input.GrantedRole
		if granted == "" {
			granted = identity.RequestingRole
		}
		if !granted.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("granted role is not valid")
		}

		if err := identityRepo.SetApproval(ctx, identity.ID, entity.ApprovalApproved, "", granted); err != nil {
			return errors.Wrap(err, "failed to approve identity")
		}

		if !granted.IsProvider() {
			return nil
		}

		// Mirror the decision onto the listing so public queries stay joinless.
		providerRepo := factory.ProviderRepo()
		profiles, err := providerRepo.FindActiveByIdentity(ctx, identity.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load profiles for projection update")
		}
		for _, profile := range profiles {
			if err := providerRepo.SetApprovalProjection(ctx, profile.ID, true); err != nil {
				return errors.Wrap(err, "failed to set approval projection")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to approve application", slog.Any("identityID", input.IdentityID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Application approved", slog.Any("identityID", input.IdentityID))

	return nil
}

// Reject declines a provider application. Role and profiles are untouched so
// the applicant can amend their submission and resubmit.
func (srv *approvalService) Reject(ctx context.Context, input *usecase.RejectInput) error {
	srv.log(ctx).Info("Rejecting application", slog.Any("identityID", input.IdentityID))

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identityRepo := factory.IdentityRepo()

		identity, err := srv.loadReviewableIdentity(ctx, identityRepo, input.IdentityID)
		if err != nil {
			return err
		}

		err = identityRepo.SetApproval(ctx, identity.ID, entity.ApprovalRejected, input.Reason, "")
		if err != nil {
			return errors.Wrap(err, "failed to reject identity")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to reject application", slog.Any("identityID", input.IdentityID), slog.Any("error", err))

		return err
	}

	return nil
}

// Deactivate soft-deletes the identity and cascades to its profiles,
// favorites and reviews in one transaction.
func (srv *approvalService) Deactivate(ctx context.Context, identityID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating identity", slog.Any("identityID", identityID))

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		identityRepo := factory.IdentityRepo()

		if err := identityRepo.Deactivate(ctx, identityID); err != nil {
			if errors.Is(err, repository.ErrIdentityNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("identity not found")
			}

			return errors.Wrap(err, "failed to deactivate identity")
		}

		if err := factory.ProviderRepo().DeactivateByIdentity(ctx, identityID); err != nil {
			return errors.Wrap(err, "failed to deactivate profiles")
		}
		if err := factory.AddressRepo().DeactivateByOwner(ctx, entity.OwnByIdentity(identityID)); err != nil {
			return errors.Wrap(err, "failed to deactivate addresses")
		}

		engagementRepo := factory.EngagementRepo()
		if err := engagementRepo.DeactivateFavoritesByIdentity(ctx, identityID); err != nil {
			return errors.Wrap(err, "failed to deactivate favorites")
		}
		if err := engagementRepo.DeactivateReviewsByIdentity(ctx, identityID); err != nil {
			return errors.Wrap(err, "failed to deactivate reviews")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to deactivate identity", slog.Any("identityID", identityID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Identity deactivated", slog.Any("identityID", identityID))

	return nil
}

// ListPending returns identities awaiting review.
func (srv *approvalService) ListPending(ctx context.Context) ([]*entity.Identity, error) {
	var identities []*entity.Identity
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		found, err := factory.IdentityRepo().ListPendingApproval(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list pending identities")
		}
		identities = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return identities, nil
}

func (srv *approvalService) loadReviewableIdentity(ctx context.Context, identityRepo repository.IdentityRepository, identityID uuid.UUID) (*entity.Identity, error) {
	identity, err := identityRepo.FindByID(ctx, identityID)
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
