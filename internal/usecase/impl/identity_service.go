// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lumea/internal/delivery/context"
	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/domain/repository"
	"lumea/internal/domain/service"
	"lumea/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterClient registers a customer account. Clients need no review, so the
// account is approved immediately and a session token is issued.
func (srv *identityService) RegisterClient(ctx context.Context, input *usecase.RegisterClientInput) (*usecase.RegisterOutput, error) {
	identity, err := srv.executeRegistration(ctx, &registrationInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      entity.RoleClient,
		Approval:  entity.ApprovalApproved,
		Address:   input.Address,
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateToken(identity.ID, identity.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token after client registration", slog.Any("identityID", identity.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token after registration")
	}

	return &usecase.RegisterOutput{Identity: identity, AccessToken: accessToken}, nil
}

// RegisterProvider starts a provider application. The account is created
// pending and stays unable to authenticate until an administrator approves it.
func (srv *identityService) RegisterProvider(ctx context.Context, input *usecase.RegisterProviderInput) (*usecase.RegisterOutput, error) {
	if !input.Role.IsProvider() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("requested role is not a provider role")
	}

	identity, err := srv.executeRegistration(ctx, &registrationInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
		Approval:  entity.ApprovalPending,
		Address:   input.Address,
	})
	if err != nil {
		return nil, err
	}

	// No token on the provider path: the application must pass review first.
	return &usecase.RegisterOutput{Identity: identity}, nil
}

type registrationInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      entity.Role
	Approval  entity.ApprovalStatus
	Address   *usecase.AddressInput
}

func (srv *identityService) executeRegistration(ctx context.Context, input *registrationInput) (*entity.Identity, error) {
	email := entity.NormalizeEmail(input.Email)

	if err := srv.validateRegistration(input, email); err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.Any("role", input.Role), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound, hash outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", input.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", email))

	var registered *entity.Identity
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()
		addressRepo := repoFactory.AddressRepo()

		_, findErr := identityRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrDuplicateIdentity.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrIdentityNotFound) {
			return errors.Wrap(findErr, "failed to check for existing identity")
		}

		newIdentity := &entity.Identity{
			FirstName:      strings.TrimSpace(input.FirstName),
			LastName:       strings.TrimSpace(input.LastName),
			Email:          email,
			PasswordHash:   hashedPassword,
			Role:           input.Role,
			RequestingRole: input.Role,
			ApprovalStatus: input.Approval,
			Active:         true,
		}
		if err := identityRepo.Create(ctx, newIdentity); err != nil {
			return errors.Wrap(err, "failed to create identity during registration")
		}

		if input.Address != nil {
			address := &entity.Address{
				Owner:       entity.OwnByIdentity(newIdentity.ID),
				Country:     input.Address.Country,
				City:        input.Address.City,
				Postcode:    input.Address.Postcode,
				FullAddress: input.Address.FullAddress,
			}
			if err := addressRepo.Append(ctx, address); err != nil {
				return errors.Wrap(err, "failed to append signup address")
			}
		}

		registered = newIdentity

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("role", input.Role), slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", input.Role), slog.Any("identityID", registered.ID))

	return registered, nil
}

func (srv *identityService) validateRegistration(input *registrationInput, email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return domainerrors.ErrValidationFailed.WrapMessage("a valid email is required")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("first name is required")
	}

	// Strength check happens before anything is persisted, so a rejected
	// password leaves no identity and no address behind.
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}

	return nil
}

// Login authenticates an account. Providers whose application is still
// pending or was rejected fail with the workflow state attached, so the
// client can render a resumable or explanatory screen.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	identity, err := srv.loadLoginIdentity(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, identity.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// Approval gate: only provider roles are held back, clients and admins
	// never enter the review workflow.
	if identity.Role.IsProvider() && identity.ApprovalStatus != entity.ApprovalApproved {
		srv.log(ctx).Info("Login blocked by approval gate",
			slog.Any("identityID", identity.ID),
			slog.String("status", identity.ApprovalStatus.String()))

		return nil, domainerrors.NewPendingApprovalError(identity.ApprovalStatus.String(), identity.ApprovalMessage)
	}

	accessToken, err := srv.tokenService.GenerateToken(identity.ID, identity.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.Any("identityID", identity.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("identityID", identity.ID))

	return &usecase.LoginOutput{AccessToken: accessToken, Identity: identity}, nil
}

func (srv *identityService) loadLoginIdentity(ctx context.Context, email string) (*entity.Identity, error) {
	var identity *entity.Identity

	// Load from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.IdentityRepo().FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrIdentityNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(findErr, "failed to find identity by email")
		}
		if !found.Active {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		identity = found

		return nil
	}); err != nil {
		return nil, err
	}

	return identity, nil
}
