package impl

import (
	"context"
	"testing"

	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityService(tx *fakeTxManager) usecase.IdentityUsecase {
	return &identityService{
		txManager:    tx,
		hasher:       fakePasswordHasher{},
		tokenService: fakeTokenService{},
		logger:       testLogger(),
	}
}

func clientInput() *usecase.RegisterClientInput {
	return &usecase.RegisterClientInput{
		FirstName: "Mia",
		LastName:  "Novak",
		Email:     "  Mia.Novak@Example.COM ",
		Password:  "correct-horse",
		Address: &usecase.AddressInput{
			Country:     "Slovenia",
			City:        "Ljubljana",
			Postcode:    "1000",
			FullAddress: "Trubarjeva cesta 1",
		},
	}
}

func TestRegisterClient(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	out, err := srv.RegisterClient(context.Background(), clientInput())
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "mia.novak@example.com", out.Identity.Email)
	assert.Equal(t, entity.RoleClient, out.Identity.Role)
	assert.Equal(t, entity.ApprovalApproved, out.Identity.ApprovalStatus)

	// Signup address lands in the same transaction, owned by the identity.
	require.Len(t, tx.state.addresses, 1)
	assert.Equal(t, entity.OwnByIdentity(out.Identity.ID), tx.state.addresses[0].Owner)
}

func TestRegisterProvider_PendingWithoutToken(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	out, err := srv.RegisterProvider(context.Background(), &usecase.RegisterProviderInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "long-enough",
		Role:      entity.RoleOwner,
	})
	require.NoError(t, err)

	assert.Empty(t, out.AccessToken)
	assert.Equal(t, entity.ApprovalPending, out.Identity.ApprovalStatus)
	assert.Equal(t, entity.RoleOwner, out.Identity.RequestingRole)
}

func TestRegisterProvider_RejectsNonProviderRole(t *testing.T) {
	srv := newIdentityService(newFakeTxManager())

	_, err := srv.RegisterProvider(context.Background(), &usecase.RegisterProviderInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "long-enough",
		Role:      entity.RoleClient,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRegisterClient_DuplicateEmail(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	_, err := srv.RegisterClient(context.Background(), clientInput())
	require.NoError(t, err)

	// Same address in different casing collides on the canonical form.
	second := clientInput()
	second.Email = "MIA.NOVAK@example.com"
	_, err = srv.RegisterClient(context.Background(), second)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentity)
	assert.Len(t, tx.state.identities, 1)
}

func TestRegisterClient_ShortPasswordPersistsNothing(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	input := clientInput()
	input.Password = "short"
	_, err := srv.RegisterClient(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Empty(t, tx.state.identities)
	assert.Empty(t, tx.state.addresses)
}

func TestLogin(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	registered, err := srv.RegisterClient(context.Background(), clientInput())
	require.NoError(t, err)

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "mia.novak@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, registered.Identity.ID, out.Identity.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	_, err := srv.RegisterClient(context.Background(), clientInput())
	require.NoError(t, err)

	_, err = srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "mia.novak@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	srv := newIdentityService(newFakeTxManager())

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever-long",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccountLooksLikeBadCredentials(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	registered, err := srv.RegisterClient(context.Background(), clientInput())
	require.NoError(t, err)
	tx.state.identities[registered.Identity.ID].Active = false

	_, err = srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "mia.novak@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_PendingProviderBlocked(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	_, err := srv.RegisterProvider(context.Background(), &usecase.RegisterProviderInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "long-enough",
		Role:      entity.RoleProfessional,
	})
	require.NoError(t, err)

	_, err = srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "long-enough",
	})
	require.Error(t, err)

	var pendingErr *domainerrors.PendingApprovalError
	require.True(t, errors.As(err, &pendingErr))
	assert.Equal(t, entity.ApprovalPending.String(), pendingErr.Status)
}

func TestLogin_RejectedProviderSeesReason(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	registered, err := srv.RegisterProvider(context.Background(), &usecase.RegisterProviderInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "long-enough",
		Role:      entity.RoleProfessional,
	})
	require.NoError(t, err)

	identity := tx.state.identities[registered.Identity.ID]
	identity.ApprovalStatus = entity.ApprovalRejected
	identity.ApprovalMessage = "certificate unreadable"

	_, err = srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "long-enough",
	})
	require.Error(t, err)

	var pendingErr *domainerrors.PendingApprovalError
	require.True(t, errors.As(err, &pendingErr))
	assert.Equal(t, entity.ApprovalRejected.String(), pendingErr.Status)
	assert.Equal(t, "certificate unreadable", pendingErr.Reason)
}

func TestLogin_ApprovedProviderSucceeds(t *testing.T) {
	tx := newFakeTxManager()
	srv := newIdentityService(tx)

	registered, err := srv.RegisterProvider(context.Background(), &usecase.RegisterProviderInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "long-enough",
		Role:      entity.RoleOwner,
	})
	require.NoError(t, err)
	tx.state.identities[registered.Identity.ID].ApprovalStatus = entity.ApprovalApproved

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "long-enough",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, out.Identity.Role)
}
