package impl

import (
	"context"
	"testing"

	"lumea/internal/domain/entity"
	domainerrors "lumea/internal/domain/errors"
	"lumea/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApprovalService(tx *fakeTxManager) usecase.ApprovalUsecase {
	return &approvalService{txManager: tx, logger: testLogger()}
}

// seedApplication plants a pending owner application with an active profile,
// the state an account is in right after finishing its onboarding sequence.
func seedApplication(t *testing.T, tx *fakeTxManager) (identityID, profileID uuid.UUID) {
	t.Helper()

	identityID = uuid.New()
	tx.state.identities[identityID] = &entity.Identity{
		ID:             identityID,
		FirstName:      "Ana",
		Email:          "ana@example.com",
		Role:           entity.RoleOwner,
		RequestingRole: entity.RoleOwner,
		ApprovalStatus: entity.ApprovalPending,
		Active:         true,
	}

	profileID = uuid.New()
	tx.state.profiles[profileID] = &entity.ProviderProfile{
		ID:              profileID,
		OwnerIdentityID: identityID,
		Type:            entity.ProviderTypeSalon,
		Name:            "Ana's Salon",
		Active:          true,
	}

	return identityID, profileID
}

func TestApprove(t *testing.T) {
	tx := newFakeTxManager()
	srv := newApprovalService(tx)
	identityID, profileID := seedApplication(t, tx)

	err := srv.Approve(context.Background(), &usecase.ApproveInput{IdentityID: identityID})
	require.NoError(t, err)

	// Status, role and listing projection move together.
	identity := tx.state.identities[identityID]
	assert.Equal(t, entity.ApprovalApproved, identity.ApprovalStatus)
	assert.Equal(t, entity.RoleOwner, identity.Role)
	assert.True(t, tx.state.profiles[profileID].IsApproved)
}

func TestApprove_ExplicitRoleOverridesRequested(t *testing.T) {
	tx := newFakeTxManager()
	srv := newApprovalService(tx)
	identityID, _ := seedApplication(t, tx)
	tx.state.identities[identityID].RequestingRole = entity.RoleServiceProvider

	err := srv.Approve(context.Background(), &usecase.ApproveInput{
		IdentityID:  identityID,
		GrantedRole: entity.RoleOwner,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleOwner, tx.state.identities[identityID].Role)
}

func TestApprove_UnknownIdentity(t *testing.T) {
	srv := newApprovalService(newFakeTxManager())

	err := srv.Approve(context.Background(), &usecase.ApproveInput{IdentityID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReject(t *testing.T) {
	tx := newFakeTxManager()
	srv := newApprovalService(tx)
	identityID, profileID := seedApplication(t, tx)

	err := srv.Reject(context.Background(), &usecase.RejectInput{
		IdentityID: identityID,
		Reason:     "business license missing",
	})
	require.NoError(t, err)

	identity := tx.state.identities[identityID]
	assert.Equal(t, entity.ApprovalRejected, identity.ApprovalStatus)
	assert.Equal(t, "business license missing", identity.ApprovalMessage)

	// Role and profile stay untouched so the applicant can amend and resubmit.
	assert.Equal(t, entity.RoleOwner, identity.Role)
	assert.True(t, tx.state.profiles[profileID].Active)
	assert.False(t, tx.state.profiles[profileID].IsApproved)
}

func TestDeactivate_Cascades(t *testing.T) {
	tx := newFakeTxManager()
	srv := newApprovalService(tx)
	identityID, profileID := seedApplication(t, tx)
	tx.state.profiles[profileID].IsApproved = true

	tx.state.addresses = append(tx.state.addresses, &entity.Address{
		ID: uuid.New(), Owner: entity.OwnByIdentity(identityID), FullAddress: "somewhere", Active: true,
	})
	tx.state.favorites = append(tx.state.favorites, &entity.Favorite{
		ID: uuid.New(), IdentityID: identityID, ProfileID: uuid.New(), Active: true,
	})
	tx.state.reviews = append(tx.state.reviews, &entity.Review{
		ID: uuid.New(), IdentityID: identityID, ProfileID: uuid.New(), Rating: 5, Active: true,
	})

	err := srv.Deactivate(context.Background(), identityID)
	require.NoError(t, err)

	assert.False(t, tx.state.identities[identityID].Active)
	assert.False(t, tx.state.profiles[profileID].Active)
	assert.False(t, tx.state.profiles[profileID].IsApproved)
	assert.False(t, tx.state.addresses[0].Active)
	assert.False(t, tx.state.favorites[0].Active)
	assert.False(t, tx.state.reviews[0].Active)
}

func TestListPending(t *testing.T) {
	tx := newFakeTxManager()
	srv := newApprovalService(tx)
	identityID, _ := seedApplication(t, tx)

	approvedID := uuid.New()
	tx.state.identities[approvedID] = &entity.Identity{
		ID:             approvedID,
		Email:          "done@example.com",
		Role:           entity.RoleProfessional,
		ApprovalStatus: entity.ApprovalApproved,
		Active:         true,
	}

	pending, err := srv.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, identityID, pending[0].ID)
}
