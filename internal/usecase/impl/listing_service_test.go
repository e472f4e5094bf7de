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

func newListingService(tx *fakeTxManager, storage *fakeImageStorage) usecase.ListingUsecase {
	return &listingService{
		txManager:    tx,
		imageStorage: storage,
		qrService:    fakeQRService{},
		logger:       testLogger(),
	}
}

func seedListing(tx *fakeTxManager, approved bool, profileType entity.ProviderType) uuid.UUID {
	profileID := uuid.New()
	tx.state.profiles[profileID] = &entity.ProviderProfile{
		ID:              profileID,
		OwnerIdentityID: uuid.New(),
		Type:            profileType,
		Name:            "Listing",
		IsApproved:      approved,
		Active:          true,
	}

	return profileID
}

func TestListApproved(t *testing.T) {
	tx := newFakeTxManager()
	srv := newListingService(tx, &fakeImageStorage{})

	salonID := seedListing(tx, true, entity.ProviderTypeSalon)
	seedListing(tx, true, entity.ProviderTypeBeautyProfessional)
	seedListing(tx, false, entity.ProviderTypeSalon) // pending, hidden

	all, err := srv.ListApproved(context.Background(), &usecase.ListListingsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	salons, err := srv.ListApproved(context.Background(), &usecase.ListListingsInput{Type: entity.ProviderTypeSalon})
	require.NoError(t, err)
	require.Len(t, salons, 1)
	assert.Equal(t, salonID, salons[0].ID)
}

func TestListApproved_UnknownType(t *testing.T) {
	srv := newListingService(newFakeTxManager(), &fakeImageStorage{})

	_, err := srv.ListApproved(context.Background(), &usecase.ListListingsInput{Type: "barbershop"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGetPublicProfile_LoadsCollections(t *testing.T) {
	tx := newFakeTxManager()
	srv := newListingService(tx, &fakeImageStorage{})
	profileID := seedListing(tx, true, entity.ProviderTypeSalon)
	owner := entity.OwnByProfile(profileID)

	tx.state.services = append(tx.state.services, &entity.ServiceOffering{
		ID: uuid.New(), Owner: owner, Name: "Haircut", Price: 25,
	})
	tx.state.faqs = append(tx.state.faqs, &entity.FAQ{
		ID: uuid.New(), Owner: owner, Question: "Parking?", Answer: "Yes",
	})

	profile, err := srv.GetPublicProfile(context.Background(), profileID)
	require.NoError(t, err)

	require.Len(t, profile.Services, 1)
	assert.Equal(t, "Haircut", profile.Services[0].Name)
	require.Len(t, profile.FAQs, 1)
	assert.Empty(t, profile.Portfolios)
}

func TestGetPublicProfile_UnapprovedLooksAbsent(t *testing.T) {
	tx := newFakeTxManager()
	srv := newListingService(tx, &fakeImageStorage{})
	profileID := seedListing(tx, false, entity.ProviderTypeSalon)

	_, err := srv.GetPublicProfile(context.Background(), profileID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = srv.GetPublicProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGenerateShareQR(t *testing.T) {
	tx := newFakeTxManager()
	srv := newListingService(tx, &fakeImageStorage{})
	profileID := seedListing(tx, true, entity.ProviderTypeBeautyProfessional)

	png, err := srv.GenerateShareQR(context.Background(), profileID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGenerateShareQR_UnapprovedListing(t *testing.T) {
	tx := newFakeTxManager()
	srv := newListingService(tx, &fakeImageStorage{})
	profileID := seedListing(tx, false, entity.ProviderTypeBeautyProfessional)

	_, err := srv.GenerateShareQR(context.Background(), profileID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUploadImage(t *testing.T) {
	storage := &fakeImageStorage{}
	srv := newListingService(newFakeTxManager(), storage)

	out, err := srv.UploadImage(context.Background(), &usecase.UploadImageInput{
		Data:        []byte("fake bytes"),
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.URL)
	assert.Equal(t, 1, storage.stored)
}

func TestUploadImage_Validation(t *testing.T) {
	storage := &fakeImageStorage{}
	srv := newListingService(newFakeTxManager(), storage)

	_, err := srv.UploadImage(context.Background(), &usecase.UploadImageInput{
		Data:        nil,
		ContentType: "image/png",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.UploadImage(context.Background(), &usecase.UploadImageInput{
		Data:        []byte("x"),
		ContentType: "application/zip",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Zero(t, storage.stored)
}
