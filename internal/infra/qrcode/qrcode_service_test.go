package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://lumea.example/listings")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://lumea.example/listings")
	profileID := uuid.New()

	qrBytes, err := service.GenerateListingQR(profileID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateListingQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://lumea.example/listings")

			qrBytes, err := service.GenerateListingQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://lumea.example/listings")
	profileID := uuid.New()

	data := ListingQRData{
		ProfileID: profileID.String(),
		URL:       "https://lumea.example/listings/" + profileID.String(),
		Type:      "listing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseListingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, profileID, parsedID)
}

func TestQRCodeService_ParseListingQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://lumea.example/listings")

	_, err := service.ParseListingQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseListingQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://lumea.example/listings")

	data := ListingQRData{
		ProfileID: uuid.New().String(),
		Type:      "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseListingQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseListingQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://lumea.example/listings")

	data := ListingQRData{
		ProfileID: "not-a-valid-uuid",
		Type:      "listing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseListingQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse profile ID")
}
