package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates share codes for approved public listings.
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code embedding the profile id and
	// its public listing URL.
	GenerateListingQR(profileID uuid.UUID) ([]byte, error)

	// ParseListingQR decodes QR payload data back to a profile id.
	ParseListingQR(qrData string) (uuid.UUID, error)
}
