package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"lumea/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ListingQRData is the JSON payload embedded in a listing share code.
type ListingQRData struct {
	ProfileID string `json:"profile_id"`
	URL       string `json:"url"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance. baseURL is the
// public listing URL prefix the profile id is appended to.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateListingQR renders a PNG QR code pointing at the public listing page.
func (s *qrcodeService) GenerateListingQR(profileID uuid.UUID) ([]byte, error) {
	data := ListingQRData{
		ProfileID: profileID.String(),
		URL:       fmt.Sprintf("%s/%s", s.baseURL, profileID),
		Type:      "listing",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseListingQR parses QR code payload data and returns the profile ID.
func (s *qrcodeService) ParseListingQR(qrData string) (uuid.UUID, error) {
	var data ListingQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "listing" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	profileID, err := uuid.Parse(data.ProfileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse profile ID: %w", err)
	}

	return profileID, nil
}
