// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is a single sellable service on a listing.
type ServiceOffering struct {
	ID              uuid.UUID
	Owner           OwnerRef
	Name            string
	DurationMinutes int
	Price           float64
	DiscountedPrice float64
	Description     string
	ImageURL        string
	Position        int // Submission order within the collection.
}

// Valid reports whether the item survives the replace-all minimal check.
func (s *ServiceOffering) Valid() bool {
	return strings.TrimSpace(s.Name) != ""
}

// Portfolio is an album of work samples. Deleting a portfolio cascades to its
// images.
type Portfolio struct {
	ID        uuid.UUID
	Owner     OwnerRef
	AlbumName string
	Images    []*PortfolioImage
	Position  int
}

// Valid reports whether the item survives the replace-all minimal check.
func (p *Portfolio) Valid() bool {
	return strings.TrimSpace(p.AlbumName) != ""
}

// PortfolioImage is one ordered image inside a portfolio album.
type PortfolioImage struct {
	ID          uuid.UUID
	PortfolioID uuid.UUID
	ImageURL    string
	Position    int
}

// Certification is a professional credential shown on a listing.
type Certification struct {
	ID            uuid.UUID
	Owner         OwnerRef
	Title         string
	IssuedAt      *time.Time
	CredentialID  string
	CredentialURL string
	Position      int
}

// Valid reports whether the item survives the replace-all minimal check.
func (c *Certification) Valid() bool {
	return strings.TrimSpace(c.Title) != ""
}

// FAQ is a question/answer pair shown on a listing.
type FAQ struct {
	ID       uuid.UUID
	Owner    OwnerRef
	Question string
	Answer   string
	Position int
}

// Valid reports whether the item survives the replace-all minimal check.
func (f *FAQ) Valid() bool {
	return strings.TrimSpace(f.Question) != ""
}
