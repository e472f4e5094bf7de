// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a listing as saved by a client. It only participates in this
// core through the deactivation cascade.
type Favorite struct {
	ID         uuid.UUID
	IdentityID uuid.UUID
	ProfileID  uuid.UUID
	Active     bool
	CreatedAt  time.Time
}

// Review is a client rating of a listing. Aggregation happens in the review
// subsystem; this core only soft-deletes reviews when their author is
// deactivated.
type Review struct {
	ID         uuid.UUID
	IdentityID uuid.UUID
	ProfileID  uuid.UUID
	Rating     int
	Comment    string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
