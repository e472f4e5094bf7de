// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a postal address record. It can be owned by an identity (the
// signup address history) or by a provider profile (the public listing
// address), discriminated by Owner.
type Address struct {
	ID          uuid.UUID
	Owner       OwnerRef
	Country     string
	City        string
	Postcode    string
	FullAddress string
	Active      bool // Soft-delete flag; at most one active row per owner on the upsert path.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
