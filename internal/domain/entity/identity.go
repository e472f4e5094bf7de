// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the account record behind every actor in the marketplace:
// clients, salon owners, independent professionals and administrators.
// It owns the credentials, the approval state and the onboarding progress.
type Identity struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	FirstName    string
	LastName     string
	Email        string // Login identifier; stored in canonical form (see NormalizeEmail).
	PasswordHash string // One-way credential hash. The raw credential is never stored.

	// Role is the effective, authorization-relevant role. RequestingRole is
	// the role the account applied for; the two differ until an administrator
	// approves the application.
	Role           Role
	RequestingRole Role

	ApprovalStatus  ApprovalStatus
	ApprovalMessage string // Optional; set when an application is rejected.

	// RegistrationStep records how far this account has advanced through its
	// onboarding sequence. It only ever increases.
	RegistrationStep int

	Active    bool // Soft-delete flag. Identities are never hard-deleted.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name composed from first and last name.
func (i *Identity) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// NormalizeEmail converts an email address to its canonical form used for
// uniqueness checks and lookups. Trim + lowercase is applied uniformly on
// every path that touches an email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
