// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// OwnerKind discriminates the two possible owners of an address or a child
// collection row.
type OwnerKind string

const (
	// OwnerKindProfile indicates rows owned by a provider profile.
	OwnerKindProfile OwnerKind = "profile"
	// OwnerKindIdentity indicates rows owned directly by an identity, used
	// while an independent professional has no provider profile row yet.
	OwnerKindIdentity OwnerKind = "identity"
)

// OwnerRef is the resolved reference that scopes a child collection or an
// address: either a provider profile id or a bare identity id, never both.
// A registration step resolves it once and threads it through every write in
// that step's transaction.
type OwnerRef struct {
	Kind OwnerKind
	ID   uuid.UUID
}

// OwnByProfile builds an OwnerRef pointing at a provider profile.
func OwnByProfile(profileID uuid.UUID) OwnerRef {
	return OwnerRef{Kind: OwnerKindProfile, ID: profileID}
}

// OwnByIdentity builds an OwnerRef pointing at an identity.
func OwnByIdentity(identityID uuid.UUID) OwnerRef {
	return OwnerRef{Kind: OwnerKindIdentity, ID: identityID}
}

// IsZero reports whether the reference has not been resolved.
func (o OwnerRef) IsZero() bool {
	return o.ID == uuid.Nil
}

// ProfileID returns the profile id and true when the owner is a profile.
func (o OwnerRef) ProfileID() (uuid.UUID, bool) {
	if o.Kind == OwnerKindProfile {
		return o.ID, true
	}

	return uuid.Nil, false
}

// IdentityID returns the identity id and true when the owner is an identity.
func (o OwnerRef) IdentityID() (uuid.UUID, bool) {
	if o.Kind == OwnerKindIdentity {
		return o.ID, true
	}

	return uuid.Nil, false
}
