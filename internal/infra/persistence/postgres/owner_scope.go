// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"lumea/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownerScope narrows a query to the rows owned by the resolved OwnerRef:
// profile-owned rows filter on profile_id, identity-owned rows on
// identity_id. Every child-collection read and replace-all delete goes
// through this so the dual ownership key is applied consistently.
func ownerScope(db *gorm.DB, owner entity.OwnerRef) *gorm.DB {
	switch owner.Kind {
	case entity.OwnerKindProfile:
		return db.Where("profile_id = ?", owner.ID)
	case entity.OwnerKindIdentity:
		return db.Where("identity_id = ?", owner.ID)
	default:
		// An unresolved owner matches nothing rather than everything.
		return db.Where("1 = 0")
	}
}

// ownerColumns splits an OwnerRef into the nullable FK pair stored on child
// rows. Exactly one of the two results is non-nil.
func ownerColumns(owner entity.OwnerRef) (profileID, identityID *uuid.UUID) {
	id := owner.ID
	switch owner.Kind {
	case entity.OwnerKindProfile:
		return &id, nil
	case entity.OwnerKindIdentity:
		return nil, &id
	default:
		return nil, nil
	}
}

// ownerFromColumns rebuilds the OwnerRef from the nullable FK pair.
func ownerFromColumns(profileID, identityID *uuid.UUID) entity.OwnerRef {
	if profileID != nil {
		return entity.OwnByProfile(*profileID)
	}
	if identityID != nil {
		return entity.OwnByIdentity(*identityID)
	}

	return entity.OwnerRef{}
}
