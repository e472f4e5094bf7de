package service

import (
	"lumea/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is what a verified session token resolves to: the identity and the
// effective role it was issued for.
type Claims struct {
	IdentityID uuid.UUID
	Role       entity.Role
}

// TokenService defines the session/token collaborator. The core treats tokens
// as opaque bearer artifacts with a fixed validity window and does not
// implement revocation.
type TokenService interface {
	// GenerateToken issues a token scoped to {identity id, effective role}.
	GenerateToken(identityID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
