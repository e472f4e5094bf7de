// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lumea/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdentityNotFound is a domain-specific error returned when an identity is not found.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository defines the standard operations for identity persistence.
// The application layer will depend on this interface, not the concrete implementation.
type IdentityRepository interface {
	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves a single identity by canonical email.
	// Callers pass the output of entity.NormalizeEmail.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// Create persists a new identity.
	Create(ctx context.Context, identity *entity.Identity) error

	// Update modifies an existing identity.
	Update(ctx context.Context, identity *entity.Identity) error

	// AdvanceStep sets registration_step = max(current, step). Safe to call
	// repeatedly and with out-of-order step numbers; the counter never
	// decreases.
	AdvanceStep(ctx context.Context, id uuid.UUID, step int) error

	// SetApproval updates the approval status, optional message, and, when
	// role is non-empty, the effective role in one statement.
	SetApproval(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus, message string, role entity.Role) error

	// Deactivate soft-deletes the identity.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// ListPendingApproval returns active identities awaiting administrator review.
	ListPendingApproval(ctx context.Context) ([]*entity.Identity, error)
}
