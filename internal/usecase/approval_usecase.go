package usecase

import (
	"context"

	"lumea/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ApproveInput grants a provider application. GrantedRole becomes the
// identity's effective role; when empty the requested role is granted.
type ApproveInput struct {
	IdentityID  uuid.UUID
	GrantedRole entity.Role
}

// RejectInput declines a provider application with an optional reason shown
// to the applicant on their next login attempt.
type RejectInput struct {
	IdentityID uuid.UUID
	Reason     string
}

// ApprovalUsecase defines the administrator review operations over provider
// applications.
type ApprovalUsecase interface {
	// Approve flips the identity to approved, grants the role and updates the
	// listing projection in one transaction.
	Approve(ctx context.Context, input *ApproveInput) error

	// Reject flips the identity to rejected and records the reason. Role and
	// profiles are untouched so the applicant can amend and resubmit.
	Reject(ctx context.Context, input *RejectInput) error

	// Deactivate soft-deletes the identity, its profiles, and its favorites
	// and reviews in one transaction.
	Deactivate(ctx context.Context, identityID uuid.UUID) error

	// ListPending returns identities awaiting review.
	ListPending(ctx context.Context) ([]*entity.Identity, error)
}
