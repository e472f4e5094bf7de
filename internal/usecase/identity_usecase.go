// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lumea/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput carries the postal address fields collected at signup and on
// the first registration step.
type AddressInput struct {
	Country     string
	City        string
	Postcode    string
	FullAddress string
}

// RegisterClientInput defines the data required to register a client account.
type RegisterClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Address   *AddressInput
}

// RegisterProviderInput defines the data required to start a provider
// application. Role selects the sequence: owner or professional.
type RegisterProviderInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      entity.Role
	Address   *AddressInput
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created identity. AccessToken is only set
// on the client path; provider applicants authenticate after approval.
type RegisterOutput struct {
	Identity    *entity.Identity
	AccessToken string
}

// LoginOutput returns the session token after a successful login, plus the
// identity so a client can resume an incomplete registration flow.
type LoginOutput struct {
	AccessToken string
	Identity    *entity.Identity
}

// IdentityUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	RegisterClient(ctx context.Context, input *RegisterClientInput) (*RegisterOutput, error)
	RegisterProvider(ctx context.Context, input *RegisterProviderInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
