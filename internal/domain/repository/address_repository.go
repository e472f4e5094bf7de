// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"lumea/internal/domain/entity"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines address persistence. Addresses are owned
// polymorphically: by an identity (signup history, append-only) or by a
// provider profile (listing address, single active row).
type AddressRepository interface {
	// Append always inserts a new address row for the owner.
	Append(ctx context.Context, address *entity.Address) error

	// FindActiveByOwner returns the single active address for the owner, or
	// ErrAddressNotFound.
	FindActiveByOwner(ctx context.Context, owner entity.OwnerRef) (*entity.Address, error)

	// UpsertActive updates the owner's active address in place, inserting it
	// when absent. Concurrent calls for the same owner are serialized by the
	// surrounding transaction, not by this method.
	UpsertActive(ctx context.Context, address *entity.Address) error

	// DeactivateByOwner soft-deletes every address of the owner.
	DeactivateByOwner(ctx context.Context, owner entity.OwnerRef) error
}
