// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an identity can have in the system.
type Role string

const (
	// RoleClient indicates a regular customer account.
	RoleClient Role = "client"
	// RoleOwner indicates a salon owner account.
	RoleOwner Role = "owner"
	// RoleProfessional indicates an independent beauty professional account.
	RoleProfessional Role = "professional"
	// RoleServiceProvider is a legacy umbrella role for provider accounts
	// created before owner/professional were split.
	RoleServiceProvider Role = "service_provider"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleProfessional, RoleServiceProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsProvider reports whether the role implies a public listing.
func (r Role) IsProvider() bool {
	switch r {
	case RoleOwner, RoleProfessional, RoleServiceProvider:
		return true
	default:
		return false
	}
}

// ProfileType returns the provider profile type the role maps to, and false
// for roles that never own a listing.
func (r Role) ProfileType() (ProviderType, bool) {
	switch r {
	case RoleOwner:
		return ProviderTypeSalon, true
	case RoleProfessional, RoleServiceProvider:
		return ProviderTypeBeautyProfessional, true
	default:
		return "", false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
