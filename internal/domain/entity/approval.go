// Package entity contains the core business objects of the project.
package entity

// ApprovalStatus is the administrator-controlled gate deciding whether a
// provider account may authenticate and be shown publicly.
// Valid transitions: pending -> approved, pending -> rejected. A fresh
// registration cycle is the only way back to pending.
type ApprovalStatus string

const (
	// ApprovalApproved indicates the account passed review.
	ApprovalApproved ApprovalStatus = "approved"
	// ApprovalPending indicates the account is awaiting review.
	ApprovalPending ApprovalStatus = "pending"
	// ApprovalRejected indicates the account was declined.
	ApprovalRejected ApprovalStatus = "rejected"
)

// String returns the string representation of the ApprovalStatus.
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalApproved, ApprovalPending, ApprovalRejected:
		return true
	default:
		return false
	}
}
