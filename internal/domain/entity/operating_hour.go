// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OperatingHour is one weekday entry of a salon's opening schedule. Salons
// submit the whole week as a replace-all collection on their hours step.
type OperatingHour struct {
	ID       uuid.UUID
	Owner    OwnerRef
	Weekday  time.Weekday
	OpensAt  string // "HH:MM", 24h clock.
	ClosesAt string
	Closed   bool // True when the salon does not open that day.
	Position int
}

// Valid reports whether the item survives the replace-all minimal check.
// A closed day needs no times; an open day needs both.
func (h *OperatingHour) Valid() bool {
	if h.Weekday < time.Sunday || h.Weekday > time.Saturday {
		return false
	}
	if h.Closed {
		return true
	}

	return h.OpensAt != "" && h.ClosesAt != ""
}
