// Package entity contains the core business objects of the project.
package entity

// EstablishmentStatus represents the moderation lifecycle state of an establishment.
type EstablishmentStatus string

const (
	// StatusDraft is the initial state of a partner-created establishment.
	StatusDraft EstablishmentStatus = "draft"
	// StatusPending means the establishment is waiting for admin moderation.
	StatusPending EstablishmentStatus = "pending"
	// StatusActive means the establishment passed moderation and is publicly visible.
	StatusActive EstablishmentStatus = "active"
	// StatusSuspended means an admin temporarily removed the establishment from the catalog.
	StatusSuspended EstablishmentStatus = "suspended"
	// StatusArchived means the establishment was permanently retired by an admin.
	StatusArchived EstablishmentStatus = "archived"
)

// String returns the string representation of the status.
func (s EstablishmentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid value.
func (s EstablishmentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusActive, StatusSuspended, StatusArchived:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine allows moving from s to target.
// Admin suspend/archive is legal from any state; everything else follows the
// moderation workflow edges only.
func (s EstablishmentStatus) CanTransitionTo(target EstablishmentStatus) bool {
	if target == StatusSuspended || target == StatusArchived {
		return s != target
	}

	switch s {
	case StatusDraft:
		return target == StatusPending
	case StatusPending:
		return target == StatusActive || target == StatusDraft
	case StatusActive:
		return target == StatusPending
	case StatusSuspended:
		return target == StatusActive || target == StatusPending
	case StatusArchived:
		return false
	default:
		return false
	}
}
