package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the admin operation recorded in the audit log.
type AuditAction string

const (
	AuditModerateApprove AuditAction = "moderate_approve"
	AuditModerateReject  AuditAction = "moderate_reject"
	AuditSuspend         AuditAction = "suspend"
	AuditArchive         AuditAction = "archive"
	AuditReviewShow      AuditAction = "review_show"
	AuditReviewHide      AuditAction = "review_hide"
	AuditReviewDelete    AuditAction = "review_delete"
)

// IsValid checks if the AuditAction is a known value.
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditModerateApprove, AuditModerateReject, AuditSuspend, AuditArchive,
		AuditReviewShow, AuditReviewHide, AuditReviewDelete:
		return true
	default:
		return false
	}
}

// AuditEntityType names the kind of entity an audit entry refers to.
type AuditEntityType string

const (
	AuditEntityEstablishment AuditEntityType = "establishment"
	AuditEntityReview        AuditEntityType = "review"
)

// AuditLogEntry records one admin-initiated state change. Entries are
// append-only: the application never mutates or deletes them.
type AuditLogEntry struct {
	ID         uuid.UUID       `json:"id"`
	AdminID    uuid.UUID       `json:"admin_id"`
	Action     AuditAction     `json:"action"`
	EntityType AuditEntityType `json:"entity_type"`
	EntityID   uuid.UUID       `json:"entity_id"`

	// Optional before/after snapshots, stored as JSON.
	OldData map[string]any `json:"old_data,omitempty"`
	NewData map[string]any `json:"new_data,omitempty"`

	// Optional request metadata.
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AuditLogSort orders audit log listings.
type AuditLogSort string

const (
	AuditSortNewest AuditLogSort = "newest"
	AuditSortOldest AuditLogSort = "oldest"
)
