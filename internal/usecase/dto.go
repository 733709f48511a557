// Package usecase defines the application-layer interfaces and their input/output types.
package usecase

import (
	"time"

	"smachna/internal/domain/entity"

	"github.com/google/uuid"
)

// Page is a normalized pagination request.
type Page struct {
	Page    int
	PerPage int
}

// Pagination is the listing metadata returned alongside page results.
type Pagination struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Pages   int   `json:"pages"`
}

// RequestMeta carries optional request metadata recorded with audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// EstablishmentInput is the full payload for creating an establishment.
type EstablishmentInput struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	City         string              `json:"city"`
	Address      string              `json:"address"`
	Latitude     *float64            `json:"latitude"`
	Longitude    *float64            `json:"longitude"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Website      string              `json:"website"`
	Categories   []string            `json:"categories"`
	Cuisines     []string            `json:"cuisines"`
	PriceRange   string              `json:"price_range"`
	WorkingHours entity.WorkingHours `json:"working_hours"`
	Attributes   entity.Attributes   `json:"attributes"`
	Media        []MediaInput        `json:"media"`
}

// MediaInput describes one media asset attached at creation time.
type MediaInput struct {
	URL      string `json:"url"`
	Kind     string `json:"kind"`
	Position int    `json:"position"`
}

// EstablishmentUpdate is a partial update; nil fields are left untouched.
type EstablishmentUpdate struct {
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	City         *string              `json:"city"`
	Address      *string              `json:"address"`
	Latitude     *float64             `json:"latitude"`
	Longitude    *float64             `json:"longitude"`
	Phone        *string              `json:"phone"`
	Email        *string              `json:"email"`
	Website      *string              `json:"website"`
	Categories   []string             `json:"categories"`
	Cuisines     []string             `json:"cuisines"`
	PriceRange   *string              `json:"price_range"`
	WorkingHours *entity.WorkingHours `json:"working_hours"`
	Attributes   *entity.Attributes   `json:"attributes"`
}

// ModerationAction is the closed set of admin moderation actions on an establishment.
type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
	ModerationSuspend ModerationAction = "suspend"
	ModerationArchive ModerationAction = "archive"
)

// IsValid checks if the ModerationAction is a known value.
func (a ModerationAction) IsValid() bool {
	switch a {
	case ModerationApprove, ModerationReject, ModerationSuspend, ModerationArchive:
		return true
	default:
		return false
	}
}

// ReviewInput is the payload for creating a review.
type ReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"max=4000"`
}

// AuditLogQuery carries the admin audit-log listing filters.
type AuditLogQuery struct {
	Action          string
	EntityType      string
	AdminID         *uuid.UUID
	From            *time.Time
	To              *time.Time
	Sort            string
	IncludeMetadata bool
	Page            Page
}
