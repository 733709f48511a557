package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a single user rating with optional text for one establishment.
// Reviews are never hard-deleted: admins hide them (is_visible) or soft-delete
// them (is_deleted). Only is_deleted gates the establishment aggregate.
type Review struct {
	ID              uuid.UUID `json:"id"`
	EstablishmentID uuid.UUID `json:"establishment_id"`
	UserID          uuid.UUID `json:"user_id"`
	Rating          int       `json:"rating"` // 1-5 inclusive.
	Content         string    `json:"content,omitempty"`
	IsVisible       bool      `json:"is_visible"`
	IsDeleted       bool      `json:"is_deleted"`

	// Optional partner response attached by the establishment owner.
	ResponseText   string     `json:"response_text,omitempty"`
	ResponseUserID *uuid.UUID `json:"response_user_id,omitempty"`
	ResponseAt     *time.Time `json:"response_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewStatusFilter narrows admin review listings.
type ReviewStatusFilter string

const (
	// ReviewFilterVisible selects non-deleted reviews with is_visible=true.
	ReviewFilterVisible ReviewStatusFilter = "visible"
	// ReviewFilterHidden selects non-deleted reviews with is_visible=false.
	ReviewFilterHidden ReviewStatusFilter = "hidden"
	// ReviewFilterDeleted selects soft-deleted reviews.
	ReviewFilterDeleted ReviewStatusFilter = "deleted"
)

// IsValid checks if the filter is a known value. Unknown filter values are not
// an error at the API level; they just produce an empty result set.
func (f ReviewStatusFilter) IsValid() bool {
	switch f {
	case ReviewFilterVisible, ReviewFilterHidden, ReviewFilterDeleted:
		return true
	default:
		return false
	}
}

// ReviewAggregate is the recomputed cache pair stored on an establishment.
type ReviewAggregate struct {
	AverageRating float64 // AVG(rating) over is_deleted=false, 2 decimals, 0.0 when empty.
	ReviewCount   int     // COUNT(*) under the same predicate.
}
