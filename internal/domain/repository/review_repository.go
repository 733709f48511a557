// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"smachna/internal/domain/entity"
	"smachna/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// AdminReviewRow is an admin-listing row joined with display names.
type AdminReviewRow struct {
	Review            *entity.Review `json:"review"`
	AuthorName        string         `json:"author_name"`
	EstablishmentName string         `json:"establishment_name"`
}

// ReviewFilter narrows review listings.
type ReviewFilter struct {
	EstablishmentID *uuid.UUID
	Status          *entity.ReviewStatusFilter
	Limit           int
	Offset          int
}

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID regardless of flags.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListPublic retrieves visible, non-deleted reviews for an establishment
	// with a total count for pagination.
	ListPublic(ctx context.Context, establishmentID uuid.UUID, limit, offset int) ([]*entity.Review, int64, error)

	// ListAdmin retrieves reviews regardless of visibility/deletion flags,
	// joined with author and establishment display names.
	ListAdmin(ctx context.Context, filter ReviewFilter) ([]*AdminReviewRow, int64, error)

	// SetVisibility flips is_visible on a non-deleted review. Soft-deleted
	// reviews are untouchable via this path and yield ErrReviewNotFound.
	SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error

	// SoftDelete marks a review is_deleted=true, retaining the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// SetResponse attaches a partner response to a review.
	SetResponse(ctx context.Context, id uuid.UUID, responderID uuid.UUID, text string) error
}
