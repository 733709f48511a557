package usecase

import (
	"context"

	"smachna/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the public, read-only directory surface. Only active
// establishments are visible here.
type CatalogUsecase interface {
	// ListEstablishments returns active establishments with optional city and
	// category filters.
	ListEstablishments(ctx context.Context, city, category string, page Page) ([]*entity.Establishment, *Pagination, error)

	// GetEstablishment returns a single active establishment.
	GetEstablishment(ctx context.Context, id uuid.UUID) (*entity.Establishment, error)
}

// ReviewUsecase defines user-facing review operations.
type ReviewUsecase interface {
	// CreateReview stores a new review against an active establishment and
	// recomputes the establishment aggregate.
	CreateReview(ctx context.Context, userID, establishmentID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// ListReviews returns visible, non-deleted reviews for an establishment.
	ListReviews(ctx context.Context, establishmentID uuid.UUID, page Page) ([]*entity.Review, *Pagination, error)
}

// AggregateRecalculator keeps the cached average_rating/review_count of an
// establishment consistent with its set of non-deleted reviews. Recalculation
// is idempotent and per-establishment; a batch recompute is just N independent
// calls.
type AggregateRecalculator interface {
	// Recalculate recomputes and persists the aggregate for one establishment.
	Recalculate(ctx context.Context, establishmentID uuid.UUID) (*entity.ReviewAggregate, error)
}
