package usecase

import (
	"context"

	"smachna/internal/domain/entity"
	"smachna/internal/domain/repository"

	"github.com/google/uuid"
)

// AdminModerationUsecase defines the admin moderation operations.
//
// Each mutating operation commits its primary state change first and then
// records an audit entry through the best-effort recorder; an audit failure
// never rolls back or hides the primary mutation's success.
type AdminModerationUsecase interface {
	// Moderate applies an admin moderation action to an establishment:
	// approve (pending -> active), reject (pending -> draft, reason recorded),
	// suspend or archive (any state).
	Moderate(ctx context.Context, adminID, establishmentID uuid.UUID, action ModerationAction, reason string, meta RequestMeta) (*entity.Establishment, error)

	// ToggleReviewVisibility flips is_visible on a non-deleted review.
	// Soft-deleted reviews are untouchable via this path and yield not-found.
	ToggleReviewVisibility(ctx context.Context, adminID, reviewID uuid.UUID, meta RequestMeta) (*entity.Review, error)

	// DeleteReview soft-deletes a review and recomputes the establishment
	// aggregate afterwards.
	DeleteReview(ctx context.Context, adminID, reviewID uuid.UUID, reason string, meta RequestMeta) error

	// ListReviews returns reviews regardless of visibility/deletion flags,
	// joined with author and establishment display names.
	ListReviews(ctx context.Context, status string, page Page) ([]*repository.AdminReviewRow, *Pagination, error)

	// ListAuditLog returns audit entries matching the query. Unknown filter
	// values yield an empty result, never an error; per-page is capped.
	ListAuditLog(ctx context.Context, query AuditLogQuery) ([]*entity.AuditLogEntry, *Pagination, error)
}
