package usecase

import (
	"context"

	"smachna/internal/domain/entity"

	"github.com/google/uuid"
)

// PartnerEstablishmentUsecase defines the partner-facing establishment operations.
//
// Every operation is scoped to the calling partner. Reads mask the existence of
// establishments owned by someone else: a non-owner GET yields the same
// not-found error as a missing id.
type PartnerEstablishmentUsecase interface {
	// CreateEstablishment validates the input and persists a new draft
	// establishment together with its media rows in one transaction.
	CreateEstablishment(ctx context.Context, partnerID uuid.UUID, input *EstablishmentInput) (*entity.Establishment, error)

	// ListEstablishments returns the partner's own establishments, optionally
	// filtered by status, with pagination metadata.
	ListEstablishments(ctx context.Context, partnerID uuid.UUID, status *entity.EstablishmentStatus, page Page) ([]*entity.Establishment, *Pagination, error)

	// GetEstablishment returns one of the partner's establishments, masking
	// existence of establishments owned by others as not-found.
	GetEstablishment(ctx context.Context, partnerID, id uuid.UUID) (*entity.Establishment, error)

	// UpdateEstablishment applies a partial update. Changing a major field on an
	// active establishment resets it to pending as part of the same write.
	UpdateEstablishment(ctx context.Context, partnerID, id uuid.UUID, update *EstablishmentUpdate) (*entity.Establishment, error)

	// SubmitEstablishment moves a draft establishment to pending moderation.
	SubmitEstablishment(ctx context.Context, partnerID, id uuid.UUID) (*entity.Establishment, error)

	// RespondToReview attaches the owning partner's response to a review of
	// one of their establishments.
	RespondToReview(ctx context.Context, partnerID, reviewID uuid.UUID, text string) (*entity.Review, error)
}
