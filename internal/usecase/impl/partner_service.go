// Package impl contains the concrete use case services of the application layer.
package impl

import (
	"context"
	"log/slog"
	"slices"

	"smachna/config"
	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type partnerService struct {
	establishmentRepo repository.EstablishmentRepository
	reviewRepo        repository.ReviewRepository
	txManager         repository.TransactionManager
	cfg               *config.Config
	logger            *slog.Logger
}

// NewPartnerService creates the partner establishment service.
func NewPartnerService(
	establishmentRepo repository.EstablishmentRepository,
	reviewRepo repository.ReviewRepository,
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PartnerEstablishmentUsecase {
	return &partnerService{
		establishmentRepo: establishmentRepo,
		reviewRepo:        reviewRepo,
		txManager:         txManager,
		cfg:               cfg,
		logger:            logger,
	}
}

// CreateEstablishment validates the payload and persists a new draft
// establishment with its media rows inside one transaction.
func (s *partnerService) CreateEstablishment(ctx context.Context, partnerID uuid.UUID, input *usecase.EstablishmentInput) (*entity.Establishment, error) {
	if vErr := validateEstablishmentInput(input); vErr != nil {
		return nil, vErr
	}

	establishment := &entity.Establishment{
		ID:           uuid.New(),
		PartnerID:    partnerID,
		Name:         input.Name,
		Description:  input.Description,
		City:         entity.City(input.City),
		Address:      input.Address,
		Latitude:     *input.Latitude,
		Longitude:    *input.Longitude,
		Phone:        input.Phone,
		Email:        input.Email,
		Website:      input.Website,
		Categories:   toCategories(input.Categories),
		Cuisines:     toCuisines(input.Cuisines),
		PriceRange:   entity.PriceRange(input.PriceRange),
		WorkingHours: input.WorkingHours,
		Attributes:   input.Attributes,
		Status:       entity.StatusDraft,
	}
	for _, m := range input.Media {
		establishment.Media = append(establishment.Media, &entity.EstablishmentMedia{
			ID:              uuid.New(),
			EstablishmentID: establishment.ID,
			URL:             m.URL,
			Kind:            m.Kind,
			Position:        m.Position,
		})
	}

	// Media rows must never be visible without their establishment and vice
	// versa, so the whole create runs in a single transaction.
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewEstablishmentRepository().Create(ctx, establishment)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create establishment")
	}

	return establishment, nil
}

// ListEstablishments returns the partner's own establishments.
func (s *partnerService) ListEstablishments(ctx context.Context, partnerID uuid.UUID, status *entity.EstablishmentStatus, page usecase.Page) ([]*entity.Establishment, *usecase.Pagination, error) {
	page = normalizePage(page, s.cfg)

	filter := repository.EstablishmentFilter{
		PartnerID: &partnerID,
		Status:    status,
		Limit:     page.PerPage,
		Offset:    pageOffset(page),
	}

	establishments, total, err := s.establishmentRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list establishments")
	}

	return establishments, buildPagination(page, total), nil
}

// GetEstablishment returns one of the partner's establishments. Establishments
// owned by someone else are reported as not found, never as forbidden, so their
// existence is not leaked.
func (s *partnerService) GetEstablishment(ctx context.Context, partnerID, id uuid.UUID) (*entity.Establishment, error) {
	establishment, err := s.findOwned(ctx, partnerID, id, true)
	if err != nil {
		return nil, err
	}

	return establishment, nil
}

// UpdateEstablishment applies a partial update; a major-field change on an
// active establishment resets it to pending within the same write.
func (s *partnerService) UpdateEstablishment(ctx context.Context, partnerID, id uuid.UUID, update *usecase.EstablishmentUpdate) (*entity.Establishment, error) {
	if vErr := validateEstablishmentUpdate(update); vErr != nil {
		return nil, vErr
	}

	establishment, err := s.findOwned(ctx, partnerID, id, false)
	if err != nil {
		return nil, err
	}

	majorChanged := applyUpdate(establishment, update)
	if majorChanged && establishment.Status == entity.StatusActive {
		establishment.Status = entity.StatusPending
	}

	if err := s.establishmentRepo.Update(ctx, establishment); err != nil {
		return nil, errors.Wrap(err, "failed to update establishment")
	}

	return establishment, nil
}

// SubmitEstablishment moves a draft establishment to pending via an atomic
// compare-and-set on the status column.
func (s *partnerService) SubmitEstablishment(ctx context.Context, partnerID, id uuid.UUID) (*entity.Establishment, error) {
	establishment, err := s.findOwned(ctx, partnerID, id, true)
	if err != nil {
		return nil, err
	}

	if err := s.establishmentRepo.UpdateStatus(ctx, id, entity.StatusDraft, entity.StatusPending); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, domainerrors.ErrInvalidStatusForSubmission
		}
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return nil, domainerrors.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to submit establishment")
	}

	establishment.Status = entity.StatusPending

	return establishment, nil
}

// RespondToReview attaches the owning partner's response text to a review.
func (s *partnerService) RespondToReview(ctx context.Context, partnerID, reviewID uuid.UUID, text string) (*entity.Review, error) {
	if text == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "text", Message: "response text is required"})
	}

	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}
	if review.IsDeleted {
		return nil, domainerrors.ErrReviewNotFound
	}

	// Ownership runs through the reviewed establishment.
	if _, err := s.findOwned(ctx, partnerID, review.EstablishmentID, true); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.SetResponse(ctx, reviewID, partnerID, text); err != nil {
		return nil, errors.Wrap(err, "failed to set review response")
	}

	return s.reviewRepo.FindByID(ctx, reviewID)
}

// findOwned loads an establishment and enforces ownership. With mask=true a
// non-owner gets the not-found error; with mask=false (mutations whose routes
// already confirmed the resource, per the API contract) a forbidden error.
func (s *partnerService) findOwned(ctx context.Context, partnerID, id uuid.UUID, mask bool) (*entity.Establishment, error) {
	establishment, err := s.establishmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return nil, domainerrors.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find establishment")
	}

	if !establishment.IsOwnedBy(partnerID) {
		if mask {
			return nil, domainerrors.ErrEstablishmentNotFound
		}

		return nil, domainerrors.ErrForbidden
	}

	return establishment, nil
}

// applyUpdate copies non-nil fields onto the entity and reports whether any
// major field changed.
func applyUpdate(establishment *entity.Establishment, update *usecase.EstablishmentUpdate) bool {
	major := false

	if update.Name != nil && *update.Name != establishment.Name {
		establishment.Name = *update.Name
		major = true
	}
	if update.City != nil && entity.City(*update.City) != establishment.City {
		establishment.City = entity.City(*update.City)
		major = true
	}
	if update.Address != nil && *update.Address != establishment.Address {
		establishment.Address = *update.Address
		major = true
	}
	if update.Categories != nil {
		next := toCategories(update.Categories)
		if !slices.Equal(next, establishment.Categories) {
			establishment.Categories = next
			major = true
		}
	}
	if update.Cuisines != nil {
		next := toCuisines(update.Cuisines)
		if !slices.Equal(next, establishment.Cuisines) {
			establishment.Cuisines = next
			major = true
		}
	}

	if update.Description != nil {
		establishment.Description = *update.Description
	}
	if update.Latitude != nil {
		establishment.Latitude = *update.Latitude
	}
	if update.Longitude != nil {
		establishment.Longitude = *update.Longitude
	}
	if update.Phone != nil {
		establishment.Phone = *update.Phone
	}
	if update.Email != nil {
		establishment.Email = *update.Email
	}
	if update.Website != nil {
		establishment.Website = *update.Website
	}
	if update.PriceRange != nil {
		establishment.PriceRange = entity.PriceRange(*update.PriceRange)
	}
	if update.WorkingHours != nil {
		establishment.WorkingHours = *update.WorkingHours
	}
	if update.Attributes != nil {
		establishment.Attributes = *update.Attributes
	}

	return major
}
