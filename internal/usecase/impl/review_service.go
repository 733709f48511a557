package impl

import (
	"context"
	"log/slog"

	"smachna/config"
	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type reviewService struct {
	establishmentRepo repository.EstablishmentRepository
	reviewRepo        repository.ReviewRepository
	userRepo          repository.UserRepository
	recalculator      usecase.AggregateRecalculator
	cfg               *config.Config
	logger            *slog.Logger
}

// NewReviewService creates the user-facing review service.
func NewReviewService(
	establishmentRepo repository.EstablishmentRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	recalculator usecase.AggregateRecalculator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		establishmentRepo: establishmentRepo,
		reviewRepo:        reviewRepo,
		userRepo:          userRepo,
		recalculator:      recalculator,
		cfg:               cfg,
		logger:            logger,
	}
}

// CreateReview stores a new review against an active establishment and then
// recomputes the establishment aggregate.
func (s *reviewService) CreateReview(ctx context.Context, userID, establishmentID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	// The token may outlive the account; reject reviews from deleted users
	// before touching the reviews table.
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	establishment, err := s.establishmentRepo.FindByID(ctx, establishmentID)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return nil, domainerrors.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find establishment")
	}
	if establishment.Status != entity.StatusActive {
		return nil, domainerrors.ErrEstablishmentNotFound
	}

	review := &entity.Review{
		ID:              uuid.New(),
		EstablishmentID: establishmentID,
		UserID:          userID,
		Rating:          input.Rating,
		Content:         input.Content,
		IsVisible:       true,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	if _, err := s.recalculator.Recalculate(ctx, establishmentID); err != nil {
		s.logger.Warn("aggregate recompute after review create failed",
			slog.String("establishmentID", establishmentID.String()),
			slog.Any("error", err),
		)
	}

	return review, nil
}

// ListReviews returns visible, non-deleted reviews for an establishment.
func (s *reviewService) ListReviews(ctx context.Context, establishmentID uuid.UUID, page usecase.Page) ([]*entity.Review, *usecase.Pagination, error) {
	page = normalizePage(page, s.cfg)

	reviews, total, err := s.reviewRepo.ListPublic(ctx, establishmentID, page.PerPage, pageOffset(page))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, buildPagination(page, total), nil
}

type aggregateService struct {
	establishmentRepo repository.EstablishmentRepository
	logger            *slog.Logger
}

// NewAggregateService creates the aggregate recalculator. The recompute is a
// single idempotent statement in the repository; this layer only translates
// not-found.
func NewAggregateService(establishmentRepo repository.EstablishmentRepository, logger *slog.Logger) usecase.AggregateRecalculator {
	return &aggregateService{establishmentRepo: establishmentRepo, logger: logger}
}

func (s *aggregateService) Recalculate(ctx context.Context, establishmentID uuid.UUID) (*entity.ReviewAggregate, error) {
	aggregate, err := s.establishmentRepo.RecalculateAggregates(ctx, establishmentID)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return nil, domainerrors.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to recalculate aggregates")
	}

	return aggregate, nil
}
