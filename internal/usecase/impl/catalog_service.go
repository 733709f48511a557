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

type catalogService struct {
	establishmentRepo repository.EstablishmentRepository
	cfg               *config.Config
	logger            *slog.Logger
}

// NewCatalogService creates the public catalog service.
func NewCatalogService(establishmentRepo repository.EstablishmentRepository, cfg *config.Config, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		establishmentRepo: establishmentRepo,
		cfg:               cfg,
		logger:            logger,
	}
}

// ListEstablishments returns active establishments with optional filters.
// Unknown city/category values match nothing and yield an empty page.
func (s *catalogService) ListEstablishments(ctx context.Context, city, category string, page usecase.Page) ([]*entity.Establishment, *usecase.Pagination, error) {
	page = normalizePage(page, s.cfg)

	status := entity.StatusActive
	filter := repository.EstablishmentFilter{
		Status: &status,
		Limit:  page.PerPage,
		Offset: pageOffset(page),
	}
	if city != "" {
		c := entity.City(city)
		filter.City = &c
	}
	if category != "" {
		c := entity.Category(category)
		filter.Category = &c
	}

	establishments, total, err := s.establishmentRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list establishments")
	}

	return establishments, buildPagination(page, total), nil
}

// GetEstablishment returns a single active establishment. Anything not active
// is indistinguishable from not existing.
func (s *catalogService) GetEstablishment(ctx context.Context, id uuid.UUID) (*entity.Establishment, error) {
	establishment, err := s.establishmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return nil, domainerrors.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find establishment")
	}
	if establishment.Status != entity.StatusActive {
		return nil, domainerrors.ErrEstablishmentNotFound
	}

	return establishment, nil
}
