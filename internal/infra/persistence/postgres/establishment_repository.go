package postgres

import (
	"context"
	"encoding/json"

	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	"smachna/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// establishmentRepository implements the repository.EstablishmentRepository interface.
type establishmentRepository struct {
	db *gorm.DB
}

// NewEstablishmentRepository is the constructor for establishmentRepository.
func NewEstablishmentRepository(db *gorm.DB) repository.EstablishmentRepository {
	return &establishmentRepository{
		db: db,
	}
}

// Create persists a new establishment together with its media rows.
func (repo *establishmentRepository) Create(ctx context.Context, establishment *entity.Establishment) error {
	establishmentM, err := fromEstablishmentDomain(establishment)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(establishmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid partner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required establishment field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create establishment")
	}

	establishment.CreatedAt = establishmentM.CreatedAt
	establishment.UpdatedAt = establishmentM.UpdatedAt

	return nil
}

// FindByID retrieves a single establishment by its unique ID, preloading media.
func (repo *establishmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error) {
	var establishmentM model.EstablishmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&establishmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find establishment by ID")
	}

	return toEstablishmentDomain(&establishmentM)
}

// List retrieves establishments matching the filter with a total count.
func (repo *establishmentRepository) List(ctx context.Context, filter repository.EstablishmentFilter) ([]*entity.Establishment, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EstablishmentModel{})

	if filter.PartnerID != nil {
		query = query.Where("partner_id = ?", *filter.PartnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.City != nil {
		query = query.Where("city = ?", string(*filter.City))
	}
	if filter.Category != nil {
		// Categories are stored as a JSONB array of strings.
		query = query.Where("categories @> ?", `["`+string(*filter.Category)+`"]`)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count establishments")
	}

	var establishmentModels []*model.EstablishmentModel
	if err := query.
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&establishmentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list establishments")
	}

	establishments := make([]*entity.Establishment, 0, len(establishmentModels))
	for _, establishmentM := range establishmentModels {
		establishment, err := toEstablishmentDomain(establishmentM)
		if err != nil {
			return nil, 0, err
		}
		establishments = append(establishments, establishment)
	}

	return establishments, total, nil
}

// Update persists field changes on an existing establishment. Aggregate caches
// and status are written through their dedicated methods; this updates the
// editable profile columns.
func (repo *establishmentRepository) Update(ctx context.Context, establishment *entity.Establishment) error {
	establishmentM, err := fromEstablishmentDomain(establishment)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EstablishmentModel{}).
		Where("id = ?", establishment.ID).
		Updates(map[string]any{
			"name":          establishmentM.Name,
			"description":   establishmentM.Description,
			"city":          establishmentM.City,
			"address":       establishmentM.Address,
			"latitude":      establishmentM.Latitude,
			"longitude":     establishmentM.Longitude,
			"phone":         establishmentM.Phone,
			"email":         establishmentM.Email,
			"website":       establishmentM.Website,
			"categories":    establishmentM.Categories,
			"cuisines":      establishmentM.Cuisines,
			"price_range":   establishmentM.PriceRange,
			"working_hours": establishmentM.WorkingHours,
			"attributes":    establishmentM.Attributes,
			"status":        establishmentM.Status,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "establishment violates a data constraint")
		}

		return errors.Wrap(result.Error, "failed to update establishment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEstablishmentNotFound
	}

	return nil
}

// UpdateStatus performs a single compare-and-set row update. The WHERE clause
// carries both the id and the expected status so concurrent transitions lose
// cleanly instead of clobbering each other.
func (repo *establishmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.EstablishmentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EstablishmentModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update establishment status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from a row in the wrong status.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.EstablishmentModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check establishment existence")
		}
		if count == 0 {
			return repository.ErrEstablishmentNotFound
		}

		return repository.ErrStatusConflict
	}

	return nil
}

// SetStatus overwrites the status unconditionally.
func (repo *establishmentRepository) SetStatus(ctx context.Context, id uuid.UUID, to entity.EstablishmentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EstablishmentModel{}).
		Where("id = ?", id).
		Update("status", to.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set establishment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEstablishmentNotFound
	}

	return nil
}

// RecalculateAggregates recomputes average_rating and review_count from the
// non-deleted reviews in one idempotent UPDATE. Running it any number of times
// converges on the same values.
func (repo *establishmentRepository) RecalculateAggregates(ctx context.Context, id uuid.UUID) (*entity.ReviewAggregate, error) {
	var row struct {
		AverageRating float64
		ReviewCount   int
	}

	result := repo.db.WithContext(ctx).Raw(`
		UPDATE establishments SET
			average_rating = COALESCE((
				SELECT ROUND(AVG(rating)::numeric, 2)
				FROM reviews
				WHERE establishment_id = establishments.id AND is_deleted = false
			), 0),
			review_count = (
				SELECT COUNT(*)
				FROM reviews
				WHERE establishment_id = establishments.id AND is_deleted = false
			),
			updated_at = NOW()
		WHERE id = ?
		RETURNING average_rating, review_count`, id).
		Scan(&row)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to recalculate establishment aggregates")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrEstablishmentNotFound
	}

	return &entity.ReviewAggregate{
		AverageRating: row.AverageRating,
		ReviewCount:   row.ReviewCount,
	}, nil
}

// fromEstablishmentDomain converts a domain entity into its GORM model,
// serializing the JSONB columns.
func fromEstablishmentDomain(establishment *entity.Establishment) (*model.EstablishmentModel, error) {
	categories, err := json.Marshal(establishment.Categories)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal categories")
	}
	cuisines, err := json.Marshal(establishment.Cuisines)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cuisines")
	}

	establishmentM := &model.EstablishmentModel{
		ID:            establishment.ID,
		PartnerID:     establishment.PartnerID,
		Name:          establishment.Name,
		Description:   establishment.Description,
		City:          string(establishment.City),
		Address:       establishment.Address,
		Latitude:      establishment.Latitude,
		Longitude:     establishment.Longitude,
		Phone:         establishment.Phone,
		Email:         establishment.Email,
		Website:       establishment.Website,
		Categories:    categories,
		Cuisines:      cuisines,
		PriceRange:    string(establishment.PriceRange),
		Status:        establishment.Status.String(),
		AverageRating: establishment.AverageRating,
		ReviewCount:   establishment.ReviewCount,
	}

	if establishment.WorkingHours != nil {
		workingHours, err := json.Marshal(establishment.WorkingHours)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal working hours")
		}
		establishmentM.WorkingHours = workingHours
	}
	if establishment.Attributes != nil {
		attributes, err := json.Marshal(establishment.Attributes)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal attributes")
		}
		establishmentM.Attributes = attributes
	}

	for _, media := range establishment.Media {
		establishmentM.Media = append(establishmentM.Media, model.EstablishmentMediaModel{
			ID:              media.ID,
			EstablishmentID: establishment.ID,
			URL:             media.URL,
			Kind:            media.Kind,
			Position:        media.Position,
		})
	}

	return establishmentM, nil
}

// toEstablishmentDomain converts a GORM model into its domain entity.
func toEstablishmentDomain(establishmentM *model.EstablishmentModel) (*entity.Establishment, error) {
	establishment := &entity.Establishment{
		ID:            establishmentM.ID,
		PartnerID:     establishmentM.PartnerID,
		Name:          establishmentM.Name,
		Description:   establishmentM.Description,
		City:          entity.City(establishmentM.City),
		Address:       establishmentM.Address,
		Latitude:      establishmentM.Latitude,
		Longitude:     establishmentM.Longitude,
		Phone:         establishmentM.Phone,
		Email:         establishmentM.Email,
		Website:       establishmentM.Website,
		PriceRange:    entity.PriceRange(establishmentM.PriceRange),
		Status:        entity.EstablishmentStatus(establishmentM.Status),
		AverageRating: establishmentM.AverageRating,
		ReviewCount:   establishmentM.ReviewCount,
		CreatedAt:     establishmentM.CreatedAt,
		UpdatedAt:     establishmentM.UpdatedAt,
	}

	if len(establishmentM.Categories) > 0 {
		if err := json.Unmarshal(establishmentM.Categories, &establishment.Categories); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal categories")
		}
	}
	if len(establishmentM.Cuisines) > 0 {
		if err := json.Unmarshal(establishmentM.Cuisines, &establishment.Cuisines); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal cuisines")
		}
	}
	if len(establishmentM.WorkingHours) > 0 {
		if err := json.Unmarshal(establishmentM.WorkingHours, &establishment.WorkingHours); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal working hours")
		}
	}
	if len(establishmentM.Attributes) > 0 {
		if err := json.Unmarshal(establishmentM.Attributes, &establishment.Attributes); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal attributes")
		}
	}

	for _, mediaM := range establishmentM.Media {
		establishment.Media = append(establishment.Media, &entity.EstablishmentMedia{
			ID:              mediaM.ID,
			EstablishmentID: mediaM.EstablishmentID,
			URL:             mediaM.URL,
			Kind:            mediaM.Kind,
			Position:        mediaM.Position,
			CreatedAt:       mediaM.CreatedAt,
		})
	}

	return establishment, nil
}
