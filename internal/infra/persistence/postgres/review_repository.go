package postgres

import (
	"context"
	"time"

	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	"smachna/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEstablishmentNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "review violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review by its unique ID regardless of flags.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// ListPublic retrieves visible, non-deleted reviews for an establishment.
func (repo *reviewRepository) ListPublic(ctx context.Context, establishmentID uuid.UUID, limit, offset int) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("establishment_id = ? AND is_visible = true AND is_deleted = false", establishmentID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

// adminReviewRow is the scan target for the admin listing join.
type adminReviewRow struct {
	model.ReviewModel
	AuthorName        string
	EstablishmentName string
}

// ListAdmin retrieves reviews regardless of visibility/deletion flags, joined
// with author and establishment display names.
func (repo *reviewRepository) ListAdmin(ctx context.Context, filter repository.ReviewFilter) ([]*repository.AdminReviewRow, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{})

	if filter.EstablishmentID != nil {
		query = query.Where("reviews.establishment_id = ?", *filter.EstablishmentID)
	}
	if filter.Status != nil {
		switch *filter.Status {
		case entity.ReviewFilterVisible:
			query = query.Where("reviews.is_visible = true AND reviews.is_deleted = false")
		case entity.ReviewFilterHidden:
			query = query.Where("reviews.is_visible = false AND reviews.is_deleted = false")
		case entity.ReviewFilterDeleted:
			query = query.Where("reviews.is_deleted = true")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var rows []*adminReviewRow
	if err := query.
		Select("reviews.*, users.name AS author_name, establishments.name AS establishment_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Joins("JOIN establishments ON establishments.id = reviews.establishment_id").
		Order("reviews.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews for admin")
	}

	result := make([]*repository.AdminReviewRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, &repository.AdminReviewRow{
			Review:            toReviewDomain(&row.ReviewModel),
			AuthorName:        row.AuthorName,
			EstablishmentName: row.EstablishmentName,
		})
	}

	return result, total, nil
}

// SetVisibility flips is_visible on a non-deleted review. The is_deleted
// predicate keeps soft-deleted reviews untouchable via this path.
func (repo *reviewRepository) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_visible", visible)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set review visibility")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// SoftDelete marks a review is_deleted=true, retaining the row.
func (repo *reviewRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft-delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// SetResponse attaches a partner response to a review.
func (repo *reviewRepository) SetResponse(ctx context.Context, id uuid.UUID, responderID uuid.UUID, text string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND is_deleted = false", id).
		Updates(map[string]any{
			"response_text":    text,
			"response_user_id": responderID,
			"response_at":      time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set review response")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// fromReviewDomain converts a domain entity into its GORM model.
func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:              review.ID,
		EstablishmentID: review.EstablishmentID,
		UserID:          review.UserID,
		Rating:          review.Rating,
		Content:         review.Content,
		IsVisible:       review.IsVisible,
		IsDeleted:       review.IsDeleted,
		ResponseText:    review.ResponseText,
		ResponseUserID:  review.ResponseUserID,
		ResponseAt:      review.ResponseAt,
	}
}

// toReviewDomain converts a GORM model into its domain entity.
func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:              reviewM.ID,
		EstablishmentID: reviewM.EstablishmentID,
		UserID:          reviewM.UserID,
		Rating:          reviewM.Rating,
		Content:         reviewM.Content,
		IsVisible:       reviewM.IsVisible,
		IsDeleted:       reviewM.IsDeleted,
		ResponseText:    reviewM.ResponseText,
		ResponseUserID:  reviewM.ResponseUserID,
		ResponseAt:      reviewM.ResponseAt,
		CreatedAt:       reviewM.CreatedAt,
		UpdatedAt:       reviewM.UpdatedAt,
	}
}
