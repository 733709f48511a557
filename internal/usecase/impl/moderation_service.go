package impl

import (
	"context"
	"log/slog"

	"smachna/config"
	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	"smachna/internal/domain/service"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type moderationService struct {
	establishmentRepo repository.EstablishmentRepository
	reviewRepo        repository.ReviewRepository
	auditRepo         repository.AuditLogRepository
	recorder          service.AuditRecorder
	recalculator      usecase.AggregateRecalculator
	cfg               *config.Config
	logger            *slog.Logger
}

// NewModerationService creates the admin moderation service.
func NewModerationService(
	establishmentRepo repository.EstablishmentRepository,
	reviewRepo repository.ReviewRepository,
	auditRepo repository.AuditLogRepository,
	recorder service.AuditRecorder,
	recalculator usecase.AggregateRecalculator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminModerationUsecase {
	return &moderationService{
		establishmentRepo: establishmentRepo,
		reviewRepo:        reviewRepo,
		auditRepo:         auditRepo,
		recorder:          recorder,
		recalculator:      recalculator,
		cfg:               cfg,
		logger:            logger,
	}
}

// Moderate applies an admin moderation action to an establishment. The status
// write commits first; the audit entry is recorded afterwards, best-effort.
func (s *moderationService) Moderate(ctx context.Context, adminID, establishmentID uuid.UUID, action usecase.ModerationAction, reason string, meta usecase.RequestMeta) (*entity.Establishment, error) {
	if !action.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "action", Message: "action must be approve, reject, suspend or archive"})
	}

	establishment, err := s.establishmentRepo.FindByID(ctx, establishmentID)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return nil, domainerrors.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find establishment")
	}

	oldStatus := establishment.Status

	var target entity.EstablishmentStatus
	var auditAction entity.AuditAction

	switch action {
	case usecase.ModerationApprove:
		target, auditAction = entity.StatusActive, entity.AuditModerateApprove
	case usecase.ModerationReject:
		target, auditAction = entity.StatusDraft, entity.AuditModerateReject
	case usecase.ModerationSuspend:
		target, auditAction = entity.StatusSuspended, entity.AuditSuspend
	case usecase.ModerationArchive:
		target, auditAction = entity.StatusArchived, entity.AuditArchive
	}

	switch action {
	case usecase.ModerationApprove, usecase.ModerationReject:
		// Approve/reject only apply to pending establishments; the
		// compare-and-set catches both stale reads and concurrent moderation.
		if err := s.establishmentRepo.UpdateStatus(ctx, establishmentID, entity.StatusPending, target); err != nil {
			if errors.Is(err, repository.ErrStatusConflict) {
				return nil, domainerrors.ErrInvalidStatusTransition
			}
			if errors.Is(err, repository.ErrEstablishmentNotFound) {
				return nil, domainerrors.ErrEstablishmentNotFound
			}

			return nil, errors.Wrap(err, "failed to moderate establishment")
		}
	case usecase.ModerationSuspend, usecase.ModerationArchive:
		if !oldStatus.CanTransitionTo(target) {
			return nil, domainerrors.ErrInvalidStatusTransition
		}
		if err := s.establishmentRepo.SetStatus(ctx, establishmentID, target); err != nil {
			return nil, errors.Wrap(err, "failed to set establishment status")
		}
	}

	establishment.Status = target

	newData := map[string]any{"status": target.String()}
	if reason != "" {
		newData["reason"] = reason
	}
	s.recorder.Record(ctx, &entity.AuditLogEntry{
		AdminID:    adminID,
		Action:     auditAction,
		EntityType: entity.AuditEntityEstablishment,
		EntityID:   establishmentID,
		OldData:    map[string]any{"status": oldStatus.String()},
		NewData:    newData,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	})

	return establishment, nil
}

// ToggleReviewVisibility flips is_visible on a non-deleted review.
func (s *moderationService) ToggleReviewVisibility(ctx context.Context, adminID, reviewID uuid.UUID, meta usecase.RequestMeta) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}
	// A soft-deleted review is untouchable via this path; its existence is not
	// acknowledged.
	if review.IsDeleted {
		return nil, domainerrors.ErrReviewNotFound
	}

	visible := !review.IsVisible
	if err := s.reviewRepo.SetVisibility(ctx, reviewID, visible); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to toggle review visibility")
	}
	review.IsVisible = visible

	// Every review mutation triggers a recompute, even though only is_deleted
	// gates the aggregate.
	if _, err := s.recalculator.Recalculate(ctx, review.EstablishmentID); err != nil {
		s.logger.Warn("aggregate recompute after visibility toggle failed",
			slog.String("establishmentID", review.EstablishmentID.String()),
			slog.Any("error", err),
		)
	}

	auditAction := entity.AuditReviewHide
	if visible {
		auditAction = entity.AuditReviewShow
	}
	s.recorder.Record(ctx, &entity.AuditLogEntry{
		AdminID:    adminID,
		Action:     auditAction,
		EntityType: entity.AuditEntityReview,
		EntityID:   reviewID,
		NewData:    map[string]any{"is_visible": visible},
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	})

	return review, nil
}

// DeleteReview soft-deletes a review, then recomputes the establishment
// aggregate. The recompute is idempotent, so a failure here only delays
// consistency until the next recalculation.
func (s *moderationService) DeleteReview(ctx context.Context, adminID, reviewID uuid.UUID, reason string, meta usecase.RequestMeta) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to find review")
	}
	if review.IsDeleted {
		return domainerrors.ErrReviewAlreadyDeleted
	}

	if err := s.reviewRepo.SoftDelete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	if _, err := s.recalculator.Recalculate(ctx, review.EstablishmentID); err != nil {
		s.logger.Warn("aggregate recompute after review delete failed",
			slog.String("establishmentID", review.EstablishmentID.String()),
			slog.Any("error", err),
		)
	}

	newData := map[string]any{"is_deleted": true}
	if reason != "" {
		newData["reason"] = reason
	}
	s.recorder.Record(ctx, &entity.AuditLogEntry{
		AdminID:    adminID,
		Action:     entity.AuditReviewDelete,
		EntityType: entity.AuditEntityReview,
		EntityID:   reviewID,
		OldData:    map[string]any{"is_visible": review.IsVisible, "rating": review.Rating},
		NewData:    newData,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	})

	return nil
}

// ListReviews returns reviews for admins regardless of visibility flags.
func (s *moderationService) ListReviews(ctx context.Context, status string, page usecase.Page) ([]*repository.AdminReviewRow, *usecase.Pagination, error) {
	page = normalizePage(page, s.cfg)

	filter := repository.ReviewFilter{
		Limit:  page.PerPage,
		Offset: pageOffset(page),
	}
	if status != "" {
		f := entity.ReviewStatusFilter(status)
		if !f.IsValid() {
			// Unknown filter values yield an empty result set, never an error.
			return []*repository.AdminReviewRow{}, buildPagination(page, 0), nil
		}
		filter.Status = &f
	}

	rows, total, err := s.reviewRepo.ListAdmin(ctx, filter)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list reviews")
	}

	return rows, buildPagination(page, total), nil
}

// ListAuditLog returns audit entries matching the query.
func (s *moderationService) ListAuditLog(ctx context.Context, query usecase.AuditLogQuery) ([]*entity.AuditLogEntry, *usecase.Pagination, error) {
	page := normalizePage(query.Page, s.cfg)

	sort := entity.AuditSortNewest
	if query.Sort == string(entity.AuditSortOldest) {
		sort = entity.AuditSortOldest
	}

	filter := repository.AuditLogFilter{
		AdminID: query.AdminID,
		From:    query.From,
		To:      query.To,
		Sort:    sort,
		Limit:   page.PerPage,
		Offset:  pageOffset(page),
	}
	// Unknown action/entity_type values are passed through as-is: they match
	// nothing and produce an empty result with accurate totals.
	if query.Action != "" {
		action := entity.AuditAction(query.Action)
		filter.Action = &action
	}
	if query.EntityType != "" {
		entityType := entity.AuditEntityType(query.EntityType)
		filter.EntityType = &entityType
	}

	entries, total, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list audit log")
	}

	if !query.IncludeMetadata {
		for _, entry := range entries {
			entry.IPAddress = ""
			entry.UserAgent = ""
		}
	}

	return entries, buildPagination(page, total), nil
}
