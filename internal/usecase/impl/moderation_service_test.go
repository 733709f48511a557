package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	mockRepo "smachna/internal/mocks/repository"
	mockService "smachna/internal/mocks/service"
	mockUsecase "smachna/internal/mocks/usecase"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// moderationServiceFixtures holds all test dependencies for moderation service tests.
type moderationServiceFixtures struct {
	service           usecase.AdminModerationUsecase
	establishmentRepo *mockRepo.MockEstablishmentRepository
	reviewRepo        *mockRepo.MockReviewRepository
	auditRepo         *mockRepo.MockAuditLogRepository
	recorder          *mockService.MockAuditRecorder
	recalculator      *mockUsecase.MockAggregateRecalculator
}

func createTestModerationService(t *testing.T) moderationServiceFixtures {
	establishmentRepo := mockRepo.NewMockEstablishmentRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	recorder := mockService.NewMockAuditRecorder(t)
	recalculator := mockUsecase.NewMockAggregateRecalculator(t)
	service := NewModerationService(establishmentRepo, reviewRepo, auditRepo, recorder, recalculator, testConfig(), testLogger())

	return moderationServiceFixtures{
		service:           service,
		establishmentRepo: establishmentRepo,
		reviewRepo:        reviewRepo,
		auditRepo:         auditRepo,
		recorder:          recorder,
		recalculator:      recalculator,
	}
}

func TestModerationService_Moderate_Approve(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	establishmentID := uuid.New()
	meta := usecase.RequestMeta{IPAddress: "10.0.0.1", UserAgent: "curl/8.0"}

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusPending}, nil)

	fx.establishmentRepo.EXPECT().
		UpdateStatus(ctx, establishmentID, entity.StatusPending, entity.StatusActive).
		Return(nil)

	var recorded *entity.AuditLogEntry
	fx.recorder.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(ctx context.Context, entry *entity.AuditLogEntry) {
			recorded = entry
		})

	establishment, err := fx.service.Moderate(ctx, adminID, establishmentID, usecase.ModerationApprove, "", meta)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, establishment.Status)

	require.NotNil(t, recorded)
	assert.Equal(t, adminID, recorded.AdminID)
	assert.Equal(t, entity.AuditModerateApprove, recorded.Action)
	assert.Equal(t, entity.AuditEntityEstablishment, recorded.EntityType)
	assert.Equal(t, "pending", recorded.OldData["status"])
	assert.Equal(t, "active", recorded.NewData["status"])
	assert.Equal(t, "10.0.0.1", recorded.IPAddress)
}

func TestModerationService_Moderate_ApproveNonPending(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusDraft}, nil)

	fx.establishmentRepo.EXPECT().
		UpdateStatus(ctx, establishmentID, entity.StatusPending, entity.StatusActive).
		Return(repository.ErrStatusConflict)

	establishment, err := fx.service.Moderate(ctx, uuid.New(), establishmentID, usecase.ModerationApprove, "", usecase.RequestMeta{})
	assert.Nil(t, establishment)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestModerationService_Moderate_RejectRecordsReason(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusPending}, nil)

	fx.establishmentRepo.EXPECT().
		UpdateStatus(ctx, establishmentID, entity.StatusPending, entity.StatusDraft).
		Return(nil)

	var recorded *entity.AuditLogEntry
	fx.recorder.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(ctx context.Context, entry *entity.AuditLogEntry) {
			recorded = entry
		})

	establishment, err := fx.service.Moderate(ctx, uuid.New(), establishmentID, usecase.ModerationReject, "missing menu photos", usecase.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, establishment.Status)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.AuditModerateReject, recorded.Action)
	assert.Equal(t, "missing menu photos", recorded.NewData["reason"])
}

func TestModerationService_Moderate_SuspendFromActive(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusActive}, nil)

	fx.establishmentRepo.EXPECT().
		SetStatus(ctx, establishmentID, entity.StatusSuspended).
		Return(nil)

	fx.recorder.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditLogEntry"))

	establishment, err := fx.service.Moderate(ctx, uuid.New(), establishmentID, usecase.ModerationSuspend, "spam listing", usecase.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuspended, establishment.Status)
}

func TestModerationService_Moderate_NotFound(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(nil, repository.ErrEstablishmentNotFound)

	establishment, err := fx.service.Moderate(ctx, uuid.New(), establishmentID, usecase.ModerationApprove, "", usecase.RequestMeta{})
	assert.Nil(t, establishment)
	assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound)
}

func TestModerationService_ToggleReviewVisibility_Hide(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	establishmentID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, EstablishmentID: establishmentID, IsVisible: true}, nil)

	fx.reviewRepo.EXPECT().
		SetVisibility(ctx, reviewID, false).
		Return(nil)

	fx.recalculator.EXPECT().
		Recalculate(ctx, establishmentID).
		Return(&entity.ReviewAggregate{AverageRating: 4.2, ReviewCount: 6}, nil)

	var recorded *entity.AuditLogEntry
	fx.recorder.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(ctx context.Context, entry *entity.AuditLogEntry) {
			recorded = entry
		})

	review, err := fx.service.ToggleReviewVisibility(ctx, uuid.New(), reviewID, usecase.RequestMeta{})
	require.NoError(t, err)
	assert.False(t, review.IsVisible)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.AuditReviewHide, recorded.Action)
}

func TestModerationService_ToggleReviewVisibility_DeletedReview(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, IsDeleted: true}, nil)

	review, err := fx.service.ToggleReviewVisibility(ctx, uuid.New(), reviewID, usecase.RequestMeta{})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestModerationService_DeleteReview(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	establishmentID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, EstablishmentID: establishmentID, IsVisible: true, Rating: 2}, nil)

	fx.reviewRepo.EXPECT().
		SoftDelete(ctx, reviewID).
		Return(nil)

	fx.recalculator.EXPECT().
		Recalculate(ctx, establishmentID).
		Return(&entity.ReviewAggregate{AverageRating: 4.5, ReviewCount: 9}, nil)

	var recorded *entity.AuditLogEntry
	fx.recorder.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(ctx context.Context, entry *entity.AuditLogEntry) {
			recorded = entry
		})

	err := fx.service.DeleteReview(ctx, uuid.New(), reviewID, "abusive content", usecase.RequestMeta{})
	require.NoError(t, err)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.AuditReviewDelete, recorded.Action)
	assert.Equal(t, true, recorded.NewData["is_deleted"])
	assert.Equal(t, "abusive content", recorded.NewData["reason"])
	assert.Equal(t, 2, recorded.OldData["rating"])
}

func TestModerationService_Moderate_UnknownAction(t *testing.T) {
	fx := createTestModerationService(t)

	establishment, err := fx.service.Moderate(context.Background(), uuid.New(), uuid.New(), usecase.ModerationAction("promote"), "", usecase.RequestMeta{})
	assert.Nil(t, establishment)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	fx.establishmentRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestModerationService_DeleteReview_AlreadyDeleted(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, IsDeleted: true}, nil)

	err := fx.service.DeleteReview(ctx, uuid.New(), reviewID, "", usecase.RequestMeta{})
	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyDeleted)
}

func TestModerationService_DeleteReview_RecalculateFailureIsSwallowed(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	establishmentID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, EstablishmentID: establishmentID}, nil)

	fx.reviewRepo.EXPECT().
		SoftDelete(ctx, reviewID).
		Return(nil)

	fx.recalculator.EXPECT().
		Recalculate(ctx, establishmentID).
		Return(nil, errors.New("deadlock detected"))

	fx.recorder.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditLogEntry"))

	err := fx.service.DeleteReview(ctx, uuid.New(), reviewID, "", usecase.RequestMeta{})
	require.NoError(t, err)
}

// TestReviewAggregate_TracksLifecycle drives review creation and an admin
// delete through the real aggregate service, with the repository mock
// recomputing from the retained ratings the way the SQL statement does.
func TestReviewAggregate_TracksLifecycle(t *testing.T) {
	establishmentRepo := mockRepo.NewMockEstablishmentRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	recorder := mockService.NewMockAuditRecorder(t)

	aggregates := NewAggregateService(establishmentRepo, testLogger())
	reviews := NewReviewService(establishmentRepo, reviewRepo, userRepo, aggregates, testConfig(), testLogger())
	moderation := NewModerationService(establishmentRepo, reviewRepo, auditRepo, recorder, aggregates, testConfig(), testLogger())

	ctx := context.Background()
	establishmentID := uuid.New()

	type storedReview struct {
		rating  int
		deleted bool
	}
	store := map[uuid.UUID]*storedReview{}

	userRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(&entity.User{}, nil)
	establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusActive}, nil)
	reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, r *entity.Review) error {
			store[r.ID] = &storedReview{rating: r.Rating}
			return nil
		})
	establishmentRepo.EXPECT().
		RecalculateAggregates(ctx, establishmentID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.ReviewAggregate, error) {
			sum, count := 0, 0
			for _, r := range store {
				if !r.deleted {
					sum += r.rating
					count++
				}
			}
			if count == 0 {
				return &entity.ReviewAggregate{}, nil
			}
			avg := math.Round(float64(sum)/float64(count)*100) / 100
			return &entity.ReviewAggregate{AverageRating: avg, ReviewCount: count}, nil
		})

	var lowestID uuid.UUID
	for _, rating := range []int{5, 3, 1} {
		review, err := reviews.CreateReview(ctx, uuid.New(), establishmentID, &usecase.ReviewInput{Rating: rating})
		require.NoError(t, err)
		if rating == 1 {
			lowestID = review.ID
		}
	}

	aggregate, err := aggregates.Recalculate(ctx, establishmentID)
	require.NoError(t, err)
	assert.InDelta(t, 3.00, aggregate.AverageRating, 0.001)
	assert.Equal(t, 3, aggregate.ReviewCount)

	reviewRepo.EXPECT().
		FindByID(ctx, lowestID).
		Return(&entity.Review{ID: lowestID, EstablishmentID: establishmentID, Rating: 1, IsVisible: true}, nil)
	reviewRepo.EXPECT().
		SoftDelete(ctx, lowestID).
		RunAndReturn(func(context.Context, uuid.UUID) error {
			store[lowestID].deleted = true
			return nil
		})
	recorder.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.AuditLogEntry"))

	require.NoError(t, moderation.DeleteReview(ctx, uuid.New(), lowestID, "spam", usecase.RequestMeta{}))

	aggregate, err = aggregates.Recalculate(ctx, establishmentID)
	require.NoError(t, err)
	assert.InDelta(t, 4.00, aggregate.AverageRating, 0.001)
	assert.Equal(t, 2, aggregate.ReviewCount)
}

func TestModerationService_ListReviews_UnknownStatus(t *testing.T) {
	fx := createTestModerationService(t)

	rows, pagination, err := fx.service.ListReviews(context.Background(), "archived", usecase.Page{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, int64(0), pagination.Total)
}

func TestModerationService_ListReviews_DeletedFilter(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	deleted := entity.ReviewFilterDeleted

	fx.reviewRepo.EXPECT().
		ListAdmin(ctx, mock.MatchedBy(func(filter repository.ReviewFilter) bool {
			return filter.Status != nil && *filter.Status == deleted && filter.Limit == 20
		})).
		Return([]*repository.AdminReviewRow{}, int64(0), nil)

	_, _, err := fx.service.ListReviews(ctx, "deleted", usecase.Page{Page: 1, PerPage: 20})
	require.NoError(t, err)
}

func TestModerationService_ListAuditLog_StripsMetadataByDefault(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	entries := []*entity.AuditLogEntry{
		{ID: uuid.New(), IPAddress: "10.0.0.1", UserAgent: "curl/8.0"},
	}

	fx.auditRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.AuditLogFilter")).
		Return(entries, int64(1), nil)

	result, _, err := fx.service.ListAuditLog(ctx, usecase.AuditLogQuery{Page: usecase.Page{Page: 1, PerPage: 20}})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Empty(t, result[0].IPAddress)
	assert.Empty(t, result[0].UserAgent)
}

func TestModerationService_ListAuditLog_Filters(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.auditRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.AuditLogFilter) bool {
			return filter.Action != nil && *filter.Action == entity.AuditModerateApprove &&
				filter.AdminID != nil && *filter.AdminID == adminID &&
				filter.From != nil && filter.From.Equal(from) &&
				filter.Sort == entity.AuditSortOldest
		})).
		Return([]*entity.AuditLogEntry{}, int64(0), nil)

	_, _, err := fx.service.ListAuditLog(ctx, usecase.AuditLogQuery{
		Action:  "moderate_approve",
		AdminID: &adminID,
		From:    &from,
		Sort:    "oldest",
		Page:    usecase.Page{Page: 1, PerPage: 20},
	})
	require.NoError(t, err)
}

func TestModerationService_ListAuditLog_UnknownActionMatchesNothing(t *testing.T) {
	fx := createTestModerationService(t)

	ctx := context.Background()

	fx.auditRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.AuditLogFilter) bool {
			return filter.Action != nil && *filter.Action == entity.AuditAction("made_up")
		})).
		Return([]*entity.AuditLogEntry{}, int64(0), nil)

	entries, pagination, err := fx.service.ListAuditLog(ctx, usecase.AuditLogQuery{
		Action: "made_up",
		Page:   usecase.Page{Page: 1, PerPage: 20},
	})
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, int64(0), pagination.Total)
}
