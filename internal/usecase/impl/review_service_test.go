package impl

import (
	"context"
	"testing"

	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	mockRepo "smachna/internal/mocks/repository"
	mockUsecase "smachna/internal/mocks/usecase"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service           usecase.ReviewUsecase
	establishmentRepo *mockRepo.MockEstablishmentRepository
	reviewRepo        *mockRepo.MockReviewRepository
	userRepo          *mockRepo.MockUserRepository
	recalculator      *mockUsecase.MockAggregateRecalculator
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	establishmentRepo := mockRepo.NewMockEstablishmentRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	recalculator := mockUsecase.NewMockAggregateRecalculator(t)
	service := NewReviewService(establishmentRepo, reviewRepo, userRepo, recalculator, testConfig(), testLogger())

	return reviewServiceFixtures{
		service:           service,
		establishmentRepo: establishmentRepo,
		reviewRepo:        reviewRepo,
		userRepo:          userRepo,
		recalculator:      recalculator,
	}
}

func TestReviewService_CreateReview(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	establishmentID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusActive}, nil)

	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	fx.recalculator.EXPECT().
		Recalculate(ctx, establishmentID).
		Return(&entity.ReviewAggregate{AverageRating: 5, ReviewCount: 1}, nil)

	review, err := fx.service.CreateReview(ctx, userID, establishmentID, &usecase.ReviewInput{Rating: 5, Content: "Vydatna!"})
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, establishmentID, review.EstablishmentID)
	assert.Equal(t, 5, review.Rating)
	assert.True(t, review.IsVisible)
	assert.False(t, review.IsDeleted)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		review, err := fx.service.CreateReview(context.Background(), uuid.New(), uuid.New(), &usecase.ReviewInput{Rating: rating})
		assert.Nil(t, review)

		var vErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &vErr, "rating %d must be rejected", rating)
	}
}

func TestReviewService_CreateReview_InactiveEstablishment(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	establishmentID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusSuspended}, nil)

	review, err := fx.service.CreateReview(ctx, userID, establishmentID, &usecase.ReviewInput{Rating: 4})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound)
}

func TestReviewService_CreateReview_RecalculateFailureIsSwallowed(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	establishmentID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusActive}, nil)

	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	fx.recalculator.EXPECT().
		Recalculate(ctx, establishmentID).
		Return(nil, errors.New("timeout"))

	review, err := fx.service.CreateReview(ctx, userID, establishmentID, &usecase.ReviewInput{Rating: 3})
	require.NoError(t, err)
	assert.NotNil(t, review)
}

func TestReviewService_CreateReview_UnknownUser(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	review, err := fx.service.CreateReview(ctx, userID, uuid.New(), &usecase.ReviewInput{Rating: 4})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.reviewRepo.EXPECT().
		ListPublic(ctx, establishmentID, 20, 20).
		Return([]*entity.Review{{ID: uuid.New()}}, int64(41), nil)

	reviews, pagination, err := fx.service.ListReviews(ctx, establishmentID, usecase.Page{Page: 2, PerPage: 20})
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, int64(41), pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
}

// aggregateServiceFixtures holds all test dependencies for aggregate service tests.
type aggregateServiceFixtures struct {
	service           usecase.AggregateRecalculator
	establishmentRepo *mockRepo.MockEstablishmentRepository
}

func createTestAggregateService(t *testing.T) aggregateServiceFixtures {
	establishmentRepo := mockRepo.NewMockEstablishmentRepository(t)
	service := NewAggregateService(establishmentRepo, testLogger())

	return aggregateServiceFixtures{
		service:           service,
		establishmentRepo: establishmentRepo,
	}
}

func TestAggregateService_Recalculate(t *testing.T) {
	fx := createTestAggregateService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		RecalculateAggregates(ctx, establishmentID).
		Return(&entity.ReviewAggregate{AverageRating: 3.0, ReviewCount: 3}, nil)

	aggregate, err := fx.service.Recalculate(ctx, establishmentID)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, aggregate.AverageRating, 0.001)
	assert.Equal(t, 3, aggregate.ReviewCount)
}

func TestAggregateService_Recalculate_NotFound(t *testing.T) {
	fx := createTestAggregateService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		RecalculateAggregates(ctx, establishmentID).
		Return(nil, repository.ErrEstablishmentNotFound)

	aggregate, err := fx.service.Recalculate(ctx, establishmentID)
	assert.Nil(t, aggregate)
	assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound)
}
