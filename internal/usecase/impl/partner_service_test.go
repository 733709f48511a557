package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"smachna/config"
	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	mockRepo "smachna/internal/mocks/repository"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// partnerServiceFixtures holds all test dependencies for partner service tests.
type partnerServiceFixtures struct {
	service           usecase.PartnerEstablishmentUsecase
	establishmentRepo *mockRepo.MockEstablishmentRepository
	reviewRepo        *mockRepo.MockReviewRepository
	txManager         *mockRepo.MockTransactionManager
}

func testConfig() *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			DefaultPerPage: config.DefaultPerPage,
			MaxPerPage:     config.MaxPerPage,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestPartnerService(t *testing.T) partnerServiceFixtures {
	establishmentRepo := mockRepo.NewMockEstablishmentRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPartnerService(establishmentRepo, reviewRepo, txManager, testConfig(), testLogger())

	return partnerServiceFixtures{
		service:           service,
		establishmentRepo: establishmentRepo,
		reviewRepo:        reviewRepo,
		txManager:         txManager,
	}
}

func validEstablishmentInput() *usecase.EstablishmentInput {
	lat, lon := 53.9006, 27.5590

	return &usecase.EstablishmentInput{
		Name:       "Kuhmistr",
		City:       "minsk",
		Address:    "vul. Karla Marksa 40",
		Latitude:   &lat,
		Longitude:  &lon,
		Phone:      "+375291234567",
		Categories: []string{"restaurant"},
		Cuisines:   []string{"belarusian"},
		PriceRange: "$$",
		WorkingHours: entity.WorkingHours{
			"monday": {Open: "12:00", Close: "23:00"},
		},
	}
}

func TestPartnerService_CreateEstablishment(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	input := validEstablishmentInput()
	input.Media = []usecase.MediaInput{{URL: "https://cdn.example.com/1.jpg", Kind: "photo", Position: 0}}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txEstablishmentRepo := mockRepo.NewMockEstablishmentRepository(t)
	factory.EXPECT().NewEstablishmentRepository().Return(txEstablishmentRepo)
	txEstablishmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Establishment")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	establishment, err := fx.service.CreateEstablishment(ctx, partnerID, input)
	require.NoError(t, err)
	require.NotNil(t, establishment)
	assert.Equal(t, partnerID, establishment.PartnerID)
	assert.Equal(t, entity.StatusDraft, establishment.Status)
	assert.Equal(t, entity.CityMinsk, establishment.City)
	require.Len(t, establishment.Media, 1)
	assert.Equal(t, establishment.ID, establishment.Media[0].EstablishmentID)
}

func TestPartnerService_CreateEstablishment_ValidationError(t *testing.T) {
	fx := createTestPartnerService(t)

	input := validEstablishmentInput()
	input.Name = ""
	input.City = "warsaw"
	input.Phone = "+48123456789"

	establishment, err := fx.service.CreateEstablishment(context.Background(), uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, establishment)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "VALIDATION_ERROR", vErr.ErrorCode())

	fields := make(map[string]bool)
	for _, f := range vErr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["city"])
	assert.True(t, fields["phone"])
}

func TestPartnerService_CreateEstablishment_CyrillicNameFullLength(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	input := validEstablishmentInput()
	// 255 Cyrillic runes exceed 255 bytes but stay within the name limit.
	input.Name = strings.Repeat("к", 255)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txEstablishmentRepo := mockRepo.NewMockEstablishmentRepository(t)
	factory.EXPECT().NewEstablishmentRepository().Return(txEstablishmentRepo)
	txEstablishmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Establishment")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	establishment, err := fx.service.CreateEstablishment(ctx, uuid.New(), input)
	require.NoError(t, err)
	assert.Equal(t, input.Name, establishment.Name)
}

func TestPartnerService_CreateEstablishment_NameTooLong(t *testing.T) {
	fx := createTestPartnerService(t)

	input := validEstablishmentInput()
	input.Name = strings.Repeat("к", 256)

	establishment, err := fx.service.CreateEstablishment(context.Background(), uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, establishment)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "name", vErr.Fields[0].Field)
}

func TestPartnerService_GetEstablishment_MasksForeignOwnership(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	establishmentID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, PartnerID: owner, Status: entity.StatusActive}, nil)

	establishment, err := fx.service.GetEstablishment(ctx, stranger, establishmentID)
	assert.Nil(t, establishment)
	assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound)
}

func TestPartnerService_GetEstablishment_NotFound(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(nil, repository.ErrEstablishmentNotFound)

	establishment, err := fx.service.GetEstablishment(ctx, uuid.New(), establishmentID)
	assert.Nil(t, establishment)
	assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound)
}

func TestPartnerService_UpdateEstablishment_MajorChangeResetsActive(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{
			ID:        establishmentID,
			PartnerID: partnerID,
			Name:      "Kuhmistr",
			Status:    entity.StatusActive,
		}, nil)

	fx.establishmentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Establishment")).
		Return(nil)

	newName := "Kamyanitsa"
	establishment, err := fx.service.UpdateEstablishment(ctx, partnerID, establishmentID, &usecase.EstablishmentUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Kamyanitsa", establishment.Name)
	assert.Equal(t, entity.StatusPending, establishment.Status)
}

func TestPartnerService_UpdateEstablishment_MinorChangeKeepsStatus(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{
			ID:        establishmentID,
			PartnerID: partnerID,
			Name:      "Kuhmistr",
			Status:    entity.StatusActive,
		}, nil)

	fx.establishmentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Establishment")).
		Return(nil)

	phone := "+375291234567"
	establishment, err := fx.service.UpdateEstablishment(ctx, partnerID, establishmentID, &usecase.EstablishmentUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, establishment.Status)
	assert.Equal(t, phone, establishment.Phone)
}

func TestPartnerService_UpdateEstablishment_SingleCoordinate(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{
			ID:        establishmentID,
			PartnerID: partnerID,
			Latitude:  53.9006,
			Longitude: 27.5590,
			Status:    entity.StatusActive,
		}, nil)

	fx.establishmentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Establishment")).
		Return(nil)

	lat := 52.0976
	establishment, err := fx.service.UpdateEstablishment(ctx, partnerID, establishmentID, &usecase.EstablishmentUpdate{Latitude: &lat})
	require.NoError(t, err)
	assert.Equal(t, lat, establishment.Latitude)
	assert.Equal(t, 27.5590, establishment.Longitude)
	assert.Equal(t, entity.StatusActive, establishment.Status)
}

func TestPartnerService_UpdateEstablishment_CoordinateOutOfBounds(t *testing.T) {
	fx := createTestPartnerService(t)

	lat := 48.85
	establishment, err := fx.service.UpdateEstablishment(context.Background(), uuid.New(), uuid.New(), &usecase.EstablishmentUpdate{Latitude: &lat})
	assert.Nil(t, establishment)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "latitude", vErr.Fields[0].Field)
}

func TestPartnerService_SubmitEstablishment(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, PartnerID: partnerID, Status: entity.StatusDraft}, nil)

	fx.establishmentRepo.EXPECT().
		UpdateStatus(ctx, establishmentID, entity.StatusDraft, entity.StatusPending).
		Return(nil)

	establishment, err := fx.service.SubmitEstablishment(ctx, partnerID, establishmentID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, establishment.Status)
}

func TestPartnerService_SubmitEstablishment_NotDraft(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, PartnerID: partnerID, Status: entity.StatusPending}, nil)

	fx.establishmentRepo.EXPECT().
		UpdateStatus(ctx, establishmentID, entity.StatusDraft, entity.StatusPending).
		Return(repository.ErrStatusConflict)

	establishment, err := fx.service.SubmitEstablishment(ctx, partnerID, establishmentID)
	assert.Nil(t, establishment)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusForSubmission)
}

func TestPartnerService_ListEstablishments_CapsPerPage(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partnerID := uuid.New()

	fx.establishmentRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.EstablishmentFilter) bool {
			return filter.Limit == config.MaxPerPage && filter.Offset == 0 && *filter.PartnerID == partnerID
		})).
		Return([]*entity.Establishment{}, int64(0), nil)

	_, pagination, err := fx.service.ListEstablishments(ctx, partnerID, nil, usecase.Page{Page: 1, PerPage: 100})
	require.NoError(t, err)
	assert.Equal(t, config.MaxPerPage, pagination.PerPage)
}

func TestPartnerService_RespondToReview(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	partnerID := uuid.New()
	reviewID := uuid.New()
	establishmentID := uuid.New()

	review := &entity.Review{ID: reviewID, EstablishmentID: establishmentID, IsVisible: true}

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil).Once()
	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, PartnerID: partnerID, Status: entity.StatusActive}, nil)
	fx.reviewRepo.EXPECT().SetResponse(ctx, reviewID, partnerID, "Thank you!").Return(nil)

	responded := &entity.Review{ID: reviewID, EstablishmentID: establishmentID, ResponseText: "Thank you!"}
	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(responded, nil).Once()

	result, err := fx.service.RespondToReview(ctx, partnerID, reviewID, "Thank you!")
	require.NoError(t, err)
	assert.Equal(t, "Thank you!", result.ResponseText)
}

func TestPartnerService_RespondToReview_DeletedReview(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, IsDeleted: true}, nil)

	result, err := fx.service.RespondToReview(ctx, uuid.New(), reviewID, "Thanks")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestPartnerService_RespondToReview_RepoError(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(nil, errors.New("connection reset"))

	result, err := fx.service.RespondToReview(ctx, uuid.New(), reviewID, "Thanks")
	assert.Nil(t, result)
	require.Error(t, err)
}
