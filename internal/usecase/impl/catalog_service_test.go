package impl

import (
	"context"
	"testing"

	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	mockRepo "smachna/internal/mocks/repository"
	"smachna/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service           usecase.CatalogUsecase
	establishmentRepo *mockRepo.MockEstablishmentRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	establishmentRepo := mockRepo.NewMockEstablishmentRepository(t)
	service := NewCatalogService(establishmentRepo, testConfig(), testLogger())

	return catalogServiceFixtures{
		service:           service,
		establishmentRepo: establishmentRepo,
	}
}

func TestCatalogService_ListEstablishments_PinsActiveStatus(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.establishmentRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.EstablishmentFilter) bool {
			return filter.Status != nil && *filter.Status == entity.StatusActive &&
				filter.City != nil && *filter.City == entity.CityMinsk &&
				filter.Category != nil && *filter.Category == entity.CategoryCafe
		})).
		Return([]*entity.Establishment{{ID: uuid.New(), Status: entity.StatusActive}}, int64(1), nil)

	establishments, pagination, err := fx.service.ListEstablishments(ctx, "minsk", "cafe", usecase.Page{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Len(t, establishments, 1)
	assert.Equal(t, int64(1), pagination.Total)
	assert.Equal(t, 1, pagination.Pages)
}

func TestCatalogService_ListEstablishments_DefaultsPerPage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.establishmentRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter repository.EstablishmentFilter) bool {
			return filter.Limit == 20 && filter.Offset == 0
		})).
		Return([]*entity.Establishment{}, int64(0), nil)

	_, pagination, err := fx.service.ListEstablishments(ctx, "", "", usecase.Page{})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PerPage)
}

func TestCatalogService_GetEstablishment_Active(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(&entity.Establishment{ID: establishmentID, Status: entity.StatusActive}, nil)

	establishment, err := fx.service.GetEstablishment(ctx, establishmentID)
	require.NoError(t, err)
	assert.Equal(t, establishmentID, establishment.ID)
}

func TestCatalogService_GetEstablishment_NonActiveIsMasked(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	for _, status := range []entity.EstablishmentStatus{
		entity.StatusDraft,
		entity.StatusPending,
		entity.StatusSuspended,
		entity.StatusArchived,
	} {
		establishmentID := uuid.New()
		fx.establishmentRepo.EXPECT().
			FindByID(ctx, establishmentID).
			Return(&entity.Establishment{ID: establishmentID, Status: status}, nil)

		establishment, err := fx.service.GetEstablishment(ctx, establishmentID)
		assert.Nil(t, establishment)
		assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound, "status %s must read as not found", status)
	}
}

func TestCatalogService_GetEstablishment_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	establishmentID := uuid.New()

	fx.establishmentRepo.EXPECT().
		FindByID(ctx, establishmentID).
		Return(nil, repository.ErrEstablishmentNotFound)

	establishment, err := fx.service.GetEstablishment(ctx, establishmentID)
	assert.Nil(t, establishment)
	assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound)
}
