package postgres

import (
	"context"
	"testing"

	"smachna/internal/domain/entity"
	"smachna/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestEstablishmentRepository_UpdateStatus_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "establishments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, entity.StatusPending, entity.StatusActive)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentRepository_UpdateStatus_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "establishments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "establishments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.UpdateStatus(context.Background(), id, entity.StatusDraft, entity.StatusPending)
	assert.ErrorIs(t, err, repository.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "establishments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "establishments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.UpdateStatus(context.Background(), id, entity.StatusDraft, entity.StatusPending)
	assert.ErrorIs(t, err, repository.ErrEstablishmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentRepository_SetStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository(db)

	mock.ExpectExec(`UPDATE "establishments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetStatus(context.Background(), uuid.New(), entity.StatusSuspended)
	assert.ErrorIs(t, err, repository.ErrEstablishmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// recalculatePattern pins the parts of the statement the aggregate contract
// depends on: the zero default, 2-decimal rounding, and the is_deleted filter.
const recalculatePattern = `UPDATE establishments SET\s+` +
	`average_rating = COALESCE\(\(\s+` +
	`SELECT ROUND\(AVG\(rating\)::numeric, 2\)\s+` +
	`FROM reviews\s+` +
	`WHERE establishment_id = establishments\.id AND is_deleted = false\s+` +
	`\), 0\)`

func TestEstablishmentRepository_RecalculateAggregates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository(db)
	id := uuid.New()

	mock.ExpectQuery(recalculatePattern).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "review_count"}).AddRow(4.33, 3))

	aggregate, err := repo.RecalculateAggregates(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 4.33, aggregate.AverageRating, 0.001)
	assert.Equal(t, 3, aggregate.ReviewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentRepository_RecalculateAggregates_NoReviews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository(db)

	mock.ExpectQuery(recalculatePattern).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "review_count"}).AddRow(0.0, 0))

	aggregate, err := repo.RecalculateAggregates(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0.0, aggregate.AverageRating)
	assert.Equal(t, 0, aggregate.ReviewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentRepository_RecalculateAggregates_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository(db)

	mock.ExpectQuery(`UPDATE establishments SET`).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "review_count"}))

	_, err := repo.RecalculateAggregates(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrEstablishmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEstablishmentRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "establishments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrEstablishmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
