package postgres

import (
	"context"
	"testing"

	"smachna/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReviewRepository_SetVisibility_DeletedReviewIsInvisible(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	// The UPDATE carries an is_deleted = false predicate, so a soft-deleted
	// review matches no row.
	mock.ExpectExec(`UPDATE "reviews" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetVisibility(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_SetVisibility_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectExec(`UPDATE "reviews" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetVisibility(context.Background(), uuid.New(), true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_SoftDelete_AlreadyDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectExec(`UPDATE "reviews" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
