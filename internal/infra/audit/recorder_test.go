package audit

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"smachna/config"
	"smachna/internal/domain/entity"
	mockRepo "smachna/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAuditConfig() *config.Config {
	return &config.Config{
		Audit: &config.AuditConfig{
			BufferSize:   8,
			DrainTimeout: time.Second,
		},
	}
}

func TestRecorder_RecordAndDrain(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)

	var mu sync.Mutex
	var persisted []*entity.AuditLogEntry
	auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(ctx context.Context, entry *entity.AuditLogEntry) {
			mu.Lock()
			persisted = append(persisted, entry)
			mu.Unlock()
		}).
		Return(nil)

	recorder := NewRecorder(auditRepo, testAuditConfig(), testLogger())

	entry := &entity.AuditLogEntry{
		AdminID:    uuid.New(),
		Action:     entity.AuditModerateApprove,
		EntityType: entity.AuditEntityEstablishment,
		EntityID:   uuid.New(),
	}
	recorder.Record(context.Background(), entry)

	require.NoError(t, recorder.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, persisted, 1)
	assert.NotEqual(t, uuid.Nil, persisted[0].ID)
	assert.False(t, persisted[0].CreatedAt.IsZero())
	assert.Equal(t, entity.AuditModerateApprove, persisted[0].Action)
}

func TestRecorder_NilEntryIsIgnored(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	recorder := NewRecorder(auditRepo, testAuditConfig(), testLogger())

	recorder.Record(context.Background(), nil)

	require.NoError(t, recorder.Close())
	auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecorder_PersistenceFailureDoesNotStopWorker(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)

	calls := 0
	auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditLogEntry")).
		RunAndReturn(func(ctx context.Context, entry *entity.AuditLogEntry) error {
			calls++
			if calls == 1 {
				return errors.New("insert failed")
			}
			return nil
		})

	recorder := NewRecorder(auditRepo, testAuditConfig(), testLogger())

	recorder.Record(context.Background(), &entity.AuditLogEntry{EntityID: uuid.New(), Action: entity.AuditReviewHide})
	recorder.Record(context.Background(), &entity.AuditLogEntry{EntityID: uuid.New(), Action: entity.AuditReviewShow})

	require.NoError(t, recorder.Close())
	assert.Equal(t, 2, calls)
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	auditRepo := mockRepo.NewMockAuditLogRepository(t)
	recorder := NewRecorder(auditRepo, testAuditConfig(), testLogger())

	require.NoError(t, recorder.Close())
	require.NoError(t, recorder.Close())
}
