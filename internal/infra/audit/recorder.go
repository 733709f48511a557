// Package audit implements the asynchronous, best-effort audit recorder.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"smachna/config"
	delctx "smachna/internal/delivery/context"
	"smachna/internal/domain/entity"
	"smachna/internal/domain/repository"
	"smachna/internal/domain/service"

	"github.com/google/uuid"
)

const defaultDrainTimeout = 5 * time.Second

// recorder persists audit entries from a buffered channel on a single worker
// goroutine. The channel decouples request latency from audit storage; when
// the buffer is full the entry is dropped with a warning rather than blocking
// the request.
type recorder struct {
	auditRepo repository.AuditLogRepository
	logger    *slog.Logger

	entries      chan *entity.AuditLogEntry
	drainTimeout time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

// NewRecorder creates the audit recorder and starts its worker.
func NewRecorder(auditRepo repository.AuditLogRepository, cfg *config.Config, logger *slog.Logger) service.AuditRecorder {
	bufferSize := 256
	drainTimeout := defaultDrainTimeout
	if cfg != nil && cfg.Audit != nil {
		if cfg.Audit.BufferSize > 0 {
			bufferSize = cfg.Audit.BufferSize
		}
		if cfg.Audit.DrainTimeout > 0 {
			drainTimeout = cfg.Audit.DrainTimeout
		}
	}

	r := &recorder{
		auditRepo:    auditRepo,
		logger:       logger,
		entries:      make(chan *entity.AuditLogEntry, bufferSize),
		drainTimeout: drainTimeout,
		done:         make(chan struct{}),
	}
	go r.run()

	return r
}

// Record enqueues an audit entry. The caller's mutation has already committed,
// so a full buffer drops the entry instead of blocking or failing the request.
func (r *recorder) Record(ctx context.Context, entry *entity.AuditLogEntry) {
	if entry == nil {
		return
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	select {
	case r.entries <- entry:
	default:
		attrs := []slog.Attr{
			slog.String("action", string(entry.Action)),
			slog.String("entityID", entry.EntityID.String()),
		}
		if requestID := delctx.GetRequestIDFromContext(ctx); requestID != "" {
			attrs = append(attrs, slog.String("requestID", requestID))
		}
		r.logger.LogAttrs(ctx, slog.LevelWarn, "audit buffer full, dropping entry", attrs...)
	}
}

// Close stops accepting entries and drains the buffer within the drain budget.
func (r *recorder) Close() error {
	r.closeOnce.Do(func() {
		close(r.entries)
		select {
		case <-r.done:
		case <-time.After(r.drainTimeout):
			r.logger.Warn("audit drain timed out, remaining entries lost")
		}
	})

	return nil
}

func (r *recorder) run() {
	defer close(r.done)

	for entry := range r.entries {
		// Persistence failures are logged and swallowed; the audit channel is
		// best-effort and the primary mutation already succeeded.
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := r.auditRepo.Create(ctx, entry); err != nil {
			r.logger.Error("audit entry write failed",
				slog.String("action", string(entry.Action)),
				slog.String("entityID", entry.EntityID.String()),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}
