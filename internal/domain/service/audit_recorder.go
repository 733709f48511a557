package service

import (
	"context"

	"smachna/internal/domain/entity"
)

// AuditRecorder is the best-effort side channel for admin action auditing.
//
// Record must never block the caller on storage I/O and must never surface a
// failure: the primary mutation has already committed by the time an entry is
// recorded, and a lost audit write must not fail the user-facing action.
type AuditRecorder interface {
	// Record enqueues an audit entry for asynchronous persistence.
	Record(ctx context.Context, entry *entity.AuditLogEntry)

	// Close flushes pending entries and stops the recorder.
	Close() error
}
