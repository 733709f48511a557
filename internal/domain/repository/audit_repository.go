// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"smachna/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogFilter narrows audit log listings. Unknown filter values simply
// match nothing; they are never an error.
type AuditLogFilter struct {
	Action     *entity.AuditAction
	EntityType *entity.AuditEntityType
	AdminID    *uuid.UUID
	From       *time.Time
	To         *time.Time
	Sort       entity.AuditLogSort
	Limit      int
	Offset     int
}

// AuditLogRepository defines the interface for the append-only audit log.
type AuditLogRepository interface {
	// Create appends a single audit entry. Entries are never updated or deleted.
	Create(ctx context.Context, entry *entity.AuditLogEntry) error

	// List retrieves audit entries matching the filter with a total count.
	List(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLogEntry, int64, error)
}
