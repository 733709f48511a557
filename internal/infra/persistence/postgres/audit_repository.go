package postgres

import (
	"context"
	"encoding/json"

	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"
	"smachna/internal/domain/repository"
	"smachna/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
// The table is append-only; there is no update or delete path.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends a single audit entry.
func (repo *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLogEntry) error {
	entryM, err := fromAuditDomain(entry)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit entry")
	}

	return nil
}

// List retrieves audit entries matching the filter with a total count.
func (repo *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLogEntry, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})

	if filter.Action != nil {
		query = query.Where("action = ?", string(*filter.Action))
	}
	if filter.EntityType != nil {
		query = query.Where("entity_type = ?", string(*filter.EntityType))
	}
	if filter.AdminID != nil {
		query = query.Where("admin_id = ?", *filter.AdminID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count audit entries")
	}

	order := "created_at DESC"
	if filter.Sort == entity.AuditSortOldest {
		order = "created_at ASC"
	}

	var entryModels []*model.AuditLogModel
	if err := query.
		Order(order).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&entryModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list audit entries")
	}

	entries := make([]*entity.AuditLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entry, err := toAuditDomain(entryM)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}

// fromAuditDomain converts a domain entry into its GORM model, serializing the
// optional before/after snapshots.
func fromAuditDomain(entry *entity.AuditLogEntry) (*model.AuditLogModel, error) {
	entryM := &model.AuditLogModel{
		ID:         entry.ID,
		AdminID:    entry.AdminID,
		Action:     string(entry.Action),
		EntityType: string(entry.EntityType),
		EntityID:   entry.EntityID,
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
		CreatedAt:  entry.CreatedAt,
	}

	if entry.OldData != nil {
		oldData, err := json.Marshal(entry.OldData)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal audit old data")
		}
		entryM.OldData = oldData
	}
	if entry.NewData != nil {
		newData, err := json.Marshal(entry.NewData)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal audit new data")
		}
		entryM.NewData = newData
	}

	return entryM, nil
}

// toAuditDomain converts a GORM model into its domain entry.
func toAuditDomain(entryM *model.AuditLogModel) (*entity.AuditLogEntry, error) {
	entry := &entity.AuditLogEntry{
		ID:         entryM.ID,
		AdminID:    entryM.AdminID,
		Action:     entity.AuditAction(entryM.Action),
		EntityType: entity.AuditEntityType(entryM.EntityType),
		EntityID:   entryM.EntityID,
		IPAddress:  entryM.IPAddress,
		UserAgent:  entryM.UserAgent,
		CreatedAt:  entryM.CreatedAt,
	}

	if len(entryM.OldData) > 0 {
		if err := json.Unmarshal(entryM.OldData, &entry.OldData); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal audit old data")
		}
	}
	if len(entryM.NewData) > 0 {
		if err := json.Unmarshal(entryM.NewData, &entry.NewData); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal audit new data")
		}
	}

	return entry, nil
}
