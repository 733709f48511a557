package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel mirrors the append-only 'audit_log' table.
type AuditLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AdminID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Action     string         `gorm:"type:varchar(32);not null;index"`
	EntityType string         `gorm:"type:varchar(32);not null;index"`
	EntityID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	OldData    datatypes.JSON `gorm:"type:jsonb"`
	NewData    datatypes.JSON `gorm:"type:jsonb"`
	IPAddress  string         `gorm:"type:varchar(45)"`
	UserAgent  string         `gorm:"type:varchar(500)"`
	CreatedAt  time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_log"
}
