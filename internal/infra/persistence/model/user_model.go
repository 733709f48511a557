package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Account management lives in the dedicated auth service; this side only reads
// users for display names and role checks.
type UserModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string         `gorm:"type:varchar(255);unique;not null"`
	Name      string         `gorm:"type:varchar(100)"`
	Roles     datatypes.JSON `gorm:"type:jsonb;not null;default:'[\"user\"]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
