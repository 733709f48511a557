package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. Rows are never hard-deleted; admins
// flip is_visible or set is_deleted.
type ReviewModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating          int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Content         string    `gorm:"type:text"`
	IsVisible       bool      `gorm:"not null;default:true"`
	IsDeleted       bool      `gorm:"not null;default:false;index"`

	ResponseText   string     `gorm:"type:text"`
	ResponseUserID *uuid.UUID `gorm:"type:uuid"`
	ResponseAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
