package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EstablishmentModel mirrors the 'establishments' table. Categories, cuisines,
// working hours and attributes are stored as JSONB; average_rating and
// review_count are recomputed caches over the reviews table.
type EstablishmentModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartnerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Description  string         `gorm:"type:text"`
	City         string         `gorm:"type:varchar(32);not null;index"`
	Address      string         `gorm:"type:varchar(500);not null"`
	Latitude     float64        `gorm:"type:decimal(9,6);not null"`
	Longitude    float64        `gorm:"type:decimal(9,6);not null"`
	Phone        string         `gorm:"type:varchar(32)"`
	Email        string         `gorm:"type:varchar(255)"`
	Website      string         `gorm:"type:varchar(255)"`
	Categories   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Cuisines     datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	PriceRange   string         `gorm:"type:varchar(8)"`
	WorkingHours datatypes.JSON `gorm:"type:jsonb"`
	Attributes   datatypes.JSON `gorm:"type:jsonb"`
	Status       string         `gorm:"type:varchar(16);not null;default:'draft';index"`

	AverageRating float64 `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount   int     `gorm:"not null;default:0"`

	Media []EstablishmentMediaModel `gorm:"foreignKey:EstablishmentID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EstablishmentModel) TableName() string {
	return "establishments"
}

// EstablishmentMediaModel mirrors the 'establishment_media' table.
type EstablishmentMediaModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL             string    `gorm:"type:varchar(500);not null"`
	Kind            string    `gorm:"type:varchar(16);not null;default:'photo'"`
	Position        int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EstablishmentMediaModel) TableName() string {
	return "establishment_media"
}
