// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"smachna/internal/domain/entity"
	"smachna/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for establishment persistence.
var (
	// ErrEstablishmentNotFound is returned when an establishment is not found.
	ErrEstablishmentNotFound = errors.New("establishment not found")
	// ErrStatusConflict is returned when a compare-and-set status update matched no row,
	// meaning the establishment moved to another status concurrently or never held the
	// expected one.
	ErrStatusConflict = errors.New("establishment status conflict")
)

// EstablishmentFilter narrows establishment listings.
type EstablishmentFilter struct {
	PartnerID *uuid.UUID
	Status    *entity.EstablishmentStatus
	City      *entity.City
	Category  *entity.Category
	Limit     int
	Offset    int
}

// EstablishmentRepository defines the standard operations for establishment persistence.
type EstablishmentRepository interface {
	// Create persists a new establishment, including its media rows.
	Create(ctx context.Context, establishment *entity.Establishment) error

	// FindByID retrieves a single establishment by its unique ID, preloading media.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Establishment, error)

	// List retrieves establishments matching the filter with a total count for pagination.
	List(ctx context.Context, filter EstablishmentFilter) ([]*entity.Establishment, int64, error)

	// Update persists field changes of an existing establishment.
	Update(ctx context.Context, establishment *entity.Establishment) error

	// UpdateStatus performs a single atomic compare-and-set row update moving the
	// establishment from the expected status to the target one. It returns
	// ErrEstablishmentNotFound when the id does not exist and ErrStatusConflict
	// when the row exists but is not in the expected status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.EstablishmentStatus) error

	// SetStatus overwrites the status unconditionally. Used for admin suspend/archive,
	// which is legal from any state.
	SetStatus(ctx context.Context, id uuid.UUID, to entity.EstablishmentStatus) error

	// RecalculateAggregates recomputes average_rating and review_count from the
	// set of non-deleted reviews in one idempotent UPDATE, and returns the new values.
	RecalculateAggregates(ctx context.Context, id uuid.UUID) (*entity.ReviewAggregate, error)
}
