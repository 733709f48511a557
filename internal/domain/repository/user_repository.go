// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"smachna/internal/domain/entity"
	"smachna/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines read operations for user accounts. Account creation
// and credential handling live in the auth service, not here.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
