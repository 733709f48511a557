package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account: a diner, an establishment partner, or an admin.
// Registration and token issuance live in a separate auth service; this service
// only reads users for display names and role checks.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Roles     Roles     `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
