// Package service defines domain service interfaces implemented by the infra layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the contract for validating (and, for tooling, minting)
// the platform's bearer tokens. Token issuance for real users happens in the
// dedicated auth service; this service only needs to verify what it receives.
type TokenService interface {
	// GenerateAccessToken creates a signed access token carrying the user id and roles.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string against the access secret.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
