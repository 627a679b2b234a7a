// Package auth provides token issuance/verification and password hashing.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for managing signed authentication tokens.
type TokenService interface {
	// GenerateToken creates a signed token asserting the given user identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// ValidateToken verifies the provided token string's signature and
	// extracts its claims. Returns an error if validation fails (expired,
	// invalid signature, missing identity, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity payload carried by a token.
// It is reconstructed per request from the bearer token and never persisted.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Username is the username of the user the token was issued for.
	Username string `json:"username,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
