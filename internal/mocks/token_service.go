package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/avikoski/bloglist-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	Token       string
	GenerateErr error
	Claims      *auth.Claims
	ValidateErr error
}

// Ensure MockTokenService implements auth.TokenService interface
var _ auth.TokenService = (*MockTokenService)(nil)

// GenerateToken implements auth.TokenService.GenerateToken.
func (m *MockTokenService) GenerateToken(
	ctx context.Context,
	userID uuid.UUID,
	username string,
) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-token", nil
}

// ValidateToken implements auth.TokenService.ValidateToken.
func (m *MockTokenService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	return m.Claims, m.ValidateErr
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	HashErr error
}

// Hash implements auth.PasswordHasher.Hash.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	CompareErr error
}

// Compare implements auth.PasswordVerifier.Compare.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	return m.CompareErr
}
