package auth

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// mockUsers are the fixed identities accepted when mock authentication is on.
var mockUsers = map[string]domain.User{
	"lecturer1": {ID: 101, FullName: "Mock Lecturer 1", UserType: domain.UserTypeLecturer},
	"lecturer2": {ID: 102, FullName: "Mock Lecturer 2", UserType: domain.UserTypeLecturer},
	"lecturer3": {ID: 103, FullName: "Mock Lecturer 3", UserType: domain.UserTypeLecturer},
	"admin":     {ID: 999, FullName: "Mock Admin Lecturer", UserType: domain.UserTypeLecturer, IsAdmin: true},
}

// MockVerifier accepts a fixed set of tokens for local development.
type MockVerifier struct{}

// NewMockVerifier creates a mock verifier.
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{}
}

// Verify returns the mock user registered under token.
func (MockVerifier) Verify(_ context.Context, token string) (domain.User, error) {
	u, ok := mockUsers[token]
	if !ok {
		return domain.User{}, fmt.Errorf("invalid mock token, valid are %v: %w", MockTokens(), domain.ErrUnauthorized)
	}
	return u, nil
}

// MockTokens lists the accepted mock tokens in sorted order.
func MockTokens() []string {
	return slices.Sorted(maps.Keys(mockUsers))
}
