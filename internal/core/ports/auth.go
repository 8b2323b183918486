package ports

import (
	"context"

	"github.com/useraccounts/user-management/internal/core/domain"
)

// PasswordHasher performs one-way password hashing and verification.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the hash. It never fails on
	// mismatch; comparison is constant-time.
	Verify(plaintext, hashed string) bool
}

// TokenService issues and validates signed, expiring bearer tokens.
// Access and refresh tokens use distinct secrets and TTLs.
type TokenService interface {
	IssueAccess(subject string) (string, error)
	IssueRefresh(subject string) (string, error)
	// ValidateAccess returns the embedded subject, domain.ErrTokenExpired when
	// the expiry is in the past, or domain.ErrTokenInvalid on a bad signature
	// or malformed payload.
	ValidateAccess(token string) (string, error)
	ValidateRefresh(token string) (string, error)
}

// Authenticator resolves a bearer token to a user identity.
type Authenticator interface {
	// Authenticate fails with domain.ErrUnauthorized whether the token is
	// invalid, expired, or its subject no longer exists.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
