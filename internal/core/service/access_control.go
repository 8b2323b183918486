package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/useraccounts/user-management/internal/core/domain"
	"github.com/useraccounts/user-management/internal/core/ports"
)

// IdentityCache abstracts the read-through user cache (Redis). A miss is
// (nil, nil). Cache failures must never fail a request.
type IdentityCache interface {
	Get(ctx context.Context, email string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, email string) error
}

// AccessControl resolves bearer tokens to user identities.
type AccessControl struct {
	tokens ports.TokenService
	repo   ports.UserRepository
	cache  IdentityCache
	log    zerolog.Logger
}

// NewAccessControl returns an Authenticator. cache may be nil to disable
// the identity cache.
func NewAccessControl(tokens ports.TokenService, repo ports.UserRepository, cache IdentityCache, log zerolog.Logger) *AccessControl {
	return &AccessControl{tokens: tokens, repo: repo, cache: cache, log: log}
}

// Authenticate validates the token and resolves its subject. An invalid or
// expired token and a missing subject all collapse to ErrUnauthorized, so a
// caller cannot tell whether an account still exists from the failure kind.
func (a *AccessControl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	subject, err := a.tokens.ValidateAccess(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if a.cache != nil {
		cached, err := a.cache.Get(ctx, subject)
		if err != nil {
			a.log.Warn().Err(err).Msg("identity cache lookup failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := a.repo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, user); err != nil {
			a.log.Warn().Err(err).Msg("identity cache store failed")
		}
	}
	return user, nil
}

// RequireRole fails with ErrForbidden whenever the user's role is not in
// the allowed set.
func RequireRole(user *domain.User, allowed ...domain.Role) error {
	if user == nil || !user.Role.In(allowed...) {
		return domain.ErrForbidden
	}
	return nil
}
