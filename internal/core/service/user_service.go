package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/useraccounts/user-management/internal/core/domain"
	"github.com/useraccounts/user-management/internal/core/ports"
)

// UserService orchestrates registration, authentication and the
// administrative operations on top of the repository, hasher and token
// service.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	cache  IdentityCache
	log    zerolog.Logger
}

// NewUserService wires the orchestration layer. cache may be nil.
func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, cache IdentityCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens, cache: cache, log: log}
}

// Register validates the candidate, hashes the password and inserts the
// record. Email uniqueness is enforced by the store, not re-checked here.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateName("first_name", in.FirstName); err != nil {
		return nil, err
	}
	if err := domain.ValidateName("last_name", in.LastName); err != nil {
		return nil, err
	}
	if err := domain.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &domain.User{
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Role:           role,
		IsActive:       in.IsActive,
		HashedPassword: hashed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			s.log.Info().Str("email", in.Email).Msg("registration rejected, email taken")
		}
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies the credentials, bumps last_login and issues an
// access/refresh token pair with the user's email as subject. An
// unknown email and a wrong password both fail with
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", "", domain.ErrInvalidCredentials
	}

	if _, err := s.repo.UpdateLastLogin(ctx, user.Email, time.Now().UTC()); err != nil {
		return "", "", err
	}
	s.invalidate(ctx, user.Email)

	access, err := s.tokens.IssueAccess(user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.IssueRefresh(user.Email)
	if err != nil {
		return "", "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// subject must still resolve to an existing user.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	subject, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	if _, err := s.repo.FindByEmail(ctx, subject); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}
	return s.tokens.IssueAccess(subject)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page, perPage int) ([]domain.User, error) {
	if err := domain.ValidatePagination(page, perPage); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, page, perPage)
}

// Update applies an administrative partial update. Supplied fields are
// validated with the registration rules; a supplied password is re-hashed
// and stored only in hashed form. An update with no fields set returns the
// record unchanged.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := ports.UpdateFields{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  in.IsActive,
		LastLogin: in.LastLogin,
		CreatedAt: in.CreatedAt,
	}

	if in.Role != nil {
		role, err := domain.ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		fields.Role = &role
	}
	if in.FirstName != nil {
		if err := domain.ValidateName("first_name", *in.FirstName); err != nil {
			return nil, err
		}
	}
	if in.LastName != nil {
		if err := domain.ValidateName("last_name", *in.LastName); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		if err := domain.ValidateEmail(*in.Email); err != nil {
			return nil, err
		}
	}
	if in.Password != nil {
		if err := domain.ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		fields.HashedPassword = &hashed
	}

	if fields.Empty() {
		return existing, nil
	}

	updated, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, existing.Email)
	if updated.Email != existing.Email {
		s.invalidate(ctx, updated.Email)
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

// Delete removes the record. Fails with ErrUserNotFound when the id does
// not match anything.
func (s *UserService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, existing.Email)

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) invalidate(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("identity cache invalidation failed")
	}
}
