package ports

import (
	"context"
	"time"

	"github.com/useraccounts/user-management/internal/core/domain"
)

// RegisterInput is a registration candidate before validation.
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
	IsActive  bool
	Password  string
}

// UpdateUserInput is a partial administrative update; nil fields are ignored.
type UpdateUserInput struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *string
	IsActive  *bool
	Password  *string
	LastLogin *time.Time
	CreatedAt *time.Time
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed access token and a refresh token. Unknown
	// email and wrong password yield the same domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (access, refresh string, err error)
	// Refresh exchanges a valid refresh token for a fresh access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page, perPage int) ([]domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
