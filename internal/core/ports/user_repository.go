package ports

import (
	"context"
	"time"

	"github.com/useraccounts/user-management/internal/core/domain"
)

// UpdateFields carries a partial update: nil fields are left untouched.
// Password is stored pre-hashed by the caller; the plaintext never reaches
// the repository.
type UpdateFields struct {
	Email          *string
	FirstName      *string
	LastName       *string
	Role           *domain.Role
	IsActive       *bool
	HashedPassword *string
	LastLogin      *time.Time
	CreatedAt      *time.Time
}

// Empty reports whether no field is set.
func (f UpdateFields) Empty() bool {
	return f.Email == nil && f.FirstName == nil && f.LastName == nil &&
		f.Role == nil && f.IsActive == nil && f.HashedPassword == nil &&
		f.LastLogin == nil && f.CreatedAt == nil
}

// UserRepository defines the persistence contract for user records.
// Every operation is atomic against the backing store; a malformed id is
// indistinguishable from a missing record and yields domain.ErrUserNotFound.
type UserRepository interface {
	// Insert assigns id, created_at and last_login, persists the record, and
	// returns it. Fails with domain.ErrDuplicateEmail on a unique-index conflict.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateByID applies only the supplied fields and returns the post-update
	// record.
	UpdateByID(ctx context.Context, id string, fields UpdateFields) (*domain.User, error)
	// UpdateLastLogin sets last_login and returns the updated record.
	UpdateLastLogin(ctx context.Context, email string, at time.Time) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
	// List returns records ordered by created_at ascending, skipping
	// (page-1)*perPage and limiting to perPage. Never returns nil.
	List(ctx context.Context, page, perPage int) ([]domain.User, error)
}
