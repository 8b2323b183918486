package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/useraccounts/user-management/internal/core/domain"
)

// UserCache is a read-through cache of user records keyed by email, used on
// the authenticate hot path. Entries expire after a short TTL and are
// invalidated whenever the underlying record changes.
// Key format: user:email:<email>
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache wraps the given Redis client. ttl <= 0 falls back to one minute.
func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &UserCache{client: client, ttl: ttl}
}

// cachedUser is the stored form. The hashed password is carried so a cache
// hit can still serve login verification, but it never leaves this package
// except inside the domain struct.
type cachedUser struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	HashedPassword string    `json:"hashed_password"`
	CreatedAt      time.Time `json:"created_at"`
	LastLogin      time.Time `json:"last_login"`
}

// Get returns the cached record, or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, email string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("user cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, nil
	}

	return &domain.User{
		ID:             cu.ID,
		Email:          cu.Email,
		FirstName:      cu.FirstName,
		LastName:       cu.LastName,
		Role:           domain.Role(cu.Role),
		IsActive:       cu.IsActive,
		HashedPassword: cu.HashedPassword,
		CreatedAt:      cu.CreatedAt,
		LastLogin:      cu.LastLogin,
	}, nil
}

// Set stores the record under its email for the configured TTL.
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedUser{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           string(user.Role),
		IsActive:       user.IsActive,
		HashedPassword: user.HashedPassword,
		CreatedAt:      user.CreatedAt,
		LastLogin:      user.LastLogin,
	})
	if err != nil {
		return fmt.Errorf("user cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(user.Email), raw, c.ttl).Err()
}

// Invalidate drops the entry for the given email.
func (c *UserCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}

func (c *UserCache) key(email string) string {
	return "user:email:" + email
}
