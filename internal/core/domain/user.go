package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the authorization level assigned to a user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDev        Role = "dev"
	RoleSubscriber Role = "subscriber"
)

// Roles lists every valid role value.
var Roles = []Role{RoleAdmin, RoleDev, RoleSubscriber}

// ParseRole maps a string onto the closed role enumeration. The comparison
// is case-insensitive; the original casing is preserved in the returned Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(s, string(r)) {
			return Role(s), nil
		}
	}
	return "", &ValidationError{Field: "role", Message: fmt.Sprintf("role must be one of %v", Roles)}
}

// In reports whether the role is a member of the allowed set,
// compared case-insensitively like ParseRole.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if strings.EqualFold(string(r), string(a)) {
			return true
		}
	}
	return false
}

// User is the identity record held by the store. HashedPassword is never
// serialized in any outward-facing representation.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           Role      `json:"role"`
	IsActive       bool      `json:"is_active"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	LastLogin      time.Time `json:"last_login"`
}
