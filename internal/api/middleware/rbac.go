package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/useraccounts/user-management/internal/core/domain"
	"github.com/useraccounts/user-management/internal/core/service"
)

// RBAC enforces role-based access control. It must run after Auth; a route
// passes this single check instead of scattering per-endpoint role ifs.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			if err := service.RequireRole(user, allowed...); err != nil {
				return err
			}
			return next(c)
		}
	}
}
