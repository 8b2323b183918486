package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/useraccounts/user-management/internal/api/metrics"
	"github.com/useraccounts/user-management/internal/core/ports"
)

// UserContextKey is the echo context key the authenticated user is stored under.
const UserContextKey = "user"

// Auth resolves the bearer token via the Authenticator and injects the
// authenticated user into the request context. Every request is
// authenticated independently; there is no session state.
func Auth(authenticator ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthenticationsTotal.WithLabelValues("unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthenticationsTotal.WithLabelValues("unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := authenticator.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				metrics.AuthenticationsTotal.WithLabelValues("unauthorized").Inc()
				return err
			}

			metrics.AuthenticationsTotal.WithLabelValues("ok").Inc()
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
