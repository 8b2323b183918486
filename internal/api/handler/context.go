package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/useraccounts/user-management/internal/api/middleware"
	"github.com/useraccounts/user-management/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// routing mistake and fails with 401 rather than a nil dereference.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
