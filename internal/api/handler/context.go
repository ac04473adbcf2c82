package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/api/middleware"
	"github.com/shopcraft/backoffice/internal/core/domain"
)

// actor extracts the identity injected by the Auth middleware. Its presence
// proves the middleware ran; handlers behind Auth fast-fail without it.
func actor(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return user, nil
}
