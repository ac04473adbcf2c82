package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

// UserContextKey is where Auth stores the resolved *domain.User.
const UserContextKey = "auth_user"

// Auth verifies the bearer access token and loads the identity behind it.
// Tokens of deleted or deactivated accounts are rejected even when the
// signature is still valid.
func Auth(codec ports.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			claims, err := codec.VerifyAccess(token)
			if err != nil {
				if err == domain.ErrTokenExpired {
					return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "User not found or inactive")
				}
				return err
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found or inactive")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// OptionalAuth resolves the identity when a valid bearer token is present
// and degrades to anonymous behaviour otherwise. It never rejects.
func OptionalAuth(codec ports.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			claims, err := codec.VerifyAccess(token)
			if err != nil {
				return next(c)
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err == nil && user.IsActive {
				c.Set(UserContextKey, user)
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
