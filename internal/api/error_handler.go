package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/infrastructure/storage"
	"github.com/shopcraft/backoffice/pkg/logger"
)

// ErrorHandler translates domain sentinels into HTTP responses with the
// standard error envelope. Unknown errors are logged and hidden behind a 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := resolveError(err)
	if code == http.StatusInternalServerError {
		log := logger.Get()
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
	}

	payload := map[string]any{"status": "error", "message": message}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if err := c.JSON(code, payload); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("writing error response")
	}
}

func resolveError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrAccountInactive):
		return http.StatusUnauthorized, "Account is deactivated"
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, "Invalid or expired refresh token"
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domain.ErrMissingRefreshToken):
		return http.StatusBadRequest, "Refresh token is required"
	case errors.Is(err, domain.ErrNotACustomer):
		return http.StatusBadRequest, "Only customers can be promoted"
	case errors.Is(err, domain.ErrNotAnAdmin):
		return http.StatusBadRequest, "Only admins can be demoted"
	case errors.Is(err, storage.ErrUnsupportedType):
		return http.StatusBadRequest, "Unsupported image type"
	case errors.Is(err, storage.ErrFileTooLarge):
		return http.StatusBadRequest, "Image exceeds the maximum allowed size"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access denied. Insufficient permissions"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, msg
	}

	return http.StatusInternalServerError, "Internal server error"
}
