package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

func runRBAC(t *testing.T, mw echo.MiddlewareFunc, user *domain.User) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(UserContextKey, user)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRBACAllowsListedRoles(t *testing.T) {
	mw := RBAC(domain.RoleAdmin, domain.RoleSuperAdmin)

	for _, role := range []string{domain.RoleAdmin, domain.RoleSuperAdmin} {
		rec := runRBAC(t, mw, &domain.User{ID: 1, Role: role})
		if rec.Code != http.StatusOK {
			t.Errorf("role %q: status = %d, want 200", role, rec.Code)
		}
	}
}

func TestRBACDeniesUnlistedRole(t *testing.T) {
	rec := runRBAC(t, RBAC(domain.RoleSuperAdmin), &domain.User{ID: 1, Role: domain.RoleAdmin})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestRBACRequiresAuthenticatedContext(t *testing.T) {
	rec := runRBAC(t, RBAC(domain.RoleAdmin), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
