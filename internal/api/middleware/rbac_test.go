package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", domain.RoleAdmin)

	called := false
	mw := RequireRole(domain.RoleAdmin, domain.RoleFaculty)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", domain.RoleStudent)

	mw := RequireRole(domain.RoleAdmin, domain.RoleFaculty)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRoleFor_OnlyGatesListedMethods(t *testing.T) {
	e := echo.New()
	mw := RequireRoleFor([]string{http.MethodPost}, domain.RoleAdmin)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	get := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	get.Set("role", domain.RoleStudent)
	if err := mw(next)(get); err != nil {
		t.Fatalf("GET should pass, got %v", err)
	}

	post := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	post.Set("role", domain.RoleStudent)
	if err := mw(next)(post); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("POST should be forbidden, got %v", err)
	}
}
