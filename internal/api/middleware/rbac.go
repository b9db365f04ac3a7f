package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

// RequireRole lets the request through only when the role set by Auth is one
// of roles. Anything else fails with domain.ErrForbidden.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireRoleFor applies RequireRole only to the given HTTP methods, so a
// collection can be readable by everyone but writable by a few roles.
func RequireRoleFor(methods []string, roles ...string) echo.MiddlewareFunc {
	guard := RequireRole(roles...)
	gated := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		gated[m] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		guarded := guard(next)
		return func(c echo.Context) error {
			if _, ok := gated[c.Request().Method]; ok {
				return guarded(c)
			}
			return next(c)
		}
	}
}
