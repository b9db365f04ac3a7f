package handler

import (
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

var student = ports.TokenClaims{
	Identity: domain.Identity{
		UserID: "u-1",
		Name:   "Alice",
		Email:  "alice@campus.edu",
		Role:   domain.RoleStudent,
	},
	TokenID:   "jti-1",
	ExpiresAt: time.Now().Add(time.Hour),
}

// newContext builds an echo context for a JSON request. A nil claims pointer
// leaves the request unauthenticated.
func newContext(method, target, body string, claims *ports.TokenClaims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("claims", *claims)
	}
	return c, rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
