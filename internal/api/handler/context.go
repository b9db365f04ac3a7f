package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// ctxClaims extracts the token claims injected by the Auth middleware.
// A missing or anonymous claim set means the middleware did not run.
func ctxClaims(c echo.Context) (ports.TokenClaims, error) {
	claims, ok := c.Get("claims").(ports.TokenClaims)
	if !ok || claims.UserID == "" {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxIdentity is ctxClaims without the token metadata.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return domain.Identity{}, err
	}
	return claims.Identity, nil
}
