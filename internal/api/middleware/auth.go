package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/core/domain"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

// Auth validates the bearer JWT, rejects revoked tokens and injects the
// claims ("claims") and role ("role") into the context.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			tc := toTokenClaims(claims)
			if tc.UserID == "" || tc.Role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revoker != nil && tc.TokenID != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), tc.TokenID)
				if err != nil {
					return err
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set("claims", tc)
			c.Set("role", tc.Role)

			return next(c)
		}
	}
}

func toTokenClaims(mc jwt.MapClaims) ports.TokenClaims {
	str := func(k string) string {
		s, _ := mc[k].(string)
		return s
	}
	builtin, _ := mc["builtin"].(bool)

	tc := ports.TokenClaims{
		Identity: domain.Identity{
			UserID:  str("sub"),
			Name:    str("name"),
			Email:   str("email"),
			Role:    str("role"),
			Builtin: builtin,
		},
		TokenID: str("jti"),
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time.UTC()
	} else {
		tc.ExpiresAt = time.Time{}
	}
	return tc
}
