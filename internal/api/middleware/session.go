package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

// Context keys populated by Session for downstream boundaries and handlers.
const (
	CtxUserID  = "user_id"
	CtxRole    = "role"
	CtxAvatar  = "avatar"
	CtxTokenID = "token_id"
)

// Session deserialises and verifies the bearer token on every request and, on
// success, exposes the claim set through the echo context. It never rejects:
// a missing, expired, revoked or otherwise invalid token simply leaves the
// context unauthenticated, deferring the authorization decision to the
// boundary that declares a required role.
func Session(jwtSecret string, revocations ports.RevocationList) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			jti, _ := claims["jti"].(string)
			if jti != "" && revocations != nil {
				revoked, err := revocations.IsRevoked(c.Request().Context(), jti)
				if err != nil || revoked {
					return next(c)
				}
			}

			sub, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			avatar, _ := claims["avatar"].(string)

			c.Set(CtxUserID, sub)
			c.Set(CtxRole, role)
			c.Set(CtxAvatar, avatar)
			c.Set(CtxTokenID, jti)

			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
