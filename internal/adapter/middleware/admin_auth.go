package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	adminSubjectKey = "admin_subject"
	roleAdmin       = "admin"
)

type adminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// AdminAuth accepts HS256 bearer tokens carrying role=admin, an expiry and a
// subject. The subject is kept on the context for the idempotency key.
func AdminAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			var claims adminClaims
			_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
				return secret, nil
			},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				jwt.WithExpirationRequired(),
			)
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "token expired"
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg})
			}
			if strings.TrimSpace(claims.Subject) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token has no subject"})
			}
			if claims.Role != roleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin role required"})
			}

			c.Set(adminSubjectKey, claims.Subject)
			return next(c)
		}
	}
}

// AdminSubject returns the authenticated admin, or "" outside AdminAuth.
func AdminSubject(c echo.Context) string {
	s, _ := c.Get(adminSubjectKey).(string)
	return s
}

// SignAdminToken issues a token AdminAuth accepts.
func SignAdminToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("subject is required")
	}
	now := nowUTC()
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: roleAdmin,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func bearerToken(h string) (string, bool) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}
