package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skillserve/internal/infrastructure/token"
)

// SessionKey is the cookie carrying the identity token.
const SessionKey = "token"

// ContextEmailKey is where the authenticated email lands on the echo context.
const ContextEmailKey = "email"

type AuthMiddleware struct {
	tokenService *token.Service
}

func NewAuthMiddleware(tokenService *token.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionKey)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorize Access")
		}

		// Expired and malformed tokens get the same answer on purpose.
		claims, err := m.tokenService.Verify(cookie.Value)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorize Access")
		}

		c.Set(ContextEmailKey, claims.Email)

		return next(c)
	}
}
