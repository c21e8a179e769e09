package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"skillserve/internal/adapter/api/middleware"
	"skillserve/internal/usecase"
	"skillserve/pkg/errors"
	"skillserve/pkg/response"
)

type AuthHandler struct {
	authUseCase  *usecase.AuthUseCase
	cookieExpiry time.Duration
	production   bool
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, cookieExpiry time.Duration, production bool) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		cookieExpiry: cookieExpiry,
		production:   production,
	}
}

type createTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateToken issues a session token for the given email and plants it as a
// cookie. The frontend authenticates the user elsewhere; this endpoint only
// binds that identity to a session.
func (h *AuthHandler) CreateToken(c echo.Context) error {
	var req createTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	signed, err := h.authUseCase.IssueToken(req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(h.sessionCookie(signed, time.Now().Add(h.cookieExpiry)))

	return response.Success(c, map[string]bool{"success": true})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	// Overwrite with an already-expired cookie so the browser drops it.
	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))

	return response.Success(c, map[string]bool{"success": true})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionKey,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
	}

	// Cross-site frontends need SameSite=None, which browsers only accept
	// over HTTPS. Local development stays on Lax without Secure.
	if h.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}

	return cookie
}
