package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"skillserve/internal/adapter/api/handler"
	"skillserve/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes session routes
func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	// Token issuance is the only brute-forceable surface; keep it throttled.
	tokenLimiter := middleware.NewRateLimiter(5, time.Minute)

	e.POST("/jwt", authHandler.CreateToken, tokenLimiter.RateLimitMiddleware())
	e.GET("/logout", authHandler.Logout)
}
