package router

import (
	"github.com/labstack/echo/v4"

	"skillserve/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e)
	SetupServiceRouter(e, authMiddleware)
	SetupBookingRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
