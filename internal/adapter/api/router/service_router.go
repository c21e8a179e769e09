package router

import (
	"github.com/labstack/echo/v4"

	"skillserve/internal/adapter/api/handler"
	"skillserve/internal/adapter/api/middleware"
)

// SetupServiceRouter initializes service routes
func SetupServiceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	serviceHandler := handler.GetServiceHandler()

	// Public routes
	e.GET("/services", serviceHandler.ListServices)
	e.POST("/addService", serviceHandler.AddService)
	e.PUT("/updateService/:id", serviceHandler.UpdateService)
	e.DELETE("/deleteService/:id", serviceHandler.DeleteService)

	// Protected routes
	e.GET("/service/:id", serviceHandler.GetService, authMiddleware.Authenticate)
	e.GET("/services/:email", serviceHandler.ListProviderServices, authMiddleware.Authenticate)
}
