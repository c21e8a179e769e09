package router

import (
	"github.com/labstack/echo/v4"

	"skillserve/internal/adapter/api/handler"
	"skillserve/internal/adapter/api/middleware"
)

// SetupBookingRouter initializes booking routes
func SetupBookingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bookingHandler := handler.GetBookingHandler()

	e.POST("/bookings", bookingHandler.AddBooking)
	e.PATCH("/bookings/:id", bookingHandler.UpdateBookingStatus)

	e.GET("/bookings/:email", bookingHandler.ListBookings, authMiddleware.Authenticate)
}
