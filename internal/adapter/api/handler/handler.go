package handler

import (
	"time"

	"skillserve/internal/usecase"
)

var (
	authHandler    *AuthHandler
	serviceHandler *ServiceHandler
	bookingHandler *BookingHandler
	healthHandler  *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	serviceUseCase *usecase.ServiceUseCase,
	bookingUseCase *usecase.BookingUseCase,
	cookieExpiry time.Duration,
	production bool,
) {
	authHandler = NewAuthHandler(authUseCase, cookieExpiry, production)
	serviceHandler = NewServiceHandler(serviceUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetServiceHandler() *ServiceHandler {
	return serviceHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
