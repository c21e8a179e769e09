package handler

import (
	"github.com/labstack/echo/v4"

	"skillserve/internal/domain/entity"
	"skillserve/internal/usecase"
	"skillserve/pkg/errors"
	"skillserve/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type updateBookingStatusRequest struct {
	Status string `json:"status"`
}

// ListBookings returns the bookings tied to an email. The `provider` query
// flag decides which side of the booking the email is matched against.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	email := c.Param("email")
	asProvider := c.QueryParams().Has("provider")

	bookings, err := h.bookingUseCase.ListBookingsByEmail(c.Request().Context(), email, asProvider)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) AddBooking(c echo.Context) error {
	var booking entity.Booking
	if err := c.Bind(&booking); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.bookingUseCase.AddBooking(c.Request().Context(), &booking)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	id := c.Param("id")

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.bookingUseCase.UpdateBookingStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
