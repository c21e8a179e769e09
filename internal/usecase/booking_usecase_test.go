package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"skillserve/internal/adapter/repository"
	"skillserve/internal/domain/entity"
)

func newBookingUseCase() *BookingUseCase {
	return NewBookingUseCase(repository.NewMemoryBookingRepository())
}

func seedBookings(t *testing.T, uc *BookingUseCase) {
	t.Helper()
	bookings := []*entity.Booking{
		{ServiceName: "Cleaning", ProviderEmail: "p@x.com", CurrentUserEmail: "u@x.com", Status: "pending"},
		{ServiceName: "Gardening", ProviderEmail: "p@x.com", CurrentUserEmail: "other@x.com", Status: "pending"},
		{ServiceName: "Plumbing", ProviderEmail: "q@x.com", CurrentUserEmail: "u@x.com", Status: "pending"},
	}
	for _, b := range bookings {
		_, err := uc.AddBooking(context.Background(), b)
		assert.NoError(t, err)
	}
}

func TestListBookingsByEmailFilterSelection(t *testing.T) {
	uc := newBookingUseCase()
	seedBookings(t, uc)
	ctx := context.Background()

	asProvider, err := uc.ListBookingsByEmail(ctx, "p@x.com", true)
	assert.NoError(t, err)
	assert.Len(t, asProvider, 2)
	for _, b := range asProvider {
		assert.Equal(t, "p@x.com", b.ProviderEmail)
	}

	asCustomer, err := uc.ListBookingsByEmail(ctx, "u@x.com", false)
	assert.NoError(t, err)
	assert.Len(t, asCustomer, 2)
	for _, b := range asCustomer {
		assert.Equal(t, "u@x.com", b.CurrentUserEmail)
	}

	// The flag, not the populated field, picks the filter side.
	none, err := uc.ListBookingsByEmail(ctx, "u@x.com", true)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateBookingStatus(t *testing.T) {
	uc := newBookingUseCase()
	ctx := context.Background()

	result, err := uc.AddBooking(ctx, &entity.Booking{
		ServiceName: "Cleaning", ProviderEmail: "p@x.com", CurrentUserEmail: "u@x.com", Status: "pending",
	})
	assert.NoError(t, err)

	updated, err := uc.UpdateBookingStatus(ctx, result.InsertedID, "confirmed")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), updated.MatchedCount)

	bookings, err := uc.ListBookingsByEmail(ctx, "u@x.com", false)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, "confirmed", bookings[0].Status)
}

func TestUpdateBookingStatusUnknownIDIsNoOp(t *testing.T) {
	uc := newBookingUseCase()

	result, err := uc.UpdateBookingStatus(context.Background(), "unknown", "confirmed")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.MatchedCount)
	assert.Equal(t, int64(0), result.ModifiedCount)
}
