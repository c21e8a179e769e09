package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"skillserve/internal/domain/entity"
	"skillserve/internal/domain/repository"
)

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]entity.Booking
	order    []string
}

func NewMemoryBookingRepository() repository.BookingRepository {
	return &memoryBookingRepository{
		bookings: make(map[string]entity.Booking),
	}
}

func (r *memoryBookingRepository) ListByEmail(ctx context.Context, email string, asProvider bool) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*entity.Booking
	for _, id := range r.order {
		booking, ok := r.bookings[id]
		if !ok {
			continue
		}
		if asProvider {
			if booking.ProviderEmail != email {
				continue
			}
		} else if booking.CurrentUserEmail != email {
			continue
		}
		b := booking
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *memoryBookingRepository) Insert(ctx context.Context, booking *entity.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = uuid.NewString()
	r.bookings[booking.ID] = *booking
	r.order = append(r.order, booking.ID)

	return booking.ID, nil
}

func (r *memoryBookingRepository) UpdateStatus(ctx context.Context, id string, status string) (*entity.WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return &entity.WriteResult{MatchedCount: 0, ModifiedCount: 0}, nil
	}

	booking.Status = status
	r.bookings[id] = booking

	return &entity.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
}
