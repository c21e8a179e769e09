package usecase

import (
	"context"

	"skillserve/internal/domain/entity"
	"skillserve/internal/domain/repository"
)

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
}

func NewBookingUseCase(bookingRepo repository.BookingRepository) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
	}
}

func (uc *BookingUseCase) ListBookingsByEmail(ctx context.Context, email string, asProvider bool) ([]*entity.Booking, error) {
	return uc.bookingRepo.ListByEmail(ctx, email, asProvider)
}

func (uc *BookingUseCase) AddBooking(ctx context.Context, booking *entity.Booking) (*entity.InsertResult, error) {
	id, err := uc.bookingRepo.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}
	return &entity.InsertResult{InsertedID: id}, nil
}

func (uc *BookingUseCase) UpdateBookingStatus(ctx context.Context, id string, status string) (*entity.WriteResult, error) {
	if err := validateDocumentID(id); err != nil {
		return nil, err
	}
	return uc.bookingRepo.UpdateStatus(ctx, id, status)
}
