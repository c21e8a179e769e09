package repository

import (
	"context"

	"skillserve/internal/domain/entity"
)

type BookingRepository interface {
	ListByEmail(ctx context.Context, email string, asProvider bool) ([]*entity.Booking, error)
	Insert(ctx context.Context, booking *entity.Booking) (string, error)
	UpdateStatus(ctx context.Context, id string, status string) (*entity.WriteResult, error)
}
