package repository

import (
	"context"

	"skillserve/internal/domain/entity"
)

type ServiceRepository interface {
	List(ctx context.Context, search string, limit int) ([]*entity.Service, error)
	ListByProviderEmail(ctx context.Context, email string) ([]*entity.Service, error)
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Insert(ctx context.Context, service *entity.Service) (string, error)
	ReplaceFields(ctx context.Context, id string, fields entity.ServiceFields) (*entity.WriteResult, error)
	DeleteByID(ctx context.Context, id string) (*entity.DeleteResult, error)
}
