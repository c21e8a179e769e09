package usecase

import (
	"context"
	"strings"

	"skillserve/internal/domain/entity"
	"skillserve/internal/domain/repository"
	"skillserve/pkg/errors"
)

type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

func NewServiceUseCase(serviceRepo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{
		serviceRepo: serviceRepo,
	}
}

func (uc *ServiceUseCase) ListServices(ctx context.Context, search string, limit int) ([]*entity.Service, error) {
	if limit < 0 {
		limit = 0
	}
	return uc.serviceRepo.List(ctx, search, limit)
}

func (uc *ServiceUseCase) ListServicesByProvider(ctx context.Context, email string) ([]*entity.Service, error) {
	return uc.serviceRepo.ListByProviderEmail(ctx, email)
}

func (uc *ServiceUseCase) GetServiceByID(ctx context.Context, id string) (*entity.Service, error) {
	if err := validateDocumentID(id); err != nil {
		return nil, err
	}
	return uc.serviceRepo.GetByID(ctx, id)
}

func (uc *ServiceUseCase) AddService(ctx context.Context, service *entity.Service) (*entity.InsertResult, error) {
	id, err := uc.serviceRepo.Insert(ctx, service)
	if err != nil {
		return nil, err
	}
	return &entity.InsertResult{InsertedID: id}, nil
}

func (uc *ServiceUseCase) UpdateService(ctx context.Context, id string, fields entity.ServiceFields) (*entity.WriteResult, error) {
	if err := validateDocumentID(id); err != nil {
		return nil, err
	}
	return uc.serviceRepo.ReplaceFields(ctx, id, fields)
}

func (uc *ServiceUseCase) DeleteService(ctx context.Context, id string) (*entity.DeleteResult, error) {
	if err := validateDocumentID(id); err != nil {
		return nil, err
	}
	return uc.serviceRepo.DeleteByID(ctx, id)
}

// validateDocumentID rejects identifiers the document store would refuse,
// so a malformed path segment turns into a 400 instead of a store fault.
func validateDocumentID(id string) error {
	if id == "" || id == "." || id == ".." {
		return errors.BadRequest("Invalid document id", nil)
	}
	if strings.Contains(id, "/") {
		return errors.BadRequest("Invalid document id", nil)
	}
	if len(id) > 1500 {
		return errors.BadRequest("Invalid document id", nil)
	}
	return nil
}
