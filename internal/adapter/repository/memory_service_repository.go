package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"skillserve/internal/domain/entity"
	"skillserve/internal/domain/repository"
	"skillserve/pkg/errors"
)

// memoryServiceRepository mirrors the Firestore adapter's contract without a
// store round trip. Tests and local runs without credentials use it.
type memoryServiceRepository struct {
	mu       sync.RWMutex
	services map[string]entity.Service
	order    []string
}

func NewMemoryServiceRepository() repository.ServiceRepository {
	return &memoryServiceRepository{
		services: make(map[string]entity.Service),
	}
}

func (r *memoryServiceRepository) List(ctx context.Context, search string, limit int) ([]*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search = strings.ToLower(search)
	var services []*entity.Service
	for _, id := range r.order {
		service, ok := r.services[id]
		if !ok {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(service.Name), search) {
			continue
		}
		s := service
		services = append(services, &s)
		if limit > 0 && len(services) == limit {
			break
		}
	}

	return services, nil
}

func (r *memoryServiceRepository) ListByProviderEmail(ctx context.Context, email string) ([]*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var services []*entity.Service
	for _, id := range r.order {
		service, ok := r.services[id]
		if !ok || service.Provider.Email != email {
			continue
		}
		s := service
		services = append(services, &s)
	}

	return services, nil
}

func (r *memoryServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[id]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}

	s := service
	return &s, nil
}

func (r *memoryServiceRepository) Insert(ctx context.Context, service *entity.Service) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	service.ID = uuid.NewString()
	r.services[service.ID] = *service
	r.order = append(r.order, service.ID)

	return service.ID, nil
}

func (r *memoryServiceRepository) ReplaceFields(ctx context.Context, id string, fields entity.ServiceFields) (*entity.WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	service, ok := r.services[id]
	if !ok {
		r.services[id] = entity.Service{
			ID:          id,
			Name:        fields.Name,
			Price:       fields.Price,
			Description: fields.Description,
			Image:       fields.Image,
			ServiceArea: fields.ServiceArea,
		}
		r.order = append(r.order, id)
		return &entity.WriteResult{UpsertedID: id}, nil
	}

	service.Name = fields.Name
	service.Price = fields.Price
	service.Description = fields.Description
	service.Image = fields.Image
	service.ServiceArea = fields.ServiceArea
	r.services[id] = service

	return &entity.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *memoryServiceRepository) DeleteByID(ctx context.Context, id string) (*entity.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return &entity.DeleteResult{DeletedCount: 0}, nil
	}

	delete(r.services, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return &entity.DeleteResult{DeletedCount: 1}, nil
}
