package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"skillserve/internal/domain/entity"
	"skillserve/internal/domain/repository"
	"skillserve/pkg/errors"
)

const serviceCollection = "services"

type firestoreServiceRepository struct {
	client *firestore.Client
}

func NewFirestoreServiceRepository(client *firestore.Client) repository.ServiceRepository {
	return &firestoreServiceRepository{
		client: client,
	}
}

func (r *firestoreServiceRepository) List(ctx context.Context, search string, limit int) ([]*entity.Service, error) {
	if search == "" {
		query := r.client.Collection(serviceCollection).Query
		if limit > 0 {
			query = query.Limit(limit)
		}
		return r.collect(ctx, query)
	}

	// Firestore has no substring queries, so name search fetches the
	// collection and filters here. Fine at this data size; a dedicated
	// search service would be the next step beyond it.
	all, err := r.collect(ctx, r.client.Collection(serviceCollection).Query)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(search)
	var services []*entity.Service
	for _, service := range all {
		if strings.Contains(strings.ToLower(service.Name), search) {
			services = append(services, service)
			if limit > 0 && len(services) == limit {
				break
			}
		}
	}

	return services, nil
}

func (r *firestoreServiceRepository) ListByProviderEmail(ctx context.Context, email string) ([]*entity.Service, error) {
	query := r.client.Collection(serviceCollection).Where("provider.email", "==", email)
	return r.collect(ctx, query)
}

func (r *firestoreServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	doc, err := r.client.Collection(serviceCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Service", err)
		}
		return nil, errors.Internal("Failed to get service", err)
	}

	var service entity.Service
	if err := doc.DataTo(&service); err != nil {
		return nil, errors.Internal("Failed to parse service data", err)
	}

	return &service, nil
}

func (r *firestoreServiceRepository) Insert(ctx context.Context, service *entity.Service) (string, error) {
	doc := r.client.Collection(serviceCollection).NewDoc()
	service.ID = doc.ID

	if _, err := doc.Set(ctx, service); err != nil {
		return "", errors.Internal("Failed to insert service", err)
	}

	return service.ID, nil
}

func (r *firestoreServiceRepository) ReplaceFields(ctx context.Context, id string, fields entity.ServiceFields) (*entity.WriteResult, error) {
	docRef := r.client.Collection(serviceCollection).Doc(id)

	exists := true
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) != codes.NotFound {
			return nil, errors.Internal("Failed to look up service", err)
		}
		exists = false
	}

	// Merge-set touches exactly these fields; anything else already on the
	// document survives. When no document matches, this creates one (upsert).
	update := map[string]interface{}{
		"id":          id,
		"name":        fields.Name,
		"price":       fields.Price,
		"description": fields.Description,
		"image":       fields.Image,
		"serviceArea": fields.ServiceArea,
	}

	if _, err := docRef.Set(ctx, update, firestore.MergeAll); err != nil {
		return nil, errors.Internal("Failed to update service", err)
	}

	if !exists {
		return &entity.WriteResult{UpsertedID: id}, nil
	}
	return &entity.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *firestoreServiceRepository) DeleteByID(ctx context.Context, id string) (*entity.DeleteResult, error) {
	docRef := r.client.Collection(serviceCollection).Doc(id)

	// Probe first so a miss reports zero deletions instead of a blind success.
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.DeleteResult{DeletedCount: 0}, nil
		}
		return nil, errors.Internal("Failed to look up service", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return nil, errors.Internal("Failed to delete service", err)
	}

	return &entity.DeleteResult{DeletedCount: 1}, nil
}

func (r *firestoreServiceRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Service, error) {
	iter := query.Documents(ctx)
	var services []*entity.Service

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate services", err)
		}

		var service entity.Service
		if err := doc.DataTo(&service); err != nil {
			return nil, errors.Internal("Failed to parse service data", err)
		}
		services = append(services, &service)
	}

	return services, nil
}
