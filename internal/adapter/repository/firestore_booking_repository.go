package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"skillserve/internal/domain/entity"
	"skillserve/internal/domain/repository"
	"skillserve/pkg/errors"
)

const bookingCollection = "bookings"

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) ListByEmail(ctx context.Context, email string, asProvider bool) ([]*entity.Booking, error) {
	field := "currentUserEmail"
	if asProvider {
		field = "providerEmail"
	}

	iter := r.client.Collection(bookingCollection).Where(field, "==", email).Documents(ctx)
	var bookings []*entity.Booking

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate bookings", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, errors.Internal("Failed to parse booking data", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *firestoreBookingRepository) Insert(ctx context.Context, booking *entity.Booking) (string, error) {
	doc := r.client.Collection(bookingCollection).NewDoc()
	booking.ID = doc.ID

	if _, err := doc.Set(ctx, booking); err != nil {
		return "", errors.Internal("Failed to insert booking", err)
	}

	return booking.ID, nil
}

func (r *firestoreBookingRepository) UpdateStatus(ctx context.Context, id string, newStatus string) (*entity.WriteResult, error) {
	docRef := r.client.Collection(bookingCollection).Doc(id)

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
	})
	if err != nil {
		// No upsert here: an unknown booking id is a no-op, not an error.
		if status.Code(err) == codes.NotFound {
			return &entity.WriteResult{MatchedCount: 0, ModifiedCount: 0}, nil
		}
		return nil, errors.Internal("Failed to update booking status", err)
	}

	return &entity.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
}
