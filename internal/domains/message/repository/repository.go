package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encore/infras/mongo"
	"encore/infras/otel"
	"encore/internal/domains/message/model"
	"encore/shared/docstore"
	gDto "encore/shared/dto"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnexpectedID = errors.New("unexpected inserted id")

type Message interface {
	// Insert stores the persisted form and returns the record mongo assigned an id to.
	Insert(ctx context.Context, message model.Message) (model.Record, error)
	// ListByBooking returns a booking's thread, oldest first.
	ListByBooking(ctx context.Context, bookingID string) ([]model.Record, error)
}

type repositoryImpl struct {
	docstore.Collection[model.Record]
}

func New(db *mongo.Connection, otel otel.Otel) Message {
	return &repositoryImpl{
		Collection: docstore.NewCollection[model.Record](model.EntityName, db.Collection(mongo.CollectionMessages), otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, message model.Message) (model.Record, error) {
	insertedID, err := r.Collection.Insert(ctx, message)
	if err != nil {
		return model.Record{}, fmt.Errorf("failed to insert message: %w", err)
	}

	id, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %T", ErrUnexpectedID, insertedID)
	}

	return model.Record{ID: id, Message: message}, nil
}

func (r *repositoryImpl) ListByBooking(ctx context.Context, bookingID string) ([]model.Record, error) {
	return r.Find(ctx, FilterByBooking(bookingID), bson.E{Key: model.FieldTimestamp, Value: 1}) //nolint:wrapcheck
}

func FilterByBooking(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID},
		},
	}
}
