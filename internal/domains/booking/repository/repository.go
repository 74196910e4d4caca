package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encore/infras/mongo"
	"encore/infras/otel"
	"encore/internal/domains/booking/model"
	"encore/shared/docstore"
	gDto "encore/shared/dto"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	// List returns every booking, newest first. It backs the aggregate counters.
	List(ctx context.Context) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Replace(ctx context.Context, model model.Booking) (bool, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	docstore.Collection[model.Booking]
}

func New(db *mongo.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Collection: docstore.NewCollection[model.Booking](model.EntityName, db.Collection(mongo.CollectionBookings), otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	if _, err := r.Collection.Insert(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.Booking, error) {
	return r.Find(ctx, gDto.FilterGroup{}, bson.E{Key: model.FieldCreatedAt, Value: -1}) //nolint:wrapcheck
}

func (r *repositoryImpl) Replace(ctx context.Context, booking model.Booking) (bool, error) {
	return r.Collection.Replace(ctx, booking, FilterByID(booking.ID)) //nolint:wrapcheck
}

func FilterByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id},
		},
	}
}

// FilterByIDAndEmail matches a booking only when the caller knows its contact email.
func FilterByIDAndEmail(id, email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id},
			gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: email},
		},
	}
}
