package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encore/infras/mongo"
	"encore/infras/otel"
	"encore/internal/domains/show/model"
	"encore/shared/docstore"
	gDto "encore/shared/dto"
	"fmt"
	"time"
)

type Show interface {
	Insert(ctx context.Context, model model.Show) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Show, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Show, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	docstore.Collection[model.Show]
}

func New(db *mongo.Connection, otel otel.Otel) Show {
	return &repositoryImpl{
		Collection: docstore.NewCollection[model.Show](model.EntityName, db.Collection(mongo.CollectionShows), otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, show model.Show) error {
	if _, err := r.Collection.Insert(ctx, show); err != nil {
		return fmt.Errorf("failed to insert show: %w", err)
	}

	return nil
}

func FilterByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id},
		},
	}
}

// FilterUpcoming keeps shows starting at or after from.
func FilterUpcoming(from time.Time) gDto.Filter {
	return gDto.Filter{Field: model.FieldStartTime, Operator: gDto.FilterOperatorGreaterEq, Value: from.UTC()}
}
