package docstore

import (
	"context"
	"encore/infras/otel"
	"encore/shared/constant"
	"encore/shared/dto"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	sortAscending  = 1
	sortDescending = -1
	otelAttrFilter = "filter"
)

var ErrRequiredFilter = errors.New("required filter")

// Collection is the document store counterpart of the sqlx Repository: one typed
// mongo collection queried through dto.FilterGroup.
type Collection[T any] struct {
	collection *mongo.Collection
	otel       otel.Otel
	entity     string
}

func NewCollection[T any](entityName string, collection *mongo.Collection, otl otel.Otel) Collection[T] {
	return Collection[T]{
		collection: collection,
		otel:       otl,
		entity:     entityName,
	}
}

func (c *Collection[T]) scope(ctx context.Context, method string, filter dto.FilterGroup) (context.Context, otel.Scope, bson.M) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, c.entity, method))

	query := filter.ToBSON()
	scope.SetAttribute(otelAttrFilter, query)

	return ctx, scope, query
}

// Insert stores doc and returns the id mongo assigned or kept.
func (c *Collection[T]) Insert(ctx context.Context, doc any) (insertedID any, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, c.entity))
	defer scope.Finish(&err)

	res, err := c.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert data (%s): %w", c.entity, err)
	}

	return res.InsertedID, nil
}

// Get returns the zero T when nothing matches.
func (c *Collection[T]) Get(ctx context.Context, filter dto.FilterGroup) (model T, err error) {
	ctx, scope, query := c.scope(ctx, "Get", filter)
	defer scope.Finish(&err)

	err = c.collection.FindOne(ctx, query).Decode(&model)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model, nil
	}

	if err != nil {
		return model, fmt.Errorf("failed to get data (%s): %w", c.entity, err)
	}

	return model, nil
}

func (c *Collection[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) (models []T, err error) {
	ctx, scope, query := c.scope(ctx, "GetAll", filter)
	defer scope.Finish(&err)

	return c.find(ctx, query, FindOptions(params))
}

// Find returns every match, unpaginated.
func (c *Collection[T]) Find(ctx context.Context, filter dto.FilterGroup, sort ...bson.E) (models []T, err error) {
	ctx, scope, query := c.scope(ctx, "Find", filter)
	defer scope.Finish(&err)

	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(bson.D(sort))
	}

	return c.find(ctx, query, opts)
}

func (c *Collection[T]) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]T, error) {
	cursor, err := c.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get all data (%s): %w", c.entity, err)
	}

	models := []T{}
	if err = cursor.All(ctx, &models); err != nil {
		return nil, fmt.Errorf("failed to decode data (%s): %w", c.entity, err)
	}

	return models, nil
}

func (c *Collection[T]) Exist(ctx context.Context, filter dto.FilterGroup) (exist bool, err error) {
	ctx, scope, query := c.scope(ctx, "Exist", filter)
	defer scope.Finish(&err)

	if len(query) == 0 {
		return false, ErrRequiredFilter
	}

	count, err := c.collection.CountDocuments(ctx, query, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check exist data (%s): %w", c.entity, err)
	}

	return count > 0, nil
}

func (c *Collection[T]) Count(ctx context.Context, filter dto.FilterGroup) (count int, err error) {
	ctx, scope, query := c.scope(ctx, "Count", filter)
	defer scope.Finish(&err)

	total, err := c.collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count data (%s): %w", c.entity, err)
	}

	return int(total), nil
}

// Update applies a $set of fields to the first match and reports whether anything matched.
func (c *Collection[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) (matched bool, err error) {
	ctx, scope, query := c.scope(ctx, "Update", filter)
	defer scope.Finish(&err)

	if len(query) == 0 {
		return false, ErrRequiredFilter
	}

	res, err := c.collection.UpdateOne(ctx, query, bson.M{"$set": fields})
	if err != nil {
		return false, fmt.Errorf("failed to update data (%s): %w", c.entity, err)
	}

	return res.MatchedCount > 0, nil
}

// Replace writes doc back as a whole document.
func (c *Collection[T]) Replace(ctx context.Context, doc T, filter dto.FilterGroup) (matched bool, err error) {
	ctx, scope, query := c.scope(ctx, "Replace", filter)
	defer scope.Finish(&err)

	if len(query) == 0 {
		return false, ErrRequiredFilter
	}

	res, err := c.collection.ReplaceOne(ctx, query, doc)
	if err != nil {
		return false, fmt.Errorf("failed to replace data (%s): %w", c.entity, err)
	}

	return res.MatchedCount > 0, nil
}

func (c *Collection[T]) Delete(ctx context.Context, filter dto.FilterGroup) (err error) {
	ctx, scope, query := c.scope(ctx, "Delete", filter)
	defer scope.Finish(&err)

	if len(query) == 0 {
		return ErrRequiredFilter
	}

	if _, err = c.collection.DeleteOne(ctx, query); err != nil {
		return fmt.Errorf("failed to delete data (%s): %w", c.entity, err)
	}

	return nil
}

// FindOptions maps pagination params onto skip, limit and sort.
func FindOptions(params dto.QueryParams) *options.FindOptions {
	opts := options.Find()

	if params.Limit > 0 {
		opts.SetLimit(int64(params.Limit))

		if params.Page > 0 {
			opts.SetSkip(int64(params.Offset()))
		}
	}

	if params.SortBy != "" {
		direction := sortAscending
		if strings.EqualFold(params.SortDir, dto.SortDirDesc) {
			direction = sortDescending
		}

		opts.SetSort(bson.D{{Key: params.SortBy, Value: direction}})
	}

	return opts
}
