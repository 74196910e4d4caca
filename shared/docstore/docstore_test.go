package docstore_test

import (
	"encore/shared/docstore"
	"encore/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFindOptions(t *testing.T) {
	tests := []struct {
		name   string
		params dto.QueryParams
		skip   *int64
		limit  *int64
		sort   any
	}{
		{
			name:   "no params",
			params: dto.QueryParams{},
		},
		{
			name:   "first page",
			params: dto.QueryParams{Page: 1, Limit: 10},
			skip:   int64Ptr(0),
			limit:  int64Ptr(10),
		},
		{
			name:   "third page sorted descending",
			params: dto.QueryParams{Page: 3, Limit: 20, SortBy: "created_at", SortDir: dto.SortDirDesc},
			skip:   int64Ptr(40),
			limit:  int64Ptr(20),
			sort:   bson.D{{Key: "created_at", Value: -1}},
		},
		{
			name:   "sort without direction is ascending",
			params: dto.QueryParams{SortBy: "event_date"},
			sort:   bson.D{{Key: "event_date", Value: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := docstore.FindOptions(tt.params)

			assert.Equal(t, tt.skip, opts.Skip)
			assert.Equal(t, tt.limit, opts.Limit)
			assert.Equal(t, tt.sort, opts.Sort)
		})
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
