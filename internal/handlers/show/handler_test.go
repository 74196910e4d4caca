package show_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore/infras/otel/mocks"
	"encore/internal/domains/show/model"
	"encore/internal/domains/show/model/dto"
	serviceMocks "encore/internal/domains/show/service/mocks"
	"encore/internal/handlers/show"
	gDto "encore/shared/dto"
)

func newRouter(t *testing.T) (*serviceMocks.MockShow, http.Handler) {
	t.Helper()

	svc := serviceMocks.NewMockShow(gomock.NewController(t))
	handler := show.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestCreateShow_AcceptsSecondsPair(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.CreateShowRequest) (dto.ShowResponse, error) {
			assert.Equal(t, int64(1767225600), req.StartTime.Unix())

			return dto.ShowResponse{ID: "s-1", Title: req.Title}, nil
		})

	body := `{"title":"Live at the Hall","venue":"Hall","start_time":{"seconds":1767225600,"nanoseconds":0}}`
	req := httptest.NewRequest(http.MethodPost, "/shows/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"s-1"`)
}

func TestGetShows_UpcomingByDefault(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		filters int
	}{
		{name: "default hides past shows", target: "/shows/", filters: 1},
		{name: "all includes past shows", target: "/shows/?all=true", filters: 0},
		{name: "all=false hides past shows", target: "/shows/?all=false", filters: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetShowsResponse, error) {
					require.Len(t, filter.Filters, tt.filters)

					if tt.filters == 1 {
						f, ok := filter.Filters[0].(gDto.Filter)
						require.True(t, ok)
						assert.Equal(t, model.FieldStartTime, f.Field)
						assert.Equal(t, gDto.FilterOperatorGreaterEq, f.Operator)
					}

					return dto.GetShowsResponse{}, nil
				})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func posterRequest(t *testing.T, contentType string) *http.Request {
	t.Helper()

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="poster"; filename="poster.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/shows/s-1/poster", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestUploadPoster(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().UploadPoster(gomock.Any(), gomock.Any(), "s-1").
		DoAndReturn(func(_ context.Context, req dto.UploadPosterRequest, _ string) (dto.UploadPosterResponse, error) {
			assert.Equal(t, "poster.png", req.Poster.Filename)

			return dto.UploadPosterResponse{URL: "https://cdn.example.com/posters/s-1.png"}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, posterRequest(t, "image/png"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "posters/s-1.png")
}

func TestUploadPoster_RejectsOtherTypes(t *testing.T) {
	_, router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, posterRequest(t, "image/gif"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadPoster_MissingFile(t *testing.T) {
	_, router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/shows/s-1/poster", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
