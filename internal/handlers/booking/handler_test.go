package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore/infras/otel/mocks"
	"encore/internal/domains/booking/model"
	"encore/internal/domains/booking/model/dto"
	serviceMocks "encore/internal/domains/booking/service/mocks"
	"encore/internal/handlers/booking"
	gDto "encore/shared/dto"
	"encore/shared/failure"
)

func newRouter(t *testing.T) (*serviceMocks.MockBooking, http.Handler) {
	t.Helper()

	svc := serviceMocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestCreateBooking(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
			assert.Equal(t, "Ada", req.Name)

			return dto.BookingResponse{ID: "b-1", Name: req.Name, Status: "pending"}, nil
		})

	rec := serve(router, http.MethodPost, "/bookings/",
		`{"name":"Ada","email":"ada@example.com","venue":"Hall","event_date":"2026-12-01"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"b-1"`)
}

func TestCreateBooking_InvalidBody(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodPost, "/bookings/", `{"name":"Ada"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookings_OnlyNonEmptyFilters(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			require.Len(t, filter.Filters, 1)

			f, ok := filter.Filters[0].(gDto.Filter)
			require.True(t, ok)
			assert.Equal(t, model.FieldStatus, f.Field)
			assert.Equal(t, "confirmed", f.Value)

			return dto.GetBookingsResponse{TotalPage: 1}, nil
		})

	rec := serve(router, http.MethodGet, "/bookings/?status=confirmed&email=", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetStats(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Stats(gomock.Any()).Return(model.Counts{Total: 3, Pending: 1, Confirmed: 1, Cancelled: 1}, nil)

	rec := serve(router, http.MethodGet, "/bookings/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data model.Counts `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.Counts{Total: 3, Pending: 1, Confirmed: 1, Cancelled: 1}, body.Data)
}

func TestGetStats_CorruptStatus(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Stats(gomock.Any()).Return(model.Counts{}, failure.InternalError(model.ErrInvalidStatus))

	rec := serve(router, http.MethodGet, "/bookings/stats", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateStatus(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().UpdateStatus(gomock.Any(), dto.UpdateStatusRequest{Status: "confirmed"}, "b-1").
		Return(dto.StatusChangeResponse{Status: "confirmed", Sound: "confirm"}, nil)

	rec := serve(router, http.MethodPatch, "/bookings/b-1/status", `{"status":"confirmed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sound":"confirm"`)
}

func TestUpdateStatus_TracesChange(t *testing.T) {
	svc := serviceMocks.NewMockBooking(gomock.NewController(t))
	recorder := mocks.NewRecorder()
	handler := booking.New(svc, recorder)

	router := chi.NewRouter()
	handler.Router(router)

	svc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "b-1").
		Return(dto.StatusChangeResponse{Status: "cancelled"}, nil)
	svc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "b-2").
		Return(dto.StatusChangeResponse{}, failure.NotFound("booking not found"))

	serve(router, http.MethodPatch, "/bookings/b-1/status", `{"status":"cancelled"}`)
	rec := serve(router, http.MethodPatch, "/bookings/b-2/status", `{"status":"cancelled"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"Booking b-1 is now cancelled"}, recorder.EventList())
	require.Len(t, recorder.ErrorList(), 1)
	assert.EqualError(t, recorder.ErrorList()[0], "booking not found")
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodPatch, "/bookings/b-1/status", `{"status":"archived"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBooking(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any(), "b-1").
		Return(dto.SaveBookingResponse{Booking: dto.BookingResponse{ID: "b-1"}, Reopened: true}, nil)

	rec := serve(router, http.MethodPatch, "/bookings/b-1",
		`{"name":"Ada","email":"ada@example.com","status":"pending"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reopened":true`)
}

func TestGetPublicStatus(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().PublicStatus(gomock.Any(), "b-1", "ada@example.com").
		Return(dto.PublicStatusResponse{}, failure.NotFound("booking not found"))

	rec := serve(router, http.MethodGet, "/public/bookings/b-1/status?email=ada@example.com", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
