package message_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore/infras/otel/mocks"
	"encore/internal/domains/message/model/dto"
	"encore/internal/domains/message/service"
	serviceMocks "encore/internal/domains/message/service/mocks"
	"encore/internal/handlers/message"
	"encore/shared/failure"
)

type recordingStream struct {
	rooms []string
}

func (s *recordingStream) Serve(w http.ResponseWriter, _ *http.Request, room string) error {
	s.rooms = append(s.rooms, room)
	w.WriteHeader(http.StatusSwitchingProtocols)

	return nil
}

func newRouter(t *testing.T) (*serviceMocks.MockMessage, *recordingStream, http.Handler) {
	t.Helper()

	svc := serviceMocks.NewMockMessage(gomock.NewController(t))
	stream := &recordingStream{}
	handler := message.New(svc, stream, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, stream, router
}

func TestGetMessages(t *testing.T) {
	svc, _, router := newRouter(t)

	svc.EXPECT().List(gomock.Any(), "b-1").Return(dto.GetMessagesResponse{
		Messages: []dto.MessageResponse{{BookingID: "b-1", Sender: "user", Text: "hello"}},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/b-1/messages/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"text":"hello"`)
}

func TestSendMessage(t *testing.T) {
	svc, _, router := newRouter(t)

	svc.EXPECT().Send(gomock.Any(), dto.SendMessageRequest{Text: "see you there"}, "b-1").
		Return(dto.MessageResponse{BookingID: "b-1", Sender: "admin", Text: "see you there"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings/b-1/messages/", strings.NewReader(`{"text":"see you there"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sender":"admin"`)
}

func TestSendMessage_EmptyText(t *testing.T) {
	_, _, router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings/b-1/messages/", strings.NewReader(`{"text":""}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendPublicMessage_WrongEmail(t *testing.T) {
	svc, _, router := newRouter(t)

	svc.EXPECT().SendPublic(gomock.Any(), dto.SendMessageRequest{Text: "hi"}, "b-1", "eve@example.com").
		Return(dto.MessageResponse{}, failure.NotFound("booking"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/public/bookings/b-1/messages?email=eve@example.com", strings.NewReader(`{"text":"hi"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStream_JoinsBookingRoom(t *testing.T) {
	_, stream, router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/b-1/messages/ws", nil))

	assert.Equal(t, []string{service.Room("b-1")}, stream.rooms)
}
