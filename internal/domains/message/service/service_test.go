package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"encore/infras/otel/mocks"
	bookingMocks "encore/internal/domains/booking/mocks"
	bookingModel "encore/internal/domains/booking/model"
	messageMocks "encore/internal/domains/message/mocks"
	"encore/internal/domains/message/model"
	"encore/internal/domains/message/model/dto"
	"encore/internal/domains/message/service"
	serviceMocks "encore/internal/domains/message/service/mocks"
	"encore/shared/failure"
)

type fixture struct {
	repo     *messageMocks.MockMessage
	bookings *bookingMocks.MockBooking
	hub      *serviceMocks.MockBroadcaster
	svc      service.Message
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     messageMocks.NewMockMessage(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		hub:      serviceMocks.NewMockBroadcaster(ctrl),
	}

	f.svc = service.New(f.repo, f.bookings, mocks.NewOtel(), f.hub)

	return f
}

func stored(message model.Message) (model.Record, error) {
	return model.Record{ID: primitive.NewObjectID(), Message: message}, nil
}

func TestMessageService_Send(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SendMessageRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "admin message is stored and broadcast",
			req:  dto.SendMessageRequest{Text: "Confirmed for 8pm"},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{ID: "b1"}, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, message model.Message) (model.Record, error) {
						assert.Equal(t, model.SenderAdmin, message.Sender)
						assert.Equal(t, "b1", message.BookingID)

						return stored(message)
					})
				f.hub.EXPECT().
					Broadcast("message:b1", gomock.Any()).
					DoAndReturn(func(_ string, payload any) error {
						res, ok := payload.(dto.MessageResponse)
						require.True(t, ok)
						assert.NotEmpty(t, res.ID)
						assert.Equal(t, "admin", res.Sender)

						return nil
					})
			},
		},
		{
			name: "broadcast failure does not fail the send",
			req:  dto.SendMessageRequest{Text: "hello"},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{ID: "b1"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.Message) (model.Record, error) {
					return stored(m)
				})
				f.hub.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(errors.New("hub closed"))
			},
		},
		{
			name: "unknown booking",
			req:  dto.SendMessageRequest{Text: "hello"},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantCode: 404,
			wantErr:  true,
		},
		{
			name: "blank text",
			req:  dto.SendMessageRequest{Text: "   "},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{ID: "b1"}, nil)
			},
			wantCode: 400,
			wantErr:  true,
		},
		{
			name: "insert fails",
			req:  dto.SendMessageRequest{Text: "hello"},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{ID: "b1"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.Record{}, errors.New("timeout"))
			},
			wantCode: 500,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Send(context.Background(), tt.req, "b1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestMessageService_SendPublic(t *testing.T) {
	t.Run("customer message", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{ID: "b1", Email: "ada@example.com"}, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message model.Message) (model.Record, error) {
				assert.Equal(t, model.SenderUser, message.Sender)

				return stored(message)
			})
		f.hub.EXPECT().Broadcast("message:b1", gomock.Any()).Return(nil)

		res, err := f.svc.SendPublic(context.Background(), dto.SendMessageRequest{Text: "Can we start at 9?"}, "b1", " Ada@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, "user", res.Sender)
	})

	t.Run("missing email", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SendPublic(context.Background(), dto.SendMessageRequest{Text: "hi"}, "b1", "")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("email does not match", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		_, err := f.svc.SendPublic(context.Background(), dto.SendMessageRequest{Text: "hi"}, "b1", "eve@example.com")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestMessageService_List(t *testing.T) {
	f := newFixture(t)

	first := primitive.NewObjectID()

	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{ID: "b1"}, nil)
	f.repo.EXPECT().ListByBooking(gomock.Any(), "b1").Return([]model.Record{
		{ID: first, Message: model.Message{BookingID: "b1", Sender: model.SenderUser, Text: "hi", Timestamp: 1}},
		{ID: primitive.NewObjectID(), Message: model.Message{BookingID: "b1", Sender: model.SenderAdmin, Text: "hello", Timestamp: 2}},
	}, nil)

	res, err := f.svc.List(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, first.Hex(), res.Messages[0].ID)
	assert.Equal(t, "admin", res.Messages[1].Sender)
}
