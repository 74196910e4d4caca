package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encore/infras/otel"
	bookingRepository "encore/internal/domains/booking/repository"
	"encore/internal/domains/message/model"
	"encore/internal/domains/message/model/dto"
	"encore/internal/domains/message/repository"
	"encore/shared/constant"
	gDto "encore/shared/dto"
	"encore/shared/failure"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Broadcaster fans a payload out to everyone watching a room.
type Broadcaster interface {
	Broadcast(room string, payload any) error
}

type Message interface {
	List(ctx context.Context, bookingID string) (dto.GetMessagesResponse, error)
	// Send posts into a booking's thread as the admin.
	Send(ctx context.Context, req dto.SendMessageRequest, bookingID string) (dto.MessageResponse, error)
	// SendPublic posts as the customer, who proves ownership with the booking email.
	SendPublic(ctx context.Context, req dto.SendMessageRequest, bookingID, email string) (dto.MessageResponse, error)
}

type serviceImpl struct {
	repo     repository.Message
	bookings bookingRepository.Booking
	otel     otel.Otel
	hub      Broadcaster
}

func New(repo repository.Message, bookings bookingRepository.Booking, otel otel.Otel, hub Broadcaster) Message {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		otel:     otel,
		hub:      hub,
	}
}

// Room is the websocket room a booking's thread is broadcast to.
func Room(bookingID string) string {
	return model.EntityName + ":" + bookingID
}

func (s *serviceImpl) List(ctx context.Context, bookingID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.Finish(&err)

	if err = s.ensureBooking(ctx, bookingRepository.FilterByID(bookingID)); err != nil {
		return res, err
	}

	records, err := s.repo.ListByBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to list messages")

		return res, fmt.Errorf("failed to list messages: %w", err)
	}

	res.FromModels(records)

	return res, nil
}

func (s *serviceImpl) Send(ctx context.Context, req dto.SendMessageRequest, bookingID string) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.Finish(&err)

	if err = s.ensureBooking(ctx, bookingRepository.FilterByID(bookingID)); err != nil {
		return res, err
	}

	return s.post(ctx, req.ToModel(bookingID, model.SenderAdmin))
}

func (s *serviceImpl) SendPublic(ctx context.Context, req dto.SendMessageRequest, bookingID, email string) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendPublic")
	defer scope.Finish(&err)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == constant.Empty {
		return res, failure.BadRequestFromString("booking email is required")
	}

	if err = s.ensureBooking(ctx, bookingRepository.FilterByIDAndEmail(bookingID, email)); err != nil {
		return res, err
	}

	return s.post(ctx, req.ToModel(bookingID, model.SenderUser))
}

func (s *serviceImpl) post(ctx context.Context, message model.Message) (res dto.MessageResponse, err error) {
	if message.Text == constant.Empty {
		return res, failure.BadRequestFromString("message text is required")
	}

	record, err := s.repo.Insert(ctx, message)
	if err != nil {
		log.Error().Err(err).Str("booking_id", message.BookingID).Msg("failed to save message")

		return res, fmt.Errorf("failed to save message: %w", err)
	}

	res.FromModel(record)

	if err := s.hub.Broadcast(Room(message.BookingID), res); err != nil {
		log.Warn().Err(err).Str("booking_id", message.BookingID).Msg("failed to broadcast message")
	}

	return res, nil
}

func (s *serviceImpl) ensureBooking(ctx context.Context, filter gDto.FilterGroup) error {
	booking, err := s.bookings.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	return nil
}
