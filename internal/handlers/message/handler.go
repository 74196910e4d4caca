package message

import (
	"encore/infras/otel"
	"encore/internal/domains/message/model/dto"
	"encore/internal/domains/message/service"
	"encore/shared/constant"
	"encore/shared/validator"
	"encore/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Streamer upgrades a request into a websocket subscribed to one room.
type Streamer interface {
	Serve(w http.ResponseWriter, r *http.Request, room string) error
}

type Handler struct {
	service service.Message
	stream  Streamer
	otel    otel.Otel
}

func New(service service.Message, stream Streamer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		stream:  stream,
		otel:    otel,
	}
}

// Router mounts the admin thread and the public send route. publicGuard wraps the public route only.
func (handler *Handler) Router(router chi.Router, publicGuard ...func(http.Handler) http.Handler) {
	router.Route("/bookings/{id}/messages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMessages)
		routerGroup.Post("/", handler.SendMessage)
		routerGroup.Get("/ws", handler.Stream)
	})

	router.With(publicGuard...).Post("/public/bookings/{id}/messages", handler.SendPublicMessage)
}

// GetMessages lists a booking's thread, oldest first.
// @Summary Get a booking's messages
// @Tags Message
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.GetMessagesResponse] "Thread"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/messages [get]
// @Security BearerAuth
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	messages, err := handler.service.List(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list messages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, messages)
}

// SendMessage posts into a booking's thread as the admin.
// @Summary Reply to a customer
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} response.Data[dto.MessageResponse] "Message sent"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SendMessageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	message, err := handler.service.Send(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send message")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, message)
}

// SendPublicMessage posts into a booking's thread as its customer.
// @Summary Message the admins about a booking
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param email query string true "Email the booking was made with"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} response.Data[dto.MessageResponse] "Message sent"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/bookings/{id}/messages [post]
func (handler *Handler) SendPublicMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendPublicMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	email := r.URL.Query().Get(constant.RequestParamEmail)

	req := dto.SendMessageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	message, err := handler.service.SendPublic(ctx, req, id, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send public message")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, message)
}

// Stream pushes new messages of a booking's thread over a websocket.
// @Summary Watch a booking's thread
// @Tags Message
// @Param id path string true "Booking ID"
// @Success 101 "Switching Protocols"
// @Router /v1/bookings/{id}/messages/ws [get]
// @Security BearerAuth
func (handler *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Stream")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	// the upgrader has already answered the request when Serve fails
	if err := handler.stream.Serve(w, r, service.Room(id)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to open message stream")
	}
}
