package email

import (
	"encore/infras/otel"
	"encore/internal/domains/notification/model/dto"
	"encore/internal/domains/notification/service"
	"encore/shared/constant"
	"encore/shared/failure"
	"encore/shared/validator"
	"encore/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/send-email", handler.SendEmail)
}

// SendEmail relays one message through the email provider.
// @Summary Send an email
// @Description Every failure answers 500 with success=false: an invalid body, a provider error or the send timeout.
// @Tags Email
// @Accept json
// @Produce json
// @Param request body dto.SendEmailRequest true "Email"
// @Success 200 {object} response.Result[dto.SendEmailResponse] "Accepted by the provider"
// @Failure 500 {object} response.Result[any]
// @Router /api/send-email [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func (handler *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendEmail")
	defer scope.End()

	req := dto.SendEmailRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithFailure(w, failure.InternalError(err))

		return
	}

	res, err := handler.service.SendEmail(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("to", req.To).Msg("failed to send email")

		response.WithFailure(w, failure.InternalError(err))

		return
	}

	scope.AddEvent("Email accepted by provider " + res.ID)

	response.WithSuccess(w, res)
}
