package show

import (
	"encore/infras/otel"
	"encore/internal/domains/show/model/dto"
	"encore/internal/domains/show/repository"
	"encore/internal/domains/show/service"
	"encore/shared"
	"encore/shared/constant"
	gDto "encore/shared/dto"
	"encore/shared/failure"
	"encore/shared/timezone"
	"encore/shared/validator"
	"encore/transport/http/response"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Show
	otel    otel.Otel
}

func New(service service.Show, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/shows", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateShow)
		routerGroup.Get("/", handler.GetShows)
		routerGroup.Get("/{id}", handler.GetShowByID)
		routerGroup.Patch("/{id}", handler.UpdateShow)
		routerGroup.Delete("/{id}", handler.DeleteShow)
		routerGroup.Post("/{id}/poster", handler.UploadPoster)
	})
}

// CreateShow schedules a new show.
// @Summary Create a show
// @Description start_time and end_time accept RFC 3339 text, local date-time text, or a {seconds, nanoseconds} pair.
// @Tags Show
// @Accept json
// @Produce json
// @Param request body dto.CreateShowRequest true "Create Show Request"
// @Success 201 {object} response.Data[dto.ShowResponse] "Show created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows [post]
// @Security BearerAuth
func (handler *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateShow")
	defer scope.End()

	req := dto.CreateShowRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	show, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create show")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Show created by " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusCreated, show)
}

// GetShows lists shows, soonest first. Past shows are hidden unless all=true.
// @Summary Get shows
// @Tags Show
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param all query bool false "Include past shows"
// @Success 200 {object} response.Data[dto.GetShowsResponse] "List of shows"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows [get]
func (handler *Handler) GetShows(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShows")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if all := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamAll)); all == nil || !*all {
		filterGroup.Filters = append(filterGroup.Filters, repository.FilterUpcoming(timezone.Now()))
	}

	shows, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shows")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, shows)
}

// GetShowByID retrieves a show by its ID.
// @Summary Get a show by ID
// @Tags Show
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} response.Data[dto.ShowResponse] "Show details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows/{id} [get]
func (handler *Handler) GetShowByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShowByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	show, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get show by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, show)
}

// UpdateShow changes the fields present in the body.
// @Summary Update a show
// @Tags Show
// @Accept json
// @Produce json
// @Param id path string true "Show ID"
// @Param request body dto.UpdateShowRequest true "Update Show Request"
// @Success 200 {object} response.Message "Show updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateShow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateShow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateShowRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update show")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Show updated by " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Show updated successfully")
}

// DeleteShow removes a show and its poster.
// @Summary Delete a show
// @Tags Show
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} response.Message "Show deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteShow(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteShow")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete show")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Show deleted by " + shared.Actor(ctx))

	response.WithMessage(w, http.StatusOK, "Show deleted successfully")
}

// UploadPoster replaces a show's poster image.
// @Summary Upload a show poster
// @Description PNG or JPEG. Wide images are scaled down before they are stored.
// @Tags Show
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Show ID"
// @Param poster formData file true "Poster image"
// @Success 200 {object} response.Data[dto.UploadPosterResponse] "Poster uploaded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shows/{id}/poster [post]
// @Security BearerAuth
func (handler *Handler) UploadPoster(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPoster")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFilePoster)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get poster from form")

		response.WithError(w, failure.BadRequest(fmt.Errorf("failed to get poster from form: %w", err)))

		return
	}
	defer file.Close()

	req := dto.UploadPosterRequest{
		Poster:     fileHeader,
		PosterFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate poster")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadPoster(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload poster")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Poster uploaded by " + shared.Actor(ctx))

	response.WithJSON(w, http.StatusOK, res)
}
