package pages

import (
	"bytes"
	"context"
	"encore/config"
	"encore/infras/otel"
	"encore/internal/domains/booking/editor"
	bookingModel "encore/internal/domains/booking/model"
	bookingDto "encore/internal/domains/booking/model/dto"
	bookingService "encore/internal/domains/booking/service"
	"encore/internal/domains/identity"
	showDto "encore/internal/domains/show/model/dto"
	showRepository "encore/internal/domains/show/repository"
	showService "encore/internal/domains/show/service"
	"encore/shared/constant"
	gDto "encore/shared/dto"
	"encore/shared/failure"
	"encore/shared/timezone"
	"encore/shared/validator"
	"encore/transport/http/response"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathAdmin         = "/pages/admin"
	pathManageBooking = "/pages/manage_booking"

	homeShowLimit = 6
	manageLimit   = 20
)

type sessionKey struct{}

type Handler struct {
	identity identity.Provider
	bookings bookingService.Booking
	shows    showService.Show
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	identity identity.Provider,
	bookings bookingService.Booking,
	shows showService.Show,
	cfg *config.Config,
	otel otel.Otel,
) Handler {
	return Handler{
		identity: identity,
		bookings: bookings,
		shows:    shows,
		cfg:      cfg,
		otel:     otel,
	}
}

// Router mounts the site. throttle guards the form posts a bot would hammer.
func (handler *Handler) Router(router chi.Router, throttle func(http.Handler) http.Handler) {
	router.Get("/", handler.Home)

	router.Route("/pages", func(routerGroup chi.Router) {
		routerGroup.Get("/about-us", handler.About)
		routerGroup.Get("/booking", handler.BookingForm)
		routerGroup.With(throttle).Post("/booking", handler.SubmitBooking)
		routerGroup.Get("/booking_status", handler.BookingStatus)
		routerGroup.Get("/verify-email", handler.VerifyEmail)

		routerGroup.Get("/admin", handler.AdminLogin)
		routerGroup.With(throttle).Post("/admin", handler.SignIn)
		routerGroup.Post("/admin/logout", handler.SignOut)

		routerGroup.Group(func(gated chi.Router) {
			gated.Use(handler.RequireSession)
			gated.Get("/manage_booking", handler.ManageBooking)
			gated.Get("/manage_booking/edit", handler.EditDialog)
			gated.Post("/manage_booking/edit", handler.SaveDialog)
		})
	})
}

// RequireSession sends visitors without a live session to the sign-in page.
func (handler *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := handler.observe(r)
		if !ok {
			http.Redirect(w, r, pathAdmin, http.StatusSeeOther)

			return
		}

		ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, session.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, session.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, session.Role)
		ctx = context.WithValue(ctx, sessionKey{}, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (handler *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Home")
	defer scope.End()

	data := handler.page(r, "Home")

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{showRepository.FilterUpcoming(timezone.Now())},
	}

	shows, err := handler.shows.GetAll(ctx, gDto.QueryParams{Page: constant.DefaultValuePage, Limit: homeShowLimit}, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load upcoming shows")

		shows = showDto.GetShowsResponse{}
	}

	data.Data = shows

	render(w, http.StatusOK, pageHome, data)
}

func (handler *Handler) About(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, pageAbout, handler.page(r, "About us"))
}

type bookingPage struct {
	Form    bookingDto.CreateBookingRequest
	Created *bookingDto.BookingResponse
}

func (handler *Handler) BookingForm(w http.ResponseWriter, r *http.Request) {
	data := handler.page(r, "Book a show")
	data.Data = bookingPage{}

	render(w, http.StatusOK, pageBooking, data)
}

func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	data := handler.page(r, "Book a show")

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse booking form")

		data.Error = "The form could not be read. Please try again."
		data.Data = bookingPage{}
		render(w, http.StatusBadRequest, pageBooking, data)

		return
	}

	req := bookingDto.CreateBookingRequest{
		Name:      r.PostFormValue(bookingModel.FieldName),
		Email:     r.PostFormValue(bookingModel.FieldEmail),
		Phone:     r.PostFormValue(bookingModel.FieldPhone),
		Venue:     r.PostFormValue(bookingModel.FieldVenue),
		EventDate: r.PostFormValue(bookingModel.FieldEventDate),
		EventTime: r.PostFormValue(bookingModel.FieldEventTime),
		Message:   r.PostFormValue(bookingModel.FieldMessage),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		data.Error = failure.GetMessage(err)
		data.Data = bookingPage{Form: req}
		render(w, http.StatusBadRequest, pageBooking, data)

		return
	}

	created, err := handler.bookings.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking from form")

		data.Error = failure.GetMessage(err)
		data.Data = bookingPage{Form: req}
		render(w, failure.GetCode(err), pageBooking, data)

		return
	}

	data.Data = bookingPage{Created: &created}

	render(w, http.StatusCreated, pageBooking, data)
}

type statusPage struct {
	ID     string
	Email  string
	Status *bookingDto.PublicStatusResponse
}

// BookingStatus shows the lookup form, or the booking once both id and email are given.
func (handler *Handler) BookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingStatus")
	defer scope.End()

	id := r.URL.Query().Get(constant.RequestParamID)
	email := r.URL.Query().Get(constant.RequestParamEmail)

	data := handler.page(r, "Booking status")
	lookup := statusPage{ID: id, Email: email}

	if id == "" || email == "" {
		data.Data = lookup
		render(w, http.StatusOK, pageBookingStatus, data)

		return
	}

	status, err := handler.bookings.PublicStatus(ctx, id, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to look up booking status")

		data.Error = "We could not find a booking with that ID and email."
		data.Data = lookup
		render(w, failure.GetCode(err), pageBookingStatus, data)

		return
	}

	lookup.Status = &status
	data.Data = lookup

	render(w, http.StatusOK, pageBookingStatus, data)
}

func (handler *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyEmail")
	defer scope.End()

	data := handler.page(r, "Email verification")

	status, err := handler.bookings.VerifyEmail(ctx, r.URL.Query().Get(constant.RequestParamToken))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify booking email")

		data.Error = failure.GetMessage(err)
		render(w, failure.GetCode(err), pageVerifyEmail, data)

		return
	}

	data.Data = status

	render(w, http.StatusOK, pageVerifyEmail, data)
}

// AdminLogin shows the sign-in form. A visitor who is already signed in goes straight to the dashboard.
func (handler *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := handler.observe(r); ok {
		http.Redirect(w, r, pathManageBooking, http.StatusSeeOther)

		return
	}

	render(w, http.StatusOK, pageAdmin, handler.page(r, "Admin sign in"))
}

// SignIn shows the provider's error exactly as it was reported.
func (handler *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignIn")
	defer scope.End()

	data := handler.page(r, "Admin sign in")

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)

		data.Error = "The form could not be read. Please try again."
		render(w, http.StatusBadRequest, pageAdmin, data)

		return
	}

	email := strings.TrimSpace(r.PostFormValue(constant.RequestParamEmail))

	session, err := handler.identity.SignIn(ctx, email, r.PostFormValue("password"))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("email", email).Msg("admin sign in rejected")

		data.Error = err.Error()
		data.Data = email
		render(w, http.StatusUnauthorized, pageAdmin, data)

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     handler.cfg.App.Session.CookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(session.ExpiresIn),
		HttpOnly: true,
		Secure:   handler.cfg.App.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	scope.AddEvent("Admin signed in " + session.Email)

	http.Redirect(w, r, pathManageBooking, http.StatusSeeOther)
}

func (handler *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     handler.cfg.App.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.cfg.App.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, pathAdmin, http.StatusSeeOther)
}

type managePage struct {
	Counts   bookingModel.Counts
	Bookings bookingDto.GetBookingsResponse
	Page     int
}

func (handler *Handler) ManageBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ManageBooking")
	defer scope.End()

	data := handler.page(r, "Manage bookings")

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Limit = manageLimit

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}
	if status := r.URL.Query().Get(bookingModel.FieldStatus); status != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: bookingModel.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status})
	}

	manage := managePage{Page: queryParams.Page}
	code := http.StatusOK

	bookings, err := handler.bookings.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings for dashboard")

		data.Error = failure.GetMessage(err)
		code = failure.GetCode(err)
	}

	manage.Bookings = bookings

	// a corrupt status fails the counters loudly but the table is still shown
	counts, err := handler.bookings.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to tally bookings for dashboard")

		data.Error = failure.GetMessage(err)
		code = failure.GetCode(err)
	}

	manage.Counts = counts
	data.Data = manage

	render(w, code, pageManageBooking, data)
}

// EditDialog renders the edit dialog fragment for one booking. Without a selection it renders nothing.
func (handler *Handler) EditDialog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditDialog")
	defer scope.End()

	dialog, err := handler.open(ctx, r.URL.Query().Get(constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open edit dialog")

		writeFragment(w, failure.GetCode(err), nil, err)

		return
	}

	writeFragment(w, http.StatusOK, dialog, nil)
}

// SaveDialog applies the submitted form to the draft and saves it.
func (handler *Handler) SaveDialog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveDialog")
	defer scope.End()

	id := r.URL.Query().Get(constant.RequestParamID)

	dialog, err := handler.open(ctx, id)
	if err != nil || dialog == nil {
		if err == nil {
			err = failure.BadRequestFromString("no booking selected")
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open edit dialog for save")

		writeFragment(w, failure.GetCode(err), nil, err)

		return
	}

	if err = r.ParseForm(); err != nil {
		err = failure.BadRequest(err)
		writeFragment(w, http.StatusBadRequest, dialog, err)

		return
	}

	if err = applyForm(dialog, r); err != nil {
		writeFragment(w, http.StatusBadRequest, dialog, failure.BadRequest(err))

		return
	}

	req, err := dialog.BeginSave()
	if err != nil {
		writeFragment(w, http.StatusBadRequest, dialog, failure.BadRequest(err))

		return
	}

	saved, err := handler.bookings.Update(ctx, req, id)
	dialog.EndSave()

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to save booking from dialog")

		writeFragment(w, failure.GetCode(err), dialog, err)

		return
	}

	if closeErr := dialog.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("failed to close edit dialog")
	}

	if saved.Sound != "" {
		w.Header().Set("X-Sound-Cue", saved.Sound)
	}

	http.Redirect(w, r, pathManageBooking, http.StatusSeeOther)
}

func (handler *Handler) open(ctx context.Context, id string) (*editor.Dialog, error) {
	if id == "" {
		return nil, nil
	}

	booking, err := handler.bookings.Get(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	selected := booking.ToModel()

	return editor.Open(&selected), nil
}

func applyForm(dialog *editor.Dialog, r *http.Request) error {
	err := dialog.Edit(func(draft *bookingModel.Booking) {
		draft.Name = r.PostFormValue(bookingModel.FieldName)
		draft.Email = r.PostFormValue(bookingModel.FieldEmail)
		draft.Phone = r.PostFormValue(bookingModel.FieldPhone)
		draft.Venue = r.PostFormValue(bookingModel.FieldVenue)
		draft.EventDate = r.PostFormValue(bookingModel.FieldEventDate)
		draft.EventTime = r.PostFormValue(bookingModel.FieldEventTime)
		draft.Message = r.PostFormValue(bookingModel.FieldMessage)

		notes := r.PostFormValue(bookingModel.FieldNotes)
		draft.Notes = &notes
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	if status := r.PostFormValue(bookingModel.FieldStatus); status != "" {
		return dialog.SetStatus(status) //nolint:wrapcheck
	}

	return nil
}

// writeFragment answers with the dialog markup alone. A nil dialog with no error is a 204.
func writeFragment(w http.ResponseWriter, code int, dialog *editor.Dialog, cause error) {
	var buf bytes.Buffer

	if cause != nil {
		if err := alert.Execute(&buf, failure.GetMessage(cause)); err != nil {
			log.Error().Err(err).Msg("failed to render dialog alert")
		}
	}

	if err := editor.Render(&buf, dialog); err != nil {
		log.Error().Err(err).Msg("failed to render edit dialog")

		code = http.StatusInternalServerError
	}

	if buf.Len() == 0 {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	response.WithHTML(w, code, buf.Bytes())
}

func (handler *Handler) observe(r *http.Request) (identity.Session, bool) {
	if session, ok := r.Context().Value(sessionKey{}).(identity.Session); ok {
		return session, true
	}

	cookie, err := r.Cookie(handler.cfg.App.Session.CookieName)
	if err != nil {
		if !errors.Is(err, http.ErrNoCookie) {
			log.Debug().Err(err).Msg("failed to read session cookie")
		}

		return identity.Session{}, false
	}

	return handler.identity.Observe(r.Context(), cookie.Value)
}

func (handler *Handler) page(r *http.Request, title string) page {
	_, session := handler.observe(r)

	return page{
		App:     handler.cfg.App.Name,
		Title:   title,
		Session: session,
	}
}
