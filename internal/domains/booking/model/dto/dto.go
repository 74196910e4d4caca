package dto

import (
	"encore/internal/domains/booking/model"
	"encore/shared"
	gDto "encore/shared/dto"
	gModel "encore/shared/model"
	"encore/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Phone     string `json:"phone"      validate:"omitempty,max=30"`
	Venue     string `json:"venue"      validate:"required,max=200"`
	EventDate string `json:"event_date" validate:"required,day"`
	EventTime string `json:"event_time" validate:"omitempty,max=50"`
	Message   string `json:"message"    validate:"omitempty,max=2000"`
}

func (c *CreateBookingRequest) ToModel(actor string) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(c.Name),
		Email:     strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:     strings.TrimSpace(c.Phone),
		Venue:     strings.TrimSpace(c.Venue),
		EventDate: c.EventDate,
		EventTime: strings.TrimSpace(c.EventTime),
		Message:   c.Message,
		Status:    model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// UpdateBookingRequest is the edit dialog save. Omitted optional fields keep their stored value.
type UpdateBookingRequest struct {
	Name      string  `json:"name"                 validate:"required,max=100"`
	Email     string  `json:"email"                validate:"required,email,max=100"`
	Phone     *string `json:"phone,omitempty"      validate:"omitempty,max=30"`
	Venue     *string `json:"venue,omitempty"      validate:"omitempty,max=200"`
	EventDate *string `json:"event_date,omitempty" validate:"omitempty,day"`
	EventTime *string `json:"event_time,omitempty" validate:"omitempty,max=50"`
	Message   *string `json:"message,omitempty"    validate:"omitempty,max=2000"`
	Status    *string `json:"status,omitempty"     validate:"omitempty,oneof=pending confirmed cancelled"`
	Notes     *string `json:"notes,omitempty"      validate:"omitempty,max=2000"`
}

// Apply returns booking with the request applied and the status change it implies.
func (r *UpdateBookingRequest) Apply(booking model.Booking, actor string) (model.Booking, model.Change, error) {
	to := booking.Status
	if r.Status != nil {
		status, err := model.ParseStatus(*r.Status)
		if err != nil {
			return booking, model.Change{}, err
		}

		to = status
	}

	change, err := model.Transition(booking.Status, to)
	if err != nil {
		return booking, model.Change{}, err
	}

	booking.Name = strings.TrimSpace(r.Name)
	booking.Email = strings.ToLower(strings.TrimSpace(r.Email))
	booking.Status = to

	assign(&booking.Phone, r.Phone)
	assign(&booking.Venue, r.Venue)
	assign(&booking.EventDate, r.EventDate)
	assign(&booking.EventTime, r.EventTime)
	assign(&booking.Message, r.Message)

	if r.Notes != nil {
		notes := strings.TrimSpace(*r.Notes)
		booking.Notes = &notes

		if notes == "" {
			booking.Notes = nil
		}
	}

	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = actor

	return booking, change, nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

type MarkVerifiedRequest struct {
	EmailVerified bool `bson:"email_verified"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Venue         string  `json:"venue"`
	EventDate     string  `json:"event_date"`
	EventTime     string  `json:"event_time"`
	Message       string  `json:"message"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	EmailVerified bool    `json:"email_verified"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Venue = model.Venue
	r.EventDate = model.EventDate
	r.EventTime = model.EventTime
	r.Message = model.Message
	r.Status = model.Status.String()
	r.Notes = model.Notes
	r.EmailVerified = model.EmailVerified
	r.Metadata.FromModel(model.Metadata)
}

// ToModel rebuilds the stored booking, used to open the edit dialog on a fetched booking.
func (r *BookingResponse) ToModel() model.Booking {
	booking := model.Booking{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Venue:         r.Venue,
		EventDate:     r.EventDate,
		EventTime:     r.EventTime,
		Message:       r.Message,
		Status:        model.Status(r.Status),
		EmailVerified: r.EmailVerified,
	}

	if r.Notes != nil {
		notes := *r.Notes
		booking.Notes = &notes
	}

	return booking
}

type SaveBookingResponse struct {
	Booking  BookingResponse `json:"booking"`
	Sound    string          `json:"sound,omitempty"`
	Reopened bool            `json:"reopened"`
}

type StatusChangeResponse struct {
	Status   string `json:"status"`
	Sound    string `json:"sound,omitempty"`
	Reopened bool   `json:"reopened"`
}

func (r *StatusChangeResponse) FromChange(change model.Change) {
	r.Status = change.To.String()
	r.Sound = model.SoundCue(change.To)
	r.Reopened = change.Reopened
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// PublicStatusResponse is what a customer sees about their own booking.
type PublicStatusResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Venue         string `json:"venue"`
	EventDate     string `json:"event_date"`
	EventTime     string `json:"event_time"`
	Status        string `json:"status"`
	EmailVerified bool   `json:"email_verified"`
}

func (r *PublicStatusResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Venue = model.Venue
	r.EventDate = model.EventDate
	r.EventTime = model.EventTime
	r.Status = model.Status.String()
	r.EmailVerified = model.EmailVerified
}
