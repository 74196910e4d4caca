// Package editor models the admin edit dialog for a single booking.
//
// A Dialog owns a draft copy of the selected booking. Nothing is persisted
// until the caller turns the draft into a save request, and closing the
// dialog discards the draft. A nil *Dialog is a closed dialog: every method
// is safe to call on it and it renders nothing.
package editor

import (
	"embed"
	"encore/internal/domains/booking/model"
	"encore/internal/domains/booking/model/dto"
	"errors"
	"html/template"
	"io"
	"strings"
	"sync"
)

var (
	ErrSaveInFlight = errors.New("a save is already in progress")
	ErrClosed       = errors.New("dialog is closed")
)

//go:embed templates/dialog.html
var templateFS embed.FS

var dialogTemplate = template.Must(template.ParseFS(templateFS, "templates/dialog.html"))

type Dialog struct {
	mu     sync.Mutex
	draft  model.Booking
	saving bool
	closed bool
}

// Open starts editing a copy of selected. A nil selection opens nothing.
func Open(selected *model.Booking) *Dialog {
	if selected == nil {
		return nil
	}

	draft := *selected
	if selected.Notes != nil {
		notes := *selected.Notes
		draft.Notes = &notes
	}

	return &Dialog{draft: draft}
}

func (d *Dialog) Draft() model.Booking {
	if d == nil {
		return model.Booking{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.draft
}

// Edit mutates the draft. It is refused while a save is in flight.
func (d *Dialog) Edit(mutate func(draft *model.Booking)) error {
	if d == nil {
		return ErrClosed
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}

	if d.saving {
		return ErrSaveInFlight
	}

	mutate(&d.draft)

	return nil
}

func (d *Dialog) SetStatus(raw string) error {
	status, err := model.ParseStatus(raw)
	if err != nil {
		return err
	}

	return d.Edit(func(draft *model.Booking) { draft.Status = status })
}

func (d *Dialog) CanSave() bool {
	if d == nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return !d.closed && !d.saving && requiredFilled(d.draft)
}

func (d *Dialog) CanCancel() bool {
	if d == nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return !d.closed && !d.saving
}

// BeginSave marks a save as running and returns the request to send.
func (d *Dialog) BeginSave() (dto.UpdateBookingRequest, error) {
	if d == nil {
		return dto.UpdateBookingRequest{}, ErrClosed
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case d.closed:
		return dto.UpdateBookingRequest{}, ErrClosed
	case d.saving:
		return dto.UpdateBookingRequest{}, ErrSaveInFlight
	case !requiredFilled(d.draft):
		return dto.UpdateBookingRequest{}, errors.New("name and email are required")
	}

	d.saving = true

	return toRequest(d.draft), nil
}

// EndSave releases the in-flight flag whatever the save's outcome was.
func (d *Dialog) EndSave() {
	if d == nil {
		return
	}

	d.mu.Lock()
	d.saving = false
	d.mu.Unlock()
}

// Close discards the draft. Closing during a save is refused.
func (d *Dialog) Close() error {
	if d == nil {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.saving {
		return ErrSaveInFlight
	}

	d.closed = true
	d.draft = model.Booking{}

	return nil
}

type view struct {
	Draft     model.Booking
	Notes     string
	Statuses  []model.Status
	CanSave   bool
	CanCancel bool
}

// Render writes the dialog fragment. A nil or closed dialog writes nothing.
func Render(w io.Writer, d *Dialog) error {
	if d == nil {
		return nil
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()

		return nil
	}

	data := view{
		Draft:     d.draft,
		Statuses:  []model.Status{model.StatusPending, model.StatusConfirmed, model.StatusCancelled},
		CanSave:   !d.saving && requiredFilled(d.draft),
		CanCancel: !d.saving,
	}
	if d.draft.Notes != nil {
		data.Notes = *d.draft.Notes
	}
	d.mu.Unlock()

	return dialogTemplate.Execute(w, data) //nolint:wrapcheck
}

func requiredFilled(booking model.Booking) bool {
	return strings.TrimSpace(booking.Name) != "" && strings.TrimSpace(booking.Email) != ""
}

func toRequest(draft model.Booking) dto.UpdateBookingRequest {
	status := draft.Status.String()
	notes := ""

	if draft.Notes != nil {
		notes = *draft.Notes
	}

	return dto.UpdateBookingRequest{
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     &draft.Phone,
		Venue:     &draft.Venue,
		EventDate: &draft.EventDate,
		EventTime: &draft.EventTime,
		Message:   &draft.Message,
		Status:    &status,
		Notes:     &notes,
	}
}
