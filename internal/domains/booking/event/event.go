package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"encore/config"
	"encore/infras/kafka"
	"encore/infras/otel"
	"encore/internal/domains/booking/model"
	"encore/shared/constant"
	"encore/shared/timezone"
	"time"
)

const (
	TypeCreated       = "booking.created"
	TypeStatusChanged = "booking.status_changed"
)

type Event struct {
	Type           string       `json:"type"`
	BookingID      string       `json:"booking_id"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	Venue          string       `json:"venue"`
	EventDate      string       `json:"event_date"`
	Status         model.Status `json:"status"`
	PreviousStatus model.Status `json:"previous_status,omitempty"`
	Reopened       bool         `json:"reopened,omitempty"`
	OccurredAt     time.Time    `json:"occurred_at"`
}

func Created(booking model.Booking) Event {
	return Event{
		Type:       TypeCreated,
		BookingID:  booking.ID,
		Email:      booking.Email,
		Name:       booking.Name,
		Venue:      booking.Venue,
		EventDate:  booking.EventDate,
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	}
}

func StatusChanged(booking model.Booking, change model.Change) Event {
	event := Created(booking)
	event.Type = TypeStatusChanged
	event.Status = change.To
	event.PreviousStatus = change.From
	event.Reopened = change.Reopened

	return event
}

// Publisher emits booking events keyed by booking id, so one booking's events stay ordered.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topics.Booking,
		otel:   otel,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.Finish(&err)

	messages := make([]kafka.Message, len(events))
	for i, event := range events {
		messages[i] = kafka.Message{Key: event.BookingID, Value: event}
	}

	return p.client.SendMessages(ctx, p.topic, messages...) //nolint:wrapcheck
}
