// Package consumer turns booking events from the broker into customer and admin emails.
package consumer

import (
	"context"
	"encore/config"
	"encore/infras/kafka"
	"encore/infras/otel"
	"encore/internal/domains/booking/event"
	notification "encore/internal/domains/notification/service"
	"encore/shared/constant"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Consumer struct {
	client   kafka.Client
	notifier notification.Notification
	cfg      *config.Config
	otel     otel.Otel
}

func New(client kafka.Client, notifier notification.Notification, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client:   client,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

// Run consumes the booking topic until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().Str("topic", c.cfg.Kafka.Topics.Booking).Msg("Booking consumer started.")

	return c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.Booking, c.Handle) //nolint:wrapcheck
}

// Handle reacts to one event. Undecodable messages are skipped so they cannot block the partition,
// while a failed delivery is returned so the same message is retried.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Handle")
	defer scope.Finish(&err)

	evt, err := kafka.DecodeKafkaMessage[event.Event](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("skipping undecodable booking event")

		return nil
	}

	switch evt.Type {
	case event.TypeCreated:
		if err = c.notifier.NotifyAdmin(ctx, evt); err != nil {
			return fmt.Errorf("failed to notify admin of booking %s: %w", evt.BookingID, err)
		}
	case event.TypeStatusChanged:
		if !evt.Status.Terminal() {
			log.Debug().Str("booking_id", evt.BookingID).Str("status", string(evt.Status)).Msg("no customer email for status")

			return nil
		}

		if err = c.notifier.SendStatusUpdate(ctx, evt); err != nil {
			return fmt.Errorf("failed to email status of booking %s: %w", evt.BookingID, err)
		}
	default:
		log.Warn().Str("type", evt.Type).Msg("ignoring unknown booking event")
	}

	return nil
}

func (c *Consumer) Close() error {
	return c.client.Close() //nolint:wrapcheck
}
