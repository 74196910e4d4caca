package kafka_test

import (
	"context"
	"encore/infras/kafka"
	"errors"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingEvent struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{Key: "b-1", Value: bookingEvent{Type: "booking.created", BookingID: "b-1"}}

	encoded, err := message.ToKafkaMessage("booking-events")
	require.NoError(t, err)
	assert.Equal(t, "booking-events", encoded.Topic)
	assert.Equal(t, []byte("b-1"), encoded.Key)
	assert.JSONEq(t, `{"type":"booking.created","booking_id":"b-1"}`, string(encoded.Value))

	decoded, err := kafka.DecodeKafkaMessage[bookingEvent](encoded)
	require.NoError(t, err)
	assert.Equal(t, "b-1", decoded.BookingID)
}

func TestDecodeKafkaMessageRejectsGarbage(t *testing.T) {
	_, err := kafka.DecodeKafkaMessage[bookingEvent](kafkaGo.Message{Value: []byte("not json")})

	assert.Error(t, err)
}

func TestToKafkaMessageRejectsUnmarshalable(t *testing.T) {
	message := kafka.Message{Key: "b-1", Value: make(chan int)}

	_, err := message.ToKafkaMessage("booking-events")

	assert.Error(t, err)
}

type stubReader struct {
	messages  []kafkaGo.Message
	fetched   int
	committed []int64
}

func (r *stubReader) FetchMessage(ctx context.Context) (kafkaGo.Message, error) {
	if r.fetched == len(r.messages) {
		<-ctx.Done()

		return kafkaGo.Message{}, ctx.Err()
	}

	msg := r.messages[r.fetched]
	r.fetched++

	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	for _, msg := range msgs {
		r.committed = append(r.committed, msg.Offset)
	}

	return nil
}

func TestConsumeReader_RetriesFailedMessageBeforeMovingOn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &stubReader{messages: []kafkaGo.Message{{Offset: 1}, {Offset: 2}}}

	var handled []int64

	handler := func(_ context.Context, msg kafkaGo.Message) error {
		handled = append(handled, msg.Offset)

		if msg.Offset == 1 && len(handled) < 3 {
			return errors.New("mail provider unavailable")
		}

		if msg.Offset == 2 {
			cancel()
		}

		return nil
	}

	err := kafka.ConsumeReader(ctx, reader, "booking-events", handler, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 1, 2}, handled)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestConsumeReader_NeverCommitsPastAFailingMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &stubReader{messages: []kafkaGo.Message{{Offset: 7}, {Offset: 8}}}

	attempts := 0
	handler := func(_ context.Context, msg kafkaGo.Message) error {
		attempts++
		if attempts == 4 {
			cancel()
		}

		return errors.New("mail provider unavailable")
	}

	err := kafka.ConsumeReader(ctx, reader, "booking-events", handler, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, reader.fetched, "the next message must not be fetched while the first still fails")
	assert.Empty(t, reader.committed)
}
