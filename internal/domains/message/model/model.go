package model

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "messages"
	EntityName     = "message"
)

const (
	FieldID        = "_id"
	FieldBookingID = "booking_id"
	FieldSender    = "sender"
	FieldTimestamp = "timestamp"
)

type Sender string

const (
	SenderUser  Sender = "user"
	SenderAdmin Sender = "admin"
)

var ErrInvalidSender = errors.New("invalid sender")

func ParseSender(value string) (Sender, error) {
	switch sender := Sender(value); sender {
	case SenderUser, SenderAdmin:
		return sender, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSender, value)
	}
}

// Message is the persisted form. It carries no identifier of its own.
type Message struct {
	BookingID string `bson:"booking_id"`
	Sender    Sender `bson:"sender"`
	Text      string `bson:"text"`
	// Timestamp is unix milliseconds.
	Timestamp int64 `bson:"timestamp"`
}

// Record is a stored message as read back, with the identifier mongo assigned.
type Record struct {
	ID      primitive.ObjectID `bson:"_id"`
	Message `bson:",inline"`
}
