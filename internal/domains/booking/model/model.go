package model

import (
	"encore/shared/model"
)

const (
	CollectionName = "bookings"
	EntityName     = "booking"

	FieldID            = "_id"
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldVenue         = "venue"
	FieldEventDate     = "event_date"
	FieldEventTime     = "event_time"
	FieldMessage       = "message"
	FieldStatus        = "status"
	FieldNotes         = "notes"
	FieldEmailVerified = "email_verified"
	FieldCreatedAt     = "created_at"
)

// Booking is a customer's show request. It is only ever replaced as a whole document.
type Booking struct {
	ID            string  `bson:"_id"            json:"id"`
	Name          string  `bson:"name"           json:"name"`
	Email         string  `bson:"email"          json:"email"`
	Phone         string  `bson:"phone"          json:"phone"`
	Venue         string  `bson:"venue"          json:"venue"`
	EventDate     string  `bson:"event_date"     json:"event_date"`
	EventTime     string  `bson:"event_time"     json:"event_time"`
	Message       string  `bson:"message"        json:"message"`
	Status        Status  `bson:"status"         json:"status"`
	Notes         *string `bson:"notes,omitempty" json:"notes,omitempty"`
	EmailVerified bool    `bson:"email_verified" json:"email_verified"`
	model.Metadata `bson:",inline"`
}
