package dto

import (
	"encore/internal/domains/message/model"
	"encore/shared/timezone"
	"strings"
)

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

func (r *SendMessageRequest) ToModel(bookingID string, sender model.Sender) model.Message {
	return model.Message{
		BookingID: bookingID,
		Sender:    sender,
		Text:      strings.TrimSpace(r.Text),
		Timestamp: timezone.Now().UnixMilli(),
	}
}

// MessageResponse is the client-facing projection. It is the only shape with an id.
type MessageResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

func (r *MessageResponse) FromModel(record model.Record) {
	r.ID = record.ID.Hex()
	r.BookingID = record.BookingID
	r.Sender = string(record.Sender)
	r.Text = record.Text
	r.Timestamp = record.Timestamp
}

type GetMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

func (r *GetMessagesResponse) FromModels(records []model.Record) {
	r.Messages = make([]MessageResponse, len(records))
	for i, record := range records {
		r.Messages[i].FromModel(record)
	}
}
