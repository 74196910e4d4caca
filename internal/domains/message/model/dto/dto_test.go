package dto_test

import (
	"encore/internal/domains/message/model"
	"encore/internal/domains/message/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSendMessageRequest_ToModel(t *testing.T) {
	req := dto.SendMessageRequest{Text: "  see you at soundcheck  "}

	msg := req.ToModel("b1", model.SenderAdmin)

	assert.Equal(t, "b1", msg.BookingID)
	assert.Equal(t, model.SenderAdmin, msg.Sender)
	assert.Equal(t, "see you at soundcheck", msg.Text)
	assert.Positive(t, msg.Timestamp)
}

func TestMessage_PersistedFormHasNoID(t *testing.T) {
	req := dto.SendMessageRequest{Text: "hello"}

	raw, err := bson.Marshal(req.ToModel("b1", model.SenderUser))
	assert.NoError(t, err)

	_, err = bson.Raw(raw).LookupErr("_id")
	assert.Error(t, err)
}

func TestMessageResponse_FromModel(t *testing.T) {
	id := primitive.NewObjectID()

	var res dto.MessageResponse
	res.FromModel(model.Record{
		ID:      id,
		Message: model.Message{BookingID: "b1", Sender: model.SenderUser, Text: "hi", Timestamp: 1700000000000},
	})

	assert.Equal(t, id.Hex(), res.ID)
	assert.Equal(t, "user", res.Sender)
	assert.Equal(t, int64(1700000000000), res.Timestamp)
}

func TestParseSender(t *testing.T) {
	sender, err := model.ParseSender("admin")
	assert.NoError(t, err)
	assert.Equal(t, model.SenderAdmin, sender)

	_, err = model.ParseSender("bot")
	assert.ErrorIs(t, err, model.ErrInvalidSender)
}
