package communication

import (
	"time"

	"github.com/Knoblauchpilze/record-api/pkg/persistence"
)

// MessageDtoRequest uses pointers so that a missing field can be told apart
// from a zero value. Participants are stored as 32-bit integers.
type MessageDtoRequest struct {
	SenderId   *int64  `json:"sender_id" validate:"required,min=-2147483648,max=2147483647"`
	ReceiverId *int64  `json:"receiver_id,omitempty" validate:"omitempty,min=-2147483648,max=2147483647"`
	Message    *string `json:"message" validate:"required,min=1"`
}

type MessageDtoResponse struct {
	Id         int64  `json:"id"`
	SenderId   int64  `json:"sender_id"`
	ReceiverId *int64 `json:"receiver_id"`
	Message    string `json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

type RecordedMessageDtoResponse struct {
	Message   string `json:"message"`
	MessageId int64  `json:"message_id"`
}

// FromMessageDtoRequest expects a request that went through validation.
func FromMessageDtoRequest(message MessageDtoRequest) persistence.Message {
	out := persistence.Message{
		ReceiverId: message.ReceiverId,
	}
	if message.SenderId != nil {
		out.SenderId = *message.SenderId
	}
	if message.Message != nil {
		out.Message = *message.Message
	}

	return out
}

func ToMessageDtoResponse(message persistence.Message) MessageDtoResponse {
	return MessageDtoResponse{
		Id:         message.Id,
		SenderId:   message.SenderId,
		ReceiverId: message.ReceiverId,
		Message:    message.Message,

		CreatedAt: message.CreatedAt,
	}
}
