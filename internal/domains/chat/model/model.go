package model

import "stay/shared/model"

const (
	TableName  = "chat_messages"
	EntityName = "chat_message"

	FieldID          = "id"
	FieldHotelID     = "hotel_id"
	FieldSenderID    = "sender_id"
	FieldRecipientID = "recipient_id"
	FieldRead        = "read"
)

type ChatMessage struct {
	ID          string  `db:"id"`
	HotelID     string  `db:"hotel_id"`
	SenderID    string  `db:"sender_id"`
	RecipientID *string `db:"recipient_id"`
	Body        string  `db:"body"`
	Read        bool    `db:"read"`
	model.Metadata
}
