package dto

import (
	"stay/internal/domains/chat/model"
	"stay/shared"
	gModel "stay/shared/model"
	"stay/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	HotelID     string  `json:"hotel_id"     validate:"required,uuid"`
	RecipientID *string `json:"recipient_id" validate:"omitempty,uuid"`
	Body        string  `json:"body"         validate:"required,max=4000"`
}

func (s *SendMessageRequest) ToModel(sender string) model.ChatMessage {
	return model.ChatMessage{
		ID:          uuid.NewString(),
		HotelID:     s.HotelID,
		SenderID:    sender,
		RecipientID: s.RecipientID,
		Body:        s.Body,
		Read:        false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  sender,
			ModifiedBy: sender,
		},
	}
}

type MessageResponse struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotel_id"`
	SenderID    string    `json:"sender_id"`
	RecipientID *string   `json:"recipient_id,omitempty"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	SentAt      time.Time `json:"sent_at"`
}

func (r *MessageResponse) FromModel(mod model.ChatMessage) {
	r.ID = mod.ID
	r.HotelID = mod.HotelID
	r.SenderID = mod.SenderID
	r.RecipientID = mod.RecipientID
	r.Body = mod.Body
	r.Read = mod.Read
	r.SentAt = mod.CreatedAt
}

type ConversationResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *ConversationResponse) FromModels(models []model.ChatMessage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}
