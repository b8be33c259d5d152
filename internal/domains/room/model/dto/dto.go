package dto

import (
	"stay/internal/domains/room/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID    string `json:"hotel_id"     validate:"required,uuid"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	RoomNumber string `json:"room_number"  validate:"required,max=20"`
	Floor      int    `json:"floor"        validate:"omitempty,min=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		HotelID:    c.HotelID,
		RoomTypeID: c.RoomTypeID,
		RoomNumber: c.RoomNumber,
		Floor:      c.Floor,
		Status:     model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber string `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	Floor      int    `db:"floor"       json:"floor"       validate:"omitempty,min=0"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
}

type AssignRoomRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type RoomResponse struct {
	ID         string  `json:"id"`
	HotelID    string  `json:"hotel_id"`
	RoomTypeID string  `json:"room_type_id"`
	RoomNumber string  `json:"room_number"`
	Floor      int     `json:"floor"`
	Status     string  `json:"status"`
	BookingID  *string `json:"booking_id,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.HotelID = mod.HotelID
	r.RoomTypeID = mod.RoomTypeID
	r.RoomNumber = mod.RoomNumber
	r.Floor = mod.Floor
	r.Status = mod.Status
	r.BookingID = mod.BookingID
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
