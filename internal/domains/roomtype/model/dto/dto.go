package dto

import (
	"stay/internal/domains/roomtype/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	HotelID     string  `json:"hotel_id"    validate:"required,uuid"`
	Name        string  `json:"name"        validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty"`
	BasePrice   int64   `json:"base_price"  validate:"required,gt=0"`
	Capacity    int     `json:"capacity"    validate:"required,min=1"`
	TotalRooms  int     `json:"total_rooms" validate:"required,min=1"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:          uuid.NewString(),
		HotelID:     c.HotelID,
		Name:        c.Name,
		Description: c.Description,
		BasePrice:   c.BasePrice,
		Capacity:    c.Capacity,
		TotalRooms:  c.TotalRooms,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description *string `db:"description" json:"description" validate:"omitempty"`
	BasePrice   int64   `db:"base_price"  json:"base_price"  validate:"omitempty,gt=0"`
	Capacity    int     `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	TotalRooms  int     `db:"total_rooms" json:"total_rooms" validate:"omitempty,min=1"`
	Active      *bool   `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	HotelID     string  `json:"hotel_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	BasePrice   int64   `json:"base_price"`
	Capacity    int     `json:"capacity"`
	TotalRooms  int     `json:"total_rooms"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.HotelID = mod.HotelID
	r.Name = mod.Name
	r.Description = mod.Description
	r.BasePrice = mod.BasePrice
	r.Capacity = mod.Capacity
	r.TotalRooms = mod.TotalRooms
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
