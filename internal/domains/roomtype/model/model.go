package model

import (
	"stay/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldName       = "name"
	FieldBasePrice  = "base_price"
	FieldCapacity   = "capacity"
	FieldTotalRooms = "total_rooms"
	FieldActive     = "active"
)

type RoomType struct {
	ID          string  `db:"id"`
	HotelID     string  `db:"hotel_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	BasePrice   int64   `db:"base_price"`
	Capacity    int     `db:"capacity"`
	TotalRooms  int     `db:"total_rooms"`
	Active      bool    `db:"active"`
	model.Metadata
}
