package model

import (
	"stay/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldRoomTypeID = "room_type_id"
	FieldRoomNumber = "room_number"
	FieldStatus     = "status"
	FieldBookingID  = "booking_id"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID         string  `db:"id"`
	HotelID    string  `db:"hotel_id"`
	RoomTypeID string  `db:"room_type_id"`
	RoomNumber string  `db:"room_number"`
	Floor      int     `db:"floor"`
	Status     string  `db:"status"`
	BookingID  *string `db:"booking_id"`
	model.Metadata
}
