package model

import (
	"stay/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldHotelID   = "hotel_id"
	FieldUserID    = "user_id"
	FieldRating    = "rating"
)

type Review struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	HotelID   string  `db:"hotel_id"`
	UserID    string  `db:"user_id"`
	Rating    int     `db:"rating"`
	Comment   *string `db:"comment"`
	model.Metadata
}
