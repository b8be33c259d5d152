package model

import (
	"stay/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldGuestID       = "guest_id"
	FieldHotelID       = "hotel_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldPromotionID   = "promotion_id"
)

const (
	DetailTableName  = "booking_details"
	DetailEntityName = "booking_detail"

	DetailFieldID         = "id"
	DetailFieldBookingID  = "booking_id"
	DetailFieldRoomTypeID = "room_type_id"
	DetailFieldQuantity   = "quantity"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
	StatusCompleted = "completed"
	StatusNoShow    = "no_show"
)

const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// AllowedStatusTargets are the states UpdateStatus accepts. Bookings start in
// pending and may move to any of these; there is no stricter transition graph.
var AllowedStatusTargets = map[string]struct{}{
	StatusConfirmed: {},
	StatusCanceled:  {},
	StatusCompleted: {},
	StatusNoShow:    {},
}

type Booking struct {
	ID              string    `db:"id"`
	GuestID         string    `db:"guest_id"`
	HotelID         string    `db:"hotel_id"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	GuestCount      int       `db:"guest_count"`
	TotalPrice      int64     `db:"total_price"`
	Status          string    `db:"status"`
	PaymentStatus   string    `db:"payment_status"`
	PaymentMethod   *string   `db:"payment_method"`
	PromotionID     *string   `db:"promotion_id"`
	SpecialRequests *string   `db:"special_requests"`
	model.Metadata
}

type BookingDetail struct {
	ID            string `db:"id"`
	BookingID     string `db:"booking_id"`
	RoomTypeID    string `db:"room_type_id"`
	Quantity      int    `db:"quantity"`
	UnitPrice     int64  `db:"unit_price"`
	Subtotal      int64  `db:"subtotal"`
	GuestsPerRoom int    `db:"guests_per_room"`
	model.Metadata
}
