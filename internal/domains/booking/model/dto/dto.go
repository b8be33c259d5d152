package dto

import (
	"stay/internal/domains/booking/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingDetailRequest struct {
	RoomTypeID    string `json:"room_type_id"    validate:"required,uuid"`
	Quantity      int    `json:"quantity"        validate:"required,min=1"`
	GuestsPerRoom int    `json:"guests_per_room" validate:"omitempty,min=1"`
}

type CreateBookingRequest struct {
	HotelID         string                       `json:"hotel_id"         validate:"required,uuid"`
	CheckIn         string                       `json:"check_in"         validate:"required,dateonly"`
	CheckOut        string                       `json:"check_out"        validate:"required,dateonly"`
	GuestCount      int                          `json:"guest_count"      validate:"required,min=1"`
	PaymentMethod   *string                      `json:"payment_method"   validate:"omitempty,max=50"`
	PromotionCode   *string                      `json:"promotion_code"   validate:"omitempty,max=50"`
	SpecialRequests *string                      `json:"special_requests" validate:"omitempty"`
	Details         []CreateBookingDetailRequest `json:"details"          validate:"omitempty,dive"`
}

func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(guestID string, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         guestID,
		HotelID:         c.HotelID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		GuestCount:      c.GuestCount,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentStatusUnpaid,
		PaymentMethod:   c.PaymentMethod,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guestID,
			ModifiedBy: guestID,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateStatusFields struct {
	Status string `db:"status"`
}

type BookingDetailResponse struct {
	ID            string `json:"id"`
	RoomTypeID    string `json:"room_type_id"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
	Subtotal      int64  `json:"subtotal"`
	GuestsPerRoom int    `json:"guests_per_room"`
}

func (r *BookingDetailResponse) FromModel(mod model.BookingDetail) {
	r.ID = mod.ID
	r.RoomTypeID = mod.RoomTypeID
	r.Quantity = mod.Quantity
	r.UnitPrice = mod.UnitPrice
	r.Subtotal = mod.Subtotal
	r.GuestsPerRoom = mod.GuestsPerRoom
}

type BookingResponse struct {
	ID              string                  `json:"id"`
	GuestID         string                  `json:"guest_id"`
	HotelID         string                  `json:"hotel_id"`
	CheckIn         string                  `json:"check_in"`
	CheckOut        string                  `json:"check_out"`
	GuestCount      int                     `json:"guest_count"`
	TotalPrice      int64                   `json:"total_price"`
	Status          string                  `json:"status"`
	PaymentStatus   string                  `json:"payment_status"`
	PaymentMethod   *string                 `json:"payment_method,omitempty"`
	PromotionID     *string                 `json:"promotion_id,omitempty"`
	SpecialRequests *string                 `json:"special_requests,omitempty"`
	Details         []BookingDetailResponse `json:"details,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.GuestID = mod.GuestID
	r.HotelID = mod.HotelID
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	r.GuestCount = mod.GuestCount
	r.TotalPrice = mod.TotalPrice
	r.Status = mod.Status
	r.PaymentStatus = mod.PaymentStatus
	r.PaymentMethod = mod.PaymentMethod
	r.PromotionID = mod.PromotionID
	r.SpecialRequests = mod.SpecialRequests
	r.Metadata.FromModel(mod.Metadata)
}

func (r *BookingResponse) WithDetails(details []model.BookingDetail) {
	r.Details = make([]BookingDetailResponse, len(details))
	for i, detail := range details {
		r.Details[i].FromModel(detail)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
