package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/otel/mocks"
	authzMocks "stay/internal/authz/mocks"
	bookingMocks "stay/internal/domains/booking/mocks"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/service"
	promotionMocks "stay/internal/domains/promotion/mocks"
	roomtypeMocks "stay/internal/domains/roomtype/mocks"
	roomtypeModel "stay/internal/domains/roomtype/model"
	eventMocks "stay/internal/events/mocks"
	"stay/shared/cache"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
)

type bookingFixture struct {
	repo       *bookingMocks.MockBooking
	roomTypes  *roomtypeMocks.MockRoomType
	promotions *promotionMocks.MockPromotion
	authorizer *authzMocks.MockAuthorizer
	events     *eventMocks.MockPublisher
	svc        service.Booking
}

func newBookingFixture(t *testing.T, ctrl *gomock.Controller) bookingFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	testCache := cache.NewRedisCache(client, mocks.NewOtel())

	f := bookingFixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		roomTypes:  roomtypeMocks.NewMockRoomType(ctrl),
		promotions: promotionMocks.NewMockPromotion(ctrl),
		authorizer: authzMocks.NewMockAuthorizer(ctrl),
		events:     eventMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.repo, f.roomTypes, f.promotions, f.authorizer, f.events, &config.Config{}, testCache, mocks.NewOtel())

	return f
}

func guestContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyRoleID, constant.RoleUser)
}

func adminContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyRoleID, constant.RoleAdmin)
}

func TestBookingService_Create(t *testing.T) {
	deluxe := roomtypeModel.RoomType{
		ID:         "2b1e0f57-1111-4d2a-9c0a-000000000001",
		HotelID:    "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		Name:       "Deluxe",
		BasePrice:  500000,
		Capacity:   2,
		TotalRooms: 10,
		Active:     true,
	}

	validReq := dto.CreateBookingRequest{
		HotelID:    deluxe.HotelID,
		CheckIn:    "2026-09-10",
		CheckOut:   "2026-09-12",
		GuestCount: 4,
		Details: []dto.CreateBookingDetailRequest{
			{RoomTypeID: deluxe.ID, Quantity: 2},
		},
	}

	t.Run("prices from room type and keeps the total invariant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		f.repo.EXPECT().
			CountOverlappingRooms(gomock.Any(), deluxe.ID, gomock.Any(), gomock.Any()).
			Return(3, nil)

		f.repo.EXPECT().
			CreateWithDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking, details []model.BookingDetail) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.Equal(t, "guest-1", booking.GuestID)
				assert.Len(t, details, 1)
				assert.Equal(t, int64(500000), details[0].UnitPrice)
				assert.Equal(t, int64(1000000), details[0].Subtotal)

				var sum int64
				for _, detail := range details {
					sum += detail.Subtotal
				}

				assert.Equal(t, sum, booking.TotalPrice)
				assert.Equal(t, booking.ID, details[0].BookingID)

				return nil
			})

		f.events.EXPECT().
			BookingCreated(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(guestContext("guest-1"), validReq)
		assert.NoError(t, err)
		assert.Equal(t, int64(1000000), res.TotalPrice)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Len(t, res.Details, 1)
	})

	t.Run("empty detail array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		req := validReq
		req.Details = nil

		_, err := f.svc.Create(guestContext("guest-1"), req)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.EqualError(t, err, "must include at least one room detail")
	})

	t.Run("check-out not after check-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		req := validReq
		req.CheckOut = req.CheckIn

		_, err := f.svc.Create(guestContext("guest-1"), req)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown room type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomtypeModel.RoomType{}, nil)

		_, err := f.svc.Create(guestContext("guest-1"), validReq)
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
		assert.EqualError(t, err, "room type not found")
	})

	t.Run("not enough rooms available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		f.repo.EXPECT().
			CountOverlappingRooms(gomock.Any(), deluxe.ID, gomock.Any(), gomock.Any()).
			Return(9, nil)

		_, err := f.svc.Create(guestContext("guest-1"), validReq)
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.EqualError(t, err, "not enough rooms available")
	})

	t.Run("rejects oversell split across duplicate detail lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		small := deluxe
		small.TotalRooms = 3

		req := validReq
		req.Details = []dto.CreateBookingDetailRequest{
			{RoomTypeID: small.ID, Quantity: 2},
			{RoomTypeID: small.ID, Quantity: 2},
		}

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(small, nil)

		f.repo.EXPECT().
			CountOverlappingRooms(gomock.Any(), small.ID, gomock.Any(), gomock.Any()).
			Return(0, nil)

		_, err := f.svc.Create(guestContext("guest-1"), req)
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.EqualError(t, err, "not enough rooms available")
	})

	t.Run("sums duplicate detail lines within capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		req := validReq
		req.Details = []dto.CreateBookingDetailRequest{
			{RoomTypeID: deluxe.ID, Quantity: 2},
			{RoomTypeID: deluxe.ID, Quantity: 3},
		}

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		f.repo.EXPECT().
			CountOverlappingRooms(gomock.Any(), deluxe.ID, gomock.Any(), gomock.Any()).
			Return(5, nil)

		f.repo.EXPECT().
			CreateWithDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking, details []model.BookingDetail) error {
				assert.Len(t, details, 2)
				assert.Equal(t, int64(2500000), booking.TotalPrice)

				return nil
			})

		f.events.EXPECT().
			BookingCreated(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(guestContext("guest-1"), req)
		assert.NoError(t, err)
		assert.Equal(t, int64(2500000), res.TotalPrice)
	})

	t.Run("persist failure returns no booking and publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		f.repo.EXPECT().
			CountOverlappingRooms(gomock.Any(), deluxe.ID, gomock.Any(), gomock.Any()).
			Return(0, nil)

		f.repo.EXPECT().
			CreateWithDetails(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("failed to insert booking details: connection reset"))

		res, err := f.svc.Create(guestContext("guest-1"), validReq)
		assert.Error(t, err)
		assert.ErrorContains(t, err, "failed to create booking")
		assert.Equal(t, 500, failure.GetCode(err))
		assert.Empty(t, res.ID)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	booking := model.Booking{
		ID:      "booking-1",
		GuestID: "guest-1",
		HotelID: "hotel-1",
		Status:  model.StatusPending,
	}

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		err := f.svc.UpdateStatus(guestContext("owner-1"), dto.UpdateBookingStatusRequest{Status: "checked_in"}, booking.ID)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.EqualError(t, err, "invalid booking status")
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := f.svc.UpdateStatus(guestContext("owner-1"), dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}, "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
		assert.EqualError(t, err, "booking not found")
	})

	t.Run("confirm publishes status event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "owner-1", constant.RoleUser, "hotel-1").
			Return(nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.events.EXPECT().
			BookingStatusChanged(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.UpdateStatus(guestContext("owner-1"), dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}, booking.ID)
		assert.NoError(t, err)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	booking := model.Booking{
		ID:      "booking-1",
		GuestID: "guest-1",
		HotelID: "hotel-1",
		Status:  model.StatusPending,
	}

	t.Run("guest cancels own booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.events.EXPECT().
			BookingStatusChanged(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Cancel(guestContext("guest-1"), booking.ID)
		assert.NoError(t, err)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "stranger", constant.RoleUser, "hotel-1").
			Return(failure.Forbidden("you do not have permission to manage this hotel"))

		err := f.svc.Cancel(guestContext("stranger"), booking.ID)
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{
		ID:      "booking-1",
		GuestID: "guest-1",
		HotelID: "hotel-1",
		Status:  model.StatusPending,
	}

	t.Run("guest reads own booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.repo.EXPECT().
			GetDetails(gomock.Any(), booking.ID).
			Return(nil, nil)

		res, err := f.svc.Get(guestContext("guest-1"), booking.ID)
		assert.NoError(t, err)
		assert.Equal(t, booking.ID, res.ID)
	})

	t.Run("stranger cannot read another guest's booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.repo.EXPECT().
			GetDetails(gomock.Any(), booking.ID).
			Return(nil, nil)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "stranger", constant.RoleUser, "hotel-1").
			Return(failure.Forbidden("you do not have permission to manage this hotel"))

		res, err := f.svc.Get(guestContext("stranger"), booking.ID)
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
		assert.Empty(t, res.ID)
	})

	t.Run("hotel manager reads a guest booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.repo.EXPECT().
			GetDetails(gomock.Any(), booking.ID).
			Return(nil, nil)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "owner-1", constant.RoleUser, "hotel-1").
			Return(nil)

		res, err := f.svc.Get(guestContext("owner-1"), booking.ID)
		assert.NoError(t, err)
		assert.Equal(t, booking.ID, res.ID)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	booking := model.Booking{
		ID:      "booking-1",
		GuestID: "guest-1",
		HotelID: "hotel-1",
		Status:  model.StatusPending,
	}

	t.Run("non-admin without a hotel is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		res, err := f.svc.GetAll(guestContext("guest-1"), gDto.QueryParams{Limit: 10}, "", gDto.FilterGroup{})
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
		assert.Empty(t, res.Bookings)
	})

	t.Run("non-admin is checked against the hotel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "stranger", constant.RoleUser, "hotel-1").
			Return(failure.Forbidden("you do not have permission to manage this hotel"))

		_, err := f.svc.GetAll(guestContext("stranger"), gDto.QueryParams{Limit: 10}, "hotel-1", gDto.FilterGroup{})
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("manager lists bookings scoped to their hotel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "owner-1", constant.RoleUser, "hotel-1").
			Return(nil)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				scoped := false

				for _, raw := range filter.Filters {
					if flt, ok := raw.(gDto.Filter); ok && flt.Field == model.FieldHotelID && flt.Value == "hotel-1" {
						scoped = true
					}
				}

				assert.True(t, scoped)

				return []model.Booking{booking}, nil
			})

		res, err := f.svc.GetAll(guestContext("owner-1"), gDto.QueryParams{Limit: 10}, "hotel-1", gDto.FilterGroup{})
		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("admin lists across hotels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newBookingFixture(t, ctrl)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{booking}, nil)

		res, err := f.svc.GetAll(adminContext("admin-1"), gDto.QueryParams{Limit: 10}, "", gDto.FilterGroup{})
		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})
}
