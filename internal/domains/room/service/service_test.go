package service_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/otel/mocks"
	authzMocks "stay/internal/authz/mocks"
	bookingMocks "stay/internal/domains/booking/mocks"
	bookingModel "stay/internal/domains/booking/model"
	roomMocks "stay/internal/domains/room/mocks"
	"stay/internal/domains/room/model"
	"stay/internal/domains/room/model/dto"
	"stay/internal/domains/room/service"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/failure"
)

func newTestCache(t *testing.T) cache.RedisCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return cache.NewRedisCache(client, mocks.NewOtel())
}

func staffContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyRoleID, constant.RoleStaff)
}

func TestRoomService_Assign(t *testing.T) {
	room := model.Room{
		ID:         "room-1",
		HotelID:    "hotel-1",
		RoomTypeID: "rt-1",
		RoomNumber: "101",
		Status:     model.StatusAvailable,
	}

	confirmed := bookingModel.Booking{
		ID:      "booking-1",
		HotelID: "hotel-1",
		Status:  bookingModel.StatusConfirmed,
	}

	newFixture := func(ctrl *gomock.Controller, t *testing.T) (*roomMocks.MockRoom, *bookingMocks.MockBooking, *authzMocks.MockAuthorizer, service.Room) {
		mockRepo := roomMocks.NewMockRoom(ctrl)
		mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
		mockAuthorizer := authzMocks.NewMockAuthorizer(ctrl)

		svc := service.New(mockRepo, mockBookingRepo, mockAuthorizer, &config.Config{}, newTestCache(t), mocks.NewOtel())

		return mockRepo, mockBookingRepo, mockAuthorizer, svc
	}

	t.Run("assigns confirmed booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo, mockBookingRepo, mockAuthorizer, svc := newFixture(ctrl, t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		mockAuthorizer.EXPECT().
			CanManageHotel(gomock.Any(), "staff-1", constant.RoleStaff, "hotel-1").
			Return(nil)

		mockBookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusOccupied, fields[model.FieldStatus])
				assert.Equal(t, confirmed.ID, fields[model.FieldBookingID])

				return nil
			})

		err := svc.Assign(staffContext("staff-1"), dto.AssignRoomRequest{BookingID: confirmed.ID}, room.ID)
		assert.NoError(t, err)
	})

	t.Run("rejects pending booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo, mockBookingRepo, mockAuthorizer, svc := newFixture(ctrl, t)

		pending := confirmed
		pending.Status = bookingModel.StatusPending

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		mockAuthorizer.EXPECT().
			CanManageHotel(gomock.Any(), "staff-1", constant.RoleStaff, "hotel-1").
			Return(nil)

		mockBookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		err := svc.Assign(staffContext("staff-1"), dto.AssignRoomRequest{BookingID: pending.ID}, room.ID)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects occupied room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo, _, mockAuthorizer, svc := newFixture(ctrl, t)

		occupied := room
		occupied.Status = model.StatusOccupied

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupied, nil)

		mockAuthorizer.EXPECT().
			CanManageHotel(gomock.Any(), "staff-1", constant.RoleStaff, "hotel-1").
			Return(nil)

		err := svc.Assign(staffContext("staff-1"), dto.AssignRoomRequest{BookingID: "booking-1"}, room.ID)
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestRoomService_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockAuthorizer := authzMocks.NewMockAuthorizer(ctrl)

	svc := service.New(mockRepo, mockBookingRepo, mockAuthorizer, &config.Config{}, newTestCache(t), mocks.NewOtel())

	bookingID := "booking-1"
	occupied := model.Room{
		ID:        "room-1",
		HotelID:   "hotel-1",
		Status:    model.StatusOccupied,
		BookingID: &bookingID,
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(occupied, nil)

	mockAuthorizer.EXPECT().
		CanManageHotel(gomock.Any(), "staff-1", constant.RoleStaff, "hotel-1").
		Return(nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, model.StatusAvailable, fields[model.FieldStatus])
			assert.Nil(t, fields[model.FieldBookingID])

			return nil
		})

	err := svc.Release(staffContext("staff-1"), occupied.ID)
	assert.NoError(t, err)
}
