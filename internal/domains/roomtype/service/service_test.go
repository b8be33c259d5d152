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
	roomMocks "stay/internal/domains/room/mocks"
	roomtypeMocks "stay/internal/domains/roomtype/mocks"
	"stay/internal/domains/roomtype/model"
	"stay/internal/domains/roomtype/service"
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

func contextWithIdentity(userID string, roleID int) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyRoleID, roleID)
}

func TestRoomTypeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomtypeMocks.NewMockRoomType(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockAuthorizer := authzMocks.NewMockAuthorizer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRoomRepo, mockAuthorizer, &config.Config{}, newTestCache(t), mockOtel)

	roomType := model.RoomType{
		ID:      "rt-1",
		HotelID: "hotel-1",
	}

	ctx := contextWithIdentity("owner-1", constant.RoleHotelOwner)

	t.Run("rejected while rooms reference the type", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomType, nil)

		mockAuthorizer.EXPECT().
			CanManageHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, "hotel-1").
			Return(nil)

		mockRoomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Delete(ctx, "rt-1")
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.EqualError(t, err, "there are rooms using this room type")
	})

	t.Run("deletes when unused", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomType, nil)

		mockAuthorizer.EXPECT().
			CanManageHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, "hotel-1").
			Return(nil)

		mockRoomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(ctx, "rt-1")
		assert.NoError(t, err)
	})

	t.Run("missing room type", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		err := svc.Delete(ctx, "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
