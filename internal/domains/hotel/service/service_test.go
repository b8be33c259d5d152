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
	hotelMocks "stay/internal/domains/hotel/mocks"
	"stay/internal/domains/hotel/model/dto"
	"stay/internal/domains/hotel/service"
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

func TestHotelService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockAuthorizer := authzMocks.NewMockAuthorizer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockAuthorizer, &config.Config{}, newTestCache(t), nil, mockOtel)

	req := dto.CreateHotelRequest{
		Name:       "Grand Plaza",
		Address:    "1 Main St",
		City:       "Jakarta",
		StarRating: 4,
	}

	t.Run("owner creates hotel owned by themselves", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(contextWithIdentity("owner-1", constant.RoleHotelOwner), req)
		assert.NoError(t, err)
		assert.Equal(t, "owner-1", res.OwnerID)
		assert.Equal(t, "Grand Plaza", res.Name)
		assert.True(t, res.Active)
	})

	t.Run("regular user cannot create", func(t *testing.T) {
		_, err := svc.Create(contextWithIdentity("user-1", constant.RoleUser), req)
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestHotelService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockAuthorizer := authzMocks.NewMockAuthorizer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockAuthorizer, &config.Config{}, newTestCache(t), nil, mockOtel)

	req := dto.UpdateHotelRequest{Name: "Renamed"}

	t.Run("non-owner is rejected", func(t *testing.T) {
		mockAuthorizer.EXPECT().
			CanAdministerHotel(gomock.Any(), "user-1", constant.RoleUser, "hotel-1").
			Return(failure.Forbidden("you do not have permission to manage this hotel"))

		err := svc.Update(contextWithIdentity("user-1", constant.RoleUser), req, "hotel-1")
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
		assert.EqualError(t, err, "you do not have permission to manage this hotel")
	})

	t.Run("owner updates", func(t *testing.T) {
		mockAuthorizer.EXPECT().
			CanAdministerHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, "hotel-1").
			Return(nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(contextWithIdentity("owner-1", constant.RoleHotelOwner), req, "hotel-1")
		assert.NoError(t, err)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		err := svc.Update(contextWithIdentity("owner-1", constant.RoleHotelOwner), dto.UpdateHotelRequest{}, "hotel-1")
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
