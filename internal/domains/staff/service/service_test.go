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
	staffMocks "stay/internal/domains/staff/mocks"
	"stay/internal/domains/staff/model"
	"stay/internal/domains/staff/model/dto"
	"stay/internal/domains/staff/service"
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

func ownerContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyRoleID, constant.RoleHotelOwner)
}

func TestStaffService_Hire(t *testing.T) {
	req := dto.HireStaffRequest{
		HotelID:   "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		UserID:    "2b1e0f57-1111-4d2a-9c0a-000000000001",
		Position:  "Receptionist",
		StartDate: "2026-09-01",
		EndDate:   "2027-09-01",
		Salary:    4500000,
	}

	t.Run("hires staff with initial contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := staffMocks.NewMockStaff(ctrl)
		mockAuthorizer := authzMocks.NewMockAuthorizer(ctrl)

		svc := service.New(mockRepo, mockAuthorizer, &config.Config{}, newTestCache(t), mocks.NewOtel())

		mockAuthorizer.EXPECT().
			CanAdministerHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, req.HotelID).
			Return(nil)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			HireWithContract(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, staff model.Staff, contract model.Contract) error {
				assert.Equal(t, req.HotelID, staff.HotelID)
				assert.Equal(t, req.UserID, staff.UserID)
				assert.True(t, staff.Active)
				assert.Equal(t, staff.ID, contract.StaffID)
				assert.Equal(t, req.Salary, contract.Salary)

				return nil
			})

		res, err := svc.Hire(ownerContext("owner-1"), req)
		assert.NoError(t, err)
		assert.Equal(t, "Receptionist", res.Position)
		assert.Len(t, res.Contracts, 1)
	})

	t.Run("duplicate assignment rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := staffMocks.NewMockStaff(ctrl)
		mockAuthorizer := authzMocks.NewMockAuthorizer(ctrl)

		svc := service.New(mockRepo, mockAuthorizer, &config.Config{}, newTestCache(t), mocks.NewOtel())

		mockAuthorizer.EXPECT().
			CanAdministerHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, req.HotelID).
			Return(nil)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Hire(ownerContext("owner-1"), req)
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.EqualError(t, err, "user is already staff at this hotel")
	})

	t.Run("contract end before start rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := staffMocks.NewMockStaff(ctrl)
		mockAuthorizer := authzMocks.NewMockAuthorizer(ctrl)

		svc := service.New(mockRepo, mockAuthorizer, &config.Config{}, newTestCache(t), mocks.NewOtel())

		mockAuthorizer.EXPECT().
			CanAdministerHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, req.HotelID).
			Return(nil)

		bad := req
		bad.EndDate = "2026-08-01"

		_, err := svc.Hire(ownerContext("owner-1"), bad)
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
