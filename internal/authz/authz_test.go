package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/infras/otel/mocks"
	"stay/internal/authz"
	hotelMocks "stay/internal/domains/hotel/mocks"
	hotelModel "stay/internal/domains/hotel/model"
	staffMocks "stay/internal/domains/staff/mocks"
	"stay/shared/constant"
	"stay/shared/failure"
)

func TestAuthorizer_CanManageHotel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockOtel := mocks.NewOtel()

	authorizer := authz.New(mockHotelRepo, mockStaffRepo, mockOtel)

	hotel := hotelModel.Hotel{
		ID:      "hotel-1",
		OwnerID: "owner-1",
	}

	t.Run("admin always allowed", func(t *testing.T) {
		err := authorizer.CanManageHotel(context.Background(), "anyone", constant.RoleAdmin, "hotel-1")
		assert.NoError(t, err)
	})

	t.Run("owner allowed", func(t *testing.T) {
		mockHotelRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotel, nil)

		err := authorizer.CanManageHotel(context.Background(), "owner-1", constant.RoleHotelOwner, "hotel-1")
		assert.NoError(t, err)
	})

	t.Run("active staff allowed", func(t *testing.T) {
		mockHotelRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotel, nil)

		mockStaffRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := authorizer.CanManageHotel(context.Background(), "staff-user", constant.RoleStaff, "hotel-1")
		assert.NoError(t, err)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		mockHotelRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotel, nil)

		mockStaffRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := authorizer.CanManageHotel(context.Background(), "stranger", constant.RoleUser, "hotel-1")
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
		assert.EqualError(t, err, "you do not have permission to manage this hotel")
	})

	t.Run("unknown hotel is not found", func(t *testing.T) {
		mockHotelRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotelModel.Hotel{}, nil)

		err := authorizer.CanManageHotel(context.Background(), "owner-1", constant.RoleHotelOwner, "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAuthorizer_CanAdministerHotel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockOtel := mocks.NewOtel()

	authorizer := authz.New(mockHotelRepo, mockStaffRepo, mockOtel)

	hotel := hotelModel.Hotel{
		ID:      "hotel-1",
		OwnerID: "owner-1",
	}

	t.Run("staff cannot administer", func(t *testing.T) {
		mockHotelRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotel, nil)

		err := authorizer.CanAdministerHotel(context.Background(), "staff-user", constant.RoleStaff, "hotel-1")
		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("owner can administer", func(t *testing.T) {
		mockHotelRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotel, nil)

		err := authorizer.CanAdministerHotel(context.Background(), "owner-1", constant.RoleHotelOwner, "hotel-1")
		assert.NoError(t, err)
	})
}

func TestAuthorizer_SelfOrAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorizer := authz.New(hotelMocks.NewMockHotel(ctrl), staffMocks.NewMockStaff(ctrl), mocks.NewOtel())

	assert.NoError(t, authorizer.SelfOrAdmin(constant.RoleUser, "user-1", "user-1"))
	assert.NoError(t, authorizer.SelfOrAdmin(constant.RoleAdmin, "admin-1", "user-1"))
	assert.Error(t, authorizer.SelfOrAdmin(constant.RoleUser, "user-1", "user-2"))
}
