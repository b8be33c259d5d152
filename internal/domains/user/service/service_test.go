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
	userMocks "stay/internal/domains/user/mocks"
	"stay/internal/domains/user/model"
	"stay/internal/domains/user/model/dto"
	"stay/internal/domains/user/service"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/failure"
)

type userFixture struct {
	repo *userMocks.MockUser
	svc  service.User
}

func newUserFixture(t *testing.T, ctrl *gomock.Controller) userFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	testCache := cache.NewRedisCache(client, mocks.NewOtel())

	f := userFixture{
		repo: userMocks.NewMockUser(ctrl),
	}

	f.svc = service.New(f.repo, &config.Config{}, testCache, mocks.NewOtel())

	return f
}

func TestUserService_GetProfile(t *testing.T) {
	phone := "+6281234567890"
	stored := model.User{
		ID:       "e7a1f26b-0000-4000-8000-000000000001",
		Email:    "guest@example.com",
		FullName: "Guest One",
		Phone:    &phone,
		RoleID:   constant.RoleUser,
		Active:   true,
	}

	t.Run("returns the stored profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored, nil)

		res, err := f.svc.GetProfile(context.Background(), stored.ID)

		assert.NoError(t, err)
		assert.Equal(t, stored.Email, res.Email)
		assert.Equal(t, stored.FullName, res.FullName)
		assert.Equal(t, constant.RoleUser, res.RoleID)
	})

	t.Run("returns not found for an unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := f.svc.GetProfile(context.Background(), "e7a1f26b-0000-4000-8000-000000000099")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := "e7a1f26b-0000-4000-8000-000000000001"

	t.Run("updates the profile fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Guest Renamed", fields[model.FieldFullName])

				return nil
			})

		err := f.svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{FullName: "Guest Renamed"}, userID)

		assert.NoError(t, err)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newUserFixture(t, ctrl)

		err := f.svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{}, userID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{FullName: "Guest Renamed"}, userID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
