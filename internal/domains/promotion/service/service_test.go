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
	promotionMocks "stay/internal/domains/promotion/mocks"
	"stay/internal/domains/promotion/model"
	"stay/internal/domains/promotion/model/dto"
	"stay/internal/domains/promotion/service"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/failure"
	"stay/shared/timezone"
)

type promotionFixture struct {
	repo       *promotionMocks.MockPromotion
	authorizer *authzMocks.MockAuthorizer
	svc        service.Promotion
}

func newPromotionFixture(t *testing.T, ctrl *gomock.Controller) promotionFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	testCache := cache.NewRedisCache(client, mocks.NewOtel())

	f := promotionFixture{
		repo:       promotionMocks.NewMockPromotion(ctrl),
		authorizer: authzMocks.NewMockAuthorizer(ctrl),
	}

	f.svc = service.New(f.repo, f.authorizer, &config.Config{}, testCache, mocks.NewOtel())

	return f
}

func ownerContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyRoleID, constant.RoleHotelOwner)
}

func TestPromotionService_Create(t *testing.T) {
	req := dto.CreatePromotionRequest{
		HotelID:         "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		Code:            "SUMMER20",
		DiscountPercent: 20,
		ValidFrom:       "2026-09-01",
		ValidTo:         "2026-09-30",
	}

	t.Run("creates an active promotion inside its window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPromotionFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanAdministerHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, req.HotelID).
			Return(nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, promotion model.Promotion) error {
				assert.Equal(t, "SUMMER20", promotion.Code)
				assert.Equal(t, 20, promotion.DiscountPercent)
				assert.True(t, promotion.Active)
				assert.True(t, promotion.ValidTo.After(promotion.ValidFrom))

				return nil
			})

		res, err := f.svc.Create(ownerContext("owner-1"), req)

		assert.NoError(t, err)
		assert.Equal(t, "SUMMER20", res.Code)
	})

	t.Run("rejects a window that ends before it starts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPromotionFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanAdministerHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, req.HotelID).
			Return(nil)

		inverted := req
		inverted.ValidFrom = "2026-09-30"
		inverted.ValidTo = "2026-09-01"

		_, err := f.svc.Create(ownerContext("owner-1"), inverted)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.EqualError(t, err, "valid_to must be after valid_from")
	})

	t.Run("propagates the administer check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPromotionFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanAdministerHotel(gomock.Any(), "owner-2", constant.RoleHotelOwner, req.HotelID).
			Return(failure.Forbidden("you do not have permission to manage this hotel"))

		_, err := f.svc.Create(ownerContext("owner-2"), req)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestPromotionService_Resolve(t *testing.T) {
	now := timezone.Now()

	active := model.Promotion{
		ID:              "8d3c55e1-0000-4000-8000-000000000003",
		HotelID:         "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		Code:            "SUMMER20",
		DiscountPercent: 20,
		ValidFrom:       now.AddDate(0, 0, -1),
		ValidTo:         now.AddDate(0, 0, 7),
		Active:          true,
	}

	t.Run("resolves a redeemable code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPromotionFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(active, nil)

		res, err := f.svc.Resolve(context.Background(), active.HotelID, active.Code)

		assert.NoError(t, err)
		assert.Equal(t, active.ID, res.ID)
	})

	t.Run("rejects an expired code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPromotionFixture(t, ctrl)

		expired := active
		expired.ValidFrom = now.AddDate(0, 0, -30)
		expired.ValidTo = now.AddDate(0, 0, -10)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(expired, nil)

		_, err := f.svc.Resolve(context.Background(), active.HotelID, active.Code)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.EqualError(t, err, "promotion is not active")
	})

	t.Run("rejects an unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPromotionFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Promotion{}, nil)

		_, err := f.svc.Resolve(context.Background(), active.HotelID, "NOPE")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
