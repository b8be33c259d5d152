package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/otel/mocks"
	authzMocks "stay/internal/authz/mocks"
	pricingMocks "stay/internal/domains/pricing/mocks"
	"stay/internal/domains/pricing/model"
	"stay/internal/domains/pricing/service"
	roomtypeMocks "stay/internal/domains/roomtype/mocks"
	roomtypeModel "stay/internal/domains/roomtype/model"
	"stay/shared/cache"
	"stay/shared/failure"
	"stay/shared/timezone"
)

type pricingFixture struct {
	repo       *pricingMocks.MockPricingRule
	roomTypes  *roomtypeMocks.MockRoomType
	authorizer *authzMocks.MockAuthorizer
	svc        service.Pricing
}

func newPricingFixture(t *testing.T, ctrl *gomock.Controller) pricingFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	testCache := cache.NewRedisCache(client, mocks.NewOtel())

	f := pricingFixture{
		repo:       pricingMocks.NewMockPricingRule(ctrl),
		roomTypes:  roomtypeMocks.NewMockRoomType(ctrl),
		authorizer: authzMocks.NewMockAuthorizer(ctrl),
	}

	f.svc = service.New(f.repo, f.roomTypes, f.authorizer, &config.Config{}, testCache, mocks.NewOtel())

	return f
}

func night(value string) time.Time {
	parsed, err := timezone.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestPricingService_Quote(t *testing.T) {
	deluxe := roomtypeModel.RoomType{
		ID:        "2b1e0f57-1111-4d2a-9c0a-000000000001",
		HotelID:   "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		Name:      "Deluxe",
		BasePrice: 500000,
		Active:    true,
	}

	weekend := model.PricingRule{
		ID:            "0d2a91cc-0000-4000-8000-000000000004",
		RoomTypeID:    deluxe.ID,
		Name:          "Weekend uplift",
		StartDate:     night("2026-09-12"),
		EndDate:       night("2026-09-13"),
		PriceOverride: 750000,
		Active:        true,
	}

	t.Run("overrides covered nights and falls back to base price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPricingFixture(t, ctrl)

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.PricingRule{weekend}, nil)

		res, err := f.svc.Quote(context.Background(), deluxe.ID, night("2026-09-11"), night("2026-09-14"))

		assert.NoError(t, err)
		assert.Len(t, res.Nights, 3)
		assert.Equal(t, int64(500000), res.Nights[0].Price)
		assert.Equal(t, int64(750000), res.Nights[1].Price)
		assert.Equal(t, int64(750000), res.Nights[2].Price)
		assert.Equal(t, int64(2000000), res.Total)
	})

	t.Run("prefers the later-starting rule on overlap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPricingFixture(t, ctrl)

		season := model.PricingRule{
			ID:            "0d2a91cc-0000-4000-8000-000000000005",
			RoomTypeID:    deluxe.ID,
			Name:          "High season",
			StartDate:     night("2026-09-01"),
			EndDate:       night("2026-09-30"),
			PriceOverride: 600000,
			Active:        true,
		}

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.PricingRule{season, weekend}, nil)

		res, err := f.svc.Quote(context.Background(), deluxe.ID, night("2026-09-12"), night("2026-09-13"))

		assert.NoError(t, err)
		assert.Len(t, res.Nights, 1)
		assert.Equal(t, int64(750000), res.Nights[0].Price)
	})

	t.Run("rejects an empty range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPricingFixture(t, ctrl)

		_, err := f.svc.Quote(context.Background(), deluxe.ID, night("2026-09-14"), night("2026-09-14"))

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("returns not found for an unknown room type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newPricingFixture(t, ctrl)

		f.roomTypes.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomtypeModel.RoomType{}, nil)

		_, err := f.svc.Quote(context.Background(), "missing", night("2026-09-11"), night("2026-09-12"))

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
