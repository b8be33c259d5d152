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
	reviewMocks "stay/internal/domains/review/mocks"
	"stay/internal/domains/review/model"
	"stay/internal/domains/review/model/dto"
	"stay/internal/domains/review/service"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/failure"
)

type reviewFixture struct {
	repo       *reviewMocks.MockReview
	bookings   *bookingMocks.MockBooking
	authorizer *authzMocks.MockAuthorizer
	svc        service.Review
}

func newReviewFixture(t *testing.T, ctrl *gomock.Controller) reviewFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	testCache := cache.NewRedisCache(client, mocks.NewOtel())

	f := reviewFixture{
		repo:       reviewMocks.NewMockReview(ctrl),
		bookings:   bookingMocks.NewMockBooking(ctrl),
		authorizer: authzMocks.NewMockAuthorizer(ctrl),
	}

	f.svc = service.New(f.repo, f.bookings, f.authorizer, &config.Config{}, testCache, mocks.NewOtel())

	return f
}

func guestContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyRoleID, constant.RoleUser)
}

func TestReviewService_Create(t *testing.T) {
	completed := bookingModel.Booking{
		ID:      "9a1f26b4-0000-4000-8000-000000000001",
		GuestID: "guest-1",
		HotelID: "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		Status:  bookingModel.StatusCompleted,
	}

	req := dto.CreateReviewRequest{
		BookingID: completed.ID,
		Rating:    4,
	}

	t.Run("creates a review for an own completed booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(t, ctrl)

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completed, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, review model.Review) error {
				assert.Equal(t, completed.ID, review.BookingID)
				assert.Equal(t, completed.HotelID, review.HotelID)
				assert.Equal(t, "guest-1", review.UserID)
				assert.Equal(t, 4, review.Rating)

				return nil
			})

		res, err := f.svc.Create(guestContext("guest-1"), req)

		assert.NoError(t, err)
		assert.Equal(t, 4, res.Rating)
	})

	t.Run("rejects a review from someone else's booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(t, ctrl)

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completed, nil)

		_, err := f.svc.Create(guestContext("guest-2"), req)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("rejects a review before the stay is completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(t, ctrl)

		pending := completed
		pending.Status = bookingModel.StatusPending

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		_, err := f.svc.Create(guestContext("guest-1"), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.EqualError(t, err, "only completed bookings can be reviewed")
	})

	t.Run("rejects a second review for the same booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(t, ctrl)

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completed, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := f.svc.Create(guestContext("guest-1"), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.EqualError(t, err, "booking has already been reviewed")
	})

	t.Run("returns not found for an unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(t, ctrl)

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := f.svc.Create(guestContext("guest-1"), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReviewService_Delete(t *testing.T) {
	review := model.Review{
		ID:      "5c7b13a2-0000-4000-8000-000000000002",
		UserID:  "guest-1",
		HotelID: "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		Rating:  2,
	}

	t.Run("lets the author delete their review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(review, nil)

		f.authorizer.EXPECT().
			SelfOrAdmin(constant.RoleUser, "guest-1", "guest-1").
			Return(nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(guestContext("guest-1"), review.ID)

		assert.NoError(t, err)
	})

	t.Run("blocks everyone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(t, ctrl)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(review, nil)

		f.authorizer.EXPECT().
			SelfOrAdmin(constant.RoleUser, "guest-2", "guest-1").
			Return(failure.Forbidden("you do not have permission to access this resource"))

		err := f.svc.Delete(guestContext("guest-2"), review.ID)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestReviewService_Update(t *testing.T) {
	t.Run("rejects an empty update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newReviewFixture(t, ctrl)

		err := f.svc.Update(guestContext("guest-1"), dto.UpdateReviewRequest{}, "5c7b13a2-0000-4000-8000-000000000002")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
