package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/infras/otel/mocks"
	authzMocks "stay/internal/authz/mocks"
	chatMocks "stay/internal/domains/chat/mocks"
	"stay/internal/domains/chat/model"
	"stay/internal/domains/chat/model/dto"
	"stay/internal/domains/chat/service"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
)

type chatFixture struct {
	repo       *chatMocks.MockChatMessage
	authorizer *authzMocks.MockAuthorizer
	svc        service.Chat
}

func newChatFixture(t *testing.T, ctrl *gomock.Controller) chatFixture {
	t.Helper()

	f := chatFixture{
		repo:       chatMocks.NewMockChatMessage(ctrl),
		authorizer: authzMocks.NewMockAuthorizer(ctrl),
	}

	f.svc = service.New(f.repo, f.authorizer, mocks.NewOtel())

	return f
}

func identityContext(userID string, roleID int) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyRoleID, roleID)
}

func TestChatService_Send(t *testing.T) {
	hotelID := "6f9619ff-8b86-4d01-b42d-00cf4fc964ff"

	t.Run("lets a guest write to the hotel inbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newChatFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "guest-1", constant.RoleUser, hotelID).
			Return(failure.Forbidden("you do not have permission to manage this hotel"))

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message model.ChatMessage) error {
				assert.Equal(t, "guest-1", message.SenderID)
				assert.Nil(t, message.RecipientID)
				assert.False(t, message.Read)

				return nil
			})

		res, err := f.svc.Send(identityContext("guest-1", constant.RoleUser), dto.SendMessageRequest{
			HotelID: hotelID,
			Body:    "Is early check-in possible?",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Is early check-in possible?", res.Body)
	})

	t.Run("requires a recipient for hotel replies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newChatFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "owner-1", constant.RoleHotelOwner, hotelID).
			Return(nil)

		_, err := f.svc.Send(identityContext("owner-1", constant.RoleHotelOwner), dto.SendMessageRequest{
			HotelID: hotelID,
			Body:    "Sure, rooms are ready from noon.",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.EqualError(t, err, "recipient is required for hotel replies")
	})

	t.Run("propagates an unknown hotel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newChatFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "guest-1", constant.RoleUser, hotelID).
			Return(failure.NotFound("hotel not found"))

		_, err := f.svc.Send(identityContext("guest-1", constant.RoleUser), dto.SendMessageRequest{
			HotelID: hotelID,
			Body:    "hello",
		})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestChatService_Conversation(t *testing.T) {
	hotelID := "6f9619ff-8b86-4d01-b42d-00cf4fc964ff"
	guestID := "guest-1"

	recipient := guestID
	history := []model.ChatMessage{
		{ID: "m1", HotelID: hotelID, SenderID: guestID, Body: "Is early check-in possible?"},
		{ID: "m2", HotelID: hotelID, SenderID: "owner-1", RecipientID: &recipient, Body: "From noon, yes."},
	}

	t.Run("returns the guest's own conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newChatFixture(t, ctrl)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(len(history), nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(history, nil)

		read := make(chan struct{})

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, map[string]any, gDto.FilterGroup) error {
				close(read)

				return nil
			})

		res, err := f.svc.Conversation(identityContext(guestID, constant.RoleUser), hotelID, guestID, gDto.QueryParams{Page: 1, Limit: 20})

		assert.NoError(t, err)
		assert.Len(t, res.Messages, 2)
		assert.Equal(t, 2, res.TotalData)

		<-read
	})

	t.Run("blocks a stranger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newChatFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "guest-2", constant.RoleUser, hotelID).
			Return(failure.Forbidden("you do not have permission to manage this hotel"))

		_, err := f.svc.Conversation(identityContext("guest-2", constant.RoleUser), hotelID, guestID, gDto.QueryParams{})

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("lets hotel staff read the conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newChatFixture(t, ctrl)

		f.authorizer.EXPECT().
			CanManageHotel(gomock.Any(), "staff-1", constant.RoleStaff, hotelID).
			Return(nil)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(len(history), nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(history, nil)

		read := make(chan struct{})

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, map[string]any, gDto.FilterGroup) error {
				close(read)

				return nil
			})

		res, err := f.svc.Conversation(identityContext("staff-1", constant.RoleStaff), hotelID, guestID, gDto.QueryParams{Page: 1, Limit: 20})

		assert.NoError(t, err)
		assert.Len(t, res.Messages, 2)

		<-read
	})
}
