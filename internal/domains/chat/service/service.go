package service

import (
	"context"
	"fmt"
	"stay/infras/otel"
	"stay/internal/authz"
	"stay/internal/domains/chat/model"
	"stay/internal/domains/chat/model/dto"
	"stay/internal/domains/chat/repository"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Chat interface {
	Send(ctx context.Context, req dto.SendMessageRequest) (dto.MessageResponse, error)
	Conversation(ctx context.Context, hotelID, guestID string, params gDto.QueryParams) (dto.ConversationResponse, error)
}

type serviceImpl struct {
	repo       repository.ChatMessage
	authorizer authz.Authorizer
	otel       otel.Otel
}

func New(repo repository.ChatMessage, authorizer authz.Authorizer, otel otel.Otel) Chat {
	return &serviceImpl{
		repo:       repo,
		authorizer: authorizer,
		otel:       otel,
	}
}

// Send stores a message in a hotel conversation. Guests write to the hotel
// inbox, hotel-side senders must address a guest explicitly.
func (s *serviceImpl) Send(ctx context.Context, req dto.SendMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyRoleID).(int)

	hotelSide := true

	if err = s.authorizer.CanManageHotel(ctx, user, role, req.HotelID); err != nil {
		if failure.GetCode(err) != 403 {
			return res, err
		}

		hotelSide = false
	}

	if hotelSide && req.RecipientID == nil {
		return res, failure.BadRequestFromString("recipient is required for hotel replies")
	}

	message := req.ToModel(user)

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to send message")

		return res, fmt.Errorf("failed to send message: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

// Conversation pages through the messages exchanged between a guest and a
// hotel, oldest first. Reading marks the caller's inbound messages as read.
func (s *serviceImpl) Conversation(ctx context.Context, hotelID, guestID string, params gDto.QueryParams) (res dto.ConversationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Conversation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyRoleID).(int)

	if user != guestID {
		if err = s.authorizer.CanManageHotel(ctx, user, role, hotelID); err != nil {
			return res, err
		}
	}

	filter := conversationFilter(hotelID, guestID)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count messages")

		return res, fmt.Errorf("failed to count messages: %w", err)
	}

	messages, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	res.FromModels(messages, total, params.Limit)

	s.markRead(ctx, hotelID, user, guestID)

	return res, nil
}

// markRead flags inbound messages as read. A guest reads what the hotel sent
// them, a hotel-side reader consumes the guest's inbox messages.
func (s *serviceImpl) markRead(ctx context.Context, hotelID, user, guestID string) {
	inbound := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRead,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
		},
	}

	if user == guestID {
		inbound.Filters = append(inbound.Filters, gDto.Filter{
			Field:    model.FieldRecipientID,
			Operator: gDto.FilterOperatorEq,
			Value:    guestID,
			Table:    model.TableName,
		})
	} else {
		inbound.Filters = append(inbound.Filters, gDto.Filter{
			Field:    model.FieldSenderID,
			Operator: gDto.FilterOperatorEq,
			Value:    guestID,
			Table:    model.TableName,
		})
	}

	fields := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.repo.Update(c, fields, inbound); err != nil {
			log.Warn().Err(err).Msg("failed to mark messages as read")
		}
	}()
}

func conversationFilter(hotelID, guestID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "conversation_sender",
						Field:    model.FieldSenderID,
						Operator: gDto.FilterOperatorEq,
						Value:    guestID,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "conversation_recipient",
						Field:    model.FieldRecipientID,
						Operator: gDto.FilterOperatorEq,
						Value:    guestID,
						Table:    model.TableName,
					},
				},
			},
		},
	}
}
