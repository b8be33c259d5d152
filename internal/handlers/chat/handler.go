package chat

import (
	"net/http"
	"stay/infras/otel"
	"stay/internal/domains/chat/model"
	"stay/internal/domains/chat/model/dto"
	"stay/internal/domains/chat/service"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/validator"
	"stay/transport/http/middleware"
	"stay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Chat
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Chat, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Use(handler.auth.Required)
		r.Post("/messages", handler.SendMessage)
		r.Get("/conversation", handler.GetConversation)
	})
}

// SendMessage sends a chat message between a guest and a hotel.
// @Summary Send a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Send Message Request"
// @Success 201 {object} response.Data[dto.MessageResponse] "Message sent successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chat/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	req := dto.SendMessageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Send(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send message")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Message sent successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetConversation returns the message history between a guest and a hotel.
// @Summary Get a conversation
// @Tags Chat
// @Produce json
// @Param hotel_id query string true "Hotel ID"
// @Param guest_id query string true "Guest user ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.ConversationResponse] "Conversation messages"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chat/conversation [get]
// @Security BearerAuth
func (handler *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConversation")
	defer scope.End()

	hotelID := r.URL.Query().Get(model.FieldHotelID)
	guestID := r.URL.Query().Get(constant.RequestQueryGuestID)

	if hotelID == "" || guestID == "" {
		err := failure.BadRequestFromString("hotel_id and guest_id are required")
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get conversation")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	conversation, err := handler.service.Conversation(ctx, hotelID, guestID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get conversation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Conversation retrieved successfully")

	response.WithJSON(w, http.StatusOK, conversation)
}
