package router

import (
	"stay/internal/handlers/auth"
	"stay/internal/handlers/booking"
	"stay/internal/handlers/chat"
	"stay/internal/handlers/hotel"
	"stay/internal/handlers/pricing"
	"stay/internal/handlers/promotion"
	"stay/internal/handlers/review"
	"stay/internal/handlers/room"
	"stay/internal/handlers/roomtype"
	"stay/internal/handlers/staff"
	"stay/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Hotel     hotel.Handler
	RoomType  roomtype.Handler
	Room      room.Handler
	Booking   booking.Handler
	Staff     staff.Handler
	Review    review.Handler
	Promotion promotion.Handler
	Pricing   pricing.Handler
	Chat      chat.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Promotion.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Chat.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
