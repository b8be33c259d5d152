//go:build wireinject
// +build wireinject

package di

import (
	"stay/config"
	"stay/infras/jwt"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/infras/redis"
	"stay/infras/s3"
	"stay/internal/authz"
	"stay/internal/events"
	"stay/shared/cache"
	"stay/transport/http"
	"stay/transport/http/middleware"
	"stay/transport/http/router"

	authService "stay/internal/domains/auth/service"
	bookingRepository "stay/internal/domains/booking/repository"
	bookingService "stay/internal/domains/booking/service"
	chatRepository "stay/internal/domains/chat/repository"
	chatService "stay/internal/domains/chat/service"
	hotelRepository "stay/internal/domains/hotel/repository"
	hotelService "stay/internal/domains/hotel/service"
	pricingRepository "stay/internal/domains/pricing/repository"
	pricingService "stay/internal/domains/pricing/service"
	promotionRepository "stay/internal/domains/promotion/repository"
	promotionService "stay/internal/domains/promotion/service"
	reviewRepository "stay/internal/domains/review/repository"
	reviewService "stay/internal/domains/review/service"
	roomRepository "stay/internal/domains/room/repository"
	roomService "stay/internal/domains/room/service"
	roomtypeRepository "stay/internal/domains/roomtype/repository"
	roomtypeService "stay/internal/domains/roomtype/service"
	staffRepository "stay/internal/domains/staff/repository"
	staffService "stay/internal/domains/staff/service"
	userRepository "stay/internal/domains/user/repository"
	userService "stay/internal/domains/user/service"

	authHandler "stay/internal/handlers/auth"
	bookingHandler "stay/internal/handlers/booking"
	chatHandler "stay/internal/handlers/chat"
	hotelHandler "stay/internal/handlers/hotel"
	pricingHandler "stay/internal/handlers/pricing"
	promotionHandler "stay/internal/handlers/promotion"
	reviewHandler "stay/internal/handlers/review"
	roomHandler "stay/internal/handlers/room"
	roomtypeHandler "stay/internal/handlers/roomtype"
	staffHandler "stay/internal/handlers/staff"
	userHandler "stay/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	authz.New,
	events.NewPublisher,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomTypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var promotionDomain = wire.NewSet(
	promotionRepository.New,
	promotionService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var chatDomain = wire.NewSet(
	chatRepository.New,
	chatService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	hotelDomain,
	roomTypeDomain,
	roomDomain,
	bookingDomain,
	staffDomain,
	reviewDomain,
	promotionDomain,
	pricingDomain,
	chatDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	roomtypeHandler.New,
	roomHandler.New,
	bookingHandler.New,
	staffHandler.New,
	reviewHandler.New,
	promotionHandler.New,
	pricingHandler.New,
	chatHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
