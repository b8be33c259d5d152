// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"stay/config"
	"stay/infras/jwt"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/infras/redis"
	"stay/infras/s3"
	"stay/internal/authz"
	"stay/internal/domains/auth/service"
	repository6 "stay/internal/domains/booking/repository"
	service6 "stay/internal/domains/booking/service"
	repository10 "stay/internal/domains/chat/repository"
	service11 "stay/internal/domains/chat/service"
	repository2 "stay/internal/domains/hotel/repository"
	service3 "stay/internal/domains/hotel/service"
	repository9 "stay/internal/domains/pricing/repository"
	service10 "stay/internal/domains/pricing/service"
	repository7 "stay/internal/domains/promotion/repository"
	service9 "stay/internal/domains/promotion/service"
	repository8 "stay/internal/domains/review/repository"
	service8 "stay/internal/domains/review/service"
	repository5 "stay/internal/domains/room/repository"
	service5 "stay/internal/domains/room/service"
	repository4 "stay/internal/domains/roomtype/repository"
	service4 "stay/internal/domains/roomtype/service"
	repository3 "stay/internal/domains/staff/repository"
	service7 "stay/internal/domains/staff/service"
	"stay/internal/domains/user/repository"
	service2 "stay/internal/domains/user/service"
	"stay/internal/events"
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
	"stay/shared/cache"
	"stay/transport/http"
	"stay/transport/http/middleware"
	"stay/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	middlewareAuth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	handler := auth.New(serviceAuth, middlewareAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, middlewareAuth, otelOtel)
	repositoryHotel := repository2.New(connection, otelOtel)
	repositoryStaff := repository3.New(connection, otelOtel)
	authorizer := authz.New(repositoryHotel, repositoryStaff, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceHotel := service3.New(repositoryHotel, authorizer, configConfig, redisCache, s3S3, otelOtel)
	hotelHandler := hotel.New(serviceHotel, middlewareAuth, otelOtel)
	roomType := repository4.New(connection, otelOtel)
	repositoryRoom := repository5.New(connection, otelOtel)
	serviceRoomType := service4.New(roomType, repositoryRoom, authorizer, configConfig, redisCache, otelOtel)
	roomtypeHandler := roomtype.New(serviceRoomType, middlewareAuth, otelOtel)
	repositoryBooking := repository6.New(connection, otelOtel)
	serviceRoom := service5.New(repositoryRoom, repositoryBooking, authorizer, configConfig, redisCache, otelOtel)
	roomHandler := room.New(serviceRoom, middlewareAuth, otelOtel)
	repositoryPromotion := repository7.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	publisher := events.NewPublisher(kafkaClient, configConfig, otelOtel)
	serviceBooking := service6.New(repositoryBooking, roomType, repositoryPromotion, authorizer, publisher, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, middlewareAuth, otelOtel)
	serviceStaff := service7.New(repositoryStaff, authorizer, configConfig, redisCache, otelOtel)
	staffHandler := staff.New(serviceStaff, middlewareAuth, otelOtel)
	repositoryReview := repository8.New(connection, otelOtel)
	serviceReview := service8.New(repositoryReview, repositoryBooking, authorizer, configConfig, redisCache, otelOtel)
	reviewHandler := review.New(serviceReview, middlewareAuth, otelOtel)
	servicePromotion := service9.New(repositoryPromotion, authorizer, configConfig, redisCache, otelOtel)
	promotionHandler := promotion.New(servicePromotion, middlewareAuth, otelOtel)
	pricingRule := repository9.New(connection, otelOtel)
	servicePricing := service10.New(pricingRule, roomType, authorizer, configConfig, redisCache, otelOtel)
	pricingHandler := pricing.New(servicePricing, middlewareAuth, otelOtel)
	chatMessage := repository10.New(connection, otelOtel)
	serviceChat := service11.New(chatMessage, authorizer, otelOtel)
	chatHandler := chat.New(serviceChat, middlewareAuth, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:      handler,
		User:      userHandler,
		Hotel:     hotelHandler,
		RoomType:  roomtypeHandler,
		Room:      roomHandler,
		Booking:   bookingHandler,
		Staff:     staffHandler,
		Review:    reviewHandler,
		Promotion: promotionHandler,
		Pricing:   pricingHandler,
		Chat:      chatHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, authz.New, events.NewPublisher)

var authDomain = wire.NewSet(service.New)

var userDomain = wire.NewSet(repository.New, service2.New)

var hotelDomain = wire.NewSet(repository2.New, service3.New)

var roomTypeDomain = wire.NewSet(repository4.New, service4.New)

var roomDomain = wire.NewSet(repository5.New, service5.New)

var bookingDomain = wire.NewSet(repository6.New, service6.New)

var staffDomain = wire.NewSet(repository3.New, service7.New)

var reviewDomain = wire.NewSet(repository8.New, service8.New)

var promotionDomain = wire.NewSet(repository7.New, service9.New)

var pricingDomain = wire.NewSet(repository9.New, service10.New)

var chatDomain = wire.NewSet(repository10.New, service11.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, hotel.New, roomtype.New, room.New, booking.New, staff.New, review.New, promotion.New, pricing.New, chat.New, router.New)
