package service

import (
	"context"
	"fmt"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/authz"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	promotionModel "stay/internal/domains/promotion/model"
	promotionRepo "stay/internal/domains/promotion/repository"
	roomtypeModel "stay/internal/domains/roomtype/model"
	roomtypeRepo "stay/internal/domains/roomtype/repository"
	"stay/internal/events"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Cancel(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, hotelID string, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo          repository.Booking
	roomTypeRepo  roomtypeRepo.RoomType
	promotionRepo promotionRepo.Promotion
	authorizer    authz.Authorizer
	events        events.Publisher
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	roomTypeRepo roomtypeRepo.RoomType,
	promotionRepo promotionRepo.Promotion,
	authorizer authz.Authorizer,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		roomTypeRepo:  roomTypeRepo,
		promotionRepo: promotionRepo,
		authorizer:    authorizer,
		events:        publisher,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Create prices the booking from the room type base prices, ignoring any
// amounts sent by the client, and persists the header together with its
// detail rows in one transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if len(req.Details) == 0 {
		return res, failure.BadRequestFromString("must include at least one room detail")
	}

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err))
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in")
	}

	booking := req.ToModel(guest, checkIn, checkOut)

	if req.PromotionCode != nil && *req.PromotionCode != constant.Empty {
		promotion, err := s.resolvePromotion(ctx, req.HotelID, *req.PromotionCode)
		if err != nil {
			return res, err
		}

		booking.PromotionID = &promotion.ID
	}

	details := make([]model.BookingDetail, len(req.Details))
	roomTypes := make(map[string]roomtypeModel.RoomType)
	requested := make(map[string]int)

	var total int64

	for i, detailReq := range req.Details {
		roomType, ok := roomTypes[detailReq.RoomTypeID]
		if !ok {
			roomType, err = s.roomTypeRepo.Get(ctx, shared.FilterByID(detailReq.RoomTypeID, roomtypeModel.FieldID, roomtypeModel.TableName))
			if err != nil {
				log.Error().Err(err).Msg("failed to get room type")

				return res, fmt.Errorf("failed to get room type: %w", err)
			}

			if roomType.ID == constant.Empty {
				return res, failure.NotFound("room type not found")
			}

			if roomType.HotelID != req.HotelID {
				return res, failure.BadRequestFromString("room type does not belong to this hotel")
			}

			roomTypes[roomType.ID] = roomType
		}

		requested[roomType.ID] += detailReq.Quantity

		guestsPerRoom := detailReq.GuestsPerRoom
		if guestsPerRoom == 0 {
			guestsPerRoom = roomType.Capacity
		}

		subtotal := roomType.BasePrice * int64(detailReq.Quantity)
		total += subtotal

		details[i] = model.BookingDetail{
			ID:            uuid.NewString(),
			BookingID:     booking.ID,
			RoomTypeID:    roomType.ID,
			Quantity:      detailReq.Quantity,
			UnitPrice:     roomType.BasePrice,
			Subtotal:      subtotal,
			GuestsPerRoom: guestsPerRoom,
			Metadata:      booking.Metadata,
		}
	}

	// Quantities are summed per room type so a booking cannot oversell by
	// splitting one room type across several detail lines.
	for roomTypeID, quantity := range requested {
		booked, err := s.repo.CountOverlappingRooms(ctx, roomTypeID, checkIn, checkOut)
		if err != nil {
			log.Error().Err(err).Msg("failed to count overlapping rooms")

			return res, fmt.Errorf("failed to count overlapping rooms: %w", err)
		}

		if booked+quantity > roomTypes[roomTypeID].TotalRooms {
			return res, failure.Conflict("not enough rooms available")
		}
	}

	booking.TotalPrice = total

	if err = s.repo.CreateWithDetails(ctx, booking, details); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.events.BookingCreated(ctx, events.BookingEvent{
		BookingID:  booking.ID,
		HotelID:    booking.HotelID,
		GuestID:    booking.GuestID,
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		OccurredAt: timezone.Now(),
	}); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking created event")
	}

	s.invalidateLists(ctx)

	res.FromModel(booking)
	res.WithDetails(details)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, ok := model.AllowedStatusTargets[req.Status]; !ok {
		return failure.BadRequestFromString("invalid booking status")
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyRoleID).(int)

	if err = s.authorizer.CanManageHotel(ctx, user, role, booking.HotelID); err != nil {
		return err
	}

	return s.setStatus(ctx, booking, req.Status, user)
}

// Cancel is the guest-facing shortcut for UpdateStatus(canceled). The guest
// who made the booking may cancel it; anyone else needs hotel management
// rights.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyRoleID).(int)

	if booking.GuestID != user {
		if err = s.authorizer.CanManageHotel(ctx, user, role, booking.HotelID); err != nil {
			return err
		}
	}

	return s.setStatus(ctx, booking, model.StatusCanceled, user)
}

func (s *serviceImpl) setStatus(ctx context.Context, booking model.Booking, status, user string) error {
	updatedFields := shared.TransformFields(dto.UpdateStatusFields{Status: status}, user)

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if err := s.events.BookingStatusChanged(ctx, events.BookingEvent{
		BookingID:  booking.ID,
		HotelID:    booking.HotelID,
		GuestID:    booking.GuestID,
		Status:     status,
		OccurredAt: timezone.Now(),
	}); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to publish booking status event")
	}

	s.invalidate(ctx, booking.ID)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return s.authorizeRead(ctx, res)
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	details, err := s.repo.GetDetails(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking details")

		return res, fmt.Errorf("failed to get booking details: %w", err)
	}

	res.FromModel(booking)
	res.WithDetails(details)

	if res, err = s.authorizeRead(ctx, res); err != nil {
		return dto.BookingResponse{}, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, hotelID string, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	roleID, _ := ctx.Value(constant.ContextKeyRoleID).(int)

	if roleID != constant.RoleAdmin {
		if hotelID == constant.Empty {
			return res, failure.Forbidden("listing bookings requires a hotel you manage")
		}

		if err = s.authorizer.CanManageHotel(ctx, userID, roleID, hotelID); err != nil {
			return res, err
		}
	}

	if hotelID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldHotelID,
			Operator: gDto.FilterOperatorEq,
			Value:    hotelID,
			Table:    model.TableName,
		})
	}

	return s.list(ctx, req, filter)
}

// list runs the shared listing path. Callers are responsible for scoping the
// filter to what the requester may see.
func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestID,
				Operator: gDto.FilterOperatorEq,
				Value:    guest,
				Table:    model.TableName,
			},
		},
	}

	return s.list(ctx, req, filter)
}

// authorizeRead allows the booking's guest through and defers to the
// authorizer for everyone else.
func (s *serviceImpl) authorizeRead(ctx context.Context, res dto.BookingResponse) (dto.BookingResponse, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	roleID, _ := ctx.Value(constant.ContextKeyRoleID).(int)

	if res.GuestID == userID {
		return res, nil
	}

	if err := s.authorizer.CanManageHotel(ctx, userID, roleID, res.HotelID); err != nil {
		return dto.BookingResponse{}, err
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) resolvePromotion(ctx context.Context, hotelID, code string) (promotion promotionModel.Promotion, err error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    promotionModel.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    promotionModel.TableName,
			},
			gDto.Filter{
				Field:    promotionModel.FieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    code,
				Table:    promotionModel.TableName,
			},
		},
	}

	promotion, err = s.promotionRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get promotion")

		return promotion, fmt.Errorf("failed to get promotion: %w", err)
	}

	if promotion.ID == constant.Empty {
		return promotion, failure.NotFound("promotion not found")
	}

	if !promotion.Valid(timezone.Now()) {
		return promotion, failure.BadRequestFromString("promotion is not active")
	}

	return promotion, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
