package service

import (
	"context"
	"fmt"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/authz"
	"stay/internal/domains/pricing/model"
	"stay/internal/domains/pricing/model/dto"
	"stay/internal/domains/pricing/repository"
	roomtypeModel "stay/internal/domains/roomtype/model"
	roomtypeRepo "stay/internal/domains/roomtype/repository"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPricingRule = "pricing_rule:gets"
	cacheCountPricingRule  = "pricing_rule:count"
	cacheQuote             = "pricing_rule:quote"
)

type Pricing interface {
	Create(ctx context.Context, req dto.CreatePricingRuleRequest) (dto.PricingRuleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPricingRulesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Quote(ctx context.Context, roomTypeID string, from, to time.Time) (dto.QuoteResponse, error)
	Update(ctx context.Context, req dto.UpdatePricingRuleRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.PricingRule
	roomTypeRepo roomtypeRepo.RoomType
	authorizer   authz.Authorizer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.PricingRule, roomTypeRepo roomtypeRepo.RoomType, authorizer authz.Authorizer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo:         repo,
		roomTypeRepo: roomTypeRepo,
		authorizer:   authorizer,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePricingRuleRequest) (res dto.PricingRuleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomType, err := s.roomType(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyRoleID).(int)

	if err = s.authorizer.CanAdministerHotel(ctx, user, role, roomType.HotelID); err != nil {
		return res, err
	}

	start, end, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString("invalid pricing rule dates")
	}

	if end.Before(start) {
		return res, failure.BadRequestFromString("end date must not be before start date")
	}

	rule := req.ToModel(user, start, end)

	if err = s.repo.Insert(ctx, rule); err != nil {
		log.Error().Err(err).Msg("failed to create pricing rule")

		return res, fmt.Errorf("failed to create pricing rule: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(rule)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPricingRulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPricingRule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pricing rules")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing rules")

		return res, fmt.Errorf("failed to count pricing rules: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing rules")

		return res, fmt.Errorf("failed to get pricing rules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing rules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPricingRule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pricing rules")

		return res, fmt.Errorf("failed to count pricing rules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pricing rule count to cache")
		}
	}()

	return res, nil
}

// Quote lists the effective price per night over [from, to). Nights covered by
// an active rule use that rule's override, the rest fall back to the room
// type's base price. When windows overlap, the rule that starts latest wins.
func (s *serviceImpl) Quote(ctx context.Context, roomTypeID string, from, to time.Time) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !to.After(from) {
		return res, failure.BadRequestFromString("quote range must end after it starts")
	}

	cacheKey := shared.BuildCacheKey(cacheQuote, roomTypeID, from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quote")

		return res, nil
	}

	roomType, err := s.roomType(ctx, roomTypeID)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomTypeID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomTypeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	rules, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing rules")

		return res, fmt.Errorf("failed to get pricing rules: %w", err)
	}

	res.RoomTypeID = roomTypeID

	for night := from; night.Before(to); night = night.AddDate(0, 0, 1) {
		price := roomType.BasePrice

		var winner *model.PricingRule

		for i := range rules {
			rule := &rules[i]
			if !rule.Covers(night) {
				continue
			}

			if winner == nil || rule.StartDate.After(winner.StartDate) {
				winner = rule
			}
		}

		if winner != nil {
			price = winner.PriceOverride
		}

		res.Nights = append(res.Nights, dto.NightlyPrice{
			Night: night.Format(constant.DateOnlyFormat),
			Price: price,
		})
		res.Total += price
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quote to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePricingRuleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePricingRuleRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	rule, err := s.administeredRule(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(rule.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update pricing rule")

		return fmt.Errorf("failed to update pricing rule: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	rule, err := s.administeredRule(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(rule.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete pricing rule")

		return fmt.Errorf("failed to delete pricing rule: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) administeredRule(ctx context.Context, id string) (rule model.PricingRule, err error) {
	rule, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing rule")

		return rule, fmt.Errorf("failed to get pricing rule: %w", err)
	}

	if rule.ID == constant.Empty {
		return rule, failure.NotFound("pricing rule not found")
	}

	roomType, err := s.roomType(ctx, rule.RoomTypeID)
	if err != nil {
		return rule, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyRoleID).(int)

	if err = s.authorizer.CanAdministerHotel(ctx, user, role, roomType.HotelID); err != nil {
		return rule, err
	}

	return rule, nil
}

func (s *serviceImpl) roomType(ctx context.Context, id string) (roomType roomtypeModel.RoomType, err error) {
	roomType, err = s.roomTypeRepo.Get(ctx, shared.FilterByID(id, roomtypeModel.FieldID, roomtypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, failure.NotFound("room type not found")
	}

	return roomType, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPricingRule)
		shared.InvalidateCaches(c, s.cache, cacheCountPricingRule)
		shared.InvalidateCaches(c, s.cache, cacheQuote)
	}()
}
