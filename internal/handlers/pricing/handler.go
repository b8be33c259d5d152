package pricing

import (
	"net/http"
	"stay/infras/otel"
	"stay/internal/domains/pricing/model"
	"stay/internal/domains/pricing/model/dto"
	"stay/internal/domains/pricing/service"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	"stay/shared/timezone"
	"stay/shared/validator"
	"stay/transport/http/middleware"
	"stay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Pricing, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/pricing-rules", func(r chi.Router) {
		r.Get("/quote", handler.Quote)

		r.Group(func(r chi.Router) {
			r.Use(handler.auth.Required)
			r.Post("/", handler.CreatePricingRule)
			r.Get("/", handler.GetPricingRules)
			r.Patch("/{id}", handler.UpdatePricingRule)
			r.Delete("/{id}", handler.DeletePricingRule)
		})
	})
}

// CreatePricingRule creates a pricing rule for a room type.
// @Summary Create a pricing rule
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CreatePricingRuleRequest true "Create Pricing Rule Request"
// @Success 201 {object} response.Data[dto.PricingRuleResponse] "Pricing rule created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules [post]
// @Security BearerAuth
func (handler *Handler) CreatePricingRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePricingRule")
	defer scope.End()

	req := dto.CreatePricingRuleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pricing rule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pricing rule created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPricingRules lists pricing rules for management screens.
// @Summary Get all pricing rules
// @Tags Pricing
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_type_id query string false "Filter by room type ID"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetPricingRulesResponse] "List of pricing rules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules [get]
// @Security BearerAuth
func (handler *Handler) GetPricingRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingRules")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	roomTypeID := r.URL.Query().Get(model.FieldRoomTypeID)
	active := r.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomTypeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomTypeID,
			Table:    model.TableName,
		})
	}

	if active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active,
			Table:    model.TableName,
		})
	}

	rules, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing rules retrieved successfully")

	response.WithJSON(w, http.StatusOK, rules)
}

// Quote prices a stay night by night for a room type.
// @Summary Quote a stay for a room type
// @Tags Pricing
// @Produce json
// @Param room_type_id query string true "Room type ID"
// @Param from query string true "Check-in date (YYYY-MM-DD)"
// @Param to query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Nightly prices and total"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/quote [get]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	roomTypeID := r.URL.Query().Get(model.FieldRoomTypeID)
	fromParam := r.URL.Query().Get(constant.RequestQueryFrom)
	toParam := r.URL.Query().Get(constant.RequestQueryTo)

	if roomTypeID == "" || fromParam == "" || toParam == "" {
		err := failure.BadRequestFromString("room_type_id, from and to are required")
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	from, err := timezone.Parse(constant.DateOnlyFormat, fromParam)
	if err != nil {
		err = failure.BadRequestFromString("from must be a valid date in YYYY-MM-DD format")
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	to, err := timezone.Parse(constant.DateOnlyFormat, toParam)
	if err != nil {
		err = failure.BadRequestFromString("to must be a valid date in YYYY-MM-DD format")
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, roomTypeID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay quoted successfully")

	response.WithJSON(w, http.StatusOK, quote)
}

// UpdatePricingRule updates a pricing rule by its ID.
// @Summary Update a pricing rule by ID
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Param request body dto.UpdatePricingRuleRequest true "Update Pricing Rule Request"
// @Success 200 {object} response.Message "Pricing rule updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePricingRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePricingRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePricingRuleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing rule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pricing rule updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Pricing rule updated successfully")
}

// DeletePricingRule deletes a pricing rule by its ID.
// @Summary Delete a pricing rule by ID
// @Tags Pricing
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Success 200 {object} response.Message "Pricing rule deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing-rules/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePricingRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePricingRule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pricing rule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pricing rule deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Pricing rule deleted successfully")
}
