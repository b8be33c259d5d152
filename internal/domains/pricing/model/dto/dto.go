package dto

import (
	"stay/internal/domains/pricing/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreatePricingRuleRequest struct {
	RoomTypeID    string `json:"room_type_id"   validate:"required,uuid"`
	Name          string `json:"name"           validate:"required,max=100"`
	StartDate     string `json:"start_date"     validate:"required,dateonly"`
	EndDate       string `json:"end_date"       validate:"required,dateonly"`
	PriceOverride int64  `json:"price_override" validate:"required,gt=0"`
}

func (c *CreatePricingRuleRequest) ParseDates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateOnlyFormat, c.EndDate)

	return start, end, err
}

func (c *CreatePricingRuleRequest) ToModel(user string, start, end time.Time) model.PricingRule {
	return model.PricingRule{
		ID:            uuid.NewString(),
		RoomTypeID:    c.RoomTypeID,
		Name:          c.Name,
		StartDate:     start,
		EndDate:       end,
		PriceOverride: c.PriceOverride,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePricingRuleRequest struct {
	Name          string `db:"name"           json:"name"           validate:"omitempty,max=100"`
	PriceOverride int64  `db:"price_override" json:"price_override" validate:"omitempty,gt=0"`
	Active        *bool  `db:"active"         json:"active"         validate:"omitempty"`
}

type PricingRuleResponse struct {
	ID            string `json:"id"`
	RoomTypeID    string `json:"room_type_id"`
	Name          string `json:"name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	PriceOverride int64  `json:"price_override"`
	Active        bool   `json:"active"`
	gDto.Metadata
}

func (r *PricingRuleResponse) FromModel(mod model.PricingRule) {
	r.ID = mod.ID
	r.RoomTypeID = mod.RoomTypeID
	r.Name = mod.Name
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.PriceOverride = mod.PriceOverride
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetPricingRulesResponse struct {
	PricingRules []PricingRuleResponse `json:"pricing_rules"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetPricingRulesResponse) FromModels(models []model.PricingRule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.PricingRules = make([]PricingRuleResponse, len(models))
	for i, mod := range models {
		r.PricingRules[i].FromModel(mod)
	}
}

type NightlyPrice struct {
	Night string `json:"night"`
	Price int64  `json:"price"`
}

type QuoteResponse struct {
	RoomTypeID string         `json:"room_type_id"`
	Nights     []NightlyPrice `json:"nights"`
	Total      int64          `json:"total"`
}
