package dto

import (
	"stay/internal/domains/promotion/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreatePromotionRequest struct {
	HotelID         string  `json:"hotel_id"         validate:"required,uuid"`
	Code            string  `json:"code"             validate:"required,max=50,uppercase"`
	Description     *string `json:"description"      validate:"omitempty"`
	DiscountPercent int     `json:"discount_percent" validate:"required,min=1,max=100"`
	ValidFrom       string  `json:"valid_from"       validate:"required,dateonly"`
	ValidTo         string  `json:"valid_to"         validate:"required,dateonly"`
}

func (c *CreatePromotionRequest) ParseDates() (from, to time.Time, err error) {
	from, err = timezone.Parse(constant.DateOnlyFormat, c.ValidFrom)
	if err != nil {
		return from, to, err
	}

	to, err = timezone.Parse(constant.DateOnlyFormat, c.ValidTo)

	return from, to, err
}

func (c *CreatePromotionRequest) ToModel(user string, from, to time.Time) model.Promotion {
	return model.Promotion{
		ID:              uuid.NewString(),
		HotelID:         c.HotelID,
		Code:            c.Code,
		Description:     c.Description,
		DiscountPercent: c.DiscountPercent,
		ValidFrom:       from,
		ValidTo:         to,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePromotionRequest struct {
	Description     *string `db:"description"      json:"description"      validate:"omitempty"`
	DiscountPercent int     `db:"discount_percent" json:"discount_percent" validate:"omitempty,min=1,max=100"`
	Active          *bool   `db:"active"           json:"active"           validate:"omitempty"`
}

type PromotionResponse struct {
	ID              string  `json:"id"`
	HotelID         string  `json:"hotel_id"`
	Code            string  `json:"code"`
	Description     *string `json:"description,omitempty"`
	DiscountPercent int     `json:"discount_percent"`
	ValidFrom       string  `json:"valid_from"`
	ValidTo         string  `json:"valid_to"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *PromotionResponse) FromModel(mod model.Promotion) {
	r.ID = mod.ID
	r.HotelID = mod.HotelID
	r.Code = mod.Code
	r.Description = mod.Description
	r.DiscountPercent = mod.DiscountPercent
	r.ValidFrom = mod.ValidFrom.Format(constant.DateOnlyFormat)
	r.ValidTo = mod.ValidTo.Format(constant.DateOnlyFormat)
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetPromotionsResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetPromotionsResponse) FromModels(models []model.Promotion, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Promotions = make([]PromotionResponse, len(models))
	for i, mod := range models {
		r.Promotions[i].FromModel(mod)
	}
}
