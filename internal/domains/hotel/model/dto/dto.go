package dto

import (
	"stay/internal/domains/hotel/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name        string  `json:"name"        validate:"required,max=150"`
	Description *string `json:"description" validate:"omitempty"`
	Address     string  `json:"address"     validate:"required,max=255"`
	City        string  `json:"city"        validate:"required,max=100"`
	StarRating  int     `json:"star_rating" validate:"required,min=1,max=5"`
	Phone       *string `json:"phone"       validate:"omitempty,max=20"`
	Email       *string `json:"email"       validate:"omitempty,email,max=100"`
}

func (c *CreateHotelRequest) ToModel(ownerID string) model.Hotel {
	return model.Hotel{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		City:        c.City,
		StarRating:  c.StarRating,
		Phone:       c.Phone,
		Email:       c.Email,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

type UpdateHotelRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Description *string `db:"description" json:"description" validate:"omitempty"`
	Address     string  `db:"address"     json:"address"     validate:"omitempty,max=255"`
	City        string  `db:"city"        json:"city"        validate:"omitempty,max=100"`
	StarRating  int     `db:"star_rating" json:"star_rating" validate:"omitempty,min=1,max=5"`
	Phone       *string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Email       *string `db:"email"       json:"email"       validate:"omitempty,email,max=100"`
	Active      *bool   `db:"active"      json:"active"      validate:"omitempty"`
}

type UpdateHotelImageRequest struct {
	ImageURL string `db:"image_url"`
}

type HotelResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	StarRating  int     `json:"star_rating"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(mod model.Hotel) {
	r.ID = mod.ID
	r.OwnerID = mod.OwnerID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Address = mod.Address
	r.City = mod.City
	r.StarRating = mod.StarRating
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.ImageURL = mod.ImageURL
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
