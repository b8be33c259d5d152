package dto

import (
	"stay/internal/domains/staff/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type HireStaffRequest struct {
	HotelID   string  `json:"hotel_id"   validate:"required,uuid"`
	UserID    string  `json:"user_id"    validate:"required,uuid"`
	Position  string  `json:"position"   validate:"required,max=100"`
	StartDate string  `json:"start_date" validate:"required,dateonly"`
	EndDate   string  `json:"end_date"   validate:"required,dateonly"`
	Salary    int64   `json:"salary"     validate:"required,gt=0"`
	Terms     *string `json:"terms"      validate:"omitempty"`
}

func (h *HireStaffRequest) ParseDates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnlyFormat, h.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateOnlyFormat, h.EndDate)

	return start, end, err
}

func (h *HireStaffRequest) ToModels(user string, start, end time.Time) (model.Staff, model.Contract) {
	meta := gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}

	staff := model.Staff{
		ID:       uuid.NewString(),
		HotelID:  h.HotelID,
		UserID:   h.UserID,
		Position: h.Position,
		Active:   true,
		Metadata: meta,
	}

	contract := model.Contract{
		ID:        uuid.NewString(),
		StaffID:   staff.ID,
		StartDate: start,
		EndDate:   end,
		Salary:    h.Salary,
		Terms:     h.Terms,
		Metadata:  meta,
	}

	return staff, contract
}

type UpdateStaffRequest struct {
	Position string `db:"position" json:"position" validate:"omitempty,max=100"`
	Active   *bool  `db:"active"   json:"active"   validate:"omitempty"`
}

type ContractResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Salary    int64   `json:"salary"`
	Terms     *string `json:"terms,omitempty"`
}

func (r *ContractResponse) FromModel(mod model.Contract) {
	r.ID = mod.ID
	r.StaffID = mod.StaffID
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.Salary = mod.Salary
	r.Terms = mod.Terms
}

type StaffResponse struct {
	ID        string             `json:"id"`
	HotelID   string             `json:"hotel_id"`
	UserID    string             `json:"user_id"`
	Position  string             `json:"position"`
	Active    bool               `json:"active"`
	Contracts []ContractResponse `json:"contracts,omitempty"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(mod model.Staff) {
	r.ID = mod.ID
	r.HotelID = mod.HotelID
	r.UserID = mod.UserID
	r.Position = mod.Position
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

func (r *StaffResponse) WithContracts(contracts []model.Contract) {
	r.Contracts = make([]ContractResponse, len(contracts))
	for i, contract := range contracts {
		r.Contracts[i].FromModel(contract)
	}
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
