package model

import (
	"stay/shared/model"
	"time"
)

const (
	TableName  = "hotel_staff"
	EntityName = "staff"

	FieldID       = "id"
	FieldHotelID  = "hotel_id"
	FieldUserID   = "user_id"
	FieldPosition = "position"
	FieldActive   = "active"
)

const (
	ContractTableName  = "staff_contracts"
	ContractEntityName = "staff_contract"

	ContractFieldID      = "id"
	ContractFieldStaffID = "staff_id"
)

type Staff struct {
	ID       string `db:"id"`
	HotelID  string `db:"hotel_id"`
	UserID   string `db:"user_id"`
	Position string `db:"position"`
	Active   bool   `db:"active"`
	model.Metadata
}

type Contract struct {
	ID        string    `db:"id"`
	StaffID   string    `db:"staff_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Salary    int64     `db:"salary"`
	Terms     *string   `db:"terms"`
	model.Metadata
}
