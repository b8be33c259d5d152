package model

import (
	"stay/shared/model"
	"time"
)

const (
	TableName  = "pricing_rules"
	EntityName = "pricing_rule"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldActive     = "active"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
)

type PricingRule struct {
	ID            string    `db:"id"`
	RoomTypeID    string    `db:"room_type_id"`
	Name          string    `db:"name"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	PriceOverride int64     `db:"price_override"`
	Active        bool      `db:"active"`
	model.Metadata
}

// Covers reports whether the rule applies to a given night.
func (p *PricingRule) Covers(night time.Time) bool {
	return p.Active && !night.Before(p.StartDate) && !night.After(p.EndDate)
}
