package model

import (
	"stay/shared/model"
	"time"
)

const (
	TableName  = "promotions"
	EntityName = "promotion"

	FieldID        = "id"
	FieldHotelID   = "hotel_id"
	FieldCode      = "code"
	FieldActive    = "active"
	FieldValidFrom = "valid_from"
	FieldValidTo   = "valid_to"
)

type Promotion struct {
	ID              string    `db:"id"`
	HotelID         string    `db:"hotel_id"`
	Code            string    `db:"code"`
	Description     *string   `db:"description"`
	DiscountPercent int       `db:"discount_percent"`
	ValidFrom       time.Time `db:"valid_from"`
	ValidTo         time.Time `db:"valid_to"`
	Active          bool      `db:"active"`
	model.Metadata
}

// Valid reports whether the promotion is active and inside its validity
// window at the given time.
func (p *Promotion) Valid(at time.Time) bool {
	return p.Active && !at.Before(p.ValidFrom) && !at.After(p.ValidTo)
}
