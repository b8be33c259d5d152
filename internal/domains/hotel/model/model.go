package model

import (
	"stay/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID         = "id"
	FieldOwnerID    = "owner_id"
	FieldName       = "name"
	FieldCity       = "city"
	FieldStarRating = "star_rating"
	FieldActive     = "active"
)

type Hotel struct {
	ID          string  `db:"id"`
	OwnerID     string  `db:"owner_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Address     string  `db:"address"`
	City        string  `db:"city"`
	StarRating  int     `db:"star_rating"`
	Phone       *string `db:"phone"`
	Email       *string `db:"email"`
	ImageURL    *string `db:"image_url"`
	Active      bool    `db:"active"`
	model.Metadata
}
