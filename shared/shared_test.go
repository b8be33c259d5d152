package shared_test

import (
	"stay/shared"
	"stay/shared/constant"
	"stay/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "zero limit", total: 50, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateHotel struct {
		Name string `db:"name"`
		City string `db:"city"`
		Note string
	}

	fields := shared.TransformFields(updateHotel{Name: "Grand Palace"}, "user-1")

	assert.Equal(t, "Grand Palace", fields["name"])
	assert.NotContains(t, fields, "city")
	assert.Equal(t, "user-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b1", "id", "bookings")

	where, args := group.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, "b1", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:b1", shared.BuildCacheKey("booking:get", "b1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "bookings"},
		},
	}

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	assert.Equal(t, keyA, keyB)

	filter.Filters = append(filter.Filters, dto.Filter{
		Field: "hotel_id", Operator: dto.FilterOperatorEq, Value: "h1", Table: "bookings",
	})
	keyC := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	assert.NotEqual(t, keyA, keyC)
}
