package validator_test

import (
	"stay/shared/failure"
	"stay/shared/validator"
	"strings"
	"testing"
)

type createBookingPayload struct {
	HotelID    string `validate:"required"          json:"hotel_id"`
	CheckIn    string `validate:"required,dateonly" json:"check_in"`
	CheckOut   string `validate:"required,dateonly" json:"check_out"`
	GuestCount int    `validate:"required,gte=1"    json:"guest_count"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        createBookingPayload
		expectError bool
	}{
		{
			name: "valid struct",
			data: createBookingPayload{
				HotelID:    "h1",
				CheckIn:    "2024-12-01",
				CheckOut:   "2024-12-05",
				GuestCount: 2,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: createBookingPayload{
				CheckIn:    "2024-12-01",
				CheckOut:   "2024-12-05",
				GuestCount: 2,
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: createBookingPayload{
				HotelID:    "h1",
				CheckIn:    "01/12/2024",
				CheckOut:   "2024-12-05",
				GuestCount: 2,
			},
			expectError: true,
		},
		{
			name: "guest count below minimum",
			data: createBookingPayload{
				HotelID:    "h1",
				CheckIn:    "2024-12-01",
				CheckOut:   "2024-12-05",
				GuestCount: 0,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}

			if err != nil && failure.GetCode(err) != 400 {
				t.Errorf("expected failure code 400, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidate_DecodesBody(t *testing.T) {
	body := strings.NewReader(`{"hotel_id":"h1","check_in":"2024-12-01","check_out":"2024-12-05","guest_count":2}`)

	var data createBookingPayload
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if data.HotelID != "h1" || data.GuestCount != 2 {
		t.Errorf("unexpected decoded payload: %+v", data)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"hotel_id":`)

	var data createBookingPayload
	err := validator.Validate(body, &data)
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}

	if failure.GetCode(err) != 400 {
		t.Errorf("expected failure code 400, got %d", failure.GetCode(err))
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("confirmed", "oneof=confirmed canceled completed no_show"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("archived", "oneof=confirmed canceled completed no_show"); err == nil {
		t.Error("expected error for value outside the allowed set")
	}
}
