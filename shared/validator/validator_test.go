package validator_test

import (
	"strings"
	"testing"

	"voyage/shared/failure"
	"voyage/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	RoomTypeID string `validate:"required,uuid" json:"room_type_id"`
	CheckIn    string `validate:"required,datetime=2006-01-02" json:"check_in"`
	NumRooms   int    `validate:"gte=1" json:"num_rooms"`
	Price      string `validate:"required,money" json:"price"`
	Status     string `validate:"omitempty,oneof=pending confirmed" json:"status"`
}

func validStay() stayRequest {
	return stayRequest{
		RoomTypeID: "5b0c5a8e-7f5e-4c3a-9a43-1f3c8f0d2a11",
		CheckIn:    "2025-06-01",
		NumRooms:   1,
		Price:      "150.00",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*stayRequest)
		message string
	}{
		{name: "valid", mutate: func(*stayRequest) {}},
		{name: "missing room type", mutate: func(s *stayRequest) { s.RoomTypeID = "" }, message: "RoomTypeID is required"},
		{name: "bad uuid", mutate: func(s *stayRequest) { s.RoomTypeID = "rt-1" }, message: "RoomTypeID must be a valid UUID"},
		{name: "bad date", mutate: func(s *stayRequest) { s.CheckIn = "01/06/2025" }, message: "CheckIn must match the format 2006-01-02"},
		{name: "zero rooms", mutate: func(s *stayRequest) { s.NumRooms = 0 }, message: "NumRooms must be greater than or equal to 1"},
		{name: "negative price", mutate: func(s *stayRequest) { s.Price = "-1" }},
		{name: "three decimals", mutate: func(s *stayRequest) { s.Price = "10.005" }},
		{name: "not a number", mutate: func(s *stayRequest) { s.Price = "ten" }},
		{name: "bad status", mutate: func(s *stayRequest) { s.Status = "lost" }, message: "Status must be one of pending confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validStay()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)
			if tt.name == "valid" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, failure.ErrValidation)

			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("12.50", "money"))
	assert.NoError(t, validator.ValidateVar("0", "money"))
	assert.Error(t, validator.ValidateVar("12.505", "money"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
	assert.Error(t, validator.ValidateVar("x", "empty"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name: "valid body",
			body: `{"room_type_id":"5b0c5a8e-7f5e-4c3a-9a43-1f3c8f0d2a11","check_in":"2025-06-01","num_rooms":2,"price":"99.99"}`,
		},
		{
			name:        "malformed body",
			body:        `{"room_type_id":}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &data)
			if tt.expectError {
				assert.ErrorIs(t, err, failure.ErrValidation)

				return
			}

			assert.NoError(t, err)
		})
	}
}
