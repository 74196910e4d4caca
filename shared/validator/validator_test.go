package validator_test

import (
	"encore/shared/failure"
	"encore/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	Name      string `json:"name"       validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Venue     string `json:"venue"      validate:"required"`
	EventDate string `json:"event_date" validate:"omitempty,day"`
	Status    string `json:"status"     validate:"omitempty,oneof=pending confirmed cancelled"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    bookingForm
		message string
	}{
		{
			name: "valid booking",
			data: bookingForm{Name: "Ada", Email: "ada@example.com", Venue: "Town Hall", EventDate: "2025-06-01", Status: "pending"},
		},
		{
			name:    "missing name uses the json field name",
			data:    bookingForm{Email: "ada@example.com", Venue: "Town Hall"},
			message: "name is required",
		},
		{
			name:    "invalid email",
			data:    bookingForm{Name: "Ada", Email: "ada", Venue: "Town Hall"},
			message: "email must be a valid email address",
		},
		{
			name:    "malformed event date",
			data:    bookingForm{Name: "Ada", Email: "ada@example.com", Venue: "Town Hall", EventDate: "01/06/2025"},
			message: "event_date must be a date formatted as YYYY-MM-DD",
		},
		{
			name:    "unknown status",
			data:    bookingForm{Name: "Ada", Email: "ada@example.com", Venue: "Town Hall", Status: "archived"},
			message: "status must be one of pending confirmed cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("ada@example.com", "required,email"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.NoError(t, validator.ValidateVar("2025-12-31", "day"))
	assert.Error(t, validator.ValidateVar("2025-13-01", "day"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "valid json", body: `{"name":"Ada","email":"ada@example.com","venue":"Town Hall"}`},
		{name: "invalid field", body: `{"name":"Ada","email":"nope","venue":"Town Hall"}`, expectError: true},
		{name: "malformed json", body: `{"name":"Ada","email":}`, expectError: true},
		{name: "empty object", body: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingForm

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Ada", data.Name)
			}
		})
	}
}
