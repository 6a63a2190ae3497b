package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/muqry/hotel-reservation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() models.ReservationRequest {
	return models.ReservationRequest{
		RoomTypeIndex: 1,
		NumRooms:      2,
		CheckIn:       models.NewDate(2024, time.March, 1),
		CheckOut:      models.NewDate(2024, time.March, 3),
		Services:      []models.Service{{Name: "Breakfast", Cost: 20}},
	}
}

func fieldErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
	return verrs
}

func TestNew_ValidRequest(t *testing.T) {
	assert.NoError(t, New().Struct(validRequest()))
}

func TestNew_RequestRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ReservationRequest)
		field  string
		tag    string
	}{
		{"negative room index", func(r *models.ReservationRequest) { r.RoomTypeIndex = -1 }, "RoomTypeIndex", "gte"},
		{"zero rooms", func(r *models.ReservationRequest) { r.NumRooms = 0 }, "NumRooms", "gt"},
		{"negative rooms", func(r *models.ReservationRequest) { r.NumRooms = -2 }, "NumRooms", "gt"},
		{"missing check-in", func(r *models.ReservationRequest) { r.CheckIn = models.Date{} }, "CheckIn", "required"},
		{"same day", func(r *models.ReservationRequest) { r.CheckOut = r.CheckIn }, "CheckOut", "after_checkin"},
		{"check-out first", func(r *models.ReservationRequest) {
			r.CheckOut = models.NewDate(2024, time.February, 28)
		}, "CheckOut", "after_checkin"},
		{"unnamed service", func(r *models.ReservationRequest) {
			r.Services = []models.Service{{Cost: 5}}
		}, "Name", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			verrs := fieldErrors(t, New().Struct(req))
			require.NotEmpty(t, verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
			assert.Equal(t, tt.tag, verrs[0].Tag())
		})
	}
}

func TestValidationMessage(t *testing.T) {
	req := validRequest()
	req.NumRooms = 0
	req.CheckOut = req.CheckIn

	verrs := fieldErrors(t, New().Struct(req))
	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		messages[fe.Field()] = ValidationMessage(fe)
	}

	assert.Equal(t, "must be greater than 0", messages["NumRooms"])
	assert.Equal(t, "must be after the check-in date", messages["CheckOut"])
}
