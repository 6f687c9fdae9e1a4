package model_test

import (
	"testing"
	"time"

	"voyage/internal/domains/booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	statuses := []string{model.StatusPending, model.StatusConfirmed, model.StatusCancelled, model.StatusCompleted}

	allowed := map[string]map[string]bool{
		model.StatusPending:   {model.StatusConfirmed: true, model.StatusCancelled: true},
		model.StatusConfirmed: {model.StatusCompleted: true, model.StatusCancelled: true},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(from+"->"+to, func(t *testing.T) {
				booking := model.Booking{Status: from}

				assert.Equal(t, allowed[from][to], booking.CanTransitionTo(to))
			})
		}
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, model.Booking{Status: model.StatusPending}.IsActive())
	assert.True(t, model.Booking{Status: model.StatusConfirmed}.IsActive())
	assert.False(t, model.Booking{Status: model.StatusCancelled}.IsActive())
	assert.False(t, model.Booking{Status: model.StatusCompleted}.IsActive())
}

func TestBooking_ToEvent(t *testing.T) {
	occurredAt := time.Date(2025, 6, 5, 9, 30, 0, 0, time.UTC)
	booking := model.Booking{
		ID:               "b-1",
		BookingReference: "K7Q2ZP4M",
		RoomTypeID:       "rt-1",
		UserID:           "u-1",
		CheckIn:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		NumRooms:         2,
		Status:           model.StatusConfirmed,
		TotalPrice:       decimal.RequireFromString("862.5"),
	}

	event := booking.ToEvent(model.EventConfirmed, occurredAt)

	assert.Equal(t, model.Event{
		Type:             model.EventConfirmed,
		BookingID:        "b-1",
		BookingReference: "K7Q2ZP4M",
		RoomTypeID:       "rt-1",
		UserID:           "u-1",
		CheckIn:          "2025-06-01",
		CheckOut:         "2025-06-04",
		NumRooms:         2,
		Status:           model.StatusConfirmed,
		TotalPrice:       "862.50",
		OccurredAt:       occurredAt,
	}, event)
}
