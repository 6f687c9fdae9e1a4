package model_test

import (
	"testing"
	"time"

	"voyage/internal/domains/payment/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{from: model.StatusPending, to: model.StatusCompleted, allowed: true},
		{from: model.StatusPending, to: model.StatusFailed, allowed: true},
		{from: model.StatusPending, to: model.StatusRefunded, allowed: false},
		{from: model.StatusCompleted, to: model.StatusRefunded, allowed: true},
		{from: model.StatusCompleted, to: model.StatusFailed, allowed: false},
		{from: model.StatusFailed, to: model.StatusCompleted, allowed: false},
		{from: model.StatusRefunded, to: model.StatusCompleted, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, model.Payment{Status: tt.from}.CanTransitionTo(tt.to))
		})
	}
}

func TestPayment_ToEvent(t *testing.T) {
	occurredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	payment := model.Payment{
		ID:            "p-1",
		BookingID:     "b-1",
		TransactionID: "txn_123",
		Amount:        decimal.RequireFromString("689.93"),
		Status:        model.StatusCompleted,
	}

	event := payment.ToEvent(model.EventCompleted, occurredAt)

	assert.Equal(t, "689.93", event.Amount)
	assert.Equal(t, model.EventCompleted, event.Type)
	assert.Equal(t, "txn_123", event.TransactionID)
	assert.Equal(t, occurredAt, event.OccurredAt)
}
