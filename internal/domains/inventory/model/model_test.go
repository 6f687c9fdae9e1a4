package model_test

import (
	"testing"
	"time"

	"voyage/internal/domains/inventory/model"
	"voyage/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, checkIn, checkOut string) model.DateRange {
	t.Helper()

	stay, err := model.ParseDateRange(checkIn, checkOut)
	require.NoError(t, err)

	return stay
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		nights   int
		wantErr  bool
	}{
		{name: "five nights", checkIn: "2025-06-01", checkOut: "2025-06-06", nights: 5},
		{name: "one night across month end", checkIn: "2025-06-30", checkOut: "2025-07-01", nights: 1},
		{name: "same day", checkIn: "2025-06-01", checkOut: "2025-06-01", wantErr: true},
		{name: "inverted", checkIn: "2025-06-06", checkOut: "2025-06-01", wantErr: true},
		{name: "bad check in", checkIn: "06/01/2025", checkOut: "2025-06-06", wantErr: true},
		{name: "bad check out", checkIn: "2025-06-01", checkOut: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := model.ParseDateRange(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrValidation)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.nights, stay.Nights())
		})
	}
}

func TestNewDateRange_DropsClock(t *testing.T) {
	in := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	out := time.Date(2025, 6, 2, 0, 15, 0, 0, time.UTC)

	stay, err := model.NewDateRange(in, out)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), stay.CheckIn)
	assert.Equal(t, 1, stay.Nights())
	assert.Equal(t, "2025-06-01/2025-06-02", stay.String())
}

func TestDateRange_Overlaps(t *testing.T) {
	base := mustRange(t, "2025-06-01", "2025-06-06")

	tests := []struct {
		name     string
		other    model.DateRange
		overlaps bool
	}{
		{name: "identical", other: base, overlaps: true},
		{name: "inside", other: mustRange(t, "2025-06-02", "2025-06-03"), overlaps: true},
		{name: "straddles start", other: mustRange(t, "2025-05-30", "2025-06-02"), overlaps: true},
		{name: "straddles end", other: mustRange(t, "2025-06-05", "2025-06-09"), overlaps: true},
		{name: "ends on check in", other: mustRange(t, "2025-05-28", "2025-06-01"), overlaps: false},
		{name: "starts on check out", other: mustRange(t, "2025-06-06", "2025-06-08"), overlaps: false},
		{name: "disjoint", other: mustRange(t, "2025-07-01", "2025-07-03"), overlaps: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}

func TestAvailable(t *testing.T) {
	assert.Equal(t, 10, model.Available(10, 0))
	assert.Equal(t, 3, model.Available(10, 7))
	assert.Equal(t, 0, model.Available(10, 10))
	assert.Equal(t, 0, model.Available(4, 6))
}
