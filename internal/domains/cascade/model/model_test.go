package model_test

import (
	"errors"
	"fmt"
	"testing"

	"voyage/internal/domains/cascade/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		root     string
		expected []string
	}{
		{
			root: model.RootRoomType,
			expected: []string{
				model.LevelReviewBookings, model.LevelPayments, model.LevelBookings,
				model.LevelRoomAmenities, model.LevelRoomTypes,
			},
		},
		{
			root: model.RootHotel,
			expected: []string{
				model.LevelReviewVotes, model.LevelReviewPhotos, model.LevelReviews,
				model.LevelReviewBookings, model.LevelPayments, model.LevelBookings,
				model.LevelRoomAmenities, model.LevelRoomTypes,
				model.LevelHotelAmenities, model.LevelHotelImages, model.LevelHotels,
			},
		},
		{
			root: model.RootDestination,
			expected: []string{
				model.LevelReviewVotes, model.LevelReviewPhotos, model.LevelReviews,
				model.LevelReviewBookings, model.LevelPayments, model.LevelBookings,
				model.LevelRoomAmenities, model.LevelRoomTypes,
				model.LevelHotelAmenities, model.LevelHotelImages, model.LevelHotels,
				model.LevelDestinations,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			order, ok := model.Levels(tt.root)

			require.True(t, ok)
			assert.Equal(t, tt.expected, order)
		})
	}
}

func TestLevels_Unknown(t *testing.T) {
	_, ok := model.Levels("amenity")

	assert.False(t, ok)
}

func TestLevels_ReturnsCopy(t *testing.T) {
	order, _ := model.Levels(model.RootRoomType)
	order[0] = "mutated"

	again, _ := model.Levels(model.RootRoomType)

	assert.Equal(t, model.LevelReviewBookings, again[0])
}

func TestReport_Add(t *testing.T) {
	report := model.Report{Root: model.RootHotel, ID: "h-1"}
	report.Add(model.LevelBookings, 3)
	report.Add(model.LevelHotels, 1)

	assert.Equal(t, []model.LevelCount{
		{Level: model.LevelBookings, Rows: 3},
		{Level: model.LevelHotels, Rows: 1},
	}, report.Deleted)
}

func TestLevelError(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := error(&model.LevelError{Root: model.RootHotel, Level: model.LevelBookings, Err: cause})

	assert.Equal(t, "cascade delete of hotel stopped at bookings: deadlock detected", err.Error())
	assert.ErrorIs(t, err, cause)

	var levelErr *model.LevelError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &levelErr)
	assert.Equal(t, model.LevelBookings, levelErr.Level)
}
