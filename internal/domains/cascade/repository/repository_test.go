package repository

import (
	"strings"
	"testing"

	"voyage/internal/domains/cascade/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementsCoverEveryLevel(t *testing.T) {
	for _, root := range []string{model.RootDestination, model.RootHotel, model.RootRoomType} {
		order, ok := model.Levels(root)
		require.True(t, ok)

		for _, level := range order {
			t.Run(root+"/"+level, func(t *testing.T) {
				query, ok := statements[root][level]

				require.True(t, ok, "missing statement")
				assert.Contains(t, query, "$1")
			})
		}

		assert.Len(t, statements[root], len(order), root)
		assert.NotEmpty(t, locks[root], root)
	}
}

func TestReviewBookingsKeepsReviews(t *testing.T) {
	query := statements[model.RootRoomType][model.LevelReviewBookings]

	assert.True(t, strings.HasPrefix(query, "UPDATE reviews SET booking_id = NULL"))
	assert.Contains(t, query, "room_type_id = $1")
}

func TestRoomTypeRootNeverTouchesHotel(t *testing.T) {
	for level, query := range statements[model.RootRoomType] {
		assert.NotContains(t, query, "DELETE FROM hotels", level)
		assert.NotContains(t, query, "DELETE FROM reviews", level)
	}
}

func TestReviewChildrenGoBeforeReviews(t *testing.T) {
	for _, root := range []string{model.RootDestination, model.RootHotel} {
		order, _ := model.Levels(root)

		assert.Less(t, indexOf(order, model.LevelReviewPhotos), indexOf(order, model.LevelReviews), root)
		assert.Less(t, indexOf(order, model.LevelReviewVotes), indexOf(order, model.LevelReviews), root)
		assert.True(t, strings.HasPrefix(statements[root][model.LevelReviewPhotos], "DELETE FROM review_photos"), root)
	}
}

func indexOf(order []string, level string) int {
	for i, l := range order {
		if l == level {
			return i
		}
	}

	return -1
}
