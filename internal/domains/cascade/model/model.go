// Package model describes the ownership tree removed by a cascading delete.
//
// Destination owns hotels, a hotel owns room types, images, amenity links and
// reviews, a review owns its votes and photos, a room type owns bookings and
// amenity links, and a booking owns its payment. Levels are listed leaves first so that no row is removed while
// another row still references it.
package model

import "fmt"

const EntityName = "cascade"

const (
	RootDestination = "destination"
	RootHotel       = "hotel"
	RootRoomType    = "room_type"
)

const (
	LevelReviewVotes    = "review_votes"
	LevelReviewPhotos   = "review_photos"
	LevelReviews        = "reviews"
	LevelReviewBookings = "review_bookings"
	LevelPayments       = "payments"
	LevelBookings       = "bookings"
	LevelRoomAmenities  = "room_amenities"
	LevelRoomTypes      = "room_types"
	LevelHotelAmenities = "hotel_amenities"
	LevelHotelImages    = "hotel_images"
	LevelHotels         = "hotels"
	LevelDestinations   = "destinations"
)

var levels = map[string][]string{
	RootRoomType: {
		LevelReviewBookings, LevelPayments, LevelBookings, LevelRoomAmenities, LevelRoomTypes,
	},
	RootHotel: {
		LevelReviewVotes, LevelReviewPhotos, LevelReviews,
		LevelReviewBookings, LevelPayments, LevelBookings, LevelRoomAmenities, LevelRoomTypes,
		LevelHotelAmenities, LevelHotelImages, LevelHotels,
	},
	RootDestination: {
		LevelReviewVotes, LevelReviewPhotos, LevelReviews,
		LevelReviewBookings, LevelPayments, LevelBookings, LevelRoomAmenities, LevelRoomTypes,
		LevelHotelAmenities, LevelHotelImages, LevelHotels,
		LevelDestinations,
	},
}

// Levels returns the delete order below root, or false for an unknown root.
func Levels(root string) ([]string, bool) {
	order, ok := levels[root]
	if !ok {
		return nil, false
	}

	return append([]string(nil), order...), true
}

// LevelCount is the number of rows removed at one level.
type LevelCount struct {
	Level string
	Rows  int64
}

type Report struct {
	Root    string
	ID      string
	Deleted []LevelCount
}

func (r *Report) Add(level string, rows int64) {
	r.Deleted = append(r.Deleted, LevelCount{Level: level, Rows: rows})
}

// LevelError names the level at which a cascade stopped. Nothing below the root is removed
// when it is returned.
type LevelError struct {
	Root  string
	Level string
	Err   error
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("cascade delete of %s stopped at %s: %v", e.Root, e.Level, e.Err)
}

func (e *LevelError) Unwrap() error {
	return e.Err
}
