package model

import (
	"time"

	"voyage/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID                 = "id"
	FieldDestinationID      = "destination_id"
	FieldName               = "name"
	FieldStarRating         = "star_rating"
	FieldHotelType          = "hotel_type"
	FieldIsActive           = "is_active"
	FieldCheckInTime        = "check_in_time"
	FieldCheckOutTime       = "check_out_time"
	FieldCancellationPolicy = "cancellation_policy"
)

const (
	ImageTableName  = "hotel_images"
	ImageEntityName = "hotel_image"

	FieldImageHotelID = "hotel_id"
)

const (
	AmenityTableName  = "hotel_amenities"
	AmenityEntityName = "hotel_amenity"

	FieldAmenityHotelID   = "hotel_id"
	FieldAmenityAmenityID = "amenity_id"

	ConstraintHotelAmenity = "hotel_amenities_pkey"
)

const (
	TypeHotel      = "hotel"
	TypeResort     = "resort"
	TypeApartment  = "apartment"
	TypeGuesthouse = "guesthouse"
	TypeHostel     = "hostel"
)

const (
	DefaultCheckInTime  = "14:00"
	DefaultCheckOutTime = "11:00"
)

type Hotel struct {
	ID                 string              `db:"id"`
	DestinationID      string              `db:"destination_id"`
	Name               string              `db:"name"`
	Address            string              `db:"address"`
	Latitude           decimal.NullDecimal `db:"latitude"`
	Longitude          decimal.NullDecimal `db:"longitude"`
	StarRating         int                 `db:"star_rating"`
	HotelType          string              `db:"hotel_type"`
	Description        string              `db:"description"`
	CheckInTime        string              `db:"check_in_time"`
	CheckOutTime       string              `db:"check_out_time"`
	CancellationPolicy string              `db:"cancellation_policy"`
	IsActive           bool                `db:"is_active"`
	model.Metadata
}

func (Hotel) GetDefaultOrder() string {
	return "hotels.star_rating DESC, hotels.name ASC"
}

// Image is listed primary first, then by SortOrder.
type Image struct {
	ID        string    `db:"id"`
	HotelID   string    `db:"hotel_id"`
	Image     string    `db:"image"`
	Caption   string    `db:"caption"`
	IsPrimary bool      `db:"is_primary"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

func (Image) GetDefaultOrder() string {
	return "hotel_images.is_primary DESC, hotel_images.sort_order ASC"
}

type Amenity struct {
	HotelID   string `db:"hotel_id"`
	AmenityID string `db:"amenity_id"`
}
