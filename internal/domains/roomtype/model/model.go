package model

import (
	"voyage/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldName          = "name"
	FieldMaxOccupancy  = "max_occupancy"
	FieldPricePerNight = "price_per_night"
	FieldTotalRooms    = "total_rooms"
)

const (
	AmenityTableName  = "room_amenities"
	AmenityEntityName = "room_amenity"

	FieldAmenityRoomTypeID = "room_type_id"
	FieldAmenityAmenityID  = "amenity_id"

	ConstraintRoomAmenity = "room_amenities_pkey"
)

type RoomType struct {
	ID            string          `db:"id"`
	HotelID       string          `db:"hotel_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	SizeSqm       *int            `db:"size_sqm"`
	MaxOccupancy  int             `db:"max_occupancy"`
	BedType       string          `db:"bed_type"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	TotalRooms    int             `db:"total_rooms"`
	Image         string          `db:"image"`
	model.Metadata
}

func (RoomType) GetDefaultOrder() string {
	return "room_types.price_per_night ASC, room_types.name ASC"
}

// Capacity is the most guests numRooms rooms of this type can hold.
func (r RoomType) Capacity(numRooms int) int {
	return r.MaxOccupancy * numRooms
}

type Amenity struct {
	RoomTypeID string `db:"room_type_id"`
	AmenityID  string `db:"amenity_id"`
}
