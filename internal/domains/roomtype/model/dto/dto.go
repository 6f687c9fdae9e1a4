package dto

import (
	amenityDto "voyage/internal/domains/amenity/model/dto"
	"voyage/internal/domains/roomtype/model"
	"voyage/shared"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	gModel "voyage/shared/model"
	"voyage/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	HotelID       string `json:"hotel_id"        validate:"required,uuid"`
	Name          string `json:"name"            validate:"required,max=100"`
	Description   string `json:"description"`
	SizeSqm       *int   `json:"size_sqm"        validate:"omitempty,gte=1"`
	MaxOccupancy  int    `json:"max_occupancy"   validate:"required,gte=1"`
	BedType       string `json:"bed_type"        validate:"omitempty,max=50"`
	PricePerNight string `json:"price_per_night" validate:"required,money"`
	TotalRooms    int    `json:"total_rooms"     validate:"gte=0"`
	Image         string `json:"image"           validate:"omitempty,url,max=500"`
}

// ToModel expects a validated request; the price has already passed the money check.
func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:            uuid.NewString(),
		HotelID:       c.HotelID,
		Name:          c.Name,
		Description:   c.Description,
		SizeSqm:       c.SizeSqm,
		MaxOccupancy:  c.MaxOccupancy,
		BedType:       c.BedType,
		PricePerNight: decimal.RequireFromString(c.PricePerNight),
		TotalRooms:    c.TotalRooms,
		Image:         c.Image,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomTypeRequest struct {
	Name          string `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Description   string `db:"description"     json:"description"`
	SizeSqm       *int   `db:"size_sqm"        json:"size_sqm"        validate:"omitempty,gte=1"`
	MaxOccupancy  int    `db:"max_occupancy"   json:"max_occupancy"   validate:"omitempty,gte=1"`
	BedType       string `db:"bed_type"        json:"bed_type"        validate:"omitempty,max=50"`
	PricePerNight string `db:"price_per_night" json:"price_per_night" validate:"omitempty,money"`
	TotalRooms    *int   `db:"total_rooms"     json:"total_rooms"     validate:"omitempty,gte=0"`
	Image         string `db:"image"           json:"image"           validate:"omitempty,url,max=500"`
}

type RoomTypeResponse struct {
	ID            string                       `json:"id"`
	HotelID       string                       `json:"hotel_id"`
	Name          string                       `json:"name"`
	Description   string                       `json:"description"`
	SizeSqm       *int                         `json:"size_sqm"`
	MaxOccupancy  int                          `json:"max_occupancy"`
	BedType       string                       `json:"bed_type"`
	PricePerNight string                       `json:"price_per_night"`
	TotalRooms    int                          `json:"total_rooms"`
	Image         string                       `json:"image"`
	Amenities     []amenityDto.AmenityResponse `json:"amenities,omitempty"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Name = model.Name
	r.Description = model.Description
	r.SizeSqm = model.SizeSqm
	r.MaxOccupancy = model.MaxOccupancy
	r.BedType = model.BedType
	r.PricePerNight = model.PricePerNight.StringFixed(constant.MoneyDecimals)
	r.TotalRooms = model.TotalRooms
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
