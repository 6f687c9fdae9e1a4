package dto

import (
	amenityDto "voyage/internal/domains/amenity/model/dto"
	"voyage/internal/domains/hotel/model"
	reviewDto "voyage/internal/domains/review/model/dto"
	"voyage/shared"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/failure"
	gModel "voyage/shared/model"
	"voyage/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	maxLatitude  = decimal.NewFromInt(90)
	maxLongitude = decimal.NewFromInt(180)
)

type CreateHotelRequest struct {
	DestinationID      string           `json:"destination_id"      validate:"required,uuid"`
	Name               string           `json:"name"                validate:"required,max=200"`
	Address            string           `json:"address"             validate:"required,max=500"`
	Latitude           *decimal.Decimal `json:"latitude"            swaggertype:"string"`
	Longitude          *decimal.Decimal `json:"longitude"           swaggertype:"string"`
	StarRating         int              `json:"star_rating"         validate:"required,gte=1,lte=5"`
	HotelType          string           `json:"hotel_type"          validate:"required,oneof=hotel resort apartment guesthouse hostel"`
	Description        string           `json:"description"`
	CheckInTime        string           `json:"check_in_time"       validate:"omitempty,datetime=15:04"`
	CheckOutTime       string           `json:"check_out_time"      validate:"omitempty,datetime=15:04"`
	CancellationPolicy string           `json:"cancellation_policy"`
	IsActive           *bool            `json:"is_active"`
}

// Validate checks what struct tags cannot express.
func (c *CreateHotelRequest) Validate() error {
	return validateCoordinates(c.Latitude, c.Longitude)
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	hotel := model.Hotel{
		ID:                 uuid.NewString(),
		DestinationID:      c.DestinationID,
		Name:               c.Name,
		Address:            c.Address,
		StarRating:         c.StarRating,
		HotelType:          c.HotelType,
		Description:        c.Description,
		CheckInTime:        c.CheckInTime,
		CheckOutTime:       c.CheckOutTime,
		CancellationPolicy: c.CancellationPolicy,
		IsActive:           true,
		Metadata:           gModel.NewMetadata(user, timezone.Now()),
	}

	if c.Latitude != nil {
		hotel.Latitude = decimal.NewNullDecimal(*c.Latitude)
	}

	if c.Longitude != nil {
		hotel.Longitude = decimal.NewNullDecimal(*c.Longitude)
	}

	if hotel.CheckInTime == "" {
		hotel.CheckInTime = model.DefaultCheckInTime
	}

	if hotel.CheckOutTime == "" {
		hotel.CheckOutTime = model.DefaultCheckOutTime
	}

	if c.IsActive != nil {
		hotel.IsActive = *c.IsActive
	}

	return hotel
}

type UpdateHotelRequest struct {
	Name               string           `db:"name"                json:"name"                validate:"omitempty,max=200"`
	Address            string           `db:"address"             json:"address"             validate:"omitempty,max=500"`
	Latitude           *decimal.Decimal `db:"latitude"            json:"latitude"            swaggertype:"string"`
	Longitude          *decimal.Decimal `db:"longitude"           json:"longitude"           swaggertype:"string"`
	StarRating         int              `db:"star_rating"         json:"star_rating"         validate:"omitempty,gte=1,lte=5"`
	HotelType          string           `db:"hotel_type"          json:"hotel_type"          validate:"omitempty,oneof=hotel resort apartment guesthouse hostel"`
	Description        string           `db:"description"         json:"description"`
	CheckInTime        string           `db:"check_in_time"       json:"check_in_time"       validate:"omitempty,datetime=15:04"`
	CheckOutTime       string           `db:"check_out_time"      json:"check_out_time"      validate:"omitempty,datetime=15:04"`
	CancellationPolicy string           `db:"cancellation_policy" json:"cancellation_policy"`
	IsActive           *bool            `db:"is_active"           json:"is_active"`
}

func (u *UpdateHotelRequest) Validate() error {
	return validateCoordinates(u.Latitude, u.Longitude)
}

func validateCoordinates(latitude, longitude *decimal.Decimal) error {
	if latitude != nil && latitude.Abs().GreaterThan(maxLatitude) {
		return failure.BadRequestFromString("latitude must be between -90 and 90") //nolint:wrapcheck
	}

	if longitude != nil && longitude.Abs().GreaterThan(maxLongitude) {
		return failure.BadRequestFromString("longitude must be between -180 and 180") //nolint:wrapcheck
	}

	return nil
}

type AddImageRequest struct {
	Image     string `json:"image"      validate:"required,url,max=500"`
	Caption   string `json:"caption"    validate:"omitempty,max=200"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

func (a *AddImageRequest) ToModel(hotelID string) model.Image {
	return model.Image{
		ID:        uuid.NewString(),
		HotelID:   hotelID,
		Image:     a.Image,
		Caption:   a.Caption,
		IsPrimary: a.IsPrimary,
		SortOrder: a.SortOrder,
		CreatedAt: timezone.Now(),
	}
}

type ImageResponse struct {
	ID        string `json:"id"`
	Image     string `json:"image"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

func (r *ImageResponse) FromModel(model model.Image) {
	r.ID = model.ID
	r.Image = model.Image
	r.Caption = model.Caption
	r.IsPrimary = model.IsPrimary
	r.SortOrder = model.SortOrder
}

func ImagesFromModels(models []model.Image) []ImageResponse {
	res := make([]ImageResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type HotelResponse struct {
	ID                 string                       `json:"id"`
	DestinationID      string                       `json:"destination_id"`
	Name               string                       `json:"name"`
	Address            string                       `json:"address"`
	Latitude           *string                      `json:"latitude"`
	Longitude          *string                      `json:"longitude"`
	StarRating         int                          `json:"star_rating"`
	HotelType          string                       `json:"hotel_type"`
	Description        string                       `json:"description"`
	CheckInTime        string                       `json:"check_in_time"`
	CheckOutTime       string                       `json:"check_out_time"`
	CancellationPolicy string                       `json:"cancellation_policy"`
	IsActive           bool                         `json:"is_active"`
	StartingPrice      string                       `json:"starting_price,omitempty"`
	Rating             *reviewDto.SummaryResponse   `json:"rating,omitempty"`
	Images             []ImageResponse              `json:"images,omitempty"`
	Amenities          []amenityDto.AmenityResponse `json:"amenities,omitempty"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.DestinationID = model.DestinationID
	r.Name = model.Name
	r.Address = model.Address
	r.Latitude = nullDecimalString(model.Latitude)
	r.Longitude = nullDecimalString(model.Longitude)
	r.StarRating = model.StarRating
	r.HotelType = model.HotelType
	r.Description = model.Description
	r.CheckInTime = model.CheckInTime
	r.CheckOutTime = model.CheckOutTime
	r.CancellationPolicy = model.CancellationPolicy
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

// SetStartingPrice records the cheapest nightly rate, zero when the hotel has no room types.
func (r *HotelResponse) SetStartingPrice(price decimal.Decimal) {
	r.StartingPrice = price.StringFixed(constant.MoneyDecimals)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}

func nullDecimalString(value decimal.NullDecimal) *string {
	if !value.Valid {
		return nil
	}

	str := value.Decimal.String()

	return &str
}
