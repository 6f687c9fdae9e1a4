package dto

import (
	"voyage/internal/domains/booking/model"
	"voyage/internal/domains/booking/pricing"
	inventoryModel "voyage/internal/domains/inventory/model"
	"voyage/shared"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	gModel "voyage/shared/model"
	"voyage/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomTypeID      string `json:"room_type_id"     validate:"required,uuid"`
	CheckIn         string `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut        string `json:"check_out"        validate:"required,datetime=2006-01-02"`
	NumGuests       int    `json:"num_guests"       validate:"required,gte=1"`
	NumRooms        int    `json:"num_rooms"        validate:"required,gte=1"`
	GuestFirstName  string `json:"guest_first_name" validate:"required,max=100"`
	GuestLastName   string `json:"guest_last_name"  validate:"required,max=100"`
	GuestEmail      string `json:"guest_email"      validate:"required,email,max=254"`
	GuestPhone      string `json:"guest_phone"      validate:"omitempty,max=20"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) Stay() (inventoryModel.DateRange, error) {
	return inventoryModel.ParseDateRange(c.CheckIn, c.CheckOut)
}

// ToModel builds a pending booking whose prices are frozen from quote.
func (c *CreateBookingRequest) ToModel(user, reference string, stay inventoryModel.DateRange, quote pricing.Quote) model.Booking {
	return model.Booking{
		ID:               uuid.NewString(),
		BookingReference: reference,
		UserID:           user,
		RoomTypeID:       c.RoomTypeID,
		CheckIn:          stay.CheckIn,
		CheckOut:         stay.CheckOut,
		NumGuests:        c.NumGuests,
		NumRooms:         c.NumRooms,
		GuestFirstName:   c.GuestFirstName,
		GuestLastName:    c.GuestLastName,
		GuestEmail:       c.GuestEmail,
		GuestPhone:       c.GuestPhone,
		SpecialRequests:  c.SpecialRequests,
		PricePerNight:    quote.PricePerNight,
		NumNights:        quote.Nights,
		Subtotal:         quote.Subtotal,
		Taxes:            quote.Taxes,
		TotalPrice:       quote.Total,
		Status:           model.StatusPending,
		Metadata:         gModel.NewMetadata(user, timezone.Now()),
	}
}

type BookingResponse struct {
	ID               string `json:"id"`
	BookingReference string `json:"booking_reference"`
	UserID           string `json:"user_id"`
	RoomTypeID       string `json:"room_type_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	NumGuests        int    `json:"num_guests"`
	NumRooms         int    `json:"num_rooms"`
	GuestFirstName   string `json:"guest_first_name"`
	GuestLastName    string `json:"guest_last_name"`
	GuestEmail       string `json:"guest_email"`
	GuestPhone       string `json:"guest_phone"`
	SpecialRequests  string `json:"special_requests"`
	PricePerNight    string `json:"price_per_night"`
	NumNights        int    `json:"num_nights"`
	Subtotal         string `json:"subtotal"`
	Taxes            string `json:"taxes"`
	TotalPrice       string `json:"total_price"`
	Status           string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingReference = model.BookingReference
	r.UserID = model.UserID
	r.RoomTypeID = model.RoomTypeID
	r.CheckIn = model.CheckIn.Format(constant.DayFormat)
	r.CheckOut = model.CheckOut.Format(constant.DayFormat)
	r.NumGuests = model.NumGuests
	r.NumRooms = model.NumRooms
	r.GuestFirstName = model.GuestFirstName
	r.GuestLastName = model.GuestLastName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.SpecialRequests = model.SpecialRequests
	r.PricePerNight = model.PricePerNight.StringFixed(constant.MoneyDecimals)
	r.NumNights = model.NumNights
	r.Subtotal = model.Subtotal.StringFixed(constant.MoneyDecimals)
	r.Taxes = model.Taxes.StringFixed(constant.MoneyDecimals)
	r.TotalPrice = model.TotalPrice.StringFixed(constant.MoneyDecimals)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
