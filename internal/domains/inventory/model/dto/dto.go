package dto

import (
	"voyage/internal/domains/inventory/model"
	rtModel "voyage/internal/domains/roomtype/model"
	"voyage/shared/constant"
)

type AvailabilityResponse struct {
	RoomTypeID     string `json:"room_type_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Nights         int    `json:"nights"`
	TotalRooms     int    `json:"total_rooms"`
	AvailableUnits int    `json:"available_units"`
	PricePerNight  string `json:"price_per_night"`
}

func (r *AvailabilityResponse) FromModel(roomType rtModel.RoomType, stay model.DateRange, available int) {
	r.RoomTypeID = roomType.ID
	r.CheckIn = stay.CheckIn.Format(constant.DayFormat)
	r.CheckOut = stay.CheckOut.Format(constant.DayFormat)
	r.Nights = stay.Nights()
	r.TotalRooms = roomType.TotalRooms
	r.AvailableUnits = available
	r.PricePerNight = roomType.PricePerNight.StringFixed(constant.MoneyDecimals)
}
