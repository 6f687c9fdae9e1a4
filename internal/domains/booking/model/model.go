package model

import (
	"slices"
	"time"

	inventoryModel "voyage/internal/domains/inventory/model"
	"voyage/shared/constant"
	"voyage/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldUserID           = "user_id"
	FieldRoomTypeID       = "room_type_id"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldStatus           = "status"
	FieldGuestEmail       = "guest_email"

	ConstraintBookingReference = "bookings_booking_reference_key"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

const (
	EventCreated   = "booking.created"
	EventConfirmed = "booking.confirmed"
	EventCancelled = "booking.cancelled"
	EventCompleted = "booking.completed"
)

// ActiveStatuses hold inventory. Cancelled and completed bookings release their rooms.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

type Booking struct {
	ID               string          `db:"id"`
	BookingReference string          `db:"booking_reference"`
	UserID           string          `db:"user_id"`
	RoomTypeID       string          `db:"room_type_id"`
	CheckIn          time.Time       `db:"check_in"`
	CheckOut         time.Time       `db:"check_out"`
	NumGuests        int             `db:"num_guests"`
	NumRooms         int             `db:"num_rooms"`
	GuestFirstName   string          `db:"guest_first_name"`
	GuestLastName    string          `db:"guest_last_name"`
	GuestEmail       string          `db:"guest_email"`
	GuestPhone       string          `db:"guest_phone"`
	SpecialRequests  string          `db:"special_requests"`
	PricePerNight    decimal.Decimal `db:"price_per_night"`
	NumNights        int             `db:"num_nights"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	Taxes            decimal.Decimal `db:"taxes"`
	TotalPrice       decimal.Decimal `db:"total_price"`
	Status           string          `db:"status"`
	model.Metadata
}

func (Booking) GetDefaultOrder() string {
	return "bookings.created_at DESC"
}

func (b Booking) Stay() inventoryModel.DateRange {
	return inventoryModel.DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

func (b Booking) IsActive() bool {
	return IsActiveStatus(b.Status)
}

// CanTransitionTo reports whether the lifecycle allows moving from the current status to next.
func (b Booking) CanTransitionTo(next string) bool {
	return slices.Contains(transitions[b.Status], next)
}

func IsActiveStatus(status string) bool {
	return slices.Contains(ActiveStatuses, status)
}

// Event is the payload published for every lifecycle change.
type Event struct {
	Type             string    `json:"type"`
	BookingID        string    `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	RoomTypeID       string    `json:"room_type_id"`
	UserID           string    `json:"user_id"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	NumRooms         int       `json:"num_rooms"`
	Status           string    `json:"status"`
	TotalPrice       string    `json:"total_price"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func (b Booking) ToEvent(eventType string, occurredAt time.Time) Event {
	return Event{
		Type:             eventType,
		BookingID:        b.ID,
		BookingReference: b.BookingReference,
		RoomTypeID:       b.RoomTypeID,
		UserID:           b.UserID,
		CheckIn:          b.CheckIn.Format(constant.DayFormat),
		CheckOut:         b.CheckOut.Format(constant.DayFormat),
		NumRooms:         b.NumRooms,
		Status:           b.Status,
		TotalPrice:       b.TotalPrice.StringFixed(constant.MoneyDecimals),
		OccurredAt:       occurredAt,
	}
}
