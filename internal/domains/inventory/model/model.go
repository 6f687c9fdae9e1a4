package model

import (
	"fmt"
	"time"

	"voyage/shared/constant"
	"voyage/shared/failure"
)

const (
	EntityName = "inventory"

	hoursPerDay = 24
)

// DateRange is a half-open stay [CheckIn, CheckOut) of whole days.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange drops the clock part of both ends and rejects empty or inverted ranges.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	stay := DateRange{
		CheckIn:  toDate(checkIn),
		CheckOut: toDate(checkOut),
	}

	if !stay.CheckIn.Before(stay.CheckOut) {
		return DateRange{}, failure.BadRequestFromString("check_in must be before check_out") //nolint:wrapcheck
	}

	return stay, nil
}

// ParseDateRange parses two YYYY-MM-DD dates.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := time.Parse(constant.DayFormat, checkIn)
	if err != nil {
		return DateRange{}, failure.BadRequestFromString(fmt.Sprintf("invalid check_in date %q", checkIn)) //nolint:wrapcheck
	}

	out, err := time.Parse(constant.DayFormat, checkOut)
	if err != nil {
		return DateRange{}, failure.BadRequestFromString(fmt.Sprintf("invalid check_out date %q", checkOut)) //nolint:wrapcheck
	}

	return NewDateRange(in, out)
}

func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / hoursPerDay)
}

// Overlaps uses half-open semantics: a stay ending on the day another starts does not overlap it.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

func (r DateRange) String() string {
	return r.CheckIn.Format(constant.DayFormat) + "/" + r.CheckOut.Format(constant.DayFormat)
}

// Available is total minus reserved, never below zero.
func Available(total, reserved int) int {
	return max(total-reserved, 0)
}

func toDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
