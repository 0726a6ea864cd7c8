package booking

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// NormalizeDate keeps the calendar date of t and drops the time of day.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights is zero whenever checkOut is not after checkIn.
func Nights(checkIn, checkOut time.Time) int {
	in, out := NormalizeDate(checkIn), NormalizeDate(checkOut)
	if !out.After(in) {
		return 0
	}
	return int(math.Ceil(float64(out.Sub(in)) / float64(day)))
}

type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if Nights(checkIn, checkOut) <= 0 {
		return Stay{}, ErrInvalidStay
	}
	return Stay{
		checkIn:  NormalizeDate(checkIn),
		checkOut: NormalizeDate(checkOut),
	}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }
func (s Stay) Nights() int         { return Nights(s.checkIn, s.checkOut) }

// Contains treats both ends as part of the stay.
func (s Stay) Contains(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(s.checkIn) && !d.After(s.checkOut)
}
