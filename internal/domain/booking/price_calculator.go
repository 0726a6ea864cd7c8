package booking

import (
	"time"

	"hotel-frontdesk/internal/domain/money"
)

type Quote struct {
	Nights        int
	PricePerNight money.Money
	Total         money.Money
}

type PriceCalculator interface {
	Calculate(checkIn, checkOut time.Time, pricePerNight money.Money) Quote
}

type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) Calculate(checkIn, checkOut time.Time, pricePerNight money.Money) Quote {
	nights := Nights(checkIn, checkOut)
	return Quote{
		Nights:        nights,
		PricePerNight: pricePerNight,
		Total:         pricePerNight.Times(nights),
	}
}
