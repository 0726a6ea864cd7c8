//go:build unit || e2e

package builder

import "hotel-frontdesk/internal/domain/money"

// Rupiah builds an amount from whole rupiah.
func Rupiah(whole int64) money.Money {
	return money.FromCents(whole * 100)
}
