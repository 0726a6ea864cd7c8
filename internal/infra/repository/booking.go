package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/infra/repository/converter"
)

const (
	createBookingSQL = `
INSERT INTO bookings (
    id, room_id, guest_name, guest_phone, guest_email, guest_id_number, guest_address,
    check_in, check_out, nights, price_per_night_cents, total_price_cents,
    payment_method, payment_status, booking_status, received_by, notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	updateBookingStatusSQL = `
UPDATE bookings
SET booking_status = $2, payment_status = $3, updated_at = now()
WHERE id = $1`
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	params := converter.BookingToCreateParams(b)
	if _, err := tx.Exec(ctx, createBookingSQL, params.Args()...); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// UpdateStatus persists the only mutable parts of a booking.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, b.ID(), b.Status().String(), b.PaymentStatus().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
