package converter

import (
	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateBookingParams struct {
	ID            uuid.UUID
	RoomID        uuid.UUID
	GuestName     string
	GuestPhone    string
	GuestEmail    pgtype.Text
	GuestIDNumber pgtype.Text
	GuestAddress  pgtype.Text
	CheckIn       pgtype.Date
	CheckOut      pgtype.Date
	Nights        int32
	PriceCents    int64
	TotalCents    int64
	PaymentMethod string
	PaymentStatus string
	Status        string
	ReceivedBy    uuid.UUID
	Notes         pgtype.Text
}

func BookingToCreateParams(b *booking.Booking) CreateBookingParams {
	g := b.Guest()
	return CreateBookingParams{
		ID:            b.ID(),
		RoomID:        b.RoomID(),
		GuestName:     g.Name(),
		GuestPhone:    g.Phone(),
		GuestEmail:    pgconv.TextOrNull(g.Email()),
		GuestIDNumber: pgconv.TextOrNull(g.IDNumber()),
		GuestAddress:  pgconv.TextOrNull(g.Address()),
		CheckIn:       pgconv.DateToPgtype(b.CheckInDate()),
		CheckOut:      pgconv.DateToPgtype(b.CheckOutDate()),
		Nights:        int32(b.Nights()), // #nosec G115 -- bounded by the date range
		PriceCents:    b.PricePerNight().Cents(),
		TotalCents:    b.TotalPrice().Cents(),
		PaymentMethod: b.PaymentMethod().String(),
		PaymentStatus: b.PaymentStatus().String(),
		Status:        b.Status().String(),
		ReceivedBy:    b.ReceivedBy(),
		Notes:         pgconv.TextOrNull(b.Notes()),
	}
}

func (p CreateBookingParams) Args() []any {
	return []any{
		p.ID, p.RoomID, p.GuestName, p.GuestPhone, p.GuestEmail, p.GuestIDNumber, p.GuestAddress,
		p.CheckIn, p.CheckOut, p.Nights, p.PriceCents, p.TotalCents,
		p.PaymentMethod, p.PaymentStatus, p.Status, p.ReceivedBy, p.Notes,
	}
}
