//go:build unit || e2e

package builder

import (
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/money"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID        uuid.UUID
	RoomTypeID    uuid.UUID
	GuestName     string
	GuestPhone    string
	GuestEmail    string
	GuestIDNumber string
	GuestAddress  string
	CheckIn       time.Time
	CheckOut      time.Time
	PriceCents    int64
	PaymentMethod string
	PaymentStatus string
	Status        string
	ReceivedBy    uuid.UUID
	Notes         string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomID:        uuid.New(),
		RoomTypeID:    uuid.New(),
		GuestName:     "Budi Santoso",
		GuestPhone:    "+62 812 3456 7890",
		GuestEmail:    "budi@example.com",
		GuestIDNumber: "3174000000000001",
		GuestAddress:  "Jl. Sudirman 1, Jakarta",
		CheckIn:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		PriceCents:    50000000,
		PaymentMethod: "cash",
		PaymentStatus: "paid",
		Status:        "checked-in",
		ReceivedBy:    uuid.New(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	guest, err := booking.NewGuest(b.GuestName, b.GuestPhone, b.GuestEmail, b.GuestIDNumber, b.GuestAddress)
	if err != nil {
		return nil, err
	}
	method, err := booking.NewPaymentMethod(b.PaymentMethod)
	if err != nil {
		return nil, err
	}
	payment, err := booking.NewPaymentStatus(b.PaymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}

	draft := booking.Draft{
		RoomID:        b.RoomID,
		Guest:         guest,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		PaymentMethod: method,
		PaymentStatus: payment,
		Status:        status,
		ReceivedBy:    b.ReceivedBy,
		Notes:         b.Notes,
	}
	return booking.NewBooking(booking.NewNightlyPriceCalculator(), draft, money.FromCents(b.PriceCents))
}

func (b *BookingBuilder) BuildCreateRequest() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RoomTypeID:    b.RoomTypeID,
		RoomID:        b.RoomID,
		GuestName:     b.GuestName,
		GuestPhone:    b.GuestPhone,
		GuestEmail:    b.GuestEmail,
		GuestIDNumber: b.GuestIDNumber,
		GuestAddress:  b.GuestAddress,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		Notes:         b.Notes,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomTypeID:    b.RoomTypeID,
		RoomID:        b.RoomID,
		GuestName:     b.GuestName,
		GuestPhone:    b.GuestPhone,
		GuestEmail:    b.GuestEmail,
		GuestIDNumber: b.GuestIDNumber,
		GuestAddress:  b.GuestAddress,
		CheckIn:       b.CheckIn.Format(time.DateOnly),
		CheckOut:      b.CheckOut.Format(time.DateOnly),
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus,
		BookingStatus: b.Status,
		Notes:         b.Notes,
	}
}

func (b *BookingBuilder) BuildView(id uuid.UUID) *queries.BookingView {
	snap := b.BuildSnapshot()
	return &queries.BookingView{
		ID:             id,
		RoomID:         snap.RoomID,
		RoomNumber:     "101",
		TypeName:       "Standard",
		GuestName:      snap.GuestName,
		GuestPhone:     snap.GuestPhone,
		GuestEmail:     snap.GuestEmail,
		GuestIDNumber:  snap.GuestIDNumber,
		GuestAddress:   snap.GuestAddress,
		CheckIn:        snap.CheckIn,
		CheckOut:       snap.CheckOut,
		Nights:         snap.Nights,
		PriceCents:     snap.PriceCents,
		TotalCents:     snap.TotalCents,
		PaymentMethod:  snap.PaymentMethod,
		PaymentStatus:  snap.PaymentStatus,
		Status:         snap.Status,
		ReceivedBy:     snap.ReceivedBy,
		ReceivedByName: "Front Desk",
		Notes:          snap.Notes,
		CreatedAt:      snap.CreatedAt,
		UpdatedAt:      snap.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	nights := booking.Nights(b.CheckIn, b.CheckOut)
	now := time.Now()
	return &shared.BookingSnapshot{
		ID:            uuid.New(),
		RoomID:        b.RoomID,
		GuestName:     b.GuestName,
		GuestPhone:    b.GuestPhone,
		GuestEmail:    b.GuestEmail,
		GuestIDNumber: b.GuestIDNumber,
		GuestAddress:  b.GuestAddress,
		CheckIn:       booking.NormalizeDate(b.CheckIn),
		CheckOut:      booking.NormalizeDate(b.CheckOut),
		Nights:        nights,
		PriceCents:    b.PriceCents,
		TotalCents:    b.PriceCents * int64(nights),
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		ReceivedBy:    b.ReceivedBy,
		Notes:         b.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPriceCents(cents int64) *BookingBuilder {
	b.PriceCents = cents
	return b
}

func (b *BookingBuilder) ForRoom(rs *RoomBuilder) *BookingBuilder {
	b.RoomID = rs.ID
	b.RoomTypeID = rs.RoomTypeID
	b.PriceCents = rs.PriceCents
	return b
}
