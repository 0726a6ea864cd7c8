package booking

import (
	"errors"
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStay          = errors.New("check-out must be after check-in")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidInitialStatus = errors.New("a booking starts as reservation or checked-in")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrMissingRoom          = errors.New("room is required")
	ErrMissingReceiver      = errors.New("receiving staff member is required")
	ErrEmptyGuestName       = errors.New("guest name cannot be empty")
	ErrEmptyGuestPhone      = errors.New("guest phone cannot be empty")
	ErrInvalidGuestEmail    = errors.New("invalid guest email")
	ErrGuestFieldTooLong    = errors.New("guest field is too long (max 255 characters)")
	ErrNotReservation       = errors.New("booking is not a reservation")
	ErrNotCheckedIn         = errors.New("booking is not checked in")
	ErrAlreadyPaid          = errors.New("booking is already paid")
)

type Draft struct {
	RoomID        uuid.UUID
	Guest         Guest
	CheckIn       time.Time
	CheckOut      time.Time
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Status        Status
	ReceivedBy    uuid.UUID
	Notes         string
}

// Booking core fields are fixed at creation; only the booking and payment
// statuses move afterwards.
type Booking struct {
	id            uuid.UUID
	roomID        uuid.UUID
	guest         Guest
	stay          Stay
	nights        int
	pricePerNight money.Money
	totalPrice    money.Money
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	status        Status
	receivedBy    uuid.UUID
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(calc PriceCalculator, d Draft, pricePerNight money.Money) (*Booking, error) {
	if d.RoomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if d.ReceivedBy == uuid.Nil {
		return nil, ErrMissingReceiver
	}
	if d.Status != StatusReservation && d.Status != StatusCheckedIn {
		return nil, ErrInvalidInitialStatus
	}
	if !d.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if !d.PaymentStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	stay, err := NewStay(d.CheckIn, d.CheckOut)
	if err != nil {
		return nil, err
	}

	quote := calc.Calculate(stay.CheckIn(), stay.CheckOut(), pricePerNight)
	if quote.Nights <= 0 {
		return nil, ErrInvalidStay
	}

	return &Booking{
		id:            uuid.New(),
		roomID:        d.RoomID,
		guest:         d.Guest,
		stay:          stay,
		nights:        quote.Nights,
		pricePerNight: quote.PricePerNight,
		totalPrice:    quote.Total,
		paymentMethod: d.PaymentMethod,
		paymentStatus: d.PaymentStatus,
		status:        d.Status,
		receivedBy:    d.ReceivedBy,
		notes:         strings.TrimSpace(d.Notes),
	}, nil
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	guest Guest,
	checkIn, checkOut time.Time,
	nights int,
	pricePerNight, totalPrice money.Money,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	receivedBy uuid.UUID,
	notes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		roomID:        roomID,
		guest:         guest,
		stay:          Stay{checkIn: NormalizeDate(checkIn), checkOut: NormalizeDate(checkOut)},
		nights:        nights,
		pricePerNight: pricePerNight,
		totalPrice:    totalPrice,
		paymentMethod: paymentMethod,
		paymentStatus: paymentStatus,
		status:        status,
		receivedBy:    receivedBy,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) CheckIn() error {
	if b.status != StatusReservation {
		return ErrNotReservation
	}
	b.status = StatusCheckedIn
	return nil
}

func (b *Booking) CheckOut() error {
	if b.status != StatusCheckedIn {
		return ErrNotCheckedIn
	}
	b.status = StatusCheckedOut
	return nil
}

func (b *Booking) MarkPaid() error {
	if b.paymentStatus == PaymentPaid {
		return ErrAlreadyPaid
	}
	b.paymentStatus = PaymentPaid
	return nil
}

// EarnsRevenue reports whether the stay should be posted to the ledger as income.
func (b *Booking) EarnsRevenue() bool {
	return b.status == StatusCheckedIn && b.totalPrice.IsPositive()
}

func (b *Booking) IsActive() bool {
	return b.status != StatusCheckedOut
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) RoomID() uuid.UUID            { return b.roomID }
func (b *Booking) Guest() Guest                 { return b.guest }
func (b *Booking) Stay() Stay                   { return b.stay }
func (b *Booking) CheckInDate() time.Time       { return b.stay.CheckIn() }
func (b *Booking) CheckOutDate() time.Time      { return b.stay.CheckOut() }
func (b *Booking) Nights() int                  { return b.nights }
func (b *Booking) PricePerNight() money.Money   { return b.pricePerNight }
func (b *Booking) TotalPrice() money.Money      { return b.totalPrice }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) ReceivedBy() uuid.UUID        { return b.receivedBy }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
