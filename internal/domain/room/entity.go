package room

import (
	"errors"
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyNumber      = errors.New("room number cannot be empty")
	ErrNumberTooLong    = errors.New("room number is too long (max 20 characters)")
	ErrMissingRoomType  = errors.New("room type is required")
	ErrNonPositivePrice = errors.New("price per night must be greater than zero")
	ErrInvalidStatus    = errors.New("invalid room status")
	ErrNotAvailable     = errors.New("room is not available")
	ErrEmptyTypeName    = errors.New("room type name cannot be empty")
)

const MaxNumberLength = 20

// Room's stored status is a hint set by bookings, checkout and staff; it is not
// derived from the booking calendar.
type Room struct {
	id              uuid.UUID
	number          string
	roomTypeID      uuid.UUID
	pricePerNight   money.Money
	status          Status
	reservationDate *time.Time
	checkOutDate    *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRoom(number string, roomTypeID uuid.UUID, pricePerNight money.Money) (*Room, error) {
	r := &Room{
		id:     uuid.New(),
		status: StatusAvailable,
	}
	if err := r.UpdateDetails(number, roomTypeID, pricePerNight); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	roomTypeID uuid.UUID,
	pricePerNight money.Money,
	status Status,
	reservationDate, checkOutDate *time.Time,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:              id,
		number:          number,
		roomTypeID:      roomTypeID,
		pricePerNight:   pricePerNight,
		status:          status,
		reservationDate: reservationDate,
		checkOutDate:    checkOutDate,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Room) UpdateDetails(number string, roomTypeID uuid.UUID, pricePerNight money.Money) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyNumber
	}
	if len(number) > MaxNumberLength {
		return ErrNumberTooLong
	}
	if roomTypeID == uuid.Nil {
		return ErrMissingRoomType
	}
	if !pricePerNight.IsPositive() {
		return ErrNonPositivePrice
	}

	r.number = number
	r.roomTypeID = roomTypeID
	r.pricePerNight = pricePerNight
	return nil
}

// AttachBooking records a new stay on the room. Only an available room can take one.
func (r *Room) AttachBooking(checkIn, checkOut time.Time, checkedIn bool) error {
	if r.status != StatusAvailable {
		return ErrNotAvailable
	}
	in, out := checkIn, checkOut
	r.reservationDate = &in
	r.checkOutDate = &out
	if checkedIn {
		r.status = StatusOccupied
	} else {
		r.status = StatusReserved
	}
	return nil
}

func (r *Room) Occupy() {
	r.status = StatusOccupied
}

func (r *Room) StartCleaning() {
	r.status = StatusCleaning
}

// Release makes the room bookable again. It reports false when the room is no
// longer cleaning, which means somebody changed it by hand in the meantime.
func (r *Room) Release() bool {
	if r.status != StatusCleaning {
		return false
	}
	r.status = StatusAvailable
	r.reservationDate = nil
	r.checkOutDate = nil
	return true
}

func (r *Room) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	r.status = s
	if s == StatusAvailable {
		r.reservationDate = nil
		r.checkOutDate = nil
	}
	return nil
}

func (r *Room) ID() uuid.UUID               { return r.id }
func (r *Room) Number() string              { return r.number }
func (r *Room) RoomTypeID() uuid.UUID       { return r.roomTypeID }
func (r *Room) PricePerNight() money.Money  { return r.pricePerNight }
func (r *Room) Status() Status              { return r.status }
func (r *Room) ReservationDate() *time.Time { return r.reservationDate }
func (r *Room) CheckOutDate() *time.Time    { return r.checkOutDate }
func (r *Room) CreatedAt() time.Time        { return r.createdAt }
func (r *Room) UpdatedAt() time.Time        { return r.updatedAt }

type RoomType struct {
	id          uuid.UUID
	name        string
	description string
}

func NewRoomType(name, description string) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTypeName
	}
	return &RoomType{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
	}, nil
}

func (t *RoomType) ID() uuid.UUID       { return t.id }
func (t *RoomType) Name() string        { return t.name }
func (t *RoomType) Description() string { return t.description }
