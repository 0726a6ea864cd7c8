package occupancy

import (
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/domain/room"

	"github.com/google/uuid"
)

// RoomState is the part of a room the calendar logic looks at.
type RoomState struct {
	ID       uuid.UUID
	Number   string
	TypeID   uuid.UUID
	TypeName string
	Price    money.Money
	Status   room.Status
}

type BookingState struct {
	ID       uuid.UUID
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Status   booking.Status
}

type RoomOption struct {
	ID       uuid.UUID
	Number   string
	Price    money.Money
	TypeName string
}

type TypeOption struct {
	TypeID    uuid.UUID
	TypeName  string
	FromPrice money.Money
	Available int
}

type BoardEntry struct {
	RoomID          uuid.UUID
	Number          string
	TypeName        string
	StoredStatus    room.Status
	EffectiveStatus room.Status
}

// Diverges is true when the calendar disagrees with what staff last stored.
func (e BoardEntry) Diverges() bool {
	return e.StoredStatus != e.EffectiveStatus
}
