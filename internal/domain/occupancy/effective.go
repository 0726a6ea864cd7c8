package occupancy

import (
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/room"

	"github.com/google/uuid"
)

// EffectiveStatus derives the status of r on date from the bookings calendar.
// Cleaning always wins. Checked-out bookings no longer hold the room.
func EffectiveStatus(r RoomState, bookings []BookingState, date time.Time) room.Status {
	if r.Status == room.StatusCleaning {
		return room.StatusCleaning
	}

	day := booking.NormalizeDate(date)
	matched := false
	for _, b := range bookings {
		if b.RoomID != r.ID || b.Status == booking.StatusCheckedOut {
			continue
		}
		if !covers(b, day) {
			continue
		}
		if b.Status == booking.StatusCheckedIn {
			return room.StatusOccupied
		}
		matched = true
	}

	if matched {
		return room.StatusReserved
	}
	return r.Status
}

func Board(rooms []RoomState, bookings []BookingState, date time.Time) []BoardEntry {
	byRoom := make(map[uuid.UUID][]BookingState, len(rooms))
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	out := make([]BoardEntry, len(rooms))
	for i, r := range rooms {
		out[i] = BoardEntry{
			RoomID:          r.ID,
			Number:          r.Number,
			TypeName:        r.TypeName,
			StoredStatus:    r.Status,
			EffectiveStatus: EffectiveStatus(r, byRoom[r.ID], date),
		}
	}
	return out
}

func covers(b BookingState, day time.Time) bool {
	in := booking.NormalizeDate(b.CheckIn)
	out := booking.NormalizeDate(b.CheckOut)
	return !day.Before(in) && !day.After(out)
}
