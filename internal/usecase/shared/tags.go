package shared

import "github.com/google/uuid"

// Cache tags. A write invalidates exactly the tags of the data it changed.
const (
	TagRooms     = "rooms"
	TagBookings  = "bookings"
	TagLedger    = "ledger"
	TagDashboard = "dashboard"
	TagMenu      = "menu"
	TagUsers     = "users"
)

func RoomTag(id uuid.UUID) string {
	return "room:" + id.String()
}
