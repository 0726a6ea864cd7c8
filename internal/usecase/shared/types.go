package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type RoomSnapshot struct {
	ID              uuid.UUID
	Number          string
	RoomTypeID      uuid.UUID
	TypeName        string
	PriceCents      int64
	Status          string
	ReservationDate *time.Time
	CheckOutDate    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BookingSnapshot struct {
	ID            uuid.UUID
	RoomID        uuid.UUID
	GuestName     string
	GuestPhone    string
	GuestEmail    string
	GuestIDNumber string
	GuestAddress  string
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	PriceCents    int64
	TotalCents    int64
	PaymentMethod string
	PaymentStatus string
	Status        string
	ReceivedBy    uuid.UUID
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type MenuItemSnapshot struct {
	ID          uuid.UUID
	Name        string
	Category    string
	PriceCents  int64
	Available   bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Job is a claimed row of the jobs table.
type Job struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}
