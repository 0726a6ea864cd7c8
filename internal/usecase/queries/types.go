package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models. Amounts stay in minor units; handlers format them.

type RoomView struct {
	ID              uuid.UUID  `json:"id"`
	Number          string     `json:"number"`
	RoomTypeID      uuid.UUID  `json:"room_type_id"`
	TypeName        string     `json:"type_name"`
	PriceCents      int64      `json:"price_cents"`
	Status          string     `json:"status"`
	ReservationDate *time.Time `json:"reservation_date,omitempty"`
	CheckOutDate    *time.Time `json:"check_out_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type RoomTypeView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RoomCount   int       `json:"room_count"`
}

type TypeOptionView struct {
	TypeID         uuid.UUID `json:"type_id"`
	TypeName       string    `json:"type_name"`
	FromPriceCents int64     `json:"from_price_cents"`
	Available      int       `json:"available"`
}

type RoomOptionView struct {
	ID         uuid.UUID `json:"id"`
	Number     string    `json:"number"`
	PriceCents int64     `json:"price_cents"`
	TypeName   string    `json:"type_name"`
}

type AvailabilityView struct {
	Types []TypeOptionView `json:"types"`
	Rooms []RoomOptionView `json:"rooms"`
}

type BoardEntryView struct {
	RoomID          uuid.UUID `json:"room_id"`
	Number          string    `json:"number"`
	TypeName        string    `json:"type_name"`
	StoredStatus    string    `json:"stored_status"`
	EffectiveStatus string    `json:"effective_status"`
	Diverges        bool      `json:"diverges"`
}

type BoardView struct {
	Date  time.Time        `json:"date"`
	Rooms []BoardEntryView `json:"rooms"`
}

// BookingStateRow is what the board needs to know about a booking.
type BookingStateRow struct {
	ID       uuid.UUID
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Status   string
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	RoomID         uuid.UUID `json:"room_id"`
	RoomNumber     string    `json:"room_number"`
	TypeName       string    `json:"type_name"`
	GuestName      string    `json:"guest_name"`
	GuestPhone     string    `json:"guest_phone"`
	GuestEmail     string    `json:"guest_email"`
	GuestIDNumber  string    `json:"guest_id_number"`
	GuestAddress   string    `json:"guest_address"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	Nights         int       `json:"nights"`
	PriceCents     int64     `json:"price_cents"`
	TotalCents     int64     `json:"total_cents"`
	PaymentMethod  string    `json:"payment_method"`
	PaymentStatus  string    `json:"payment_status"`
	Status         string    `json:"status"`
	ReceivedBy     uuid.UUID `json:"received_by"`
	ReceivedByName string    `json:"received_by_name"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomNumber    string    `json:"room_number"`
	GuestName     string    `json:"guest_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Nights        int       `json:"nights"`
	TotalCents    int64     `json:"total_cents"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type TransactionView struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	AmountCents int64      `json:"amount_cents"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	RecordedBy  *uuid.UUID `json:"recorded_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type DashboardMetrics struct {
	ActiveGuests      int             `json:"active_guests"`
	AvailableRooms    int             `json:"available_rooms"`
	OccupiedRooms     int             `json:"occupied_rooms"`
	TotalRooms        int             `json:"total_rooms"`
	TodayRevenueCents int64           `json:"today_revenue_cents"`
	OccupancyPercent  decimal.Decimal `json:"occupancy_percent"`
}

// RoomCounts is the raw input to the occupancy figures.
type RoomCounts struct {
	Total     int
	Available int
	Occupied  int
}

type CashflowDay struct {
	Date         time.Time `json:"date"`
	IncomeCents  int64     `json:"income_cents"`
	ExpenseCents int64     `json:"expense_cents"`
}

type MonthlySummary struct {
	Month        time.Time `json:"month"`
	RevenueCents int64     `json:"revenue_cents"`
	ExpenseCents int64     `json:"expense_cents"`
	ProfitCents  int64     `json:"profit_cents"`
}

type ActivityView struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Action      string     `json:"action"`
	Description string     `json:"description"`
	EntityType  string     `json:"entity_type"`
	EntityID    *uuid.UUID `json:"entity_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type MenuItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"price_cents"`
	Available   bool      `json:"available"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
