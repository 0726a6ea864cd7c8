package response

import (
	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Nights        int    `json:"nights"`
	PricePerNight string `json:"pricePerNight"`
	TotalPrice    string `json:"totalPrice"`
}

func FromQuote(q *booking.Quote) *QuoteResponse {
	return &QuoteResponse{
		Nights:        q.Nights,
		PricePerNight: q.PricePerNight.String(),
		TotalPrice:    q.Total.String(),
	}
}

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	RoomID         uuid.UUID `json:"roomId"`
	RoomNumber     string    `json:"roomNumber"`
	TypeName       string    `json:"typeName"`
	GuestName      string    `json:"guestName"`
	GuestPhone     string    `json:"guestPhone"`
	GuestEmail     string    `json:"guestEmail"`
	GuestIDNumber  string    `json:"guestIdNumber"`
	GuestAddress   string    `json:"guestAddress"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	Nights         int       `json:"nights"`
	PricePerNight  string    `json:"pricePerNight" copier:"PriceCents"`
	TotalPrice     string    `json:"totalPrice" copier:"TotalCents"`
	PaymentMethod  string    `json:"paymentMethod"`
	PaymentStatus  string    `json:"paymentStatus"`
	BookingStatus  string    `json:"bookingStatus" copier:"Status"`
	ReceivedBy     uuid.UUID `json:"receivedBy"`
	ReceivedByName string    `json:"receivedByName"`
	Notes          string    `json:"notes"`
	CreatedAt      int64     `json:"createdAt"`
	UpdatedAt      int64     `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var out BookingResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

type BookingListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	GuestName     string    `json:"guestName"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Nights        int       `json:"nights"`
	TotalPrice    string    `json:"totalPrice" copier:"TotalCents"`
	PaymentStatus string    `json:"paymentStatus"`
	BookingStatus string    `json:"bookingStatus" copier:"Status"`
	CreatedAt     int64     `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings   []*BookingListItemResponse `json:"bookings"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	out := BookingListResponse{Bookings: make([]*BookingListItemResponse, 0, len(items))}
	if err := copyInto(&out.Bookings, items); err != nil {
		return nil, err
	}
	if next != nil {
		out.NextCursor = next.After
	}
	return &out, nil
}
