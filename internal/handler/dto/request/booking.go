package request

import (
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	RoomID        string `json:"roomId" binding:"omitempty,uuid"`
	CheckIn       string `json:"checkIn" binding:"required"`
	CheckOut      string `json:"checkOut" binding:"required"`
	PricePerNight string `json:"pricePerNight"`
}

func (r *QuoteRequest) ToCommand() (commands.QuoteRequest, error) {
	var out commands.QuoteRequest
	var err error
	if out.CheckIn, err = ParseDate(r.CheckIn); err != nil {
		return out, err
	}
	if out.CheckOut, err = ParseDate(r.CheckOut); err != nil {
		return out, err
	}
	if r.RoomID != "" {
		id, err := ParseID(r.RoomID)
		if err != nil {
			return out, err
		}
		out.RoomID = &id
	}
	if r.PricePerNight != "" {
		cents, err := parseCents(r.PricePerNight)
		if err != nil {
			return out, err
		}
		out.PricePerNightCents = &cents
	}
	return out, nil
}

type CreateBookingRequest struct {
	RoomTypeID    uuid.UUID `json:"roomTypeId" binding:"required"`
	RoomID        uuid.UUID `json:"roomId" binding:"required"`
	GuestName     string    `json:"guestName" binding:"required,max=255"`
	GuestPhone    string    `json:"guestPhone" binding:"required,max=50"`
	GuestEmail    string    `json:"guestEmail" binding:"omitempty,email"`
	GuestIDNumber string    `json:"guestIdNumber" binding:"max=100"`
	GuestAddress  string    `json:"guestAddress" binding:"max=255"`
	CheckIn       string    `json:"checkIn" binding:"required"`
	CheckOut      string    `json:"checkOut" binding:"required"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,oneof=cash transfer card qris"`
	PaymentStatus string    `json:"paymentStatus" binding:"required,oneof=paid unpaid"`
	BookingStatus string    `json:"bookingStatus" binding:"required,oneof=reservation checked-in"`
	Notes         string    `json:"notes" binding:"max=1000"`
}

func (r *CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	checkIn, err := ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	checkOut, err := ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{
		RoomTypeID:    r.RoomTypeID,
		RoomID:        r.RoomID,
		GuestName:     r.GuestName,
		GuestPhone:    r.GuestPhone,
		GuestEmail:    r.GuestEmail,
		GuestIDNumber: r.GuestIDNumber,
		GuestAddress:  r.GuestAddress,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		Status:        r.BookingStatus,
		Notes:         r.Notes,
	}, nil
}
