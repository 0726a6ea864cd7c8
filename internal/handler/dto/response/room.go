package response

import (
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID              uuid.UUID `json:"id"`
	Number          string    `json:"number"`
	RoomTypeID      uuid.UUID `json:"roomTypeId"`
	TypeName        string    `json:"typeName"`
	PricePerNight   string    `json:"pricePerNight" copier:"PriceCents"`
	Status          string    `json:"status"`
	ReservationDate *string   `json:"reservationDate"`
	CheckOutDate    *string   `json:"checkOutDate"`
	UpdatedAt       int64     `json:"updatedAt"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var out RoomResponse
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromRoomList(items []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, 0, len(items))
	if err := copyInto(&out, items); err != nil {
		return nil, err
	}
	return out, nil
}

type RoomTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RoomCount   int       `json:"roomCount"`
}

func FromRoomTypeList(items []*queries.RoomTypeView) ([]*RoomTypeResponse, error) {
	out := make([]*RoomTypeResponse, 0, len(items))
	if err := copyInto(&out, items); err != nil {
		return nil, err
	}
	return out, nil
}

type TypeOptionResponse struct {
	TypeID    uuid.UUID `json:"typeId"`
	TypeName  string    `json:"typeName"`
	FromPrice string    `json:"fromPrice" copier:"FromPriceCents"`
	Available int       `json:"available"`
}

type RoomOptionResponse struct {
	ID       uuid.UUID `json:"id"`
	Number   string    `json:"number"`
	Price    string    `json:"price" copier:"PriceCents"`
	TypeName string    `json:"typeName"`
}

type AvailabilityResponse struct {
	Types []TypeOptionResponse `json:"types"`
	Rooms []RoomOptionResponse `json:"rooms"`
}

func FromAvailability(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	out := AvailabilityResponse{
		Types: make([]TypeOptionResponse, 0, len(v.Types)),
		Rooms: make([]RoomOptionResponse, 0, len(v.Rooms)),
	}
	if err := copyInto(&out.Types, v.Types); err != nil {
		return nil, err
	}
	if err := copyInto(&out.Rooms, v.Rooms); err != nil {
		return nil, err
	}
	return &out, nil
}

type BoardEntryResponse struct {
	ID              uuid.UUID `json:"id" copier:"RoomID"`
	Number          string    `json:"number"`
	TypeName        string    `json:"typeName"`
	StoredStatus    string    `json:"storedStatus"`
	EffectiveStatus string    `json:"effectiveStatus"`
	Diverges        bool      `json:"diverges"`
}

type BoardResponse struct {
	Date  string               `json:"date"`
	Rooms []BoardEntryResponse `json:"rooms"`
}

func FromBoard(v *queries.BoardView) (*BoardResponse, error) {
	out := BoardResponse{Rooms: make([]BoardEntryResponse, 0, len(v.Rooms))}
	if err := copyInto(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}
