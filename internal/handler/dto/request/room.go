package request

import (
	"hotel-frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type RoomTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

func (r *RoomTypeRequest) ToCommand() commands.RoomTypeRequest {
	return commands.RoomTypeRequest{Name: r.Name, Description: r.Description}
}

type RoomRequest struct {
	Number        string    `json:"number" binding:"required,max=20"`
	RoomTypeID    uuid.UUID `json:"roomTypeId" binding:"required"`
	PricePerNight string    `json:"pricePerNight" binding:"required"`
}

func (r *RoomRequest) ToCommand() (commands.RoomRequest, error) {
	cents, err := parseCents(r.PricePerNight)
	if err != nil {
		return commands.RoomRequest{}, err
	}
	return commands.RoomRequest{Number: r.Number, RoomTypeID: r.RoomTypeID, PricePerNightCents: cents}, nil
}

type RoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied cleaning reserved"`
}
