package converter

import (
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomParams struct {
	ID              uuid.UUID
	Number          string
	RoomTypeID      uuid.UUID
	PriceCents      int64
	Status          string
	ReservationDate pgtype.Date
	CheckOutDate    pgtype.Date
}

func RoomToParams(r *room.Room) RoomParams {
	return RoomParams{
		ID:              r.ID(),
		Number:          r.Number(),
		RoomTypeID:      r.RoomTypeID(),
		PriceCents:      r.PricePerNight().Cents(),
		Status:          r.Status().String(),
		ReservationDate: pgconv.DatePtrToPgtype(r.ReservationDate()),
		CheckOutDate:    pgconv.DatePtrToPgtype(r.CheckOutDate()),
	}
}

func (p RoomParams) Args() []any {
	return []any{p.ID, p.Number, p.RoomTypeID, p.PriceCents, p.Status, p.ReservationDate, p.CheckOutDate}
}
