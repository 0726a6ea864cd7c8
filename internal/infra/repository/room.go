package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/infra/repository/converter"
)

const (
	createRoomSQL = `
INSERT INTO rooms (id, number, room_type_id, price_per_night_cents, status, reservation_date, check_out_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateRoomSQL = `
UPDATE rooms
SET number = $2, room_type_id = $3, price_per_night_cents = $4, status = $5,
    reservation_date = $6, check_out_date = $7, updated_at = now()
WHERE id = $1`

	createRoomTypeSQL = `
INSERT INTO room_types (id, name, description) VALUES ($1, $2, $3)`
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	params := converter.RoomToParams(rm)
	if _, err := tx.Exec(ctx, createRoomSQL, params.Args()...); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	params := converter.RoomToParams(rm)
	tag, err := tx.Exec(ctx, updateRoomSQL, params.Args()...)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

type RoomTypeRepository struct{}

func NewRoomTypeRepository() *RoomTypeRepository {
	return &RoomTypeRepository{}
}

func (r *RoomTypeRepository) Create(ctx context.Context, tx db.DBTX, t *room.RoomType) error {
	if _, err := tx.Exec(ctx, createRoomTypeSQL, t.ID(), t.Name(), t.Description()); err != nil {
		return infra.WrapRepoErr("failed to create room type", err)
	}
	return nil
}
