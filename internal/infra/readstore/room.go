package readstore

import (
	"context"
	"time"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	roomColumns = `
r.id, r.number, r.room_type_id, rt.name, r.price_per_night_cents, r.status,
r.reservation_date, r.check_out_date, r.created_at, r.updated_at`

	roomFrom = `
FROM rooms r
JOIN room_types rt ON rt.id = r.room_type_id`

	listRoomsSQL    = `SELECT ` + roomColumns + roomFrom + ` ORDER BY r.number`
	findRoomByIDSQL = `SELECT ` + roomColumns + roomFrom + ` WHERE r.id = $1`

	listRoomTypesSQL = `
SELECT rt.id, rt.name, rt.description, COUNT(r.id)
FROM room_types rt
LEFT JOIN rooms r ON r.room_type_id = rt.id
GROUP BY rt.id, rt.name, rt.description
ORDER BY rt.name`

	bookingsOnSQL = `
SELECT id, room_id, check_in, check_out, booking_status
FROM bookings
WHERE booking_status <> 'checked-out'
  AND check_in <= $1 AND check_out >= $1
ORDER BY check_in`
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) ListRooms(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, listRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	views, err := collect(rows, scanRoomView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rooms", err)
	}
	return views, nil
}

func (r *RoomReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	view, err := scanRoomView(r.db.QueryRow(ctx, findRoomByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return view, nil
}

func (r *RoomReadStore) ListRoomTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := r.db.Query(ctx, listRoomTypesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	views, err := collect(rows, func(s rowScanner) (*queries.RoomTypeView, error) {
		var v queries.RoomTypeView
		var count int64
		if err := s.Scan(&v.ID, &v.Name, &v.Description, &count); err != nil {
			return nil, err
		}
		v.RoomCount = int(count)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan room types", err)
	}
	return views, nil
}

func (r *RoomReadStore) BookingsOn(ctx context.Context, date time.Time) ([]queries.BookingStateRow, error) {
	rows, err := r.db.Query(ctx, bookingsOnSQL, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings on date", err)
	}
	states, err := collect(rows, func(s rowScanner) (queries.BookingStateRow, error) {
		var row queries.BookingStateRow
		var in, out pgtype.Date
		if err := s.Scan(&row.ID, &row.RoomID, &in, &out, &row.Status); err != nil {
			return row, err
		}
		row.CheckIn = pgconv.DateFromPgtype(in)
		row.CheckOut = pgconv.DateFromPgtype(out)
		return row, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings on date", err)
	}
	return states, nil
}

// SnapshotByID is the write-side read of a room; forUpdate locks the room row.
func (r *RoomReadStore) SnapshotByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*shared.RoomSnapshot, error) {
	sql := findRoomByIDSQL + lockClause(forUpdate, "r")
	view, err := scanRoomView(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read room", err)
	}
	return &shared.RoomSnapshot{
		ID:              view.ID,
		Number:          view.Number,
		RoomTypeID:      view.RoomTypeID,
		TypeName:        view.TypeName,
		PriceCents:      view.PriceCents,
		Status:          view.Status,
		ReservationDate: view.ReservationDate,
		CheckOutDate:    view.CheckOutDate,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}, nil
}

func scanRoomView(s rowScanner) (*queries.RoomView, error) {
	var v queries.RoomView
	var reservation, checkOut pgtype.Date
	err := s.Scan(
		&v.ID, &v.Number, &v.RoomTypeID, &v.TypeName, &v.PriceCents, &v.Status,
		&reservation, &checkOut, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.ReservationDate = pgconv.DatePtrFromPgtype(reservation)
	v.CheckOutDate = pgconv.DatePtrFromPgtype(checkOut)
	return &v, nil
}
