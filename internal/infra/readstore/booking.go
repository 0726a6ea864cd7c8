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
	findBookingViewSQL = `
SELECT b.id, b.room_id, r.number, rt.name,
       b.guest_name, b.guest_phone, b.guest_email, b.guest_id_number, b.guest_address,
       b.check_in, b.check_out, b.nights, b.price_per_night_cents, b.total_price_cents,
       b.payment_method, b.payment_status, b.booking_status,
       b.received_by, u.full_name, b.notes, b.created_at, b.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN room_types rt ON rt.id = r.room_type_id
JOIN users u ON u.id = b.received_by
WHERE b.id = $1`

	bookingListColumns = `
SELECT b.id, b.room_id, r.number, b.guest_name, b.check_in, b.check_out, b.nights,
       b.total_price_cents, b.payment_status, b.booking_status, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id`

	listBookingsFirstPageSQL = bookingListColumns + `
WHERE ($1 = '' OR b.booking_status = $1)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2`

	listBookingsKeysetSQL = bookingListColumns + `
WHERE ($1 = '' OR b.booking_status = $1)
  AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

	findBookingSnapshotSQL = `
SELECT id, room_id, guest_name, guest_phone, guest_email, guest_id_number, guest_address,
       check_in, check_out, nights, price_per_night_cents, total_price_cents,
       payment_method, payment_status, booking_status, received_by, notes, created_at, updated_at
FROM bookings
WHERE id = $1`
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	var email, idNumber, address, notes pgtype.Text
	var in, out pgtype.Date
	var nights int32
	err := r.db.QueryRow(ctx, findBookingViewSQL, id).Scan(
		&v.ID, &v.RoomID, &v.RoomNumber, &v.TypeName,
		&v.GuestName, &v.GuestPhone, &email, &idNumber, &address,
		&in, &out, &nights, &v.PriceCents, &v.TotalCents,
		&v.PaymentMethod, &v.PaymentStatus, &v.Status,
		&v.ReceivedBy, &v.ReceivedByName, &notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	v.GuestEmail = pgconv.StringFromPgtype(email)
	v.GuestIDNumber = pgconv.StringFromPgtype(idNumber)
	v.GuestAddress = pgconv.StringFromPgtype(address)
	v.Notes = pgconv.StringFromPgtype(notes)
	v.CheckIn = pgconv.DateFromPgtype(in)
	v.CheckOut = pgconv.DateFromPgtype(out)
	v.Nights = int(nights)
	return &v, nil
}

func (r *BookingReadStore) ListFirstPage(ctx context.Context, status string, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listBookingsFirstPageSQL, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	items, err := collect(rows, scanBookingListItem)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return items, nil
}

func (r *BookingReadStore) ListKeyset(
	ctx context.Context,
	status string,
	lastCreatedAt time.Time,
	lastID uuid.UUID,
	limit int32,
) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listBookingsKeysetSQL, status, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings with keyset", err)
	}
	items, err := collect(rows, scanBookingListItem)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return items, nil
}

func (r *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*shared.BookingSnapshot, error) {
	var s shared.BookingSnapshot
	var email, idNumber, address, notes pgtype.Text
	var in, out pgtype.Date
	var nights int32
	err := r.db.QueryRow(ctx, findBookingSnapshotSQL+lockClause(forUpdate, ""), id).Scan(
		&s.ID, &s.RoomID, &s.GuestName, &s.GuestPhone, &email, &idNumber, &address,
		&in, &out, &nights, &s.PriceCents, &s.TotalCents,
		&s.PaymentMethod, &s.PaymentStatus, &s.Status, &s.ReceivedBy, &notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking", err)
	}

	s.GuestEmail = pgconv.StringFromPgtype(email)
	s.GuestIDNumber = pgconv.StringFromPgtype(idNumber)
	s.GuestAddress = pgconv.StringFromPgtype(address)
	s.Notes = pgconv.StringFromPgtype(notes)
	s.CheckIn = pgconv.DateFromPgtype(in)
	s.CheckOut = pgconv.DateFromPgtype(out)
	s.Nights = int(nights)
	return &s, nil
}

func scanBookingListItem(s rowScanner) (*queries.BookingListItem, error) {
	var item queries.BookingListItem
	var in, out pgtype.Date
	var nights int32
	err := s.Scan(
		&item.ID, &item.RoomID, &item.RoomNumber, &item.GuestName, &in, &out, &nights,
		&item.TotalCents, &item.PaymentStatus, &item.Status, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.CheckIn = pgconv.DateFromPgtype(in)
	item.CheckOut = pgconv.DateFromPgtype(out)
	item.Nights = int(nights)
	return &item, nil
}
