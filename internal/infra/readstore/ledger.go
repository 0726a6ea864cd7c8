package readstore

import (
	"context"
	"time"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const listTransactionsSQL = `
SELECT id, type, amount_cents, category, description, date, booking_id, recorded_by, created_at
FROM transactions
WHERE date BETWEEN $1 AND $2
ORDER BY date DESC, created_at DESC`

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(dbtx db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: dbtx}
}

func (r *LedgerReadStore) ListTransactions(ctx context.Context, from, to time.Time) ([]*queries.TransactionView, error) {
	rows, err := r.db.Query(ctx, listTransactionsSQL, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	views, err := collect(rows, func(s rowScanner) (*queries.TransactionView, error) {
		var v queries.TransactionView
		var date pgtype.Date
		var bookingID, recordedBy pgtype.UUID
		err := s.Scan(&v.ID, &v.Type, &v.AmountCents, &v.Category, &v.Description,
			&date, &bookingID, &recordedBy, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		v.Date = pgconv.DateFromPgtype(date)
		v.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
		v.RecordedBy = pgconv.UUIDPtrFromPgtype(recordedBy)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan transactions", err)
	}
	return views, nil
}
