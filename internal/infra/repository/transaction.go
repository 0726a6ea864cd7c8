package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/ledger"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/pgconv"
)

const createTransactionSQL = `
INSERT INTO transactions (id, type, amount_cents, category, description, date, booking_id, recorded_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type TransactionRepository struct{}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Create(ctx context.Context, tx db.DBTX, t *ledger.Transaction) error {
	_, err := tx.Exec(ctx, createTransactionSQL,
		t.ID(),
		t.Type().String(),
		t.Amount().Cents(),
		t.Category(),
		t.Description(),
		pgconv.DateToPgtype(t.Date()),
		pgconv.UUIDPtrToPgtype(t.BookingID()),
		pgconv.UUIDPtrToPgtype(t.RecordedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}
