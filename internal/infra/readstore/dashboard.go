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

const (
	roomCountsSQL = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE status = 'available'),
       COUNT(*) FILTER (WHERE status = 'occupied')
FROM rooms`

	activeGuestsSQL = `SELECT COUNT(*) FROM bookings WHERE booking_status = 'checked-in'`

	incomeOnSQL = `
SELECT COALESCE(SUM(amount_cents), 0)::bigint
FROM transactions
WHERE type = 'income' AND date = $1`

	dailyCashflowSQL = `
SELECT date,
       COALESCE(SUM(amount_cents) FILTER (WHERE type = 'income'), 0)::bigint,
       COALESCE(SUM(amount_cents) FILTER (WHERE type = 'expense'), 0)::bigint
FROM transactions
WHERE date BETWEEN $1 AND $2
GROUP BY date
ORDER BY date`

	monthlySummariesSQL = `
SELECT month, revenue_cents, expense_cents, profit_cents
FROM monthly_financial_summary
WHERE month >= $1
ORDER BY month`
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(dbtx db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: dbtx}
}

func (r *DashboardReadStore) RoomCounts(ctx context.Context) (queries.RoomCounts, error) {
	var total, available, occupied int64
	if err := r.db.QueryRow(ctx, roomCountsSQL).Scan(&total, &available, &occupied); err != nil {
		return queries.RoomCounts{}, infra.WrapRepoErr("failed to count rooms", err)
	}
	return queries.RoomCounts{Total: int(total), Available: int(available), Occupied: int(occupied)}, nil
}

func (r *DashboardReadStore) ActiveGuests(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.QueryRow(ctx, activeGuestsSQL).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count active guests", err)
	}
	return int(n), nil
}

func (r *DashboardReadStore) IncomeOn(ctx context.Context, date time.Time) (int64, error) {
	var cents int64
	if err := r.db.QueryRow(ctx, incomeOnSQL, pgconv.DateToPgtype(date)).Scan(&cents); err != nil {
		return 0, infra.WrapRepoErr("failed to sum income", err)
	}
	return cents, nil
}

func (r *DashboardReadStore) DailyCashflow(ctx context.Context, from, to time.Time) ([]queries.CashflowDay, error) {
	rows, err := r.db.Query(ctx, dailyCashflowSQL, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cashflow", err)
	}
	days, err := collect(rows, func(s rowScanner) (queries.CashflowDay, error) {
		var d queries.CashflowDay
		var date pgtype.Date
		if err := s.Scan(&date, &d.IncomeCents, &d.ExpenseCents); err != nil {
			return d, err
		}
		d.Date = pgconv.DateFromPgtype(date)
		return d, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan cashflow", err)
	}
	return days, nil
}

func (r *DashboardReadStore) MonthlySummaries(ctx context.Context, since time.Time) ([]queries.MonthlySummary, error) {
	rows, err := r.db.Query(ctx, monthlySummariesSQL, pgconv.DateToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load monthly summary", err)
	}
	months, err := collect(rows, func(s rowScanner) (queries.MonthlySummary, error) {
		var m queries.MonthlySummary
		var month pgtype.Date
		if err := s.Scan(&month, &m.RevenueCents, &m.ExpenseCents, &m.ProfitCents); err != nil {
			return m, err
		}
		m.Month = pgconv.DateFromPgtype(month)
		return m, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan monthly summary", err)
	}
	return months, nil
}
