package queries

import (
	"context"
	"time"

	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const (
	CashflowDays   = 7
	SummaryMonths  = 12
	percentDecimal = 2
)

type DashboardReadStore interface {
	RoomCounts(ctx context.Context) (RoomCounts, error)
	ActiveGuests(ctx context.Context) (int, error)
	IncomeOn(ctx context.Context, date time.Time) (int64, error)
	DailyCashflow(ctx context.Context, from, to time.Time) ([]CashflowDay, error)
	MonthlySummaries(ctx context.Context, since time.Time) ([]MonthlySummary, error)
}

type DashboardQueries interface {
	Metrics(ctx context.Context) (*DashboardMetrics, error)
	Cashflow(ctx context.Context) ([]CashflowDay, error)
	Monthly(ctx context.Context) ([]MonthlySummary, error)
}

type dashboardQueriesImpl struct {
	store DashboardReadStore
	cache Cache
	clock clock.Clock
	loc   *time.Location
}

func NewDashboardQueries(store DashboardReadStore, cache Cache, clk clock.Clock, loc *time.Location) DashboardQueries {
	return &dashboardQueriesImpl{store: store, cache: cache, clock: clk, loc: loc}
}

func (q *dashboardQueriesImpl) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	today := clock.Today(q.clock, q.loc)
	key := "dashboard:metrics:" + today.Format(time.DateOnly)

	return cached(ctx, q.cache, key, []string{shared.TagDashboard}, func(ctx context.Context) (*DashboardMetrics, error) {
		counts, err := q.store.RoomCounts(ctx)
		if err != nil {
			return nil, err
		}
		guests, err := q.store.ActiveGuests(ctx)
		if err != nil {
			return nil, err
		}
		revenue, err := q.store.IncomeOn(ctx, today)
		if err != nil {
			return nil, err
		}

		return &DashboardMetrics{
			ActiveGuests:      guests,
			AvailableRooms:    counts.Available,
			OccupiedRooms:     counts.Occupied,
			TotalRooms:        counts.Total,
			TodayRevenueCents: revenue,
			OccupancyPercent:  OccupancyPercent(counts),
		}, nil
	})
}

// OccupancyPercent is occupied over total rooms, in percent with two decimals.
func OccupancyPercent(c RoomCounts) decimal.Decimal {
	if c.Total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(c.Occupied)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(c.Total)), percentDecimal)
}

// Cashflow covers the last seven days ending today; quiet days are zero rows.
func (q *dashboardQueriesImpl) Cashflow(ctx context.Context) ([]CashflowDay, error) {
	today := clock.Today(q.clock, q.loc)
	from := today.AddDate(0, 0, -(CashflowDays - 1))
	key := "dashboard:cashflow:" + today.Format(time.DateOnly)

	return cached(ctx, q.cache, key, []string{shared.TagDashboard}, func(ctx context.Context) ([]CashflowDay, error) {
		rows, err := q.store.DailyCashflow(ctx, from, today)
		if err != nil {
			return nil, err
		}

		byDay := make(map[time.Time]CashflowDay, len(rows))
		for _, r := range rows {
			byDay[r.Date] = r
		}

		days := make([]CashflowDay, 0, CashflowDays)
		for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
			row, ok := byDay[d]
			if !ok {
				row = CashflowDay{Date: d}
			}
			days = append(days, row)
		}
		return days, nil
	})
}

func (q *dashboardQueriesImpl) Monthly(ctx context.Context) ([]MonthlySummary, error) {
	today := clock.Today(q.clock, q.loc)
	since := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(SummaryMonths - 1), 0)
	key := "dashboard:monthly:" + since.Format(time.DateOnly)

	return cached(ctx, q.cache, key, []string{shared.TagDashboard}, func(ctx context.Context) ([]MonthlySummary, error) {
		return q.store.MonthlySummaries(ctx, since)
	})
}
