package queries

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"
)

var ErrInvalidDateRange = errs.New("from must not be after to")

// DefaultLedgerDays is the window listed when no range is given.
const DefaultLedgerDays = 30

type LedgerReadStore interface {
	ListTransactions(ctx context.Context, from, to time.Time) ([]*TransactionView, error)
}

type LedgerQueries interface {
	List(ctx context.Context, from, to *time.Time) ([]*TransactionView, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
	cache Cache
	clock clock.Clock
	loc   *time.Location
}

func NewLedgerQueries(store LedgerReadStore, cache Cache, clk clock.Clock, loc *time.Location) LedgerQueries {
	return &ledgerQueriesImpl{store: store, cache: cache, clock: clk, loc: loc}
}

// List returns transactions dated within [from, to], newest first.
func (q *ledgerQueriesImpl) List(ctx context.Context, from, to *time.Time) ([]*TransactionView, error) {
	end := clock.Today(q.clock, q.loc)
	if to != nil {
		end = booking.NormalizeDate(*to)
	}
	start := end.AddDate(0, 0, -(DefaultLedgerDays - 1))
	if from != nil {
		start = booking.NormalizeDate(*from)
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	key := "ledger:" + start.Format(time.DateOnly) + ":" + end.Format(time.DateOnly)
	return cached(ctx, q.cache, key, []string{shared.TagLedger}, func(ctx context.Context) ([]*TransactionView, error) {
		return q.store.ListTransactions(ctx, start, end)
	})
}
