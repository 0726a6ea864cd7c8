package queries

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrInvalidStatusFilter = errs.New("invalid booking status filter")
)

type BookingFilters struct {
	Status string
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListFirstPage(ctx context.Context, status string, limit int32) ([]*BookingListItem, error)
	ListKeyset(ctx context.Context, status string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	cache Cache
}

func NewBookingQueries(store BookingReadStore, cache Cache) BookingQueries {
	return &bookingQueriesImpl{store: store, cache: cache}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return cached(ctx, q.cache, "bookings:"+id.String(), []string{shared.TagBookings}, func(ctx context.Context) (*BookingView, error) {
		bv, err := q.store.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, err
		}
		return bv, nil
	})
}

// List pages newest first. An empty status lists every booking.
func (q *bookingQueriesImpl) List(ctx context.Context, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if filters.Status != "" {
		if _, err := booking.NewStatus(filters.Status); err != nil {
			return nil, nil, ErrInvalidStatusFilter
		}
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, filters.Status, int32(limit+1)) // #nosec G115 -- limit is capped
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, filters.Status, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- limit is capped
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
