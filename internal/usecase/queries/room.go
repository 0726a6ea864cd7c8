package queries

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/domain/occupancy"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomReadStore interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	// BookingsOn returns the bookings that are not checked out and whose stay covers date.
	BookingsOn(ctx context.Context, date time.Time) ([]BookingStateRow, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	Availability(ctx context.Context, roomTypeID uuid.UUID) (*AvailabilityView, error)
	Board(ctx context.Context, date *time.Time) (*BoardView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	cache Cache
	clock clock.Clock
	loc   *time.Location
}

func NewRoomQueries(store RoomReadStore, cache Cache, clk clock.Clock, loc *time.Location) RoomQueries {
	return &roomQueriesImpl{store: store, cache: cache, clock: clk, loc: loc}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	return cached(ctx, q.cache, "rooms:list", []string{shared.TagRooms}, q.store.ListRooms)
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	key := "rooms:" + id.String()
	return cached(ctx, q.cache, key, []string{shared.RoomTag(id)}, func(ctx context.Context) (*RoomView, error) {
		rv, err := q.store.FindRoomByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, err
		}
		return rv, nil
	})
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return cached(ctx, q.cache, "rooms:types", []string{shared.TagRooms}, q.store.ListRoomTypes)
}

// Availability trusts the stored status; it does not consult the booking calendar.
func (q *roomQueriesImpl) Availability(ctx context.Context, roomTypeID uuid.UUID) (*AvailabilityView, error) {
	key := "rooms:availability:" + roomTypeID.String()
	return cached(ctx, q.cache, key, []string{shared.TagRooms}, func(ctx context.Context) (*AvailabilityView, error) {
		rooms, err := q.store.ListRooms(ctx)
		if err != nil {
			return nil, err
		}
		states := toRoomStates(rooms)

		types := occupancy.AvailableTypes(states)
		options := occupancy.AvailableRooms(states, roomTypeID)

		view := &AvailabilityView{
			Types: make([]TypeOptionView, 0, len(types)),
			Rooms: make([]RoomOptionView, 0, len(options)),
		}
		for _, t := range types {
			view.Types = append(view.Types, TypeOptionView{
				TypeID:         t.TypeID,
				TypeName:       t.TypeName,
				FromPriceCents: t.FromPrice.Cents(),
				Available:      t.Available,
			})
		}
		for _, o := range options {
			view.Rooms = append(view.Rooms, RoomOptionView{
				ID:         o.ID,
				Number:     o.Number,
				PriceCents: o.Price.Cents(),
				TypeName:   o.TypeName,
			})
		}
		return view, nil
	})
}

// Board reports stored and derived status side by side; nothing reconciles them.
func (q *roomQueriesImpl) Board(ctx context.Context, date *time.Time) (*BoardView, error) {
	day := clock.Today(q.clock, q.loc)
	if date != nil {
		day = booking.NormalizeDate(*date)
	}

	key := "rooms:board:" + day.Format(time.DateOnly)
	return cached(ctx, q.cache, key, []string{shared.TagRooms, shared.TagBookings}, func(ctx context.Context) (*BoardView, error) {
		rooms, err := q.store.ListRooms(ctx)
		if err != nil {
			return nil, err
		}
		rows, err := q.store.BookingsOn(ctx, day)
		if err != nil {
			return nil, err
		}

		bookings := make([]occupancy.BookingState, 0, len(rows))
		for _, r := range rows {
			bookings = append(bookings, occupancy.BookingState{
				ID:       r.ID,
				RoomID:   r.RoomID,
				CheckIn:  r.CheckIn,
				CheckOut: r.CheckOut,
				Status:   booking.Status(r.Status),
			})
		}

		entries := occupancy.Board(toRoomStates(rooms), bookings, day)
		view := &BoardView{Date: day, Rooms: make([]BoardEntryView, 0, len(entries))}
		for _, e := range entries {
			view.Rooms = append(view.Rooms, BoardEntryView{
				RoomID:          e.RoomID,
				Number:          e.Number,
				TypeName:        e.TypeName,
				StoredStatus:    e.StoredStatus.String(),
				EffectiveStatus: e.EffectiveStatus.String(),
				Diverges:        e.Diverges(),
			})
		}
		return view, nil
	})
}

func toRoomStates(rooms []*RoomView) []occupancy.RoomState {
	states := make([]occupancy.RoomState, 0, len(rooms))
	for _, r := range rooms {
		states = append(states, occupancy.RoomState{
			ID:       r.ID,
			Number:   r.Number,
			TypeID:   r.RoomTypeID,
			TypeName: r.TypeName,
			Price:    money.FromCents(r.PriceCents),
			Status:   room.Status(r.Status),
		})
	}
	return states
}
