//go:build unit

package occupancy_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/domain/occupancy"
	"hotel-frontdesk/internal/domain/room"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	standard = uuid.New()
	deluxe   = uuid.New()
)

func roomState(number string, typeID uuid.UUID, typeName string, cents int64, status room.Status) occupancy.RoomState {
	return occupancy.RoomState{
		ID:       uuid.New(),
		Number:   number,
		TypeID:   typeID,
		TypeName: typeName,
		Price:    money.FromCents(cents),
		Status:   status,
	}
}

func stay(roomID uuid.UUID, in, out time.Time, status booking.Status) occupancy.BookingState {
	return occupancy.BookingState{ID: uuid.New(), RoomID: roomID, CheckIn: in, CheckOut: out, Status: status}
}

func TestAvailability(t *testing.T) {
	rooms := []occupancy.RoomState{
		roomState("101", standard, "Standard", 50000000, room.StatusAvailable),
		roomState("102", standard, "Standard", 45000000, room.StatusAvailable),
		roomState("103", standard, "Standard", 30000000, room.StatusOccupied),
		roomState("201", deluxe, "Deluxe", 90000000, room.StatusReserved),
		roomState("202", deluxe, "Deluxe", 80000000, room.StatusCleaning),
	}

	t.Run("空室のあるタイプだけ最安値で表示", func(t *testing.T) {
		got := occupancy.AvailableTypes(rooms)
		want := []occupancy.TypeOption{
			{TypeID: standard, TypeName: "Standard", FromPrice: money.FromCents(45000000), Available: 2},
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(money.Money{})); diff != "" {
			t.Errorf("types mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("タイプで絞り込み取得順を保つ", func(t *testing.T) {
		got := occupancy.AvailableRooms(rooms, standard)
		assert.Len(t, got, 2)
		assert.Equal(t, "101", got[0].Number)
		assert.Equal(t, "102", got[1].Number)
		assert.Equal(t, "Standard", got[0].TypeName)
	})

	t.Run("空室なしのタイプは空", func(t *testing.T) {
		got := occupancy.AvailableRooms(rooms, deluxe)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("入力を変更しない", func(t *testing.T) {
		before := append([]occupancy.RoomState(nil), rooms...)
		_ = occupancy.AvailableRooms(rooms, uuid.Nil)
		_ = occupancy.AvailableTypes(rooms)
		assert.Equal(t, before, rooms)
	})
}

func TestEffectiveStatus(t *testing.T) {
	r := roomState("101", standard, "Standard", 50000000, room.StatusAvailable)
	in, out := date(2024, 1, 10), date(2024, 1, 12)

	cases := []struct {
		name     string
		stored   room.Status
		bookings []occupancy.BookingState
		on       time.Time
		want     room.Status
	}{
		{name: "予約なしは保存値", stored: room.StatusAvailable, on: in, want: room.StatusAvailable},
		{name: "予約なしは保存値(手動reserved)", stored: room.StatusReserved, on: in, want: room.StatusReserved},
		{
			name: "チェックイン済みはoccupied", stored: room.StatusAvailable, on: date(2024, 1, 11), want: room.StatusOccupied,
			bookings: []occupancy.BookingState{stay(r.ID, in, out, booking.StatusCheckedIn)},
		},
		{
			name: "予約のみはreserved", stored: room.StatusAvailable, on: in, want: room.StatusReserved,
			bookings: []occupancy.BookingState{stay(r.ID, in, out, booking.StatusReservation)},
		},
		{
			name: "チェックアウト日も含む", stored: room.StatusAvailable, on: out, want: room.StatusReserved,
			bookings: []occupancy.BookingState{stay(r.ID, in, out, booking.StatusReservation)},
		},
		{
			name: "期間外は保存値", stored: room.StatusAvailable, on: date(2024, 1, 13), want: room.StatusAvailable,
			bookings: []occupancy.BookingState{stay(r.ID, in, out, booking.StatusCheckedIn)},
		},
		{
			name: "チェックイン済みが予約より優先", stored: room.StatusAvailable, on: date(2024, 1, 12), want: room.StatusOccupied,
			bookings: []occupancy.BookingState{
				stay(r.ID, date(2024, 1, 12), date(2024, 1, 14), booking.StatusReservation),
				stay(r.ID, in, out, booking.StatusCheckedIn),
			},
		},
		{
			name: "清掃中は常にcleaning", stored: room.StatusCleaning, on: in, want: room.StatusCleaning,
			bookings: []occupancy.BookingState{stay(r.ID, in, out, booking.StatusCheckedIn)},
		},
		{
			name: "チェックアウト済みは無視", stored: room.StatusAvailable, on: in, want: room.StatusAvailable,
			bookings: []occupancy.BookingState{stay(r.ID, in, out, booking.StatusCheckedOut)},
		},
		{
			name: "他の部屋の予約は無視", stored: room.StatusAvailable, on: in, want: room.StatusAvailable,
			bookings: []occupancy.BookingState{stay(uuid.New(), in, out, booking.StatusCheckedIn)},
		},
		{
			name: "時刻付きの日付も同じ日", stored: room.StatusAvailable, on: time.Date(2024, 1, 12, 22, 0, 0, 0, time.UTC), want: room.StatusOccupied,
			bookings: []occupancy.BookingState{stay(r.ID, in, out, booking.StatusCheckedIn)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rs := r
			rs.Status = c.stored
			assert.Equal(t, c.want, occupancy.EffectiveStatus(rs, c.bookings, c.on))
		})
	}

	t.Run("清掃中はどの日付でもcleaning", func(t *testing.T) {
		rs := r
		rs.Status = room.StatusCleaning
		bookings := []occupancy.BookingState{stay(r.ID, in, out, booking.StatusCheckedIn)}
		for d := date(2023, 12, 1); d.Before(date(2024, 3, 1)); d = d.AddDate(0, 0, 1) {
			assert.Equal(t, room.StatusCleaning, occupancy.EffectiveStatus(rs, bookings, d))
		}
	})
}

func TestBoard(t *testing.T) {
	r1 := roomState("101", standard, "Standard", 50000000, room.StatusAvailable)
	r2 := roomState("102", standard, "Standard", 50000000, room.StatusCleaning)
	r3 := roomState("201", deluxe, "Deluxe", 90000000, room.StatusOccupied)
	rooms := []occupancy.RoomState{r1, r2, r3}
	bookings := []occupancy.BookingState{
		stay(r1.ID, date(2024, 1, 10), date(2024, 1, 12), booking.StatusReservation),
		stay(r2.ID, date(2024, 1, 10), date(2024, 1, 12), booking.StatusCheckedIn),
	}

	got := occupancy.Board(rooms, bookings, date(2024, 1, 11))
	want := []occupancy.BoardEntry{
		{RoomID: r1.ID, Number: "101", TypeName: "Standard", StoredStatus: room.StatusAvailable, EffectiveStatus: room.StatusReserved},
		{RoomID: r2.ID, Number: "102", TypeName: "Standard", StoredStatus: room.StatusCleaning, EffectiveStatus: room.StatusCleaning},
		{RoomID: r3.ID, Number: "201", TypeName: "Deluxe", StoredStatus: room.StatusOccupied, EffectiveStatus: room.StatusOccupied},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, got[0].Diverges())
	assert.False(t, got[1].Diverges())

	t.Run("冪等", func(t *testing.T) {
		again := occupancy.Board(rooms, bookings, date(2024, 1, 11))
		assert.Equal(t, got, again)
	})
}
