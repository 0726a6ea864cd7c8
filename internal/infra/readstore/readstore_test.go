//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func TestLockClause(t *testing.T) {
	assert.Equal(t, "", lockClause(false, "r"))
	assert.Equal(t, " FOR UPDATE", lockClause(true, ""))
	assert.Equal(t, " FOR UPDATE OF r", lockClause(true, "r"))
}

func TestRoomReadStore_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("閲覧用", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, findRoomByIDSQL, []any{id}).Return(fakeRow{err: pgx.ErrNoRows})

		_, err := NewRoomReadStore(dbtx).FindRoomByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
		dbtx.AssertExpectations(t)
	})

	t.Run("更新用ロック付き", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, findRoomByIDSQL+" FOR UPDATE OF r", []any{id}).Return(fakeRow{err: pgx.ErrNoRows})

		_, err := NewRoomReadStore(dbtx).SnapshotByID(ctx, id, true)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
		dbtx.AssertExpectations(t)
	})
}

func TestBookingReadStore_SnapshotLocksRow(t *testing.T) {
	id := uuid.New()
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, findBookingSnapshotSQL+" FOR UPDATE", []any{id}).Return(fakeRow{err: assert.AnError})

	_, err := NewBookingReadStore(dbtx).SnapshotByID(context.Background(), id, true)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	dbtx.AssertExpectations(t)
}

func TestDashboardReadStore_RoomCounts(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, roomCountsSQL, mock.Anything).
		Return(fakeRow{values: []any{int64(10), int64(4), int64(5)}})

	got, err := NewDashboardReadStore(dbtx).RoomCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, queries.RoomCounts{Total: 10, Available: 4, Occupied: 5}, got)
}

func TestDashboardReadStore_IncomeOnFailure(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, incomeOnSQL, mock.Anything).Return(fakeRow{err: assert.AnError})

	_, err := NewDashboardReadStore(dbtx).IncomeOn(context.Background(), testDate)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
}

func TestUserReadStore_SnapshotByEmailNotFound(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, findUserByEmailSQL, []any{"ghost@example.com"}).Return(fakeRow{err: pgx.ErrNoRows})

	_, err := NewUserReadStore(dbtx).SnapshotByEmail(context.Background(), "ghost@example.com")
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
}

func TestListQueriesPropagateErrors(t *testing.T) {
	ctx := context.Background()
	dbtx := new(MockDBTX)
	dbtx.On("Query", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := NewRoomReadStore(dbtx).ListRooms(ctx)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	_, err = NewBookingReadStore(dbtx).ListFirstPage(ctx, "", 21)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	_, err = NewLedgerReadStore(dbtx).ListTransactions(ctx, testDate, testDate)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	_, err = NewMenuReadStore(dbtx).List(ctx, true)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	_, err = NewActivityReadStore(dbtx).ListRecentByUser(ctx, uuid.New(), 20)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
