package uow

import (
	"context"

	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/infra/readstore"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads serve write-side snapshots on whatever connection the command
// runs on: the pool outside a transaction, the pgx.Tx inside one.
type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	roomStore    *readstore.RoomReadStore
	bookingStore *readstore.BookingReadStore
	userStore    *readstore.UserReadStore
	menuStore    *readstore.MenuReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{dbtx: dbtx}
}

func (r *commandReads) rooms() *readstore.RoomReadStore {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.dbtx)
	}
	return r.roomStore
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	return r.rooms().SnapshotByID(ctx, id, false)
}

func (r *commandReads) RoomByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	return r.rooms().SnapshotByID(ctx, id, true)
}

func (r *commandReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}
	return r.bookingStore.SnapshotByID(ctx, id, true)
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.users().SnapshotByID(ctx, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.users().SnapshotByEmail(ctx, email)
}

func (r *commandReads) MenuItemByID(ctx context.Context, id uuid.UUID) (*shared.MenuItemSnapshot, error) {
	if r.menuStore == nil {
		r.menuStore = readstore.NewMenuReadStore(r.dbtx)
	}
	return r.menuStore.SnapshotByID(ctx, id)
}
