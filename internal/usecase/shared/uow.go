package shared

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/activity"
	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/ledger"
	"hotel-frontdesk/internal/domain/menu"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	RoomTypes() RoomTypeRepository
	Bookings() BookingRepository
	Transactions() TransactionRepository
	Activities() ActivityRepository
	Jobs() JobRepository
	MenuItems() MenuItemRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads return write-side snapshots. The ForUpdate variants lock the
// row until the surrounding transaction ends.
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	RoomByIDForUpdate(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	MenuItemByID(ctx context.Context, id uuid.UUID) (*MenuItemSnapshot, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *room.Room) error
	Update(ctx context.Context, tx db.DBTX, r *room.Room) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *room.RoomType) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *ledger.Transaction) error
}

type ActivityRepository interface {
	Append(ctx context.Context, tx db.DBTX, a *activity.Activity) error
}

type JobRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue also reclaims jobs left processing since before staleBefore.
	ClaimDue(ctx context.Context, tx db.DBTX, kind string, now, staleBefore time.Time, limit int) ([]Job, error)
	Requeue(ctx context.Context, tx db.DBTX, jobIDs []uuid.UUID) error
	MarkDone(ctx context.Context, tx db.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx db.DBTX, jobID uuid.UUID, lastError string) error
}

type MenuItemRepository interface {
	Create(ctx context.Context, tx db.DBTX, it *menu.Item) error
	Update(ctx context.Context, tx db.DBTX, it *menu.Item) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
