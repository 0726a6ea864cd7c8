//go:build unit

package commands_test

import (
	"context"
	"time"

	"hotel-frontdesk/internal/infra/db"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/shared"
	commandsmock "hotel-frontdesk/tests/mock/commands"
	sharedmock "hotel-frontdesk/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

// uowSuite wires a UnitOfWork mock whose Within runs the callback against a
// mock Tx exposing mock repositories.
type uowSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	rooms        *sharedmock.MockRoomRepository
	roomTypes    *sharedmock.MockRoomTypeRepository
	bookings     *sharedmock.MockBookingRepository
	transactions *sharedmock.MockTransactionRepository
	activities   *sharedmock.MockActivityRepository
	jobs         *sharedmock.MockJobRepository
	menuItems    *sharedmock.MockMenuItemRepository
	users        *sharedmock.MockUserRepository
	notifier     *commandsmock.MockChangeNotifier
	clock        *clock.MockClock
	policy       commands.HotelPolicy
}

func (s *uowSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.rooms = sharedmock.NewMockRoomRepository(s.ctrl)
	s.roomTypes = sharedmock.NewMockRoomTypeRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.transactions = sharedmock.NewMockTransactionRepository(s.ctrl)
	s.activities = sharedmock.NewMockActivityRepository(s.ctrl)
	s.jobs = sharedmock.NewMockJobRepository(s.ctrl)
	s.menuItems = sharedmock.NewMockMenuItemRepository(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.notifier = commandsmock.NewMockChangeNotifier(s.ctrl)
	s.clock = clock.NewMockClock(fixedNow)
	s.policy = commands.HotelPolicy{
		RevenueCategory: "room revenue",
		CleaningDelay:   3 * time.Second,
		JobBatchSize:    10,
		JobLease:        time.Minute,
	}

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.tx.EXPECT().DB().Return(db.DBTX(nil)).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Rooms().Return(s.rooms).AnyTimes()
	s.tx.EXPECT().RoomTypes().Return(s.roomTypes).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Transactions().Return(s.transactions).AnyTimes()
	s.tx.EXPECT().Activities().Return(s.activities).AnyTimes()
	s.tx.EXPECT().Jobs().Return(s.jobs).AnyTimes()
	s.tx.EXPECT().MenuItems().Return(s.menuItems).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
}

func (s *uowSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectRecorded expects one activity append plus its outbox event.
func (s *uowSuite) expectRecorded(action string) {
	s.activities.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.jobs.EXPECT().Enqueue(gomock.Any(), gomock.Any(), commands.JobKindEvent, action, gomock.Any(), fixedNow).Return(nil)
}
