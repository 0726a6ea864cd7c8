package commands

import (
	"context"
	"fmt"
	"time"

	"hotel-frontdesk/internal/domain/activity"
	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/ledger"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomTypeRequired      = errs.New("room type must be selected")
	ErrRoomRequired          = errs.New("room must be selected")
	ErrRoomTypeMismatch      = errs.New("room does not belong to the selected room type")
	ErrRoomNotFound          = errs.New("room not found")
	ErrRoomNotAvailable      = errs.New("room is no longer available")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrBookingNotReservation = errs.New("only a reservation can be checked in")
	ErrBookingNotCheckedIn   = errs.New("only a checked-in booking can be checked out")
	ErrBookingAlreadyPaid    = errs.New("booking is already paid")
	ErrQuoteNeedsPrice       = errs.New("either a room or a price per night is required")
)

type QuoteRequest struct {
	RoomID             *uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	PricePerNightCents *int64
}

type CreateBookingRequest struct {
	RoomTypeID    uuid.UUID
	RoomID        uuid.UUID
	GuestName     string
	GuestPhone    string
	GuestEmail    string
	GuestIDNumber string
	GuestAddress  string
	CheckIn       time.Time
	CheckOut      time.Time
	PaymentMethod string
	PaymentStatus string
	Status        string
	Notes         string
}

type BookingCommands interface {
	Quote(ctx context.Context, req QuoteRequest) (*booking.Quote, error)
	Create(ctx context.Context, req CreateBookingRequest, actorID uuid.UUID) (uuid.UUID, error)
	CheckIn(ctx context.Context, bookingID, actorID uuid.UUID) error
	CheckOut(ctx context.Context, bookingID, actorID uuid.UUID) error
	SettlePayment(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	calc     booking.PriceCalculator
	notifier ChangeNotifier
	clock    clock.Clock
	policy   HotelPolicy
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	calc booking.PriceCalculator,
	notifier ChangeNotifier,
	clk clock.Clock,
	policy HotelPolicy,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		calc:     calc,
		notifier: notifier,
		clock:    clk,
		policy:   policy,
	}
}

// Quote prices a prospective stay without writing anything. An explicit price
// wins over the room's list price.
func (uc *bookingCommandsImpl) Quote(ctx context.Context, req QuoteRequest) (*booking.Quote, error) {
	var price money.Money
	switch {
	case req.PricePerNightCents != nil:
		p, err := money.New(*req.PricePerNightCents)
		if err != nil {
			return nil, invalid(err)
		}
		price = p
	case req.RoomID != nil:
		rs, err := uc.uow.CommandReads().RoomByID(ctx, *req.RoomID)
		if err != nil {
			return nil, notFoundAs(err, ErrRoomNotFound)
		}
		price = money.FromCents(rs.PriceCents)
	default:
		return nil, invalid(ErrQuoteNeedsPrice)
	}

	q := uc.calc.Calculate(req.CheckIn, req.CheckOut, price)
	return &q, nil
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest, actorID uuid.UUID) (uuid.UUID, error) {
	draft, err := uc.draftFrom(req, actorID)
	if err != nil {
		return uuid.Nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rs, err := tx.Reads().RoomByIDForUpdate(ctx, req.RoomID)
		if err != nil {
			return notFoundAs(err, ErrRoomNotFound)
		}
		if rs.RoomTypeID != req.RoomTypeID {
			return invalid(ErrRoomTypeMismatch)
		}

		b, err := booking.NewBooking(uc.calc, draft, money.FromCents(rs.PriceCents))
		if err != nil {
			return invalid(err)
		}

		rm := roomFromSnapshot(rs)
		if err := rm.AttachBooking(b.CheckInDate(), b.CheckOutDate(), b.Status() == booking.StatusCheckedIn); err != nil {
			return ErrRoomNotAvailable
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return errs.Wrap(err, "failed to insert booking")
		}
		if err := tx.Rooms().Update(ctx, tx.DB(), rm); err != nil {
			return errs.Wrap(err, "failed to update room")
		}
		if err := uc.postRevenue(ctx, tx, b, rs); err != nil {
			return err
		}

		desc := fmt.Sprintf("Booking for %s in room %s (%s to %s)",
			b.Guest().Name(), rs.Number, b.CheckInDate().Format(time.DateOnly), b.CheckOutDate().Format(time.DateOnly))
		if err := uc.record(ctx, tx, actorID, activity.ActionBookingCreated, desc, b); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.invalidate(ctx, created.RoomID())
	return created.ID(), nil
}

func (uc *bookingCommandsImpl) CheckIn(ctx context.Context, bookingID, actorID uuid.UUID) error {
	var roomID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.CheckIn(); err != nil {
			return ErrBookingNotReservation
		}

		rs, err := tx.Reads().RoomByIDForUpdate(ctx, b.RoomID())
		if err != nil {
			return notFoundAs(err, ErrRoomNotFound)
		}
		rm := roomFromSnapshot(rs)
		rm.Occupy()

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return errs.Wrap(err, "failed to update booking")
		}
		if err := tx.Rooms().Update(ctx, tx.DB(), rm); err != nil {
			return errs.Wrap(err, "failed to update room")
		}
		if err := uc.postRevenue(ctx, tx, b, rs); err != nil {
			return err
		}

		desc := fmt.Sprintf("%s checked in to room %s", b.Guest().Name(), rs.Number)
		if err := uc.record(ctx, tx, actorID, activity.ActionBookingCheckedIn, desc, b); err != nil {
			return err
		}
		roomID = rm.ID()
		return nil
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx, roomID)
	return nil
}

// CheckOut puts the room into cleaning and schedules its release; the release
// itself runs later in the job sweeper.
func (uc *bookingCommandsImpl) CheckOut(ctx context.Context, bookingID, actorID uuid.UUID) error {
	var roomID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.CheckOut(); err != nil {
			return ErrBookingNotCheckedIn
		}

		rs, err := tx.Reads().RoomByIDForUpdate(ctx, b.RoomID())
		if err != nil {
			return notFoundAs(err, ErrRoomNotFound)
		}
		rm := roomFromSnapshot(rs)
		rm.StartCleaning()

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return errs.Wrap(err, "failed to update booking")
		}
		if err := tx.Rooms().Update(ctx, tx.DB(), rm); err != nil {
			return errs.Wrap(err, "failed to update room")
		}

		releaseAt := uc.clock.Now().Add(uc.policy.CleaningDelay)
		if err := enqueueRoomRelease(ctx, tx, rm.ID(), b.ID(), releaseAt); err != nil {
			return errs.Wrap(err, "failed to schedule room release")
		}

		desc := fmt.Sprintf("%s checked out of room %s", b.Guest().Name(), rs.Number)
		if err := uc.record(ctx, tx, actorID, activity.ActionBookingCheckedOut, desc, b); err != nil {
			return err
		}
		roomID = rm.ID()
		return nil
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx, roomID)
	return nil
}

func (uc *bookingCommandsImpl) SettlePayment(ctx context.Context, bookingID, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.MarkPaid(); err != nil {
			return ErrBookingAlreadyPaid
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return errs.Wrap(err, "failed to update booking")
		}

		desc := fmt.Sprintf("Payment of %s settled for %s", b.TotalPrice(), b.Guest().Name())
		return uc.record(ctx, tx, actorID, activity.ActionBookingPaid, desc, b)
	})
	if err != nil {
		return err
	}

	uc.notifier.Invalidate(ctx, shared.TagBookings, shared.TagDashboard)
	return nil
}

func (uc *bookingCommandsImpl) draftFrom(req CreateBookingRequest, actorID uuid.UUID) (booking.Draft, error) {
	if req.RoomTypeID == uuid.Nil {
		return booking.Draft{}, invalid(ErrRoomTypeRequired)
	}
	if req.RoomID == uuid.Nil {
		return booking.Draft{}, invalid(ErrRoomRequired)
	}

	guest, err := booking.NewGuest(req.GuestName, req.GuestPhone, req.GuestEmail, req.GuestIDNumber, req.GuestAddress)
	if err != nil {
		return booking.Draft{}, invalid(err)
	}
	method, err := booking.NewPaymentMethod(req.PaymentMethod)
	if err != nil {
		return booking.Draft{}, invalid(err)
	}
	payment, err := booking.NewPaymentStatus(req.PaymentStatus)
	if err != nil {
		return booking.Draft{}, invalid(err)
	}
	status, err := booking.NewStatus(req.Status)
	if err != nil {
		return booking.Draft{}, invalid(err)
	}
	if status == booking.StatusCheckedOut {
		return booking.Draft{}, invalid(booking.ErrInvalidInitialStatus)
	}
	if _, err := booking.NewStay(req.CheckIn, req.CheckOut); err != nil {
		return booking.Draft{}, invalid(err)
	}

	return booking.Draft{
		RoomID:        req.RoomID,
		Guest:         guest,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		PaymentMethod: method,
		PaymentStatus: payment,
		Status:        status,
		ReceivedBy:    actorID,
		Notes:         req.Notes,
	}, nil
}

func (uc *bookingCommandsImpl) lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	bs, err := tx.Reads().BookingByIDForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}
	return bookingFromSnapshot(bs)
}

func (uc *bookingCommandsImpl) postRevenue(ctx context.Context, tx shared.Tx, b *booking.Booking, rs *shared.RoomSnapshot) error {
	if !b.EarnsRevenue() {
		return nil
	}
	t, err := ledger.NewRoomRevenue(b, uc.policy.RevenueCategory, rs.Number, rs.TypeName)
	if err != nil {
		return errs.Wrap(err, "failed to build room revenue")
	}
	if err := tx.Transactions().Create(ctx, tx.DB(), t); err != nil {
		return errs.Wrap(err, "failed to post room revenue")
	}
	return nil
}

func (uc *bookingCommandsImpl) record(ctx context.Context, tx shared.Tx, actorID uuid.UUID, action, desc string, b *booking.Booking) error {
	roomID := b.RoomID()
	return recordActivity(ctx, tx, uc.clock.Now(), actorID, action, desc, activity.EntityBooking, b.ID(), &roomID)
}

func (uc *bookingCommandsImpl) invalidate(ctx context.Context, roomID uuid.UUID) {
	uc.notifier.Invalidate(ctx,
		shared.RoomTag(roomID), shared.TagRooms, shared.TagBookings, shared.TagLedger, shared.TagDashboard)
}
