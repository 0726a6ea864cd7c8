package commands

import (
	"context"
	"fmt"

	"hotel-frontdesk/internal/domain/activity"
	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateRoomNumber = errs.New("room number already exists")
	ErrDuplicateRoomType   = errs.New("room type already exists")
	ErrRoomTypeNotFound    = errs.New("room type not found")
)

type RoomTypeRequest struct {
	Name        string
	Description string
}

type RoomRequest struct {
	Number             string
	RoomTypeID         uuid.UUID
	PricePerNightCents int64
}

type RoomCommands interface {
	CreateRoomType(ctx context.Context, req RoomTypeRequest, actorID uuid.UUID) (uuid.UUID, error)
	CreateRoom(ctx context.Context, req RoomRequest, actorID uuid.UUID) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, req RoomRequest, actorID uuid.UUID) error
	// SetStatus is the manual override; it does not look at bookings.
	SetStatus(ctx context.Context, roomID uuid.UUID, status string, actorID uuid.UUID) error
}

type roomCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier ChangeNotifier
	clock    clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, notifier ChangeNotifier, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *roomCommandsImpl) CreateRoomType(ctx context.Context, req RoomTypeRequest, actorID uuid.UUID) (uuid.UUID, error) {
	rt, err := room.NewRoomType(req.Name, req.Description)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RoomTypes().Create(ctx, tx.DB(), rt); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoomType
			}
			return errs.Wrap(err, "failed to create room type")
		}
		desc := fmt.Sprintf("Room type %s created", rt.Name())
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionRoomTypeCreated, desc, activity.EntityRoomType, rt.ID(), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.notifier.Invalidate(ctx, shared.TagRooms)
	return rt.ID(), nil
}

func (uc *roomCommandsImpl) CreateRoom(ctx context.Context, req RoomRequest, actorID uuid.UUID) (uuid.UUID, error) {
	price, err := money.New(req.PricePerNightCents)
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	rm, err := room.NewRoom(req.Number, req.RoomTypeID, price)
	if err != nil {
		return uuid.Nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Create(ctx, tx.DB(), rm); err != nil {
			return roomWriteErr(err, "failed to create room")
		}
		id := rm.ID()
		desc := fmt.Sprintf("Room %s created at %s per night", rm.Number(), rm.PricePerNight())
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionRoomCreated, desc, activity.EntityRoom, id, &id)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.notifier.Invalidate(ctx, shared.TagRooms, shared.TagDashboard)
	return rm.ID(), nil
}

func (uc *roomCommandsImpl) UpdateRoom(ctx context.Context, roomID uuid.UUID, req RoomRequest, actorID uuid.UUID) error {
	price, err := money.New(req.PricePerNightCents)
	if err != nil {
		return invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rs, err := tx.Reads().RoomByIDForUpdate(ctx, roomID)
		if err != nil {
			return notFoundAs(err, ErrRoomNotFound)
		}
		rm := roomFromSnapshot(rs)
		if err := rm.UpdateDetails(req.Number, req.RoomTypeID, price); err != nil {
			return invalid(err)
		}
		if err := tx.Rooms().Update(ctx, tx.DB(), rm); err != nil {
			return roomWriteErr(err, "failed to update room")
		}
		desc := fmt.Sprintf("Room %s updated", rm.Number())
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionRoomUpdated, desc, activity.EntityRoom, roomID, &roomID)
	})
	if err != nil {
		return err
	}

	uc.notifier.Invalidate(ctx, shared.RoomTag(roomID), shared.TagRooms)
	return nil
}

func (uc *roomCommandsImpl) SetStatus(ctx context.Context, roomID uuid.UUID, status string, actorID uuid.UUID) error {
	s, err := room.NewStatus(status)
	if err != nil {
		return invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rs, err := tx.Reads().RoomByIDForUpdate(ctx, roomID)
		if err != nil {
			return notFoundAs(err, ErrRoomNotFound)
		}
		rm := roomFromSnapshot(rs)
		previous := rm.Status()
		if err := rm.SetStatus(s); err != nil {
			return invalid(err)
		}
		if err := tx.Rooms().Update(ctx, tx.DB(), rm); err != nil {
			return errs.Wrap(err, "failed to update room status")
		}
		desc := fmt.Sprintf("Room %s set from %s to %s", rm.Number(), previous, s)
		return recordActivity(ctx, tx, uc.clock.Now(), actorID,
			activity.ActionRoomStatusChanged, desc, activity.EntityRoom, roomID, &roomID)
	})
	if err != nil {
		return err
	}

	uc.notifier.Invalidate(ctx, shared.RoomTag(roomID), shared.TagRooms, shared.TagDashboard)
	return nil
}

func roomWriteErr(err error, msg string) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicateRoomNumber
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrRoomTypeNotFound
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRoomNotFound
	}
	return errs.Wrap(err, msg)
}
