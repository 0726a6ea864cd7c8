package commands

import (
	"context"
	"encoding/json"
	"time"

	"hotel-frontdesk/internal/domain/activity"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobKindRoomRelease = "room_release"
	JobKindEvent       = "event"
)

// EventRoomReleased has no activity entry; other events reuse the activity action name.
const EventRoomReleased = "room.released"

// Event is the outbox payload relayed to the broker.
type Event struct {
	Type       string     `json:"type"`
	EntityID   uuid.UUID  `json:"entityId"`
	RoomID     *uuid.UUID `json:"roomId,omitempty"`
	ActorID    *uuid.UUID `json:"actorId,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}

type roomReleasePayload struct {
	RoomID    uuid.UUID `json:"roomId"`
	BookingID uuid.UUID `json:"bookingId"`
}

func enqueueEvent(ctx context.Context, tx shared.Tx, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}
	return tx.Jobs().Enqueue(ctx, tx.DB(), JobKindEvent, ev.Type, payload, ev.OccurredAt)
}

func enqueueRoomRelease(ctx context.Context, tx shared.Tx, roomID, bookingID uuid.UUID, runAt time.Time) error {
	payload, err := json.Marshal(roomReleasePayload{RoomID: roomID, BookingID: bookingID})
	if err != nil {
		return errs.Wrap(err, "failed to encode room release")
	}
	return tx.Jobs().Enqueue(ctx, tx.DB(), JobKindRoomRelease, JobKindRoomRelease, payload, runAt)
}

// recordActivity appends the actor's activity entry and the outbox event of the
// same name.
func recordActivity(
	ctx context.Context,
	tx shared.Tx,
	occurredAt time.Time,
	actorID uuid.UUID,
	action, desc, entityType string,
	entityID uuid.UUID,
	roomID *uuid.UUID,
) error {
	a, err := activity.New(actorID, action, desc, entityType, &entityID)
	if err != nil {
		return errs.Wrap(err, "failed to build activity")
	}
	if err := tx.Activities().Append(ctx, tx.DB(), a); err != nil {
		return errs.Wrap(err, "failed to append activity")
	}

	return enqueueEvent(ctx, tx, Event{
		Type:       action,
		EntityID:   entityID,
		RoomID:     roomID,
		ActorID:    &actorID,
		OccurredAt: occurredAt,
	})
}
