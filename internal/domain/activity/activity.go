package activity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingUser = errors.New("activity needs a user")
	ErrEmptyAction = errors.New("activity action cannot be empty")
)

// RecentLimit is how many entries a user sees in their own log.
const RecentLimit = 20

const (
	ActionBookingCreated    = "booking.created"
	ActionBookingCheckedIn  = "booking.checked_in"
	ActionBookingCheckedOut = "booking.checked_out"
	ActionBookingPaid       = "booking.paid"
	ActionRoomCreated       = "room.created"
	ActionRoomUpdated       = "room.updated"
	ActionRoomStatusChanged = "room.status_changed"
	ActionRoomTypeCreated   = "room_type.created"
	ActionTransactionAdded  = "transaction.recorded"
	ActionMenuItemCreated   = "menu_item.created"
	ActionMenuItemUpdated   = "menu_item.updated"
	ActionMenuItemDeleted   = "menu_item.deleted"
	ActionUserCreated       = "user.created"
	ActionUserRoleChanged   = "user.role_changed"
	ActionUserActivation    = "user.activation_changed"
)

const (
	EntityBooking     = "booking"
	EntityRoom        = "room"
	EntityRoomType    = "room_type"
	EntityTransaction = "transaction"
	EntityMenuItem    = "menu_item"
	EntityUser        = "user"
)

// Activity entries are append-only.
type Activity struct {
	id          uuid.UUID
	userID      uuid.UUID
	action      string
	description string
	entityType  string
	entityID    *uuid.UUID
	createdAt   time.Time
}

func New(userID uuid.UUID, action, description, entityType string, entityID *uuid.UUID) (*Activity, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, ErrEmptyAction
	}
	return &Activity{
		id:          uuid.New(),
		userID:      userID,
		action:      action,
		description: description,
		entityType:  entityType,
		entityID:    entityID,
	}, nil
}

func (a *Activity) ID() uuid.UUID        { return a.id }
func (a *Activity) UserID() uuid.UUID    { return a.userID }
func (a *Activity) Action() string       { return a.action }
func (a *Activity) Description() string  { return a.description }
func (a *Activity) EntityType() string   { return a.entityType }
func (a *Activity) EntityID() *uuid.UUID { return a.entityID }
func (a *Activity) CreatedAt() time.Time { return a.createdAt }
