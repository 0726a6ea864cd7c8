//go:build unit || e2e

package builder

import (
	"time"

	"hotel-frontdesk/internal/domain/money"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID         uuid.UUID
	Number     string
	RoomTypeID uuid.UUID
	TypeName   string
	PriceCents int64
	Status     string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:         uuid.New(),
		Number:     "101",
		RoomTypeID: uuid.New(),
		TypeName:   "Deluxe",
		PriceCents: 50000000,
		Status:     "available",
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	price, err := money.New(r.PriceCents)
	if err != nil {
		return nil, room.ErrNonPositivePrice
	}
	rm, err := room.NewRoom(r.Number, r.RoomTypeID, price)
	if err != nil {
		return nil, err
	}

	status, err := room.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	if status != room.StatusAvailable {
		if err := rm.SetStatus(status); err != nil {
			return nil, err
		}
	}
	return rm, nil
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	now := time.Now()
	return &shared.RoomSnapshot{
		ID:         r.ID,
		Number:     r.Number,
		RoomTypeID: r.RoomTypeID,
		TypeName:   r.TypeName,
		PriceCents: r.PriceCents,
		Status:     r.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	now := time.Now()
	return &queries.RoomView{
		ID:         r.ID,
		Number:     r.Number,
		RoomTypeID: r.RoomTypeID,
		TypeName:   r.TypeName,
		PriceCents: r.PriceCents,
		Status:     r.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithRoomTypeID(id uuid.UUID) *RoomBuilder {
	r.RoomTypeID = id
	return r
}

func (r *RoomBuilder) WithPriceCents(cents int64) *RoomBuilder {
	r.PriceCents = cents
	return r
}

func (r *RoomBuilder) WithStatus(status string) *RoomBuilder {
	r.Status = status
	return r
}
