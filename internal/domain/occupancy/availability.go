package occupancy

import (
	"hotel-frontdesk/internal/domain/room"

	"github.com/google/uuid"
)

// AvailableTypes lists each room type that has at least one available room,
// priced by its cheapest available room, in order of first appearance.
func AvailableTypes(rooms []RoomState) []TypeOption {
	index := make(map[uuid.UUID]int)
	var out []TypeOption

	for _, r := range rooms {
		if r.Status != room.StatusAvailable {
			continue
		}
		i, seen := index[r.TypeID]
		if !seen {
			index[r.TypeID] = len(out)
			out = append(out, TypeOption{
				TypeID:    r.TypeID,
				TypeName:  r.TypeName,
				FromPrice: r.Price,
				Available: 1,
			})
			continue
		}
		out[i].Available++
		if r.Price.Cents() < out[i].FromPrice.Cents() {
			out[i].FromPrice = r.Price
		}
	}
	return out
}

// AvailableRooms keeps fetch order. A nil typeID selects every type.
func AvailableRooms(rooms []RoomState, typeID uuid.UUID) []RoomOption {
	out := []RoomOption{}
	for _, r := range rooms {
		if r.Status != room.StatusAvailable {
			continue
		}
		if typeID != uuid.Nil && r.TypeID != typeID {
			continue
		}
		out = append(out, RoomOption{
			ID:       r.ID,
			Number:   r.Number,
			Price:    r.Price,
			TypeName: r.TypeName,
		})
	}
	return out
}
