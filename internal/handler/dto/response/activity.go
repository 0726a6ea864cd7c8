package response

import (
	"time"

	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ActivityResponse struct {
	ID          uuid.UUID  `json:"id"`
	Action      string     `json:"action"`
	Description string     `json:"description"`
	EntityType  string     `json:"entityType"`
	EntityID    *uuid.UUID `json:"entityId,omitempty"`
	CreatedAt   string     `json:"createdAt"`
}

// FromActivityList keeps the full timestamp; the feed is ordered by it.
func FromActivityList(items []*queries.ActivityView) []*ActivityResponse {
	out := make([]*ActivityResponse, len(items))
	for i, it := range items {
		out[i] = &ActivityResponse{
			ID:          it.ID,
			Action:      it.Action,
			Description: it.Description,
			EntityType:  it.EntityType,
			EntityID:    it.EntityID,
			CreatedAt:   it.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
