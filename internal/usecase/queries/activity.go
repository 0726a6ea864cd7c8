package queries

import (
	"context"

	"hotel-frontdesk/internal/domain/activity"

	"github.com/google/uuid"
)

type ActivityReadStore interface {
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*ActivityView, error)
}

type ActivityQueries interface {
	Recent(ctx context.Context, userID uuid.UUID) ([]*ActivityView, error)
}

type activityQueriesImpl struct {
	store ActivityReadStore
}

func NewActivityQueries(store ActivityReadStore) ActivityQueries {
	return &activityQueriesImpl{store: store}
}

// Recent is the user's own log, newest first.
func (q *activityQueriesImpl) Recent(ctx context.Context, userID uuid.UUID) ([]*ActivityView, error) {
	return q.store.ListRecentByUser(ctx, userID, activity.RecentLimit)
}
